package diagram

import (
	"bytes"
	"fmt"
	"io"

	"github.com/katalvlaran/burrow/moves"
	"github.com/katalvlaran/burrow/topology"
)

// Render draws cfg into w using the shape the layout was parsed from.
// Tokens are drawn with their kind letter, empty cells as '.'.
// It returns topology.ErrUnknownCell if cfg holds a cell the layout lacks.
func (l *Layout) Render(w io.Writer, roster *moves.Roster, cfg moves.Configuration) error {
	grid := make([][]byte, len(l.lines))
	for i, line := range l.lines {
		grid[i] = bytes.Clone(line)
	}
	for i := range cfg.Len() {
		cell := cfg.Cell(i)
		pos, ok := l.at[cell]
		if !ok {
			return fmt.Errorf("diagram: render: %w: %s", topology.ErrUnknownCell, cell)
		}
		grid[pos.row][pos.col] = roster.Kind(i).Letter()
	}

	var buf bytes.Buffer
	for _, line := range grid {
		buf.Write(line)
		buf.WriteByte('\n')
	}
	_, err := w.Write(buf.Bytes())

	return err
}

// Draw returns the drawing of cfg, or the render error text.
func (l *Layout) Draw(roster *moves.Roster, cfg moves.Configuration) string {
	var b bytes.Buffer
	if err := l.Render(&b, roster, cfg); err != nil {
		return err.Error()
	}

	return b.String()
}

// Render draws cfg with the puzzle's layout and roster.
func (p Puzzle) Render(w io.Writer, cfg moves.Configuration) error {
	return p.Layout.Render(w, p.Roster, cfg)
}
