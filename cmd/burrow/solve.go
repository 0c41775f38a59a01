package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/burrow/diagram"
	"github.com/katalvlaran/burrow/moves"
	"github.com/katalvlaran/burrow/pathcache"
	"github.com/katalvlaran/burrow/search"
	"github.com/katalvlaran/burrow/settings"
)

// solveFlags holds the command-line overrides of settings.Settings.
type solveFlags struct {
	config        string
	trace         bool
	unfold        bool
	maxExpansions int
	logLevel      string
}

func newSolveCmd() *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Find the cheapest way to sort a burrow",
		Long: `Reads a burrow diagram and prints the minimum total cost of moving every
token into its home room.

Without a file argument the diagram is read from stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, args, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.config, "config", "c", "", "YAML settings file")
	flags.BoolVar(&f.trace, "trace", false, "print every move with the board after it")
	flags.BoolVar(&f.unfold, "unfold", false, "insert the two extra room rows of the deep variant")
	flags.IntVar(&f.maxExpansions, "max-expansions", 0, "stop after expanding this many configurations (0 = unlimited)")
	flags.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")

	return cmd
}

// loadSettings merges the settings file with the flags the user set.
func loadSettings(cmd *cobra.Command, f solveFlags) (settings.Settings, error) {
	s := settings.Default()
	if f.config != "" {
		var err error
		if s, err = settings.Load(f.config); err != nil {
			return settings.Settings{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("trace") {
		s.Trace = f.trace
	}
	if flags.Changed("unfold") {
		s.Unfold = f.unfold
	}
	if flags.Changed("max-expansions") {
		s.MaxExpansions = f.maxExpansions
	}
	if flags.Changed("log-level") {
		s.LogLevel = f.logLevel
	}

	return s, s.Validate()
}

func runSolve(cmd *cobra.Command, args []string, f solveFlags) error {
	s, err := loadSettings(cmd, f)
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: s.Level()}))
	out := cmd.OutOrStdout()

	// 1) Read the diagram.
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()
		in = file
	}
	var opts []diagram.Option
	if len(s.Weights) > 0 {
		opts = append(opts, diagram.WithWeights(s.Weights))
	}
	if s.Unfold {
		opts = append(opts, diagram.WithInsertedRows(diagram.UnfoldRows...))
	}
	p, err := diagram.Parse(in, opts...)
	if err != nil {
		return err
	}

	// 2) Precompute routes and build the move generator.
	paths, err := pathcache.Build(p.Graph)
	if err != nil {
		return err
	}
	gen, err := moves.NewGenerator(paths, p.Roster)
	if err != nil {
		return err
	}
	logger.Info("burrow loaded",
		"stops", p.Graph.CorridorLen(),
		"rooms", p.Graph.Rooms(),
		"depth", p.Graph.Depth(0),
		"tokens", p.Roster.Len(),
	)

	// 3) Search.
	began := time.Now()
	res, err := search.Solve(gen, p.Start,
		search.WithLogger(logger),
		search.WithMaxExpansions(s.MaxExpansions),
	)
	logger.Info("search done",
		"expansions", humanize.Comma(int64(res.Expansions)),
		"recorded", humanize.Comma(int64(len(res.BestCosts))),
		"elapsed", time.Since(began),
	)
	if errors.Is(err, search.ErrExpansionLimit) {
		if res.Found {
			fmt.Fprintf(out, "best cost so far: %s (not proven minimal)\n", humanize.Comma(res.Cost))
		}
		return err
	}
	if err != nil {
		return err
	}

	// 4) Report.
	if !res.Found {
		fmt.Fprintln(out, "no solution found")
		return nil
	}
	if s.Trace {
		if err := printTrace(out, p, res); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "minimum cost: %s\n", humanize.Comma(res.Cost))

	return nil
}

// printTrace draws the start and the board after every step.
func printTrace(w io.Writer, p diagram.Puzzle, res search.Result) error {
	if err := p.Render(w, res.Start); err != nil {
		return err
	}
	for i, step := range res.Steps {
		fmt.Fprintf(w, "\n%d. %s, total %s\n", i+1, step.Move, humanize.Comma(step.Configuration.Cost))
		if err := p.Render(w, step.Configuration); err != nil {
			return err
		}
	}
	fmt.Fprintln(w)

	return nil
}
