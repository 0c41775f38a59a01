package pathcache_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/burrow/pathcache"
	"github.com/katalvlaran/burrow/topology"
)

// BenchmarkBuild_Standard measures the all-pairs table for each depth.
func BenchmarkBuild_Standard(b *testing.B) {
	for _, depth := range []int{2, 4} {
		g, err := topology.NewStandard(depth)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("depth%d", depth), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = pathcache.Build(g)
			}
		})
	}
}
