package graph_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/nzpercolate/graph"
)

// BenchmarkAddEdge measures vertex/edge bookkeeping cost on a chain graph.
func BenchmarkAddEdge(b *testing.B) {
	g := graph.NewGraph(graph.WithMultiEdges())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge(fmt.Sprintf("n%d", i), fmt.Sprintf("n%d", i+1))
	}
}
