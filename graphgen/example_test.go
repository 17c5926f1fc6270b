package graphgen_test

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/nzpercolate/graphgen"
)

// ExampleErdosRenyi samples a small Erdős–Rényi graph with a fixed seed
// and reports its vertex count.
func ExampleErdosRenyi() {
	g, err := graphgen.ErdosRenyi(10, 0.3, graphgen.WithRand(rand.New(rand.NewSource(1))))
	if err != nil {
		panic(err)
	}
	fmt.Println(g.VertexCount())

	// Output:
	// 10
}
