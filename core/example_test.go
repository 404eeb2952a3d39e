// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/charnet/core"
)

// ExampleGraph builds a tiny character network and walks it.
func ExampleGraph() {
	g := core.NewGraph()
	_, _ = g.AddEdge("harry", "ron", 4.2, core.WithEdgeColor(6))
	_, _ = g.AddEdge("harry", "hermione", 3.1, core.WithEdgeColor(-1.5))

	for _, e := range g.Edges() {
		fmt.Printf("%s %s–%s w=%.1f c=%.1f\n", e.ID, e.From, e.To, e.Weight, e.Color)
	}
	nbs, _ := g.Neighbors("ron")
	fmt.Println("ron:", nbs)

	// Output:
	// e1 harry–ron w=4.2 c=6.0
	// e2 harry–hermione w=3.1 c=-1.5
	// ron: [harry]
}
