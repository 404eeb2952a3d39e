// SPDX-License-Identifier: MIT

package projection

import (
	"fmt"

	"github.com/katalvlaran/charnet/core"
	"github.com/katalvlaran/charnet/matrix"
	"github.com/katalvlaran/charnet/names"
)

// Graph builds the rendered character network: one vertex per vocabulary
// name, in vocabulary order, carrying core.AttrFrequency and core.AttrSize
// (frequency / max frequency), plus one undirected edge per projected edge.
//
// Names without any edge remain as isolated vertices.
//
// Errors:
//   - ErrInvalidInput when vocab.Frequencies and vocab.Names differ in length;
//     every EdgeList error; core errors wrapped.
func Graph(vocab names.Vocabulary, m matrix.Matrix, mode Mode) (*core.Graph, error) {
	if len(vocab.Frequencies) != len(vocab.Names) {
		return nil, fmt.Errorf("Graph: %d frequencies for %d names: %w",
			len(vocab.Frequencies), len(vocab.Names), ErrInvalidInput)
	}
	edges, err := EdgeList(m, mode, vocab.Names)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph()
	maxFreq := float64(vocab.MaxFrequency())
	for i, name := range vocab.Names {
		if err = g.AddVertex(name); err != nil {
			return nil, fmt.Errorf("Graph: %w", err)
		}
		size := 0.0
		if maxFreq > 0 {
			size = float64(vocab.Frequencies[i]) / maxFreq
		}
		if err = g.SetVertexAttr(name, core.AttrFrequency, vocab.Frequencies[i]); err != nil {
			return nil, fmt.Errorf("Graph: %w", err)
		}
		if err = g.SetVertexAttr(name, core.AttrSize, size); err != nil {
			return nil, fmt.Errorf("Graph: %w", err)
		}
	}
	for _, e := range edges {
		if _, err = g.AddEdge(e.Source, e.Target, e.Weight, core.WithEdgeColor(e.Color)); err != nil {
			return nil, fmt.Errorf("Graph: %w", err)
		}
	}

	return g, nil
}
