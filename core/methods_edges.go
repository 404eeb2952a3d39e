// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle & neighborhood queries.
//
// Determinism:
//   - Edges() and Neighbors() follow edge insertion order.
//
// Concurrency:
//   - AddEdge takes muVert then muEdgeAdj (global lock order).

package core

import (
	"fmt"
	"math"
)

const edgeIDPrefix = "e"

// AddEdge connects from and to with the given weight and returns the new
// Edge.ID. Missing endpoints are added first.
//
// Implementation:
//   - Stage 1: Validate IDs, loop and finite weight/color.
//   - Stage 2: Register endpoints (muVert), then reject an existing pair and
//     insert the edge with its mirrored adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed, ErrBadWeight, ErrMultiEdgeNotAllowed.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", fmt.Errorf("AddEdge(%q): %w", from, ErrLoopNotAllowed)
	}
	e := &Edge{From: from, To: to, Weight: weight}
	for _, opt := range opts {
		opt(e)
	}
	if !finite(e.Weight) || !finite(e.Color) {
		return "", fmt.Errorf("AddEdge(%q,%q): %w", from, to, ErrBadWeight)
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()
	if _, exists := g.adjacency[from][to]; exists {
		return "", fmt.Errorf("AddEdge(%q,%q): %w", from, to, ErrMultiEdgeNotAllowed)
	}

	g.nextEdgeID++
	e.ID = fmt.Sprintf("%s%d", edgeIDPrefix, g.nextEdgeID)
	g.edges[e.ID] = e
	g.edgeOrder = append(g.edgeOrder, e.ID)
	g.link(from, to, e.ID)
	g.link(to, from, e.ID)

	return e.ID, nil
}

// link records adjacency[from][to] = eid; caller holds muEdgeAdj.
func (g *Graph) link(from, to, eid string) {
	inner, ok := g.adjacency[from]
	if !ok {
		inner = make(map[string]string)
		g.adjacency[from] = inner
	}
	inner[to] = eid
}

// HasEdge reports whether from and to are connected, in either order.
func (g *Graph) HasEdge(from, to string) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edge returns a copy of the edge between from and to.
//
// Errors:
//   - ErrEdgeNotFound.
func (g *Graph) Edge(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[from][to]
	if !ok {
		return nil, fmt.Errorf("Edge(%q,%q): %w", from, to, ErrEdgeNotFound)
	}
	cp := *g.edges[eid]

	return &cp, nil
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, len(g.edgeOrder))
	for i, eid := range g.edgeOrder {
		cp := *g.edges[eid]
		out[i] = &cp
	}

	return out
}

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edgeOrder)
}

// Neighbors returns the IDs reachable from id over one edge, in edge
// insertion order.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(E), Space O(d).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if !g.HasVertex(id) {
		if id == "" {
			return nil, ErrEmptyVertexID
		}
		return nil, fmt.Errorf("Neighbors(%q): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var out []string
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		switch {
		case e.From == id:
			out = append(out, e.To)
		case e.To == id:
			out = append(out, e.From)
		}
	}

	return out, nil
}

// Strength returns the weighted degree of id: the sum of the weights of its
// incident edges.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Strength(id string) (float64, error) {
	if !g.HasVertex(id) {
		if id == "" {
			return 0, ErrEmptyVertexID
		}
		return 0, fmt.Errorf("Strength(%q): %w", id, ErrVertexNotFound)
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	var sum float64
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		if e.From == id || e.To == id {
			sum += e.Weight
		}
	}

	return sum, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
