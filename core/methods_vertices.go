// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in insertion order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.

package core

import "fmt"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, check presence; if missing, register it
//     with a non-nil Metadata map and append it to the insertion order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.addVertexLocked(id)

	return nil
}

// addVertexLocked registers id; caller holds muVert.
func (g *Graph) addVertexLocked(id string) {
	if _, exists := g.vertices[id]; exists {
		return
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]any)}
	g.vertexOrder = append(g.vertexOrder, id)
}

// SetVertexAttr stores value under key in the vertex metadata.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) SetVertexAttr(id, key string, value any) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	v, ok := g.vertices[id]
	if !ok {
		return fmt.Errorf("SetVertexAttr(%q): %w", id, ErrVertexNotFound)
	}
	v.Metadata[key] = value

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns a copy of the vertex with the given ID.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	v, ok := g.vertices[id]
	if !ok {
		return nil, fmt.Errorf("Vertex(%q): %w", id, ErrVertexNotFound)
	}

	return v.copy(), nil
}

// Vertices returns copies of all vertices in insertion order.
// Complexity: O(V + total attributes).
func (g *Graph) Vertices() []*Vertex {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]*Vertex, len(g.vertexOrder))
	for i, id := range g.vertexOrder {
		out[i] = g.vertices[id].copy()
	}

	return out
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertexOrder)
}

func (v *Vertex) copy() *Vertex {
	md := make(map[string]any, len(v.Metadata))
	for k, val := range v.Metadata {
		md[k] = val
	}

	return &Vertex{ID: v.ID, Metadata: md}
}
