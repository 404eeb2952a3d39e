// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN or infinite weight or color.
	ErrBadWeight = errors.New("core: weight must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same pair.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Well-known vertex attribute keys set by the projection layer.
const (
	AttrFrequency = "frequency" // int: corpus occurrences of the name
	AttrSize      = "size"      // float64: frequency / max frequency, in (0, 1]
)

// Vertex represents one character.
type Vertex struct {
	// ID is the unique identifier (the character name).
	ID string

	// Metadata stores renderer attributes. Vertex() and Vertices() return
	// shallow copies of it, so callers may not mutate the graph through it.
	Metadata map[string]any
}

// Edge represents a relation between two characters.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From and To are the endpoint vertex IDs, in the order they were added.
	From, To string

	// Weight is the rendered strength of the relation (line width).
	Weight float64

	// Color is the value mapped onto the renderer's color scale.
	Color float64
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeColor sets the edge color value.
func WithEdgeColor(color float64) EdgeOption {
	return func(e *Edge) { e.Color = color }
}

// Graph is the character network.
//
// muVert protects vertices and vertexOrder; muEdgeAdj protects edges,
// edgeOrder and adjacency.
type Graph struct {
	muVert    sync.RWMutex
	muEdgeAdj sync.RWMutex

	nextEdgeID  uint64
	vertices    map[string]*Vertex
	vertexOrder []string
	edges       map[string]*Edge
	edgeOrder   []string

	// adjacency[from][to] = edge ID, mirrored as adjacency[to][from].
	adjacency map[string]map[string]string
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
}
