// SPDX-License-Identifier: MIT

// Package core provides the thread-safe, in-memory character graph that the
// projection layer fills and renderers (GEXF export, plotting front-ends) read.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - One vertex per character, with free-form attributes (frequency, size, ...).
//   - Weighted, colored edges: Weight drives line width, Color the color scale.
//   - Undirected: a relation between two characters has no direction.
//   - No self-loops and no parallel edges: a pair is related at most once.
//   - Deterministic iteration: Vertices() and Edges() return insertion order,
//     which for a projected network is vocabulary order and lower-triangle order.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj);
//     lock order is always muVert → muEdgeAdj.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                            // O(1), idempotent
//	SetVertexAttr(id, key string, value any) error        // O(1)
//	HasVertex(id string) bool                             // O(1)
//	Vertex(id string) (*Vertex, error)                    // O(attrs), copy
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64, opts ...EdgeOption) (edgeID string, err error) // O(1)
//	HasEdge(from, to string) bool                         // O(1)
//	Edge(from, to string) (*Edge, error)                  // O(1), copy
//
//	// Query
//	Vertices() []*Vertex                                  // O(V), copies
//	Edges() []*Edge                                       // O(E), copies
//	Neighbors(id string) ([]string, error)                // O(d), edge insertion order
//	Strength(id string) (float64, error)                  // O(d), sum of incident weights
//	VertexCount() int / EdgeCount() int                   // O(1)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrBadWeight           – NaN or ±Inf weight or color
//	ErrLoopNotAllowed      – from == to
//	ErrMultiEdgeNotAllowed – the pair is already connected
package core
