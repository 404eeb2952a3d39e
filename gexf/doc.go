// SPDX-License-Identifier: MIT

// Package gexf writes a core.Graph as a GEXF 1.2 document, the exchange format
// read by Gephi and networkx.
//
// Vertices become <node> elements (id and label = vertex ID) and every vertex
// metadata key becomes a declared node attribute; edges become <edge>
// elements carrying weight as the native attribute and color as a declared
// edge attribute. Output order follows the graph's insertion order, so the
// same graph always serializes to the same bytes.
package gexf
