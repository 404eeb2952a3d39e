// SPDX-License-Identifier: MIT

package gexf

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/charnet/core"
)

// Namespace and version of the emitted documents.
const (
	Namespace = "http://www.gexf.net/1.2draft"
	Version   = "1.2"

	edgeColorAttr = "color"
)

// ErrNilGraph is returned by Write for a nil graph.
var ErrNilGraph = errors.New("gexf: nil graph")

// Option configures Write.
type Option func(*options)

type options struct {
	creator     string
	description string
}

// WithCreator sets <meta><creator>.
func WithCreator(s string) Option { return func(o *options) { o.creator = s } }

// WithDescription sets <meta><description>.
func WithDescription(s string) Option { return func(o *options) { o.description = s } }

type document struct {
	XMLName xml.Name  `xml:"gexf"`
	XMLNS   string    `xml:"xmlns,attr"`
	Version string    `xml:"version,attr"`
	Meta    *meta     `xml:"meta,omitempty"`
	Graph   graphElem `xml:"graph"`
}

type meta struct {
	Creator     string `xml:"creator,omitempty"`
	Description string `xml:"description,omitempty"`
}

type graphElem struct {
	DefaultEdgeType string       `xml:"defaultedgetype,attr"`
	Mode            string       `xml:"mode,attr"`
	Attributes      []attributes `xml:"attributes"`
	Nodes           []node       `xml:"nodes>node"`
	Edges           []edge       `xml:"edges>edge"`
}

type attributes struct {
	Class string      `xml:"class,attr"`
	Attrs []attribute `xml:"attribute"`
}

type attribute struct {
	ID    string `xml:"id,attr"`
	Title string `xml:"title,attr"`
	Type  string `xml:"type,attr"`
}

type attValue struct {
	For   string `xml:"for,attr"`
	Value string `xml:"value,attr"`
}

type node struct {
	ID        string     `xml:"id,attr"`
	Label     string     `xml:"label,attr"`
	AttValues []attValue `xml:"attvalues>attvalue,omitempty"`
}

type edge struct {
	ID        string     `xml:"id,attr"`
	Source    string     `xml:"source,attr"`
	Target    string     `xml:"target,attr"`
	Weight    string     `xml:"weight,attr"`
	AttValues []attValue `xml:"attvalues>attvalue"`
}

// Write encodes g as an indented GEXF 1.2 document to w.
//
// Implementation:
//   - Stage 1: declare one node attribute per metadata key (sorted by key),
//     typed from the first value seen; declare the edge color attribute.
//   - Stage 2: emit nodes and edges in graph insertion order.
//
// Errors:
//   - ErrNilGraph; fmt.Errorf-wrapped write errors from w.
//
// Complexity:
//   - Time O(V·A + E) for A metadata keys.
func Write(w io.Writer, g *core.Graph, opts ...Option) error {
	if g == nil {
		return ErrNilGraph
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	doc := document{XMLNS: Namespace, Version: Version}
	if o.creator != "" || o.description != "" {
		doc.Meta = &meta{Creator: o.creator, Description: o.description}
	}
	doc.Graph.Mode = "static"
	doc.Graph.DefaultEdgeType = "undirected"

	vertices := g.Vertices()
	nodeAttrs, attrIDs := declareNodeAttributes(vertices)
	doc.Graph.Attributes = []attributes{
		{Class: "node", Attrs: nodeAttrs},
		{Class: "edge", Attrs: []attribute{{ID: "0", Title: edgeColorAttr, Type: "double"}}},
	}

	doc.Graph.Nodes = make([]node, 0, len(vertices))
	for _, v := range vertices {
		n := node{ID: v.ID, Label: v.ID}
		for _, a := range nodeAttrs {
			val, ok := v.Metadata[a.Title]
			if !ok {
				continue
			}
			n.AttValues = append(n.AttValues, attValue{For: attrIDs[a.Title], Value: formatValue(val)})
		}
		doc.Graph.Nodes = append(doc.Graph.Nodes, n)
	}

	edges := g.Edges()
	doc.Graph.Edges = make([]edge, 0, len(edges))
	for _, e := range edges {
		doc.Graph.Edges = append(doc.Graph.Edges, edge{
			ID:        e.ID,
			Source:    e.From,
			Target:    e.To,
			Weight:    formatFloat(e.Weight),
			AttValues: []attValue{{For: "0", Value: formatFloat(e.Color)}},
		})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("gexf: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("gexf: encode: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("gexf: %w", err)
	}

	return nil
}

// declareNodeAttributes returns the sorted attribute declarations and a
// title → id index.
func declareNodeAttributes(vertices []*core.Vertex) ([]attribute, map[string]string) {
	types := make(map[string]string)
	for _, v := range vertices {
		for k, val := range v.Metadata {
			if _, seen := types[k]; !seen {
				types[k] = typeOf(val)
			}
		}
	}
	keys := make([]string, 0, len(types))
	for k := range types {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]attribute, len(keys))
	ids := make(map[string]string, len(keys))
	for i, k := range keys {
		id := strconv.Itoa(i)
		attrs[i] = attribute{ID: id, Title: k, Type: types[k]}
		ids[k] = id
	}

	return attrs, ids
}

func typeOf(v any) string {
	switch v.(type) {
	case int, int32, int64:
		return "integer"
	case float32, float64:
		return "double"
	case bool:
		return "boolean"
	default:
		return "string"
	}
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return formatFloat(x)
	case float32:
		return formatFloat(float64(x))
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
