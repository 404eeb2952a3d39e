// SPDX-License-Identifier: MIT

package gexf_test

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/charnet/core"
	"github.com/katalvlaran/charnet/gexf"
	"github.com/stretchr/testify/require"
)

func network(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("alice"))
	require.NoError(t, g.SetVertexAttr("alice", core.AttrFrequency, 10))
	require.NoError(t, g.SetVertexAttr("alice", core.AttrSize, 1.0))
	require.NoError(t, g.AddVertex("bob"))
	require.NoError(t, g.SetVertexAttr("bob", core.AttrFrequency, 5))
	require.NoError(t, g.SetVertexAttr("bob", core.AttrSize, 0.5))
	_, err := g.AddEdge("bob", "alice", 2.5, core.WithEdgeColor(-1200))
	require.NoError(t, err)

	return g
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, gexf.Write(&buf, network(t), gexf.WithCreator("charnet")))
	out := buf.String()

	require.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	for _, want := range []string{
		`<gexf xmlns="http://www.gexf.net/1.2draft" version="1.2">`,
		`<creator>charnet</creator>`,
		`<graph defaultedgetype="undirected" mode="static">`,
		`<attribute id="0" title="frequency" type="integer"></attribute>`,
		`<attribute id="1" title="size" type="double"></attribute>`,
		`<attribute id="0" title="color" type="double"></attribute>`,
		`<node id="alice" label="alice">`,
		`<attvalue for="0" value="10"></attvalue>`,
		`<attvalue for="1" value="0.5"></attvalue>`,
		`<edge id="e1" source="bob" target="alice" weight="2.5">`,
		`<attvalue for="0" value="-1200"></attvalue>`,
	} {
		require.Contains(t, out, want)
	}
	require.Less(t, strings.Index(out, `id="alice"`), strings.Index(out, `id="bob"`))
	require.NotContains(t, out, "<description>")
}

func TestWrite_Deterministic(t *testing.T) {
	g := network(t)
	var a, b bytes.Buffer
	require.NoError(t, gexf.Write(&a, g))
	require.NoError(t, gexf.Write(&b, g))
	require.Equal(t, a.String(), b.String())
	require.NotContains(t, a.String(), "<meta>")
}

func TestWrite_SchemaNamespace(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, gexf.Write(&buf, network(t)))

	var root struct {
		XMLName xml.Name
		Version string `xml:"version,attr"`
	}
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &root))
	require.Equal(t, "gexf", root.XMLName.Local)
	require.Equal(t, "http://www.gexf.net/1.2draft", root.XMLName.Space)
	require.Equal(t, "1.2", root.Version)
}

type failingWriter struct{}

var errSink = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

func TestWrite_Errors(t *testing.T) {
	require.ErrorIs(t, gexf.Write(&bytes.Buffer{}, nil), gexf.ErrNilGraph)
	require.ErrorIs(t, gexf.Write(failingWriter{}, network(t)), errSink)
}
