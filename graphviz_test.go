package aocgrid

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPtDOT(t *testing.T) {
	g := NewGraph[Pt](false)
	g.AddEdge(Pt{1, 0}, Pt{0, 0}, 3)
	g.AddEdge(Pt{0, 0}, Pt{0, 2}, 7)

	want := `graph G {
  node [shape=box, fontsize=10];
  "0,0" [pos="0,0!"];
  "0,2" [pos="0,-2!"];
  "1,0" [pos="1,0!"];
  "0,0" -- "0,2" [label="7"];
  "0,0" -- "1,0" [label="3"];
}
`
	assert.Equal(t, want, PtDOT(g))
	assert.Equal(t, PtDOT(g), PtDOT(g.Clone()), "stable output")
}

func TestDOTDirected(t *testing.T) {
	g := NewGraph[string](true)
	g.AddEdge("b", "a", 1)
	g.AddEdge("a", "b", 2)
	g.AddNode("c")
	dot := g.DOT(func(s string) string { return s }, func(string) (int, int, bool) { return 0, 0, false })
	assert.True(t, strings.HasPrefix(dot, "digraph G {\n"))
	assert.Contains(t, dot, "  \"c\";\n")
	assert.Contains(t, dot, `"a" -> "b" [label="2"]`)
	assert.Contains(t, dot, `"b" -> "a" [label="1"]`)
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz runtime is slow to start")
	}
	g := NewGraph[Pt](false)
	g.AddEdge(Pt{0, 0}, Pt{1, 0}, 1)
	svg, err := RenderSVG(context.Background(), PtDOT(g))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}
