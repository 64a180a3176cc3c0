package aocgrid

import (
	"testing"
)

func TestToGraph(t *testing.T) {
	g := ParseGrid([]string{
		".#.",
		"...",
	})
	open := IsNot[byte]('#')

	tests := []struct {
		name      string
		opts      GraphOptions
		wantEdges int
	}{
		{"conn4", GraphOptions{}, 4},
		{"conn8", GraphOptions{Conn: Conn8}, 6},
		{"directed", GraphOptions{Directed: true}, 8},
	}
	for _, tt := range tests {
		gr := ToGraph[byte](g, open, UnitCost[byte], tt.opts)
		if len(gr.Nodes) != 5 {
			t.Errorf("%s: %d nodes, want 5", tt.name, len(gr.Nodes))
		}
		if gr.Nodes[Pt{1, 0}] {
			t.Errorf("%s: wall became a node", tt.name)
		}
		if got := gr.NumEdges(); got != tt.wantEdges {
			t.Errorf("%s: %d edges, want %d", tt.name, got, tt.wantEdges)
		}
	}
}

func TestToGraphCosts(t *testing.T) {
	g := ParseGridTo([]string{"19", "11"}, func(c byte) int64 { return int64(c - '0') })
	all := func(Pt, int64) bool { return true }

	// Undirected: asked once per pair, from the smaller point.
	var asked []Edge[Pt]
	gr := ToGraph[int64](g, all, func(p1 Pt, _ int64, p2 Pt, v2 int64) (int64, bool) {
		asked = append(asked, Edge[Pt]{p1, p2})
		return v2, true
	}, GraphOptions{})
	if len(asked) != 4 {
		t.Fatalf("edgeCost called %d times, want 4", len(asked))
	}
	for _, e := range asked {
		if !e.A.Less(e.B) {
			t.Errorf("edgeCost asked %v -> %v", e.A, e.B)
		}
	}
	if w, _ := gr.Weight(Pt{1, 0}, Pt{0, 0}); w != 9 {
		t.Errorf("undirected weight = %d, want 9 (symmetric)", w)
	}

	// Directed: the cost of entering each cell.
	dg := ToGraph[int64](g, all, func(_ Pt, _ int64, _ Pt, v2 int64) (int64, bool) {
		return v2, true
	}, GraphOptions{Directed: true})
	if w, _ := dg.Weight(Pt{0, 0}, Pt{1, 0}); w != 9 {
		t.Errorf("into 9 = %d, want 9", w)
	}
	if w, _ := dg.Weight(Pt{1, 0}, Pt{0, 0}); w != 1 {
		t.Errorf("into 1 = %d, want 1", w)
	}

	// Refusing edges leaves isolated nodes.
	none := ToGraph[int64](g, all, func(Pt, int64, Pt, int64) (int64, bool) { return 0, false }, GraphOptions{})
	if len(none.Nodes) != 4 || none.NumEdges() != 0 {
		t.Errorf("no-edge graph: %d nodes, %d edges", len(none.Nodes), none.NumEdges())
	}
}

func TestIs(t *testing.T) {
	f := Is[byte]('.', 'S')
	for c, want := range map[byte]bool{'.': true, 'S': true, '#': false} {
		if got := f(Pt{}, c); got != want {
			t.Errorf("Is(., S)(%q) = %v, want %v", c, got, want)
		}
	}
}
