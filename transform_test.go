package aocgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranspositionsNamed(t *testing.T) {
	g := ParseGrid([]string{"abc", "def"})
	tests := []struct {
		t    Transposition
		want []string
	}{
		{Identity, []string{"abc", "def"}},
		{FlipV, []string{"def", "abc"}},
		{FlipH, []string{"cba", "fed"}},
		{Transpose, []string{"ad", "be", "cf"}},
		{Rot90, []string{"da", "eb", "fc"}},
		{Rot180, []string{"fed", "cba"}},
		{Rot270, []string{"cf", "be", "ad"}},
	}
	for _, tt := range tests {
		got := g.Transformed(tt.t)
		if want := ParseGrid(tt.want); !Equal(got, want) {
			t.Errorf("Transformed(%v) =\n%v\nwant\n%v", tt.t, got, want)
		}
	}
}

func TestAllTranspositionsDistinct(t *testing.T) {
	g := ParseGrid([]string{"abc", "def"})
	all := g.AllTranspositions()
	require.Len(t, all, 8)
	assert.True(t, Equal(all[0], g), "first is the identity")
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			assert.False(t, Equal(all[i], all[j]), "%v == %v", Transpositions[i], Transpositions[j])
		}
	}
	assert.Len(t, g.UniqueTranspositions(), 8)

	sym := ParseGrid([]string{"#.#", "...", "#.#"})
	assert.Len(t, sym.UniqueTranspositions(), 1)
	half := ParseGrid([]string{"##", ".."})
	assert.Len(t, half.UniqueTranspositions(), 4)
}

func TestTransformRaggedRows(t *testing.T) {
	g := ParseGrid([]string{"ab", "abc"})
	r := g.Transformed(Rot90)
	assert.Equal(t, Dense[byte]{{'a', 'a'}, {'b', 'b'}, {'c', 0}}, r)

	for _, tr := range Transpositions {
		out := g.Transformed(tr)
		w, h := tr.dims(3, 2)
		assert.Equal(t, Pt{w, h}, out.Size(), "%v", tr)
		assert.Equal(t, 5, Count[byte](out, func(c byte) bool { return c != 0 }), "%v", tr)
	}

	empty := ParseGrid([]string{"", "x"})
	empty.Apply(FlipH)
	assert.Equal(t, Dense[byte]{{0}, {'x'}}, empty)
}

func TestDenseInPlace(t *testing.T) {
	g := ParseGrid([]string{"abc", "def"})
	orig := g.Clone()

	g.RotateCW()
	assert.Equal(t, Pt{2, 3}, g.Size())
	g.RotateCCW()
	assert.True(t, Equal(orig, g))

	for i := 0; i < 4; i++ {
		g.RotateCW()
	}
	assert.True(t, Equal(orig, g))

	g.Rotate180()
	g.Rotate180()
	assert.True(t, Equal(orig, g))

	g.FlipH()
	g.FlipH()
	assert.True(t, Equal(orig, g))

	g.FlipV()
	g.FlipV()
	assert.True(t, Equal(orig, g))

	g.Transpose()
	g.Transpose()
	assert.True(t, Equal(orig, g))

	// Rotating clockwise is transposing then flipping horizontally.
	a, b := orig.Clone(), orig.Clone()
	a.RotateCW()
	b.Transpose()
	b.FlipH()
	assert.True(t, Equal(a, b))
}

func TestForTranspositionsStops(t *testing.T) {
	g := ParseGrid([]string{"ab"})
	var seen []Transposition
	g.ForTranspositions(func(tr Transposition, _ Dense[byte]) bool {
		seen = append(seen, tr)
		return tr != Rot180
	})
	assert.Equal(t, []Transposition{Identity, Rot90, Rot180}, seen)
	assert.Equal(t, "flipH+rot90", FlipHRot90.String())
}

func TestSparseTransforms(t *testing.T) {
	s := Sparse[byte]{
		{10, 20}: 'a',
		{12, 20}: 'b',
		{10, 21}: 'c',
	}
	orig := s.Clone()

	// flipH mirrors x inside the box.
	f := s.Transformed(FlipH)
	assert.Equal(t, Sparse[byte]{{12, 20}: 'a', {10, 20}: 'b', {12, 21}: 'c'}, f)

	// rot90 maps (x,y) to (min.X+max.Y-y, min.Y+x-min.X).
	r := s.Transformed(Rot90)
	assert.Equal(t, Sparse[byte]{{11, 20}: 'a', {11, 22}: 'b', {10, 20}: 'c'}, r)
	lo, hi := r.Extents()
	assert.Equal(t, Pt{10, 20}, lo, "min corner kept")
	assert.Equal(t, Pt{11, 22}, hi)

	for _, tr := range Transpositions {
		d := s.ToDense('.').Transformed(tr)
		assert.Equal(t, d.String(), s.Transformed(tr).ToDense('.').String(), "%v agrees with dense", tr)
	}

	s.RotateCW()
	s.RotateCW()
	s.RotateCW()
	s.RotateCW()
	assert.True(t, SparseEqual(orig, s))
	s.FlipH()
	s.FlipH()
	s.Transpose()
	s.Transpose()
	s.FlipV()
	s.FlipV()
	s.Rotate180()
	s.RotateCCW()
	s.RotateCW()
	s.Rotate180()
	assert.True(t, SparseEqual(orig, s))

	assert.Len(t, s.AllTranspositions(), 8)
	assert.Empty(t, Sparse[byte]{}.Transformed(Rot90))
}
