package aocgrid

import "tailscale.com/util/deephash"

// Transposition is one of the eight rigid symmetries of the square. The
// FlipH variants flip horizontally first and then rotate clockwise.
type Transposition uint8

const (
	Identity Transposition = iota
	Rot90
	Rot180
	Rot270
	FlipH
	FlipHRot90
	FlipHRot180
	FlipHRot270
)

// Named equivalents.
const (
	FlipV     = FlipHRot180
	Transpose = FlipHRot270
)

// Transpositions lists every Transposition in iteration order.
var Transpositions = [8]Transposition{
	Identity, Rot90, Rot180, Rot270,
	FlipH, FlipHRot90, FlipHRot180, FlipHRot270,
}

func (t Transposition) String() string {
	return [...]string{
		"identity", "rot90", "rot180", "rot270",
		"flipH", "flipH+rot90", "flipH+rot180", "flipH+rot270",
	}[t&7]
}

func (t Transposition) flips() bool   { return t&4 != 0 }
func (t Transposition) rotations() int { return int(t & 3) }

// dims returns the width and height of a w by h box after t.
func (t Transposition) dims(w, h int) (int, int) {
	if t.rotations()%2 == 1 {
		return h, w
	}
	return w, h
}

// mapLocal maps (u,v) inside a w by h box whose corner is at the origin.
func (t Transposition) mapLocal(u, v, w, h int) (int, int) {
	if t.flips() {
		u = w - 1 - u
	}
	for i := 0; i < t.rotations(); i++ {
		u, v = h-1-v, u
		w, h = h, w
	}
	return u, v
}

// Transformed returns a copy of g with t applied. Short rows are padded
// with the zero value to the width of the widest row first.
func (g Dense[T]) Transformed(t Transposition) Dense[T] {
	size := g.Size()
	w, h := t.dims(size.X, size.Y)
	out := MakeDense[T](w, h)
	for y, row := range g {
		for x, v := range row {
			nx, ny := t.mapLocal(x, y, size.X, size.Y)
			out[ny][nx] = v
		}
	}
	return out
}

// Apply rewrites g with t applied. Rotations by 90° and 270° and the
// diagonal flips swap width and height.
func (g *Dense[T]) Apply(t Transposition) {
	*g = g.Transformed(t)
}

func (g *Dense[T]) FlipH()     { g.Apply(FlipH) }
func (g *Dense[T]) FlipV()     { g.Apply(FlipV) }
func (g *Dense[T]) Transpose() { g.Apply(Transpose) }
func (g *Dense[T]) RotateCW()  { g.Apply(Rot90) }
func (g *Dense[T]) Rotate180() { g.Apply(Rot180) }

// RotateCCW rotates by 270° clockwise.
func (g *Dense[T]) RotateCCW() { g.Apply(Rot270) }

// ForTranspositions calls f with each of the eight transpositions of g,
// in Transpositions order. Every grid passed to f is a fresh copy.
func (g Dense[T]) ForTranspositions(f func(t Transposition, out Dense[T]) (keepGoing bool)) {
	for _, t := range Transpositions {
		if !f(t, g.Transformed(t)) {
			return
		}
	}
}

func (g Dense[T]) AllTranspositions() []Dense[T] {
	out := make([]Dense[T], 0, len(Transpositions))
	g.ForTranspositions(func(_ Transposition, d Dense[T]) bool {
		out = append(out, d)
		return true
	})
	return out
}

// UniqueTranspositions is AllTranspositions with structural duplicates
// removed, keeping the first of each.
func (g Dense[T]) UniqueTranspositions() []Dense[T] {
	seen := map[deephash.Sum]bool{}
	var out []Dense[T]
	g.ForTranspositions(func(_ Transposition, d Dense[T]) bool {
		h := d.Hash()
		if !seen[h] {
			seen[h] = true
			out = append(out, d)
		}
		return true
	})
	return out
}

// Transformed returns a copy of s with t applied within its bounding
// box. The box keeps its min corner; flipH maps x to max.X+min.X-x and
// rot90 maps (x,y) to (min.X+max.Y-y, min.Y+x-min.X).
func (s Sparse[T]) Transformed(t Transposition) Sparse[T] {
	out := make(Sparse[T], len(s))
	if len(s) == 0 {
		return out
	}
	lo, hi := s.Extents()
	w, h := hi.X-lo.X+1, hi.Y-lo.Y+1
	for p, v := range s {
		nx, ny := t.mapLocal(p.X-lo.X, p.Y-lo.Y, w, h)
		out[Pt{lo.X + nx, lo.Y + ny}] = v
	}
	return out
}

// Apply rewrites s in place with t applied.
func (s Sparse[T]) Apply(t Transposition) {
	if t == Identity {
		return
	}
	moved := s.Transformed(t)
	clear(s)
	for p, v := range moved {
		s[p] = v
	}
}

func (s Sparse[T]) FlipH()     { s.Apply(FlipH) }
func (s Sparse[T]) FlipV()     { s.Apply(FlipV) }
func (s Sparse[T]) Transpose() { s.Apply(Transpose) }
func (s Sparse[T]) RotateCW()  { s.Apply(Rot90) }
func (s Sparse[T]) Rotate180() { s.Apply(Rot180) }
func (s Sparse[T]) RotateCCW() { s.Apply(Rot270) }

func (s Sparse[T]) ForTranspositions(f func(t Transposition, out Sparse[T]) (keepGoing bool)) {
	for _, t := range Transpositions {
		if !f(t, s.Transformed(t)) {
			return
		}
	}
}

func (s Sparse[T]) AllTranspositions() []Sparse[T] {
	out := make([]Sparse[T], 0, len(Transpositions))
	s.ForTranspositions(func(_ Transposition, d Sparse[T]) bool {
		out = append(out, d)
		return true
	})
	return out
}
