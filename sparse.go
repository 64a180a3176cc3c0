package aocgrid

import (
	"maps"
	"strings"
)

// Sparse is a grid keyed by coordinate. Only inserted cells exist, and
// negative coordinates are fine. The zero value is a nil map that panics
// on Set; use NewSparse or a literal.
type Sparse[T any] map[Pt]T

var _ Grid[byte] = Sparse[byte](nil)

func NewSparse[T any]() Sparse[T] {
	return make(Sparse[T])
}

func (s Sparse[T]) AtOk(p Pt) (T, bool) {
	v, ok := s[p]
	return v, ok
}

func (s Sparse[T]) Set(p Pt, v T) {
	s[p] = v
}

func (s Sparse[T]) Delete(p Pt) {
	delete(s, p)
}

func (s Sparse[T]) Len() int { return len(s) }

// Extents scans every key, so avoid it in hot loops. For an empty grid it
// returns two zero points; check Len first.
func (s Sparse[T]) Extents() (lo, hi Pt) {
	first := true
	for p := range s {
		if first {
			lo, hi = p, p
			first = false
			continue
		}
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return lo, hi
}

// ForCells visits the stored cells row by row, left to right.
func (s Sparse[T]) ForCells(f func(p Pt, v T) (keepGoing bool)) {
	for _, p := range s.sortedKeys() {
		if !f(p, s[p]) {
			return
		}
	}
}

func (s Sparse[T]) sortedKeys() []Pt {
	keys := make([]Pt, 0, len(s))
	for p := range s {
		keys = append(keys, p)
	}
	sortReadingOrder(keys)
	return keys
}

func (s Sparse[T]) Clone() Sparse[T] {
	return maps.Clone(s)
}

// SparseEqual reports whether a and b store the same cells.
func SparseEqual[T comparable](a, b Sparse[T]) bool {
	return maps.Equal(a, b)
}

// ToDense copies s into a dense grid covering its extent, filling
// missing cells with fill. The extent's min corner maps to (0,0).
func (s Sparse[T]) ToDense(fill T) Dense[T] {
	if len(s) == 0 {
		return Dense[T]{}
	}
	lo, hi := s.Extents()
	out := MakeDenseFilled(hi.X-lo.X+1, hi.Y-lo.Y+1, fill)
	for p, v := range s {
		out[p.Y-lo.Y][p.X-lo.X] = v
	}
	return out
}

// ToSparse copies every cell of g into a sparse grid.
func ToSparse[T any](g Grid[T]) Sparse[T] {
	out := NewSparse[T]()
	g.ForCells(func(p Pt, v T) bool {
		out[p] = v
		return true
	})
	return out
}

// String renders the extent row by row, using '.' for missing cells.
func (s Sparse[T]) String() string {
	if len(s) == 0 {
		return ""
	}
	lo, hi := s.Extents()
	var sb strings.Builder
	for y := lo.Y; y <= hi.Y; y++ {
		if y > lo.Y {
			sb.WriteByte('\n')
		}
		for x := lo.X; x <= hi.X; x++ {
			if v, ok := s[Pt{x, y}]; ok {
				writeCell(&sb, v)
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
