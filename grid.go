package aocgrid

import (
	"fmt"
	"reflect"
	"strings"

	"tailscale.com/util/deephash"
)

// Grid is a 2D integer-indexed grid, dense or sparse.
type Grid[T any] interface {
	// AtOk returns the cell at p, or false if p is outside the grid or
	// holds no value.
	AtOk(p Pt) (T, bool)
	// Set assigns the cell at p. Dense grids ignore writes outside
	// their extent; sparse grids always accept them.
	Set(p Pt, v T)
	// Extents returns the inclusive bounding rectangle.
	Extents() (lo, hi Pt)
	// ForCells calls f for every defined cell until f returns false.
	ForCells(f func(p Pt, v T) (keepGoing bool))
}

// Conn selects the 4- or 8-neighbourhood.
type Conn int

const (
	Conn4 Conn = 4
	Conn8 Conn = 8
)

// ForNeighborsIn calls f for each neighbour of p under conn that holds a
// value in g.
func ForNeighborsIn[T any](g Grid[T], p Pt, conn Conn, f func(q Pt, v T) (keepGoing bool)) {
	dirs := Dirs4[:]
	if conn == Conn8 {
		dirs = Dirs8[:]
	}
	for _, d := range dirs {
		q := p.Add(d)
		if v, ok := g.AtOk(q); ok {
			if !f(q, v) {
				return
			}
		}
	}
}

// Dense is a row-major grid: g[y][x].
type Dense[T any] [][]T

var _ Grid[byte] = Dense[byte](nil)

func MakeDense[T any](x, y int) Dense[T] {
	out := make(Dense[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// MakeDenseFilled returns an x by y grid with every cell set to v.
func MakeDenseFilled[T any](x, y int, v T) Dense[T] {
	out := MakeDense[T](x, y)
	for _, row := range out {
		for i := range row {
			row[i] = v
		}
	}
	return out
}

// At returns the cell at p. It panics if p is outside the grid.
func (g Dense[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Dense[T]) In(p Pt) bool {
	return p.Y >= 0 && p.Y < len(g) && p.X >= 0 && p.X < len(g[p.Y])
}

func (g Dense[T]) AtOk(p Pt) (T, bool) {
	if !g.In(p) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func (g Dense[T]) Set(p Pt, v T) {
	if g.In(p) {
		g[p.Y][p.X] = v
	}
}

// Extents covers every row. Rows shorter than the widest one leave cells
// inside the extent that hold no value.
func (g Dense[T]) Extents() (lo, hi Pt) {
	size := g.Size()
	return Pt{}, Pt{size.X - 1, size.Y - 1}
}

func (g Dense[T]) ForCells(f func(p Pt, v T) (keepGoing bool)) {
	for y, row := range g {
		for x, v := range row {
			if !f(Pt{x, y}, v) {
				return
			}
		}
	}
}

// Size returns the width of the widest row and the number of rows.
func (g Dense[T]) Size() Pt {
	w := 0
	for _, row := range g {
		w = max(w, len(row))
	}
	return Pt{w, len(g)}
}

func (g Dense[T]) Clone() Dense[T] {
	out := make(Dense[T], len(g))
	for y, row := range g {
		out[y] = append([]T(nil), row...)
	}
	return out
}

// Equal reports whether g and o have the same shape and cells.
func Equal[T comparable](g, o Dense[T]) bool {
	if len(g) != len(o) {
		return false
	}
	for y := range g {
		if len(g[y]) != len(o[y]) {
			return false
		}
		for x := range g[y] {
			if g[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

var hashers = map[reflect.Type]any{} // map[reflect.Type]func(*Dense[T]) deephash.Sum

// Hash returns a structural hash of the grid, suitable for spotting
// repeated states.
func (g Dense[T]) Hash() deephash.Sum {
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Dense[T]]()
		hashers[rt] = h
	}
	return h.(func(*Dense[T]) deephash.Sum)(&g)
}

// String renders the grid one row per line, formatting each cell with
// %c for bytes and runes and %v otherwise.
func (g Dense[T]) String() string {
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			writeCell(&sb, v)
		}
	}
	return sb.String()
}

func writeCell(sb *strings.Builder, v any) {
	switch c := v.(type) {
	case byte:
		sb.WriteByte(c)
	case rune:
		sb.WriteRune(c)
	case bool:
		if c {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('.')
		}
	default:
		fmt.Fprint(sb, c)
	}
}

// Heading is a point and a direction.
type Heading struct {
	Pt  Pt
	Dir Direction
}

// Move steps h one cell forward. It returns false if that leaves the grid.
func (g Dense[T]) Move(h Heading) (Heading, bool) {
	h.Pt = h.Pt.Add(h.Dir.Vec())
	if !g.In(h.Pt) {
		return Heading{}, false
	}
	return h, true
}

// EdgeHeadings returns a heading for every border cell pointing into the
// grid.
func (g Dense[T]) EdgeHeadings() []Heading {
	size := g.Size()
	var hs []Heading
	for x := 0; x < size.X; x++ {
		hs = append(hs,
			Heading{Pt: Pt{x, 0}, Dir: Down},
			Heading{Pt: Pt{x, size.Y - 1}, Dir: Up})
	}
	for y := 0; y < size.Y; y++ {
		hs = append(hs,
			Heading{Pt: Pt{0, y}, Dir: Right},
			Heading{Pt: Pt{size.X - 1, y}, Dir: Left})
	}
	return hs
}
