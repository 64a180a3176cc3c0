package aocgrid

// Fill flood-fills the 4-connected region of cells equal to the value at
// origin with v and returns how many cells changed. It does nothing if
// origin holds no value or already holds v.
func Fill[T comparable](g Grid[T], origin Pt, v T) int {
	old, ok := g.AtOk(origin)
	if !ok || old == v {
		return 0
	}
	g.Set(origin, v)
	n := 1
	q := NewQueue(origin)
	q.While(func(p Pt) bool {
		for _, d := range Dirs4 {
			np := p.Add(d)
			if c, ok := g.AtOk(np); ok && c == old {
				g.Set(np, v)
				n++
				q.Push(np)
			}
		}
		return true
	})
	return n
}

// LinePoints returns the cells of the Bresenham line from a to b,
// endpoints included, in order from a. There are exactly
// max(|dx|,|dy|)+1 of them.
func LinePoints(a, b Pt) []Pt {
	dx := AbsDiff(a.X, b.X)
	dy := -AbsDiff(a.Y, b.Y)
	sx, sy := 1, 1
	if b.X < a.X {
		sx = -1
	}
	if b.Y < a.Y {
		sy = -1
	}
	out := make([]Pt, 0, max(dx, -dy)+1)
	err := dx + dy
	for p := a; ; {
		out = append(out, p)
		if p == b {
			return out
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			p.X += sx
		}
		if e2 <= dx {
			err += dx
			p.Y += sy
		}
	}
}

// Line writes v into every cell of the line from a to b. On sparse grids
// this inserts cells; dense grids drop the ones outside.
func Line[T any](g Grid[T], a, b Pt, v T) {
	for _, p := range LinePoints(a, b) {
		g.Set(p, v)
	}
}

// Blit copies every cell of src into dst, shifted by origin. Only stored
// cells of a sparse src are copied.
func Blit[T any](dst Grid[T], origin Pt, src Grid[T]) {
	src.ForCells(func(p Pt, v T) bool {
		dst.Set(origin.Add(p), v)
		return true
	})
}

// Count returns the number of cells for which pred is true.
func Count[T any](g Grid[T], pred func(T) bool) int {
	n := 0
	g.ForCells(func(_ Pt, v T) bool {
		if pred(v) {
			n++
		}
		return true
	})
	return n
}

// Find returns the first cell holding v, in row-major order.
func Find[T comparable](g Grid[T], v T) (Pt, bool) {
	var at Pt
	found := false
	g.ForCells(func(p Pt, c T) bool {
		if c == v {
			at, found = p, true
		}
		return !found
	})
	return at, found
}

// FindAll returns every cell holding v, in row-major order.
func FindAll[T comparable](g Grid[T], v T) []Pt {
	var out []Pt
	g.ForCells(func(p Pt, c T) bool {
		if c == v {
			out = append(out, p)
		}
		return true
	})
	return out
}
