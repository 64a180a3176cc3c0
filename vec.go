package aocgrid

import (
	"cmp"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

type Pt3[T constraints.Signed] struct {
	X, Y, Z T
}

type Pt4[T constraints.Signed] struct {
	X, Y, Z, W T
}

type Pt3Int = Pt3[int]
type Pt4Int = Pt4[int]

// Unit vectors. Y grows downward, so North is (0,-1).
var (
	North     = Pt{0, -1}
	East      = Pt{1, 0}
	South     = Pt{0, 1}
	West      = Pt{-1, 0}
	NorthEast = North.Add(East)
	SouthEast = South.Add(East)
	SouthWest = South.Add(West)
	NorthWest = North.Add(West)
)

// Dirs4 are the cardinal directions, clockwise from North.
var Dirs4 = [4]Pt{North, East, South, West}

// Dirs8 are the cardinal and diagonal directions, clockwise from North.
var Dirs8 = [8]Pt{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// DirectionNames maps the spellings that show up in puzzle input to unit
// vectors. Keys are upper case; see ParseDirection.
var DirectionNames = map[string]Pt{
	"N": North, "NORTH": North, "U": North, "UP": North, "^": North,
	"E": East, "EAST": East, "R": East, "RIGHT": East, ">": East,
	"S": South, "SOUTH": South, "D": South, "DOWN": South, "V": South,
	"W": West, "WEST": West, "L": West, "LEFT": West, "<": West,
	"NE": NorthEast, "NORTHEAST": NorthEast,
	"SE": SouthEast, "SOUTHEAST": SouthEast,
	"SW": SouthWest, "SOUTHWEST": SouthWest,
	"NW": NorthWest, "NORTHWEST": NorthWest,
}

// ParseDirection looks s up in DirectionNames, ignoring case and
// surrounding whitespace.
func ParseDirection(s string) (Pt, error) {
	d, ok := DirectionNames[strings.ToUpper(strings.TrimSpace(s))]
	if !ok {
		return Pt{}, errors.Wrapf(ErrParse, "unknown direction %q", s)
	}
	return d, nil
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X + q.X, p.Y + q.Y} }
func (p Pt2[T]) Sub(q Pt2[T]) Pt2[T] { return Pt2[T]{p.X - q.X, p.Y - q.Y} }
func (p Pt2[T]) Mul(k T) Pt2[T]      { return Pt2[T]{p.X * k, p.Y * k} }
func (p Pt2[T]) Neg() Pt2[T]         { return Pt2[T]{-p.X, -p.Y} }

// RotateCW rotates p by 90° clockwise around the origin.
func (p Pt2[T]) RotateCW() Pt2[T] { return Pt2[T]{-p.Y, p.X} }

// RotateCCW rotates p by 90° counter-clockwise around the origin.
func (p Pt2[T]) RotateCCW() Pt2[T] { return Pt2[T]{p.Y, -p.X} }

// Rotate rotates p by 90°·k clockwise. Negative k rotates counter-clockwise.
func (p Pt2[T]) Rotate(k int) Pt2[T] {
	switch ((k % 4) + 4) % 4 {
	case 1:
		return p.RotateCW()
	case 2:
		return p.Neg()
	case 3:
		return p.RotateCCW()
	}
	return p
}

// Compare orders points by X, then Y.
func (p Pt2[T]) Compare(q Pt2[T]) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, q.Y)
}

func (p Pt2[T]) Less(q Pt2[T]) bool { return p.Compare(q) < 0 }

// sortReadingOrder sorts pts top to bottom, then left to right.
func sortReadingOrder(pts []Pt) {
	slices.SortFunc(pts, func(a, b Pt) int {
		if c := cmp.Compare(a.Y, b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

// ChebyshevDist returns the number of king moves between a and b.
func (a Pt2[T]) ChebyshevDist(b Pt2[T]) T {
	return max(AbsDiff(a.X, b.X), AbsDiff(a.Y, b.Y))
}

// Toward returns a point moving from p to b in max 1 step in the X
// and/or Y direction.
func (p Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p1 := p
	if b.X < p.X {
		p1.X--
	} else if b.X > p.X {
		p1.X++
	}
	if b.Y < p.Y {
		p1.Y--
	} else if b.Y > p.Y {
		p1.Y++
	}
	return p1
}

// Neighbors returns the 4 or 8 points around p, clockwise from the one
// to the north.
func (p Pt2[T]) Neighbors(conn Conn) []Pt2[T] {
	dirs := Dirs4[:]
	if conn == Conn8 {
		dirs = Dirs8[:]
	}
	out := make([]Pt2[T], len(dirs))
	for i, d := range dirs {
		out[i] = Pt2[T]{p.X + T(d.X), p.Y + T(d.Y)}
	}
	return out
}

func (p Pt3[T]) Add(q Pt3[T]) Pt3[T] { return Pt3[T]{p.X + q.X, p.Y + q.Y, p.Z + q.Z} }
func (p Pt3[T]) Sub(q Pt3[T]) Pt3[T] { return Pt3[T]{p.X - q.X, p.Y - q.Y, p.Z - q.Z} }

func (a Pt3[T]) MDist(b Pt3[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y) + AbsDiff(a.Z, b.Z)
}

func (p Pt4[T]) Add(q Pt4[T]) Pt4[T] { return Pt4[T]{p.X + q.X, p.Y + q.Y, p.Z + q.Z, p.W + q.W} }
func (p Pt4[T]) Sub(q Pt4[T]) Pt4[T] { return Pt4[T]{p.X - q.X, p.Y - q.Y, p.Z - q.Z, p.W - q.W} }

func (a Pt4[T]) MDist(b Pt4[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y) + AbsDiff(a.Z, b.Z) + AbsDiff(a.W, b.W)
}

// Direction is one of the four cardinal headings.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// Vec returns the unit vector for d.
func (d Direction) Vec() Pt {
	return Dirs4[d&3]
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

// Segment is a line segment between two points.
type Segment struct {
	A, B Pt
}

// StandardizePt wraps p into the rectangle [0,size).
func StandardizePt(p, size Pt) Pt {
	if p.X < 0 || p.Y < 0 || p.X >= size.X || p.Y >= size.Y {
		p.X = p.X % size.X
		p.Y = p.Y % size.Y
		if p.X < 0 {
			p.X += size.X
		}
		if p.Y < 0 {
			p.Y += size.Y
		}
	}
	return p
}
