package aocgrid

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// AbsDiff returns the absolute difference between x and y.
func AbsDiff[T Number](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// LCM returns the least common multiple of the integers. It panics on
// overflow.
func LCM(integers ...int) int {
	if len(integers) == 0 {
		panic("LCM: no integers")
	}
	result := integers[0]
	for _, v := range integers[1:] {
		result = MulChecked(result/GCD(result, v), v)
	}
	return result
}

// AddChecked returns a+b, panicking with ErrOutOfRange on overflow.
func AddChecked(a, b int) int {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		panic(errors.Wrapf(ErrOutOfRange, "%d + %d overflows", a, b))
	}
	return s
}

// MulChecked returns a*b, panicking with ErrOutOfRange on overflow.
func MulChecked(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt) || (b == -1 && a == math.MinInt) {
		panic(errors.Wrapf(ErrOutOfRange, "%d * %d overflows", a, b))
	}
	return p
}

// PolygonArea returns the area of the closed polygon pts (first point
// repeated at the end) using the shoelace formula.
func PolygonArea(pts []Pt) int {
	var area int
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		area = AddChecked(area, a.X*b.Y-a.Y*b.X)
	}
	if area < 0 {
		area = -area
	}
	return area / 2
}

// PolygonPerimeter returns the perimeter of the polygon defined by the points.
func PolygonPerimeter(pts []Pt) int {
	var perimeter int
	for i := 1; i < len(pts); i++ {
		perimeter += pts[i-1].MDist(pts[i])
	}
	return perimeter
}

// PolygonBoundedPoints returns the number of lattice points inside or on
// the boundary of the axis-aligned polygon pts.
func PolygonBoundedPoints(pts []Pt) int {
	// Pick's theorem: A = i + b/2 - 1, so i + b = A + b/2 + 1.
	return PolygonArea(pts) + PolygonPerimeter(pts)/2 + 1
}

func mustNonNegative(c int64) {
	if c < 0 {
		panic(errors.Wrapf(ErrOutOfRange, "negative edge cost %d", c))
	}
}
