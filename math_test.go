package aocgrid

import (
	"errors"
	"math"
	"testing"
)

func TestPolygonArea(t *testing.T) {
	tests := []struct {
		pts        []Pt
		want       int
		wantPoints int
	}{
		{
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 5, Y: 0},
				{X: 5, Y: 5},
				{X: 0, Y: 5},
				{X: 0, Y: 0},
			},
			want:       25,
			wantPoints: 36,
		},
		{
			// L shape, wound the other way.
			pts: []Pt{
				{X: 0, Y: 0},
				{X: 0, Y: 4},
				{X: 4, Y: 4},
				{X: 4, Y: 2},
				{X: 2, Y: 2},
				{X: 2, Y: 0},
				{X: 0, Y: 0},
			},
			want:       12,
			wantPoints: 21,
		},
	}

	for _, tt := range tests {
		if got := PolygonArea(tt.pts); got != tt.want {
			t.Errorf("PolygonArea(%v) = %v, want %v", tt.pts, got, tt.want)
		}
		if got := PolygonBoundedPoints(tt.pts); got != tt.wantPoints {
			t.Errorf("PolygonBoundedPoints(%v) = %v, want %v", tt.pts, got, tt.wantPoints)
		}
	}
}

func TestGCDLCM(t *testing.T) {
	tests := []struct {
		in      []int
		gcd     int
		lcm     int
		skipGCD bool
	}{
		{in: []int{12, 18}, gcd: 6, lcm: 36},
		{in: []int{-4, 6}, gcd: 2, lcm: -12},
		{in: []int{7, 13}, gcd: 1, lcm: 91},
		{in: []int{2, 3, 4}, lcm: 12, skipGCD: true},
	}
	for _, tt := range tests {
		if !tt.skipGCD {
			if got := GCD(tt.in[0], tt.in[1]); got != tt.gcd {
				t.Errorf("GCD(%v) = %v, want %v", tt.in, got, tt.gcd)
			}
		}
		if got := LCM(tt.in...); got != tt.lcm {
			t.Errorf("LCM(%v) = %v, want %v", tt.in, got, tt.lcm)
		}
	}
}

func TestCheckedOverflow(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"add", func() { AddChecked(math.MaxInt, 1) }},
		{"sub", func() { AddChecked(math.MinInt, -1) }},
		{"mul", func() { MulChecked(math.MaxInt/2+1, 2) }},
		{"neg", func() { MulChecked(math.MinInt, -1) }},
		{"lcm", func() { LCM(math.MaxInt-1, math.MaxInt-2) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				err, ok := r.(error)
				if !ok || !errors.Is(err, ErrOutOfRange) {
					t.Errorf("recovered %v, want ErrOutOfRange", r)
				}
			}()
			tt.f()
		})
	}
	if got := AddChecked(-3, 5); got != 2 {
		t.Errorf("AddChecked(-3, 5) = %v, want 2", got)
	}
	if got := MulChecked(-3, 5); got != -15 {
		t.Errorf("MulChecked(-3, 5) = %v, want -15", got)
	}
}

func TestSumAbsDiff(t *testing.T) {
	if got := Sum(1, 2, 3, 4); got != 10 {
		t.Errorf("Sum = %v, want 10", got)
	}
	if got := Sum(0.5, 0.25); got != 0.75 {
		t.Errorf("Sum = %v, want 0.75", got)
	}
	if got := AbsDiff(3, 10); got != 7 {
		t.Errorf("AbsDiff(3, 10) = %v, want 7", got)
	}
}
