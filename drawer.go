package aocgrid

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
)

// Drawer renders grid snapshots, one frame per call. Terminal and bitmap
// back-ends live with the puzzle drivers that need them.
type Drawer[T any] interface {
	Draw(g Grid[T]) error
}

// NopDrawer discards every frame.
type NopDrawer[T any] struct{}

func (NopDrawer[T]) Draw(Grid[T]) error { return nil }

// TextDrawer writes each frame as text, one line per row followed by a
// blank line.
type TextDrawer[T any] struct {
	W io.Writer

	// Glyph renders a cell. If nil, bytes and runes print as
	// characters, bools as '#' and '.', and anything else with %v.
	Glyph func(T) string
	// Style, if set, styles each rendered cell.
	Style func(T) lipgloss.Style
	// Missing is printed for cells with no value. Defaults to ".".
	Missing string

	frames int
}

func (d *TextDrawer[T]) Draw(g Grid[T]) error {
	empty := true
	g.ForCells(func(Pt, T) bool {
		empty = false
		return false
	})
	var sb strings.Builder
	if !empty {
		lo, hi := g.Extents()
		for y := lo.Y; y <= hi.Y; y++ {
			for x := lo.X; x <= hi.X; x++ {
				sb.WriteString(d.cell(g, Pt{x, y}))
			}
			sb.WriteByte('\n')
		}
	}
	sb.WriteByte('\n')
	d.frames++
	_, err := io.WriteString(d.W, sb.String())
	return errors.Wrapf(err, "drawing frame %d", d.frames)
}

func (d *TextDrawer[T]) cell(g Grid[T], p Pt) string {
	v, ok := g.AtOk(p)
	if !ok {
		return Or(d.Missing, ".")
	}
	var s string
	if d.Glyph != nil {
		s = d.Glyph(v)
	} else {
		var sb strings.Builder
		writeCell(&sb, v)
		s = sb.String()
	}
	if d.Style != nil {
		s = d.Style(v).Render(s)
	}
	return s
}

// Frames returns the number of frames drawn so far.
func (d *TextDrawer[T]) Frames() int { return d.frames }
