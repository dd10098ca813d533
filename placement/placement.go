// Package placement computes where an anchored overlay (the mention popup)
// goes relative to the text surface, given the caret geometry and the
// viewport bounds.
package placement

import "math"

// Point is a position in viewport coordinates.
type Point struct {
	X, Y float64
}

// Size is an overlay size.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle in viewport coordinates.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Input is the geometry the offset is computed from.
type Input struct {
	Cursor   Rect // caret box
	Surface  Rect // text surface bounding box
	Viewport Rect
	Overlay  Size
}

// Offset translates the overlay from its anchor, so it stays correct when
// the surface scrolls or moves.
type Offset struct {
	DX, DY float64
}

// Anchor is the untranslated top-left corner of an overlay of size o
// attached to surface r: horizontally centered on r, level with its top.
func Anchor(r Rect, o Size) Point {
	return Point{X: r.X + r.Width/2 - o.Width/2, Y: r.Y}
}

// Apply returns the top-left corner of an overlay of the given size attached to a
// surface at r.
func (o Offset) Apply(r Rect, size Size) Point {
	a := Anchor(r, size)
	return Point{X: a.X + o.DX, Y: a.Y + o.DY}
}

// Policy holds the tuning constants of the placement rules. The defaults
// were tuned against one renderer; other renderers should measure their own.
type Policy struct {
	// LineHeight is the height of one text line.
	LineHeight float64
	// RightSlack lets the overlay overhang the right edge by this much
	// before it flips to the left of the caret.
	RightSlack float64
	// BottomSlack is the allowance used when checking whether the overlay
	// fits below the surface's top edge.
	BottomSlack float64
	// Margin is the overlay's outer bottom margin.
	Margin float64
	// NoClamp disables the final containment step and returns the raw rule
	// output.
	NoClamp bool
}

// DefaultPolicy returns the pixel constants of a 20px line-height surface.
func DefaultPolicy() Policy {
	return Policy{LineHeight: 20, RightSlack: 10, BottomSlack: 2, Margin: 8}
}

// CellPolicy returns constants for terminal cell geometry.
func CellPolicy() Policy {
	return Policy{LineHeight: 1, RightSlack: 1}
}

func (p Policy) normalize() Policy {
	if p.LineHeight <= 0 {
		p.LineHeight = DefaultPolicy().LineHeight
	}
	return p
}

// ComputeOffset translates the overlay from its anchor to one line below
// the caret, left-aligned with it. It flips left when
// the overlay would overhang the viewport's right edge, and moves above the
// caret when it would overhang the bottom.
//
// Unless p.NoClamp is set, the result is finally pulled back inside the
// viewport on every axis where the overlay fits.
func ComputeOffset(in Input, p Policy) Offset {
	p = p.normalize()
	c, s, v, o := in.Cursor, in.Surface, in.Viewport, in.Overlay

	dx := (c.X - s.X) - (s.Width/2 - o.Width/2)
	dy := (c.Y - s.Y) - 1 + p.LineHeight*1.5

	if c.X+o.Width-p.RightSlack > v.Right() {
		dx -= o.Width
	}

	// Not even the surface's top edge leaves room below it: the popup is
	// flipped to top placement and the offset anchors on the caret line.
	placedTop := s.Y+o.Height+p.BottomSlack > v.Bottom()
	if placedTop {
		dy = c.Y - s.Y
	}
	if !placedTop && c.Y+o.Height+p.Margin+p.LineHeight*1.5 > v.Bottom() {
		dy = (c.Y - s.Y) - (o.Height + p.Margin) - p.LineHeight/2
	}

	out := Offset{DX: dx, DY: dy}
	if p.NoClamp {
		return out
	}
	return clamp(out, in)
}

func clamp(o Offset, in Input) Offset {
	v, size := in.Viewport, in.Overlay
	a := Anchor(in.Surface, size)
	if size.Width <= v.Width {
		x := clampFloat(a.X+o.DX, v.X, v.Right()-size.Width)
		o.DX = x - a.X
	}
	if size.Height <= v.Height {
		y := clampFloat(a.Y+o.DY, v.Y, v.Bottom()-size.Height)
		o.DY = y - a.Y
	}
	return o
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

// Round returns the offset rounded to whole units, for cell grids.
func (o Offset) Round() (dx, dy int) {
	return int(math.Round(o.DX)), int(math.Round(o.DY))
}
