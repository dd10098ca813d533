package placement

import (
	"math/rand"
	"testing"
)

var popup = Size{Width: 194, Height: 170}

func rawPolicy() Policy {
	p := DefaultPolicy()
	p.NoClamp = true
	return p
}

func TestComputeOffset_Rules(t *testing.T) {
	surface := Rect{X: 20, Y: 40, Width: 400, Height: 60}
	cases := []struct {
		name     string
		cursor   Rect
		viewport Rect
		want     Offset
	}{
		{
			name:     "below caret, centered",
			cursor:   Rect{X: 100, Y: 50},
			viewport: Rect{Width: 1000, Height: 800},
			want:     Offset{DX: -23, DY: 39},
		},
		{
			name:     "flip left near right edge",
			cursor:   Rect{X: 900, Y: 50},
			viewport: Rect{Width: 1000, Height: 800},
			want:     Offset{DX: 583, DY: 39},
		},
		{
			name:     "above caret near bottom edge",
			cursor:   Rect{X: 100, Y: 200},
			viewport: Rect{Width: 1000, Height: 300},
			want:     Offset{DX: -23, DY: -28},
		},
		{
			name:     "top placement anchors on caret line",
			cursor:   Rect{X: 100, Y: 50},
			viewport: Rect{Width: 1000, Height: 200},
			want:     Offset{DX: -23, DY: 10},
		},
	}

	for _, tc := range cases {
		got := ComputeOffset(Input{Cursor: tc.cursor, Surface: surface, Viewport: tc.viewport, Overlay: popup}, rawPolicy())
		if got != tc.want {
			t.Fatalf("%s: got %+v, want %+v", tc.name, got, tc.want)
		}
	}
}

func TestOffset_ApplyLeftAlignsWithCaret(t *testing.T) {
	in := Input{
		Cursor:   Rect{X: 100, Y: 50},
		Surface:  Rect{X: 20, Y: 40, Width: 400, Height: 60},
		Viewport: Rect{Width: 1000, Height: 800},
		Overlay:  popup,
	}
	got := ComputeOffset(in, DefaultPolicy())
	if want := (Offset{DX: -23, DY: 39}); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if p := got.Apply(in.Surface, in.Overlay); p.X != 100 || p.Y != 79 {
		t.Fatalf("absolute=%+v, want (100,79)", p)
	}
}

func TestComputeOffset_ClampsIntoViewport(t *testing.T) {
	in := Input{
		Cursor:   Rect{X: 100, Y: 50},
		Surface:  Rect{X: 0, Y: 40, Width: 200, Height: 60},
		Viewport: Rect{Width: 200, Height: 800},
		Overlay:  popup,
	}
	// The flip puts the overlay at x=-94; the clamp pulls it back to 0.
	got := ComputeOffset(in, DefaultPolicy())
	if want := (Offset{DX: -3, DY: 39}); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	if p := got.Apply(in.Surface, in.Overlay); p.X != 0 || p.Y != 79 {
		t.Fatalf("absolute=%+v, want (0,79)", p)
	}
}

func TestComputeOffset_NeverLeavesViewport(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		v := Rect{X: 0, Y: 0, Width: 200 + rng.Float64()*1800, Height: 200 + rng.Float64()*1000}
		s := Rect{
			X:      rng.Float64() * v.Width,
			Y:      rng.Float64() * v.Height,
			Width:  rng.Float64() * v.Width,
			Height: 20 + rng.Float64()*200,
		}
		c := Rect{X: s.X + rng.Float64()*s.Width, Y: s.Y + rng.Float64()*s.Height}
		in := Input{Cursor: c, Surface: s, Viewport: v, Overlay: popup}

		o := ComputeOffset(in, DefaultPolicy())
		p := o.Apply(s, popup)
		const eps = 1e-9
		if p.X < v.X-eps || p.Y < v.Y-eps || p.X+popup.Width > v.Right()+eps || p.Y+popup.Height > v.Bottom()+eps {
			t.Fatalf("case %d: overlay at %+v leaves viewport %+v (input %+v)", i, p, v, in)
		}
	}
}

func TestComputeOffset_OversizedOverlayKeepsRuleOutput(t *testing.T) {
	in := Input{
		Cursor:   Rect{X: 10, Y: 10},
		Surface:  Rect{X: 0, Y: 0, Width: 50, Height: 20},
		Viewport: Rect{Width: 100, Height: 100},
		Overlay:  popup,
	}
	if got, want := ComputeOffset(in, DefaultPolicy()), ComputeOffset(in, rawPolicy()); got != want {
		t.Fatalf("got %+v, want rule output %+v", got, want)
	}
}

func TestCellPolicy_Round(t *testing.T) {
	in := Input{
		Cursor:   Rect{X: 12, Y: 3},
		Surface:  Rect{X: 0, Y: 0, Width: 60, Height: 6},
		Viewport: Rect{Width: 80, Height: 24},
		Overlay:  Size{Width: 28, Height: 8},
	}
	o := ComputeOffset(in, CellPolicy())
	dx, dy := o.Round()
	// dx = 12 - (30 - 14) = -4; dy = 3 - 1 + 1.5 = 3.5
	if dx != -4 || dy != 4 {
		t.Fatalf("cell offset=(%d,%d), want (-4,4)", dx, dy)
	}
	// The popup starts at the caret column, one row below it.
	if p := o.Apply(in.Surface, in.Overlay); p.X != 12 || p.Y != 3.5 {
		t.Fatalf("absolute=%+v, want (12,3.5)", p)
	}
}
