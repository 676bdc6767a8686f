package pipeline

import (
	"errors"
	"testing"

	"github.com/gogpu/aadraw"
)

func samePixmaps(t *testing.T, got, want *aadraw.Pixmap) {
	t.Helper()
	for y := range want.Height() {
		for x := range want.Width() {
			if g, w := got.GetPixel(x, y), want.GetPixel(x, y); g != w {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, g, w)
			}
		}
	}
}

func TestCircleForward(t *testing.T) {
	const ppi = 96
	center := aadraw.Pt(5, 4)
	for _, mode := range []aadraw.AntiAlias{aadraw.AntiAliasOff, aadraw.AntiAliasFast, aadraw.AntiAliasAccurate} {
		t.Run(mode.String(), func(t *testing.T) {
			c := NewCanvas(testImage(40, 40))
			u := NewCircle(center, 2.5, aadraw.Red, WithPPI(ppi), WithAntiAlias(mode), WithRoundMode(aadraw.RoundFloor))
			if err := u.Forward(c); err != nil {
				t.Fatalf("Forward() error = %v", err)
			}

			want := aadraw.FromImage(testImage(40, 40))
			px, err := aadraw.PosMMToPixel(center, ppi, aadraw.RoundFloor)
			if err != nil {
				t.Fatal(err)
			}
			if err := aadraw.DrawCircle(want, px, aadraw.MMToPixel(2.5, ppi), aadraw.Red, mode); err != nil {
				t.Fatal(err)
			}
			samePixmaps(t, c.Current(), want)
		})
	}
}

func TestLineForward(t *testing.T) {
	const ppi = 150
	from, to := aadraw.Pt(1, 1.5), aadraw.Pt(6, 4)
	c := NewCanvas(testImage(40, 30))
	if err := NewLine(from, to, 0.4, aadraw.Blue, WithPPI(ppi)).Forward(c); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	want := aadraw.FromImage(testImage(40, 30))
	p0, _ := aadraw.PosMMToPixel(from, ppi, aadraw.RoundNone)
	p1, _ := aadraw.PosMMToPixel(to, ppi, aadraw.RoundNone)
	s := aadraw.Segment{P0: p0, P1: p1}
	if err := aadraw.DrawLine(want, s, aadraw.MMToPixel(0.4, ppi), aadraw.Blue, aadraw.AntiAliasAccurate); err != nil {
		t.Fatal(err)
	}
	samePixmaps(t, c.Current(), want)
}

func TestShapeConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		unit Unit
	}{
		{"circle zero ppi", NewCircle(aadraw.Pt(1, 1), 1, aadraw.Red, WithPPI(0))},
		{"circle bad round", NewCircle(aadraw.Pt(1, 1), 1, aadraw.Red, WithRoundMode(aadraw.RoundMode(9)))},
		{"circle bad mode", NewCircle(aadraw.Pt(1, 1), 1, aadraw.Red, WithAntiAlias(aadraw.AntiAlias(9)))},
		{"line negative ppi", NewLine(aadraw.Pt(1, 1), aadraw.Pt(2, 2), 1, aadraw.Red, WithPPI(-5))},
		{"line fast", NewLine(aadraw.Pt(1, 1), aadraw.Pt(2, 2), 1, aadraw.Red, WithAntiAlias(aadraw.AntiAliasFast))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(testImage(8, 8))
			if err := tt.unit.Forward(c); !errors.Is(err, aadraw.ErrInvalidOption) {
				t.Errorf("Forward() error = %v, want ErrInvalidOption", err)
			}
			samePixmaps(t, c.Current(), aadraw.FromImage(testImage(8, 8)))
		})
	}
}

func TestShapeRecipe(t *testing.T) {
	u := NewCircle(aadraw.Pt(1, 2), 0.5, aadraw.Red, WithPPI(72), WithAntiAlias(aadraw.AntiAliasFast))
	want := []string{
		"center=(1mm, 2mm), radius=0.5mm, color=#ff0000ff",
		"ppi=72, antialias=fast, round=none",
	}
	got := u.Recipe()
	if len(got) != len(want) {
		t.Fatalf("Recipe() = %q", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Recipe()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if u.Name() != "Circle" {
		t.Errorf("default Name() = %q, want Circle", u.Name())
	}
}

func TestShapeNilColor(t *testing.T) {
	for _, u := range []Unit{
		NewCircle(aadraw.Pt(1, 1), 1, nil),
		NewLine(aadraw.Pt(1, 1), aadraw.Pt(2, 2), 1, nil),
	} {
		c := NewCanvas(testImage(8, 8))
		if err := u.Forward(c); !errors.Is(err, aadraw.ErrInvalidColor) {
			t.Errorf("%s: Forward() error = %v, want ErrInvalidColor", u.Name(), err)
		}
		samePixmaps(t, c.Current(), aadraw.FromImage(testImage(8, 8)))
	}
}
