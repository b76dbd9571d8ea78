package skysim

import (
	"math"
	"testing"
)

func TestFalloffScenario(t *testing.T) {
	f, err := NewFalloff(1, 10)
	if err != nil {
		t.Fatalf("NewFalloff: %v", err)
	}
	if f.Radius != 10 || len(f.Offsets) != 21*21 || len(f.Weights) != len(f.Offsets) {
		t.Fatalf("unexpected mesh: %s", f)
	}

	if got := f.WeightAt(0, 0); got != 1 {
		t.Errorf("w(0) = %v, want 1", got)
	}
	for _, off := range []Offset{{5, 0}, {0, 5}, {-5, 0}, {3, 4}, {-4, -3}} {
		if got := f.WeightAt(off.Row, off.Col); math.Abs(got-math.Exp(-25)) > 1e-20 {
			t.Errorf("w(%v) = %v, want exp(-25)", off, got)
		}
	}
	if f.WeightAt(11, 0) != 0 {
		t.Errorf("off-mesh weight should be 0")
	}
}

func TestFalloffSymmetry(t *testing.T) {
	f, err := NewFalloff(2.5, 3)
	if err != nil {
		t.Fatalf("NewFalloff: %v", err)
	}

	for i, o := range f.Offsets {
		w := f.Weights[i]
		for _, sym := range []Offset{{-o.Row, o.Col}, {o.Row, -o.Col}, {-o.Row, -o.Col}, {o.Col, o.Row}, {-o.Col, o.Row}} {
			if got := f.WeightAt(sym.Row, sym.Col); got != w {
				t.Fatalf("w(%v) = %v, but w(%v) = %v", sym, got, o, w)
			}
		}
	}
}

func TestFalloffMonotonic(t *testing.T) {
	f, err := NewFalloff(1.7, 4)
	if err != nil {
		t.Fatalf("NewFalloff: %v", err)
	}
	for i, a := range f.Offsets {
		for j, b := range f.Offsets {
			ra, rb := a.Row*a.Row+a.Col*a.Col, b.Row*b.Row+b.Col*b.Col
			if ra < rb && f.Weights[i] < f.Weights[j] {
				t.Fatalf("weight grows with distance: w(%v)=%v < w(%v)=%v", a, f.Weights[i], b, f.Weights[j])
			}
		}
	}
}

func TestFalloffSigma(t *testing.T) {
	if got := FalloffSigma(0.3, 0.1); math.Abs(got-2) > 1e-12 {
		t.Errorf("FalloffSigma = %v, want 2", got)
	}
}

func TestFalloffErrors(t *testing.T) {
	if _, err := NewFalloff(0, 3); err == nil {
		t.Errorf("expected error for zero sigma")
	}
	if _, err := NewFalloff(math.Inf(1), 3); err == nil {
		t.Errorf("expected error for infinite sigma")
	}
	if _, err := NewFalloff(1, 0); err == nil {
		t.Errorf("expected error for zero truncation")
	}
}

func TestFalloffAsGrid(t *testing.T) {
	f, _ := NewFalloff(1, 2)
	g := f.AsGrid()
	if g.Dx() != 5 || g.Dy() != 5 || g.Get(2, 2) != 1 {
		t.Errorf("AsGrid: %dx%d, centre %v", g.Dx(), g.Dy(), g.Get(2, 2))
	}
}
