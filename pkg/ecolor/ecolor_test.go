package ecolor

import (
	"math"
	"testing"

	"github.com/mdouchement/hdr/hdrcolor"
)

func near(a, b hdrcolor.RGB) bool {
	const tol = 1e-9
	return math.Abs(a.R-b.R) < tol && math.Abs(a.G-b.G) < tol && math.Abs(a.B-b.B) < tol
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want hdrcolor.RGB
	}{
		{"name", "white", hdrcolor.RGB{R: 1, G: 1, B: 1}},
		{"name mixed case", "Black", hdrcolor.RGB{}},
		{"hex", "#ff0000", hdrcolor.RGB{R: 1}},
		{"unit floats", []interface{}{0.5, 0.25, 1.0}, hdrcolor.RGB{R: 0.5, G: 0.25, B: 1}},
		{"byte ints", []interface{}{255, 0, 51}, hdrcolor.RGB{R: 1, G: 0, B: 0.2}},
		{"byte ints with alpha", []int{255, 255, 0, 255}, hdrcolor.RGB{R: 1, G: 1}},
		{"zero list stays unit scale", []float64{0, 0, 1}, hdrcolor.RGB{B: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%v) error: %v", tt.in, err)
			}
			if !near(got, tt.want) {
				t.Errorf("Parse(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []interface{}{"notacolour", "#zzzzzz", []int{1, 2}, []interface{}{"a", 1, 2}, 42, []int{300, 0, 0}} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%v) expected error", in)
		}
	}
}

func TestColorMapDayNight(t *testing.T) {
	black, _ := Parse("black")
	white, _ := Parse("white")

	// hours {0:0, 12:1, 24:0} over [black, white]
	cm, err := NewColorMap([]Stop{{0, black}, {0.5, white}, {1, black}})
	if err != nil {
		t.Fatalf("NewColorMap: %v", err)
	}

	tests := []struct {
		f    float64
		want hdrcolor.RGB
	}{
		{0, black},
		{1, black},
		{0.5, white},
		{0.25, hdrcolor.RGB{R: 0.5, G: 0.5, B: 0.5}},
		{-1, black},
		{2, black},
	}
	for _, tt := range tests {
		if got := cm.At(tt.f); !near(got, tt.want) {
			t.Errorf("At(%v) = %v, want %v", tt.f, got, tt.want)
		}
	}
}

func TestColorMapUnsortedStops(t *testing.T) {
	red := hdrcolor.RGB{R: 1}
	blue := hdrcolor.RGB{B: 1}
	cm, err := NewColorMap([]Stop{{1, blue}, {0, red}})
	if err != nil {
		t.Fatalf("NewColorMap: %v", err)
	}
	if got := cm.At(0.75); !near(got, hdrcolor.RGB{R: 0.25, B: 0.75}) {
		t.Errorf("At(0.75) = %v", got)
	}
	if _, err := NewColorMap(nil); err == nil {
		t.Errorf("expected error for empty stops")
	}
}

func TestBlends(t *testing.T) {
	bg := hdrcolor.RGB{R: 0.1, G: 0.1, B: 0.2}
	star := hdrcolor.RGB{R: 1, G: 0.9, B: 0.8}

	if got := Mix(bg, star, 0); !near(got, bg) {
		t.Errorf("Mix w=0 = %v, want %v", got, bg)
	}
	if got := Mix(bg, star, 1); !near(got, star) {
		t.Errorf("Mix w=1 = %v, want %v", got, star)
	}
	if got := Mix(bg, star, 0.5); Sum(got) <= Sum(bg) {
		t.Errorf("Mix toward brighter colour should raise the sum, got %v", got)
	}

	got := AddSaturate(hdrcolor.RGB{R: 0.9}, star, 0.5)
	if !near(got, hdrcolor.RGB{R: 1, G: 0.45, B: 0.4}) {
		t.Errorf("AddSaturate = %v", got)
	}
	if Hex(hdrcolor.RGB{R: 2}) != "#ff0000" {
		t.Errorf("Hex should clamp, got %s", Hex(hdrcolor.RGB{R: 2}))
	}
}
