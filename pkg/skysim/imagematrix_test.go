package skysim

import (
	"context"
	"fmt"
	"testing"

	"github.com/mdouchement/hdr/hdrcolor"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/abworrall/skysim/pkg/catalog"
	"github.com/abworrall/skysim/pkg/metrics"
)

func testDerived(t *testing.T, duration string) Derived {
	t.Helper()
	c := testConfig()
	c.Duration = duration
	c.Interval = "10m"
	d, err := c.Derive()
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}
	return d
}

// testStars puts a little cluster of stars around every frame's pointing.
func testStars(d Derived) catalog.Table {
	offsets := [][2]float64{{0, 0}, {1, 1}, {-2, 1}, {3, -2}}
	stars := catalog.Table{}
	for i, p := range d.Pointings {
		for j, o := range offsets {
			stars = append(stars, catalog.Record{
				ID:           fmt.Sprintf("s%d-%d", i, j),
				RA:           p.RADeg + o[0],
				Dec:          p.DecDeg + o[1],
				Magnitude:    float64(j + 1),
				SpectralType: "G",
			})
		}
	}
	return stars
}

func noPlanets(n int) []catalog.Table {
	return make([]catalog.Table, n)
}

func TestCreateImageMatrix(t *testing.T) {
	d := testDerived(t, "30m")
	before := testutil.ToFloat64(metrics.FramesRendered)
	m, err := CreateImageMatrix(context.Background(), d, noPlanets(d.Frames), testStars(d))
	if err != nil {
		t.Fatalf("CreateImageMatrix: %v", err)
	}
	if got := testutil.ToFloat64(metrics.FramesRendered) - before; got != 3 {
		t.Errorf("frames rendered delta = %v, want 3", got)
	}

	f, rows, cols, ch := m.Shape()
	if f != 3 || rows != 32 || cols != 32 || ch != 3 || len(m.Values) != 3*32*32*3 {
		t.Fatalf("shape = (%d,%d,%d,%d), %d values", f, rows, cols, ch, len(m.Values))
	}

	for frame := 0; frame < m.Frames; frame++ {
		max := 0.0
		for row := 0; row < m.Pixels; row++ {
			for col := 0; col < m.Pixels; col++ {
				for c := 0; c < 3; c++ {
					v := m.At(frame, row, col, c)
					if v < 0 || v > 1 {
						t.Fatalf("value %v out of [0,1]", v)
					}
					if v > max {
						max = v
					}
				}
			}
		}
		if max == 0 {
			t.Errorf("frame %d is empty", frame)
		}
	}
}

func TestParallelEqualsSequential(t *testing.T) {
	d := testDerived(t, "1h")
	stars := testStars(d)
	planets := noPlanets(d.Frames)

	// Sequential reference, one frame after the other
	buffers := make([]FrameBuffer, d.Frames)
	for i := range buffers {
		buffers[i] = NewFrameBuffer(d.ImagePixels)
		FillFrameBackground(&buffers[i], d.BackgroundAt(i))
		table, err := PrepareObjectTable(FrameInputs{
			Index:         i,
			MaxMagnitude:  d.ThresholdAt(i),
			Pointing:      d.Pointings[i],
			FieldOfView:   d.FieldOfView,
			Stars:         stars,
			Planets:       planets[i],
			ObjectColours: d.ObjectColours,
		})
		if err != nil {
			t.Fatal(err)
		}
		_, buffers[i] = FillFrameObjects(FrameTask{
			Index: i, Buffer: buffers[i], Objects: table,
			Projection: d.Projections[i], Falloff: d.Falloff, Blend: d.Blend,
		})
	}
	want := NewImageMatrix(buffers, d.ImagePixels)

	for _, workers := range []int{1, 4, 16} {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			dw := d
			dw.Workers = workers
			got, err := CreateImageMatrix(context.Background(), dw, planets, stars)
			if err != nil {
				t.Fatalf("CreateImageMatrix: %v", err)
			}
			if len(got.Values) != len(want.Values) {
				t.Fatalf("%d values, want %d", len(got.Values), len(want.Values))
			}
			for i := range want.Values {
				if got.Values[i] != want.Values[i] {
					t.Fatalf("value %d = %v, want %v", i, got.Values[i], want.Values[i])
				}
			}
		})
	}
}

func TestCreateImageMatrixFailFast(t *testing.T) {
	d := testDerived(t, "1h")

	tests := []struct {
		name    string
		compose Compositor
	}{
		{"panic", func(task FrameTask) (int, FrameBuffer) {
			if task.Index == 2 {
				panic("bad frame")
			}
			return FillFrameObjects(task)
		}},
		{"wrong index", func(task FrameTask) (int, FrameBuffer) {
			_, fb := FillFrameObjects(task)
			return task.Index + 100, fb
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := createImageMatrix(context.Background(), d, noPlanets(d.Frames), testStars(d), tt.compose)
			if err == nil || m != nil {
				t.Errorf("got (%v, %v), want no matrix and an error", m, err)
			}
		})
	}
}

func TestCreateImageMatrixCancelled(t *testing.T) {
	d := testDerived(t, "30m")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if m, err := CreateImageMatrix(ctx, d, noPlanets(d.Frames), testStars(d)); err == nil || m != nil {
		t.Errorf("got (%v, %v), want no matrix and an error", m, err)
	}
}

func TestCreateImageMatrixNothingVisible(t *testing.T) {
	c := testConfig()
	c.ColourValues = []interface{}{"#336699"}
	c.MagnitudeValues = []float64{-10}
	d, err := c.Derive()
	if err != nil {
		t.Fatal(err)
	}

	before := testutil.ToFloat64(metrics.FramesRendered)
	m, err := CreateImageMatrix(context.Background(), d, noPlanets(d.Frames), testStars(d))
	if err != nil {
		t.Fatalf("CreateImageMatrix: %v", err)
	}
	if got := testutil.ToFloat64(metrics.FramesRendered) - before; got != float64(d.Frames) {
		t.Errorf("empty frames not counted: delta = %v, want %d", got, d.Frames)
	}
	sky := d.BackgroundAt(0)
	for row := 0; row < m.Pixels; row++ {
		for col := 0; col < m.Pixels; col++ {
			if m.At(0, row, col, 0) != sky.R || m.At(0, row, col, 2) != sky.B {
				t.Fatalf("pixel (%d,%d) is not sky", row, col)
			}
		}
	}
}

func TestCreateImageMatrixPlanetMismatch(t *testing.T) {
	d := testDerived(t, "30m")
	if _, err := CreateImageMatrix(context.Background(), d, noPlanets(1), nil); err == nil {
		t.Errorf("expected an error for too few planet tables")
	}
}

func TestNewImageMatrixFlipsColumns(t *testing.T) {
	fb := NewFrameBuffer(4)
	fb.SetRGB(0, 0, hdrcolor.RGB{R: 1})
	fb.SetRGB(2, 1, hdrcolor.RGB{G: 1})

	m := NewImageMatrix([]FrameBuffer{fb}, 4)
	if m.At(0, 0, 3, 0) != 1 || m.At(0, 0, 0, 0) != 0 {
		t.Errorf("red pixel not flipped to the last column")
	}
	if m.At(0, 2, 2, 1) != 1 {
		t.Errorf("green pixel not at (2,2)")
	}

	// Row 0 is the bottom of the sky, so it is the bottom of the image
	img := NewFrameImage(m, 0)
	if got := img.RGB(3, 3); got.R != 1 {
		t.Errorf("image pixel (3,3) = %v, want red", got)
	}
	if got := img.RGB(9, 9); got != (hdrcolor.RGB{}) {
		t.Errorf("out of bounds pixel = %v, want black", got)
	}
}
