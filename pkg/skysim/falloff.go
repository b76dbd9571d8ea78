package skysim

import(
	"fmt"
	"math"

	"github.com/abworrall/skysim/pkg/emath"
)

// An Offset is a step away from an object's pixel. Row is the first
// spatial axis of a frame, Col the second.
type Offset struct {
	Row, Col int
}

// Falloff describes how the light of a point source spreads over nearby
// pixels: a square mesh of offsets out to Radius on each axis, and the
// weight for each one, exp(-r²/σ²).
type Falloff struct {
	Sigma    float64
	Radius   int
	Offsets  []Offset
	Weights  []float64 // Same order as Offsets
}

// FalloffSigma is the standard deviation, in pixels, for light spreading
// over spreadDeg of sky: the spread radius sits at 3σ, and is doubled as
// it describes a diameter's worth of light.
func FalloffSigma(spreadDeg, degPerPixel float64) float64 {
	return 2.0 * ((spreadDeg / degPerPixel) / 3.0)
}

// NewFalloff builds the kernel, truncated at truncation*sigma pixels.
func NewFalloff(sigma, truncation float64) (Falloff, error) {
	if sigma <= 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return Falloff{}, fmt.Errorf("falloff: sigma must be positive, got %v", sigma)
	}
	if truncation <= 0 {
		return Falloff{}, fmt.Errorf("falloff: truncation must be positive, got %v", truncation)
	}

	radius := int(math.Ceil(truncation * sigma))
	f := Falloff{Sigma: sigma, Radius: radius}

	// Many mesh points share a radius; only compute each weight once
	byR2 := map[int]float64{}
	sigma2 := sigma * sigma

	for row := -radius; row <= radius; row++ {
		for col := -radius; col <= radius; col++ {
			r2 := row*row + col*col
			w, exists := byR2[r2]
			if !exists {
				w = math.Exp(-1 * float64(r2) / sigma2)
				byR2[r2] = w
			}
			f.Offsets = append(f.Offsets, Offset{row, col})
			f.Weights = append(f.Weights, w)
		}
	}

	return f, nil
}

// WeightAt returns the weight for an offset, or 0 if it is off the mesh.
func (f Falloff)WeightAt(row, col int) float64 {
	if row < -f.Radius || row > f.Radius || col < -f.Radius || col > f.Radius {
		return 0
	}
	side := 2*f.Radius + 1
	return f.Weights[(row+f.Radius)*side + (col+f.Radius)]
}

// AsGrid lays the weights out as a grid, for debugging.
func (f Falloff)AsGrid() emath.FloatGrid {
	side := 2*f.Radius + 1
	fg := emath.NewFloatGrid(side, side)
	for i, o := range f.Offsets {
		fg.Set(o.Col+f.Radius, o.Row+f.Radius, f.Weights[i])
	}
	return fg
}

func (f Falloff)String() string {
	return fmt.Sprintf("Falloff[sigma=%.3fpx, radius=%dpx, %d offsets]", f.Sigma, f.Radius, len(f.Offsets))
}
