package skysim

import(
	"fmt"
	"math"

	"github.com/mdouchement/hdr/hdrcolor"
	"gonum.org/v1/gonum/floats"

	"github.com/abworrall/skysim/pkg/astro"
	"github.com/abworrall/skysim/pkg/catalog"
	"github.com/abworrall/skysim/pkg/emath"
	"github.com/abworrall/skysim/pkg/metrics"
)

// The faintest visible object in a frame still gets this much of its
// colour.
const MinimumBrightness = 0.2

// Objects are kept if they are a little outside the field of view, so
// their light spread doesn't get visibly cut off at the edge.
const FieldOfViewBuffer = 1.01

// FilterObjectsBrightness keeps the records no fainter than maxMagnitude.
func FilterObjectsBrightness(t catalog.Table, maxMagnitude float64) catalog.Table {
	return t.Filter(func(r catalog.Record) bool { return r.Magnitude <= maxMagnitude })
}

// FilterObjectsFOV keeps the records within half the field of view (plus
// the buffer) of the pointing.
func FilterObjectsFOV(t catalog.Table, pointing astro.Equatorial, fovDeg float64) catalog.Table {
	limit := fovDeg / 2.0 * FieldOfViewBuffer
	return t.Filter(func(r catalog.Record) bool {
		return astro.Separation(pointing, astro.Equatorial{RADeg: r.RA, DecDeg: r.Dec}) <= limit
	})
}

func MagnitudeToFlux(m float64) float64 {
	return math.Pow(10, -1*m/2.5)
}

// LinearRescale maps vals linearly so that their min and max land on
// newMin and newMax. If all the values are the same, the range is taken
// to be 1 and everything lands on newMin.
func LinearRescale(vals []float64, newMin, newMax float64) []float64 {
	out := make([]float64, len(vals))
	if len(vals) == 0 {
		return out
	}

	oldMin, oldMax := floats.Min(vals), floats.Max(vals)
	oldRange := oldMax - oldMin
	if oldRange == 0 {
		oldRange = 1
	}

	for i, v := range vals {
		out[i] = (v-oldMin)/oldRange*(newMax-newMin) + newMin
	}
	return out
}

// ScaledBrightness sets Brightness on each record, from its magnitude,
// scaled across this table to [MinimumBrightness, 1].
func ScaledBrightness(t catalog.Table) catalog.Table {
	logBrightness := t.Magnitudes()
	for i, m := range logBrightness {
		logBrightness[i] = math.Log10(MagnitudeToFlux(m))
	}

	scaled := LinearRescale(logBrightness, MinimumBrightness, 1)

	out := t.Clone()
	for i := range out {
		out[i].Brightness = emath.Round(scaled[i], 5)
	}
	return out
}

// FrameInputs is everything table preparation needs for a single frame.
type FrameInputs struct {
	Index          int
	MaxMagnitude   float64
	Pointing       astro.Equatorial
	FieldOfView    float64
	Stars          catalog.Table
	Planets        catalog.Table
	ObjectColours  map[string]hdrcolor.RGB
}

// PrepareObjectTable merges, filters and colours the objects for one
// frame. An empty result means there is nothing to draw; that is the
// common case in daylight. The input tables are not modified.
func PrepareObjectTable(in FrameInputs) (catalog.Table, error) {
	all := catalog.Merge(in.Stars, in.Planets)

	t := FilterObjectsBrightness(all, in.MaxMagnitude)
	metrics.ObjectsFiltered.WithLabelValues(metrics.ReasonMagnitude).Add(float64(len(all) - len(t)))

	n := len(t)
	t = FilterObjectsFOV(t, in.Pointing, in.FieldOfView)
	metrics.ObjectsFiltered.WithLabelValues(metrics.ReasonFieldOfView).Add(float64(n - len(t)))

	if len(t) == 0 {
		return t, nil
	}

	t = ScaledBrightness(t)

	for i := range t {
		col, exists := in.ObjectColours[t[i].SpectralType]
		if !exists {
			return nil, fmt.Errorf("frame %d: no colour for object type '%s' (%s)", in.Index, t[i].SpectralType, t[i].Name)
		}
		t[i].RGB = col

		// Only position, brightness and colour are needed from here on
		t[i].Magnitude = 0
		t[i].SpectralType = ""
	}

	return t, nil
}
