package skysim

import(
	"fmt"
	"sort"
	"time"

	"gonum.org/v1/gonum/interp"

	"github.com/abworrall/skysim/pkg/ecolor"
)

const SecondsPerDay = 24 * 60 * 60

// MagnitudeLookup holds the faintest visible magnitude for each second of
// the day. Entry i corresponds to day fraction i/(SecondsPerDay-1), so
// the first and last entries sit exactly on midnight.
type MagnitudeLookup []float64

type controlPoint struct {
	dayFraction float64
	index       int
}

func sortedControlPoints(hourToIndex map[float64]int, nValues int) ([]controlPoint, error) {
	if len(hourToIndex) == 0 {
		return nil, fmt.Errorf("no control points")
	}
	pts := []controlPoint{}
	for hour, idx := range hourToIndex {
		if idx < 0 || idx >= nValues {
			return nil, fmt.Errorf("hour %v refers to value %d, but there are only %d values", hour, idx, nValues)
		}
		pts = append(pts, controlPoint{hour / 24.0, idx})
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].dayFraction < pts[j].dayFraction })
	return pts, nil
}

// NewMagnitudeLookup interpolates between the (hour -> value index)
// control points. Outside the control points the nearest end value is
// used; nothing is extrapolated.
func NewMagnitudeLookup(hourToIndex map[float64]int, values []float64) (MagnitudeLookup, error) {
	pts, err := sortedControlPoints(hourToIndex, len(values))
	if err != nil {
		return nil, fmt.Errorf("magnitude mapping: %v", err)
	}

	lookup := make(MagnitudeLookup, SecondsPerDay)

	if len(pts) == 1 {
		for i := range lookup {
			lookup[i] = values[pts[0].index]
		}
		return lookup, nil
	}

	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.dayFraction
		ys[i] = values[p.index]
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("magnitude mapping: %v", err)
	}

	for i := range lookup {
		lookup[i] = pl.Predict(float64(i) / float64(SecondsPerDay-1))
	}
	return lookup, nil
}

// At returns the threshold for the given number of seconds since midnight.
func (ml MagnitudeLookup)At(seconds float64) float64 {
	i := int(seconds)
	if i < 0 {
		i = 0
	} else if i >= len(ml) {
		i = len(ml) - 1
	}
	return ml[i]
}

// NewColourMapping builds the continuous background colour ramp over the
// day, from (hour -> colour index) control points.
func NewColourMapping(hourToIndex map[float64]int, values []interface{}) (ecolor.ColorMap, error) {
	pts, err := sortedControlPoints(hourToIndex, len(values))
	if err != nil {
		return ecolor.ColorMap{}, fmt.Errorf("colour mapping: %v", err)
	}

	stops := []ecolor.Stop{}
	for _, p := range pts {
		col, err := ecolor.Parse(values[p.index])
		if err != nil {
			return ecolor.ColorMap{}, fmt.Errorf("colour mapping: %v", err)
		}
		stops = append(stops, ecolor.Stop{Pos: p.dayFraction, Colour: col})
	}

	return ecolor.NewColorMap(stops)
}

// SecondsSinceMidnight of the wall clock time of t, in t's own location.
func SecondsSinceMidnight(t time.Time) float64 {
	return float64(t.Hour()*3600 + t.Minute()*60 + t.Second()) + float64(t.Nanosecond())/1e9
}

// DayFraction maps t onto [0,1).
func DayFraction(t time.Time) float64 {
	return SecondsSinceMidnight(t) / SecondsPerDay
}
