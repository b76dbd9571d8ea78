package ecolor

import(
	"fmt"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mdouchement/hdr/hdrcolor"
)

// A Stop pins a colour to a position in [0,1].
type Stop struct {
	Pos    float64
	Colour hdrcolor.RGB
}

// ColorMap is a continuous colour ramp over [0,1], linearly
// interpolated in RGB between its stops. Positions outside the stops
// take the colour of the nearest end.
type ColorMap struct {
	pos    []float64
	cols   []colorful.Color
}

func NewColorMap(stops []Stop) (ColorMap, error) {
	if len(stops) == 0 {
		return ColorMap{}, fmt.Errorf("colormap: no stops")
	}

	sorted := append([]Stop{}, stops...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Pos < sorted[j].Pos })

	cm := ColorMap{}
	for _, s := range sorted {
		cm.pos = append(cm.pos, s.Pos)
		cm.cols = append(cm.cols, ToColorful(s.Colour))
	}
	return cm, nil
}

func (cm ColorMap)Len() int { return len(cm.pos) }

func (cm ColorMap)At(f float64) hdrcolor.RGB {
	n := len(cm.pos)
	if n == 0 {
		return hdrcolor.RGB{}
	}
	if f <= cm.pos[0] {
		return FromColorful(cm.cols[0])
	}
	if f >= cm.pos[n-1] {
		return FromColorful(cm.cols[n-1])
	}

	// First stop strictly beyond f; i >= 1 given the checks above
	i := sort.Search(n, func(i int) bool { return cm.pos[i] > f })
	lo, hi := cm.pos[i-1], cm.pos[i]
	t := (f - lo) / (hi - lo)
	return FromColorful(cm.cols[i-1].BlendRgb(cm.cols[i], t))
}

func (cm ColorMap)String() string {
	str := "ColorMap["
	for i := range cm.pos {
		str += fmt.Sprintf(" %.4f:%s", cm.pos[i], cm.cols[i].Hex())
	}
	return str + " ]"
}
