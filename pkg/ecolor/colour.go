package ecolor

import(
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mdouchement/hdr/hdrcolor"
	"golang.org/x/image/colornames"
)

// Parse turns a user-supplied colour into an RGB triple with channels
// in [0,1]. Accepted forms are a colour name ("navy"), a hex string
// ("#1a2b3c"), or a list of three or four numbers. A list with any
// value above 1 is taken to be on the 0-255 scale. Alpha is ignored.
func Parse(v interface{}) (hdrcolor.RGB, error) {
	switch val := v.(type) {
	case string:
		return ParseString(val)
	case hdrcolor.RGB:
		return val, nil
	case []float64:
		return parseList(val)
	case []int:
		f := make([]float64, len(val))
		for i, n := range val {
			f[i] = float64(n)
		}
		return parseList(f)
	case []interface{}:
		f := make([]float64, len(val))
		for i, n := range val {
			switch num := n.(type) {
			case int:     f[i] = float64(num)
			case int64:   f[i] = float64(num)
			case float64: f[i] = num
			default:
				return hdrcolor.RGB{}, fmt.Errorf("colour %v: element %d (%v) is not a number", v, i, n)
			}
		}
		return parseList(f)
	}
	return hdrcolor.RGB{}, fmt.Errorf("colour %v: unsupported type %T", v, v)
}

func ParseString(s string) (hdrcolor.RGB, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return hdrcolor.RGB{}, fmt.Errorf("colour '%s': %v", s, err)
		}
		return FromColorful(c), nil
	}

	name := strings.ToLower(strings.ReplaceAll(s, " ", ""))
	if rgba, exists := colornames.Map[name]; exists {
		return hdrcolor.RGB{
			R: float64(rgba.R) / 255.0,
			G: float64(rgba.G) / 255.0,
			B: float64(rgba.B) / 255.0,
		}, nil
	}
	return hdrcolor.RGB{}, fmt.Errorf("colour '%s': not a known colour name", s)
}

func parseList(f []float64) (hdrcolor.RGB, error) {
	if len(f) != 3 && len(f) != 4 {
		return hdrcolor.RGB{}, fmt.Errorf("colour %v: want 3 or 4 values, got %d", f, len(f))
	}

	scale := 1.0
	for _, v := range f {
		if v > 1 {
			scale = 255.0
		}
	}

	c := hdrcolor.RGB{R: f[0]/scale, G: f[1]/scale, B: f[2]/scale}
	if c.R < 0 || c.G < 0 || c.B < 0 || c.R > 1 || c.G > 1 || c.B > 1 {
		return hdrcolor.RGB{}, fmt.Errorf("colour %v: values out of range", f)
	}
	return c, nil
}

func FromColorful(c colorful.Color) hdrcolor.RGB { return hdrcolor.RGB{R: c.R, G: c.G, B: c.B} }
func ToColorful(c hdrcolor.RGB) colorful.Color   { return colorful.Color{R: c.R, G: c.G, B: c.B} }

// Hex renders the colour as "#rrggbb", clamping out of gamut channels.
func Hex(c hdrcolor.RGB) string {
	return ToColorful(c).Clamped().Hex()
}

func Sum(c hdrcolor.RGB) float64 { return c.R + c.G + c.B }

// Mix returns the convex combination w*src + (1-w)*dst.
func Mix(dst, src hdrcolor.RGB, w float64) hdrcolor.RGB {
	return hdrcolor.RGB{
		R: w*src.R + (1-w)*dst.R,
		G: w*src.G + (1-w)*dst.G,
		B: w*src.B + (1-w)*dst.B,
	}
}

// AddSaturate returns dst + w*src, with each channel capped at 1.
func AddSaturate(dst, src hdrcolor.RGB, w float64) hdrcolor.RGB {
	return hdrcolor.RGB{
		R: min(1.0, dst.R + w*src.R),
		G: min(1.0, dst.G + w*src.G),
		B: min(1.0, dst.B + w*src.B),
	}
}
