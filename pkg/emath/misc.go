package emath

import "math"

// Some functions that only operate on basic types, that are useful

// https://www.sjbrown.co.uk/posts/gamma-correct-rendering/ - "linear RGB to sRGB"
// `f` is assumed to be in the range [0,1]
func GammaExpand_F64(f float64) float64 {
	if f <= 0.0031308 {
		return 12.92 * f
	}
	return 1.055 * math.Pow(f, 1.0/2.4) - 0.055
}

func DegToRad(deg float64) float64 { return deg * math.Pi / 180.0 }
func RadToDeg(rad float64) float64 { return rad * 180.0 / math.Pi }

// Wrap360 normalizes an angle into [0,360).
func Wrap360(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// Round rounds to the given number of decimal places, half away from zero.
func Round(f float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(f * scale) / scale
}

func Clamp01(f float64) float64 {
	if f < 0 { return 0 }
	if f > 1 { return 1 }
	return f
}
