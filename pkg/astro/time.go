// Package astro holds the small amount of positional astronomy needed to
// point a simulated camera at the sky: sidereal time, horizontal <->
// equatorial conversion, angular separation, and approximate planet
// positions.
package astro

import(
	"math"
	"time"

	"github.com/abworrall/skysim/pkg/emath"
)

const(
	J2000           = 2451545.0
	DaysPerCentury  = 36525.0
)

// JulianDate of the instant t.
func JulianDate(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	dayFrac := (float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600 +
		float64(t.Nanosecond())/3600e9) / 24.0

	// January and February count as months 13 and 14 of the previous year
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) + math.Floor(30.6001*(m+1)) + d + dayFrac + B - 1524.5
}

// CenturiesSinceJ2000 is the T used by most of the polynomial series.
func CenturiesSinceJ2000(t time.Time) float64 {
	return (JulianDate(t) - J2000) / DaysPerCentury
}

// GMST is the Greenwich mean sidereal time in degrees [0,360), IAU 1982.
func GMST(t time.Time) float64 {
	jd := JulianDate(t)
	T := (jd - J2000) / DaysPerCentury

	gmst := 280.46061837 +
		360.98564736629*(jd-J2000) +
		0.000387933*T*T -
		T*T*T/38710000.0

	return emath.Wrap360(gmst)
}

// LST is the local sidereal time in degrees, for an east-positive longitude.
func LST(t time.Time, lonDeg float64) float64 {
	return emath.Wrap360(GMST(t) + lonDeg)
}
