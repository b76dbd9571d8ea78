package astro

import(
	"fmt"
	"math"
	"time"

	"github.com/abworrall/skysim/pkg/emath"
)

// Observer is a place on the Earth's surface.
type Observer struct {
	Name    string
	LatDeg  float64 // north positive
	LonDeg  float64 // east positive
}

func (o Observer)String() string {
	return fmt.Sprintf("%s (%.4f, %.4f)", o.Name, o.LatDeg, o.LonDeg)
}

// Equatorial is a J2000-ish (ra, dec) pair, both in degrees.
type Equatorial struct {
	RADeg   float64
	DecDeg  float64
}

func (e Equatorial)String() string {
	return fmt.Sprintf("ra=%.5f dec=%.5f", e.RADeg, e.DecDeg)
}

// Horizontal is an (alt, az) pair in degrees. Azimuth is measured
// eastwards from north.
type Horizontal struct {
	AltDeg  float64
	AzDeg   float64
}

// HorizontalToEquatorial finds the (ra, dec) that sits at the given
// altitude and azimuth for the observer at time t.
func HorizontalToEquatorial(h Horizontal, obs Observer, t time.Time) Equatorial {
	alt := emath.DegToRad(h.AltDeg)
	az  := emath.DegToRad(h.AzDeg)
	lat := emath.DegToRad(obs.LatDeg)

	sinDec := math.Sin(alt)*math.Sin(lat) + math.Cos(alt)*math.Cos(lat)*math.Cos(az)
	dec := math.Asin(math.Max(-1, math.Min(1, sinDec)))

	// Hour angle, positive to the west
	ha := math.Atan2(-1*math.Sin(az)*math.Cos(alt),
		math.Sin(alt)*math.Cos(lat) - math.Cos(alt)*math.Sin(lat)*math.Cos(az))

	ra := LST(t, obs.LonDeg) - emath.RadToDeg(ha)

	return Equatorial{RADeg: emath.Wrap360(ra), DecDeg: emath.RadToDeg(dec)}
}

// EquatorialToHorizontal is the inverse of HorizontalToEquatorial.
func EquatorialToHorizontal(eq Equatorial, obs Observer, t time.Time) Horizontal {
	lat := emath.DegToRad(obs.LatDeg)
	dec := emath.DegToRad(eq.DecDeg)
	ha  := emath.DegToRad(LST(t, obs.LonDeg) - eq.RADeg)

	sinAlt := math.Sin(dec)*math.Sin(lat) + math.Cos(dec)*math.Cos(lat)*math.Cos(ha)
	alt := math.Asin(math.Max(-1, math.Min(1, sinAlt)))

	az := math.Atan2(-1*math.Sin(ha)*math.Cos(dec),
		math.Sin(dec)*math.Cos(lat) - math.Cos(dec)*math.Sin(lat)*math.Cos(ha))

	return Horizontal{AltDeg: emath.RadToDeg(alt), AzDeg: emath.Wrap360(emath.RadToDeg(az))}
}

// Separation is the angular distance between two points on the sky, in
// degrees. Uses the Vincenty form, which stays accurate at both small
// and near-antipodal separations.
func Separation(a, b Equatorial) float64 {
	ra1, dec1 := emath.DegToRad(a.RADeg), emath.DegToRad(a.DecDeg)
	ra2, dec2 := emath.DegToRad(b.RADeg), emath.DegToRad(b.DecDeg)
	dra := ra2 - ra1

	num1 := math.Cos(dec2) * math.Sin(dra)
	num2 := math.Cos(dec1)*math.Sin(dec2) - math.Sin(dec1)*math.Cos(dec2)*math.Cos(dra)
	den  := math.Sin(dec1)*math.Sin(dec2) + math.Cos(dec1)*math.Cos(dec2)*math.Cos(dra)

	return emath.RadToDeg(math.Atan2(math.Hypot(num1, num2), den))
}
