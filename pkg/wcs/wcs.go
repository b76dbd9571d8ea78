// Package wcs maps sky coordinates onto the pixel grid of a frame.
package wcs

import(
	"fmt"
	"math"

	"github.com/abworrall/skysim/pkg/astro"
	"github.com/abworrall/skysim/pkg/emath"
)

// A Projection turns (ra, dec) in degrees into pixel coordinates. x is
// the column, y the row, both zero based, with row 0 at the bottom of
// the frame (north is up).
type Projection interface {
	SkyToPixel(raDeg, decDeg float64) (x, y float64, err error)
}

// Tan is a gnomonic projection, tangent to the sphere at Center. RA
// increases with x and dec increases with y.
type Tan struct {
	Center           astro.Equatorial
	DegreesPerPixel  float64
	Pixels           int

	// Maps the tangent plane (in degrees) onto the pixel grid
	ToPixel          emath.Aff3
}

// ErrBehind is returned for points on the far hemisphere from the
// tangent point, which have no image in the plane.
var ErrBehind = fmt.Errorf("wcs: point is behind the projection plane")

func NewTan(center astro.Equatorial, degPerPixel float64, pixels int) Tan {
	crpix := float64(pixels-1) / 2.0 // reference pixel, at the centre of the grid
	return Tan{
		Center:          center,
		DegreesPerPixel: degPerPixel,
		Pixels:          pixels,
		ToPixel:         emath.Identity().Translate(crpix, crpix).Scale(1/degPerPixel, 1/degPerPixel),
	}
}

// SkyToPlane gives the standard coordinates (xi, eta) in degrees.
func (t Tan)SkyToPlane(raDeg, decDeg float64) (float64, float64, error) {
	ra0, dec0 := emath.DegToRad(t.Center.RADeg), emath.DegToRad(t.Center.DecDeg)
	ra, dec := emath.DegToRad(raDeg), emath.DegToRad(decDeg)
	dra := ra - ra0

	cosc := math.Sin(dec0)*math.Sin(dec) + math.Cos(dec0)*math.Cos(dec)*math.Cos(dra)
	if cosc <= 1e-9 {
		return 0, 0, ErrBehind
	}

	xi  := math.Cos(dec) * math.Sin(dra) / cosc
	eta := (math.Cos(dec0)*math.Sin(dec) - math.Sin(dec0)*math.Cos(dec)*math.Cos(dra)) / cosc

	return emath.RadToDeg(xi), emath.RadToDeg(eta), nil
}

func (t Tan)SkyToPixel(raDeg, decDeg float64) (float64, float64, error) {
	xi, eta, err := t.SkyToPlane(raDeg, decDeg)
	if err != nil {
		return 0, 0, err
	}
	x, y := t.ToPixel.Apply(xi, eta)
	return x, y, nil
}

func (t Tan)String() string {
	return fmt.Sprintf("TAN[%s, %.6f deg/px, %dpx]", t.Center, t.DegreesPerPixel, t.Pixels)
}
