package astro

import(
	"fmt"
	"math"
	"time"

	"github.com/abworrall/skysim/pkg/emath"
)

// Mean orbital elements at J2000 and their rates per Julian century, from
// Standish's "Keplerian Elements for Approximate Positions of the Major
// Planets" (valid 1800AD-2050AD). Angles in degrees, a in AU.
type orbitalElements struct {
	A, E, I, L, LongPeri, LongNode             float64
	DA, DE, DI, DL, DLongPeri, DLongNode       float64
}

var(
	elements = map[string]orbitalElements{
		"mercury": {0.38709927, 0.20563593, 7.00497902, 252.25032350, 77.45779628, 48.33076593,
			0.00000037, 0.00001906, -0.00594749, 149472.67411175, 0.16047689, -0.12534081},
		"venus":   {0.72333566, 0.00677672, 3.39467605, 181.97909950, 131.60246718, 76.67984255,
			0.00000390, -0.00004107, -0.00078890, 58517.81538729, 0.00268329, -0.27769418},
		"earth":   {1.00000261, 0.01671123, -0.00001531, 100.46457166, 102.93768193, 0.0,
			0.00000562, -0.00004392, -0.01294668, 35999.37244981, 0.32327364, 0.0},
		"mars":    {1.52371034, 0.09339410, 1.84969142, -4.55343205, -23.94362959, 49.55953891,
			0.00001847, 0.00007882, -0.00813131, 19140.30268499, 0.44441088, -0.29257343},
		"jupiter": {5.20288700, 0.04838624, 1.30439695, 34.39644051, 14.72847983, 100.47390909,
			-0.00011607, -0.00013253, -0.00183714, 3034.74612775, 0.21252668, 0.20469106},
		"saturn":  {9.53667594, 0.05386179, 2.48599187, 49.95424423, 92.59887831, 113.66242448,
			-0.00125060, -0.00050991, 0.00193609, 1222.49362201, -0.41897216, -0.28867794},
		"uranus":  {19.18916464, 0.04725744, 0.77263783, 313.23810451, 170.95427630, 74.01692503,
			-0.00196176, -0.00004397, -0.00242939, 428.48202785, 0.40805281, 0.04240589},
		"neptune": {30.06992276, 0.00859048, 1.77004347, -55.12002969, 44.96476227, 131.78422574,
			0.00026291, 0.00005105, 0.00035372, 218.45945325, -0.32241464, -0.00508664},
	}

	// The planets we can draw, innermost first
	Planets = []string{"mercury", "venus", "mars", "jupiter", "saturn", "uranus", "neptune"}

	// Obliquity of the ecliptic at J2000
	obliquityDeg = 23.43928
)

// PlanetPosition is where a planet appears from the Earth's centre.
type PlanetPosition struct {
	Name         string
	Equatorial
	SunDistAU    float64 // r, heliocentric distance
	EarthDistAU  float64 // delta, geocentric distance
}

func (p PlanetPosition)String() string {
	return fmt.Sprintf("%-8s %s r=%.4fAU delta=%.4fAU", p.Name, p.Equatorial, p.SunDistAU, p.EarthDistAU)
}

// heliocentric returns ecliptic rectangular coordinates in AU.
func (el orbitalElements)heliocentric(T float64) emath.Vec3 {
	a        := el.A + el.DA*T
	e        := el.E + el.DE*T
	incl     := emath.DegToRad(el.I + el.DI*T)
	L        := el.L + el.DL*T
	longPeri := el.LongPeri + el.DLongPeri*T
	longNode := el.LongNode + el.DLongNode*T

	omega := emath.DegToRad(longPeri - longNode) // argument of perihelion
	node  := emath.DegToRad(longNode)
	M     := emath.DegToRad(math.Remainder(L - longPeri, 360.0))

	E := solveKepler(M, e)

	xp := a * (math.Cos(E) - e)
	yp := a * math.Sqrt(1-e*e) * math.Sin(E)

	cw, sw := math.Cos(omega), math.Sin(omega)
	cn, sn := math.Cos(node), math.Sin(node)
	ci, si := math.Cos(incl), math.Sin(incl)

	return emath.Vec3{
		(cw*cn - sw*sn*ci)*xp + (-1*sw*cn - cw*sn*ci)*yp,
		(cw*sn + sw*cn*ci)*xp + (-1*sw*sn + cw*cn*ci)*yp,
		(sw*si)*xp + (cw*si)*yp,
	}
}

// solveKepler finds E in M = E - e sin(E) by Newton iteration. Radians.
func solveKepler(M, e float64) float64 {
	E := M + e*math.Sin(M)
	for i:=0; i<30; i++ {
		dE := (E - e*math.Sin(E) - M) / (1 - e*math.Cos(E))
		E -= dE
		if math.Abs(dE) < 1e-12 {
			break
		}
	}
	return E
}

// PlanetAt computes the geocentric position of the named planet at t.
func PlanetAt(name string, t time.Time) (PlanetPosition, error) {
	el, exists := elements[name]
	if !exists || name == "earth" {
		return PlanetPosition{}, fmt.Errorf("no orbital elements for planet '%s'", name)
	}

	T := CenturiesSinceJ2000(t)
	helio := el.heliocentric(T)
	earth := elements["earth"].heliocentric(T)
	geo   := helio.Sub(earth)

	// Ecliptic to equatorial
	eps := emath.DegToRad(obliquityDeg)
	x := geo[0]
	y := geo[1]*math.Cos(eps) - geo[2]*math.Sin(eps)
	z := geo[1]*math.Sin(eps) + geo[2]*math.Cos(eps)

	return PlanetPosition{
		Name: name,
		Equatorial: Equatorial{
			RADeg:  emath.Wrap360(emath.RadToDeg(math.Atan2(y, x))),
			DecDeg: emath.RadToDeg(math.Atan2(z, math.Hypot(x, y))),
		},
		SunDistAU:   helio.Len(),
		EarthDistAU: geo.Len(),
	}, nil
}
