package catalog

import(
	"fmt"
	"math"
	"time"

	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/abworrall/skysim/pkg/astro"
	"github.com/abworrall/skysim/pkg/emath"
)

// QueryRegion picks the stars that could appear in any of the frames:
// within radiusDeg of at least one pointing, with a magnitude strictly
// below maxMag. Duplicate IDs are dropped, keeping the first. Spectral
// types are reduced to the keys in colours, and positions and magnitudes
// rounded to 5 places.
func QueryRegion(stars Table, pointings []astro.Equatorial, radiusDeg, maxMag float64, colours map[string]hdrcolor.RGB) Table {
	seen := map[string]bool{}
	out := Table{}

	for _, s := range stars {
		if s.Magnitude >= maxMag || seen[s.ID] {
			continue
		}

		inside := false
		for _, p := range pointings {
			if astro.Separation(p, astro.Equatorial{RADeg: s.RA, DecDeg: s.Dec}) <= radiusDeg {
				inside = true
				break
			}
		}
		if !inside {
			continue
		}

		seen[s.ID] = true
		s.RA = emath.Round(s.RA, 5)
		s.Dec = emath.Round(s.Dec, 5)
		s.Magnitude = emath.Round(s.Magnitude, 5)
		s.SpectralType = NormalizeSpectralType(s.SpectralType, colours)
		out = append(out, s)
	}

	out.SortByMagnitude()
	return out
}

// Magnitude offsets, such that m = 5 log10(r * delta) + offset. These
// ignore phase angle, which is fine for the outer planets and rough for
// Mercury and Venus.
var planetMagnitudeOffsets = map[string]float64{
	"mercury": -0.613,
	"venus":   -4.384,
	"mars":    -1.601,
	"jupiter": -9.395,
	"saturn":  -8.914,
	"uranus":  -7.11,
	"neptune": -7,
}

// PlanetTables builds one table of planets per observation time. Each
// planet's spectral type is its own name, so it can be given its own
// colour.
func PlanetTables(times []time.Time) ([]Table, error) {
	tables := make([]Table, len(times))

	for i, t := range times {
		tables[i] = Table{}
		for _, name := range astro.Planets {
			pos, err := astro.PlanetAt(name, t)
			if err != nil {
				return nil, fmt.Errorf("planet table for frame %d: %v", i, err)
			}

			mag := emath.Round(5*math.Log10(pos.SunDistAU*pos.EarthDistAU) + planetMagnitudeOffsets[name], 3)

			tables[i] = append(tables[i], Record{
				ID:           name,
				Name:         name,
				RA:           emath.Round(pos.RADeg, 5),
				Dec:          emath.Round(pos.DecDeg, 5),
				Magnitude:    emath.Round(mag, 5),
				SpectralType: name,
				Kind:         KindPlanet,
			})
		}
	}

	return tables, nil
}
