package astro

import (
	"math"
	"testing"
	"time"
)

func TestJulianDate(t *testing.T) {
	tests := []struct {
		name     string
		time     time.Time
		expected float64
	}{
		{"J2000 epoch", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545.0},
		{"Unix epoch", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 2440587.5},
		{"2024-01-01 00:00 UTC", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 2460310.5},
		{"non-UTC zone", time.Date(2000, 1, 2, 1, 0, 0, 0, time.FixedZone("NZDT", 13*3600)), 2451545.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JulianDate(tt.time); math.Abs(got-tt.expected) > 1e-4 {
				t.Errorf("JulianDate() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGMST(t *testing.T) {
	gmst := GMST(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	if math.Abs(gmst-280.46) > 0.1 {
		t.Errorf("GMST at J2000 = %v, want ~280.46", gmst)
	}

	lst := LST(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 100)
	if math.Abs(lst-20.46) > 0.1 {
		t.Errorf("LST at lon 100 = %v, want ~20.46", lst)
	}
}

func TestHorizontalToEquatorialZenith(t *testing.T) {
	obs := Observer{Name: "Wellington", LatDeg: -41.29, LonDeg: 174.78}
	when := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

	eq := HorizontalToEquatorial(Horizontal{AltDeg: 90, AzDeg: 0}, obs, when)
	if math.Abs(eq.DecDeg-obs.LatDeg) > 1e-6 {
		t.Errorf("zenith dec = %v, want %v", eq.DecDeg, obs.LatDeg)
	}
	if sep := math.Abs(eq.RADeg - LST(when, obs.LonDeg)); sep > 1e-6 && math.Abs(sep-360) > 1e-6 {
		t.Errorf("zenith ra = %v, want LST %v", eq.RADeg, LST(when, obs.LonDeg))
	}
}

func TestHorizontalRoundTrip(t *testing.T) {
	obs := Observer{LatDeg: 51.48, LonDeg: -0.0015}
	when := time.Date(2023, 12, 31, 22, 15, 0, 0, time.UTC)

	for _, h := range []Horizontal{{45, 0}, {30, 90}, {60, 200}, {10, 315}, {80, 123.4}} {
		eq := HorizontalToEquatorial(h, obs, when)
		back := EquatorialToHorizontal(eq, obs, when)
		if math.Abs(back.AltDeg-h.AltDeg) > 1e-6 || math.Abs(back.AzDeg-h.AzDeg) > 1e-6 {
			t.Errorf("round trip %v -> %v -> %v", h, eq, back)
		}
	}
}

func TestSeparation(t *testing.T) {
	tests := []struct {
		a, b Equatorial
		want float64
	}{
		{Equatorial{0, 0}, Equatorial{90, 0}, 90},
		{Equatorial{10, 89}, Equatorial{190, 89}, 2},
		{Equatorial{0, -90}, Equatorial{0, 90}, 180},
		{Equatorial{359.5, 0}, Equatorial{0.5, 0}, 1},
		{Equatorial{120, 30}, Equatorial{120, 30}, 0},
	}
	for _, tt := range tests {
		if got := Separation(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Separation(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPlanetDistances(t *testing.T) {
	when := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name                 string
		rMin, rMax, dMin, dMax float64
	}{
		{"mercury", 0.30, 0.47, 0.5, 1.5},
		{"venus", 0.71, 0.73, 0.25, 1.75},
		{"mars", 1.38, 1.67, 0.37, 2.68},
		{"jupiter", 4.9, 5.5, 3.9, 6.5},
		{"saturn", 9.0, 10.1, 8.0, 11.1},
		{"uranus", 18.2, 20.1, 17.2, 21.1},
		{"neptune", 29.8, 30.4, 28.8, 31.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := PlanetAt(tt.name, when)
			if err != nil {
				t.Fatalf("PlanetAt: %v", err)
			}
			if pos.SunDistAU < tt.rMin || pos.SunDistAU > tt.rMax {
				t.Errorf("r = %v, want [%v,%v]", pos.SunDistAU, tt.rMin, tt.rMax)
			}
			if pos.EarthDistAU < tt.dMin || pos.EarthDistAU > tt.dMax {
				t.Errorf("delta = %v, want [%v,%v]", pos.EarthDistAU, tt.dMin, tt.dMax)
			}
			if pos.DecDeg < -30 || pos.DecDeg > 30 {
				t.Errorf("dec = %v, planets stay near the ecliptic", pos.DecDeg)
			}
		})
	}
}

func TestGreatConjunction2020(t *testing.T) {
	when := time.Date(2020, 12, 21, 18, 0, 0, 0, time.UTC)
	jup, _ := PlanetAt("jupiter", when)
	sat, _ := PlanetAt("saturn", when)
	if sep := Separation(jup.Equatorial, sat.Equatorial); sep > 0.5 {
		t.Errorf("jupiter-saturn separation = %v deg, want ~0.1", sep)
	}
}

func TestMarsOpposition2020(t *testing.T) {
	mars, _ := PlanetAt("mars", time.Date(2020, 10, 6, 14, 0, 0, 0, time.UTC))
	if math.Abs(mars.EarthDistAU-0.415) > 0.03 {
		t.Errorf("mars delta = %v AU, want ~0.415", mars.EarthDistAU)
	}
}

func TestPlanetAtUnknown(t *testing.T) {
	for _, name := range []string{"pluto", "earth", ""} {
		if _, err := PlanetAt(name, time.Now()); err == nil {
			t.Errorf("PlanetAt(%q) expected error", name)
		}
	}
}
