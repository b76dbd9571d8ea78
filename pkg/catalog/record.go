// Package catalog supplies the tables of stars and planets that get
// drawn into each frame.
package catalog

import(
	"fmt"
	"sort"

	"github.com/mdouchement/hdr/hdrcolor"
)

// Record is one celestial object. Brightness, RGB, X and Y are filled
// in per frame, as the object table is prepared and projected.
type Record struct {
	ID            string        `yaml:"id" json:"id"`
	Name          string        `yaml:"name" json:"name"`
	RA            float64       `yaml:"ra" json:"ra"`   // degrees
	Dec           float64       `yaml:"dec" json:"dec"` // degrees
	Magnitude     float64       `yaml:"magnitude" json:"magnitude"`
	SpectralType  string        `yaml:"spectral_type" json:"spectral_type"`
	Kind          string        `yaml:"kind,omitempty" json:"kind,omitempty"` // "" for a star

	Brightness    float64       `yaml:"-" json:"-"`
	RGB           hdrcolor.RGB  `yaml:"-" json:"-"`
	X, Y          int           `yaml:"-" json:"-"`
}

func (r Record)String() string {
	return fmt.Sprintf("%-16s ra=%9.5f dec=%9.5f mag=%6.3f sp=%-8q b=%.5f", r.Name, r.RA, r.Dec,
		r.Magnitude, r.SpectralType, r.Brightness)
}

// Table is an ordered set of records. Order matters: it is the order
// objects get blended into a frame.
type Table []Record

const KindPlanet = "planet"

// KindLabel is "star" or "planet", for counting things.
func (r Record)KindLabel() string {
	if r.Kind == "" {
		return "star"
	}
	return r.Kind
}

func (t Table)Len() int { return len(t) }

func (t Table)Clone() Table {
	return append(Table{}, t...)
}

// Merge returns a new table holding all of a, then all of b.
func Merge(a, b Table) Table {
	out := make(Table, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Filter returns a new table with the records for which keep is true.
func (t Table)Filter(keep func(Record) bool) Table {
	out := Table{}
	for _, r := range t {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func (t Table)Magnitudes() []float64 {
	m := make([]float64, len(t))
	for i, r := range t {
		m[i] = r.Magnitude
	}
	return m
}

// SortByMagnitude orders brightest first, falling back to ID for ties.
func (t Table)SortByMagnitude() {
	sort.SliceStable(t, func(i, j int) bool {
		if t[i].Magnitude != t[j].Magnitude {
			return t[i].Magnitude < t[j].Magnitude
		}
		return t[i].ID < t[j].ID
	})
}

func (t Table)String() string {
	str := fmt.Sprintf("Table[%d] [\n", len(t))
	for _, r := range t {
		str += fmt.Sprintf("  %s\n", r)
	}
	return str + "]\n"
}

// NormalizeSpectralType reduces a full spectral classification ("K1.5III")
// to its class letter, if that letter has a colour, else to "" which is
// the fallback key. Types that are already known keys (e.g. "jupiter")
// pass through.
func NormalizeSpectralType(sp string, known map[string]hdrcolor.RGB) string {
	if _, exists := known[sp]; exists {
		return sp
	}
	if len(sp) > 0 {
		if _, exists := known[sp[:1]]; exists {
			return sp[:1]
		}
	}
	return ""
}
