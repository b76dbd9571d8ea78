package skysim

import(
	"fmt"
	"log"
	"os"
	"runtime"
	"gopkg.in/yaml.v2"

	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/abworrall/skysim/pkg/ecolor"
)

type Config struct {
	Verbosity              int

	// The observer
	Location               string   // Free text, only used in titles
	Latitude               float64  // degrees, north positive
	Longitude              float64  // degrees, east positive
	Timezone               string   // IANA name, e.g. "Pacific/Auckland"

	// When to look. Dates and times are local to Timezone.
	StartDate              string   // 2006-01-02
	StartTime              string   // 15:04:05
	Duration               string   // Go duration; empty or zero for a still image
	Interval               string   // Go duration between frames

	// Where to look
	FieldOfView            float64  // Angular diameter of the view, degrees
	Altitude               float64  // degrees above the horizon
	Azimuth                float64  // degrees east from north
	ImagePixels            int      // Width (and height) of each frame

	// How things look
	ObjectColours          map[string]interface{}  // spectral class or planet name -> colour
	ColourValues           []interface{}           // background colours
	ColourTimeIndices      map[float64]int         // hour of day -> index into ColourValues
	MagnitudeValues        []float64               // faintest visible magnitude
	MagnitudeTimeIndices   map[float64]int         // hour of day -> index into MagnitudeValues
	LightSpreadDeg         float64                 // Angular radius that starlight spreads over
	SpreadTruncation       float64                 // Kernel radius, in standard deviations

	Blender                string   // How object light combines with the pixel: convex, additive
	Workers                int      // Size of the compositing pool; 0 means NumCPU-1

	// Output
	Filename               string   // .png for a still, .gif for a sequence
	FrameDir               string   // Where per-frame PNGs go, for a sequence
	FPS                    float64
	Tonemapper             string   // "" for none, else one of Tonemappers
	Title                  bool     // Draw the location and time onto each frame
	OutputPixels           int      // Rescale frames to this size; 0 leaves them alone
	WriteHDR               bool     // Also write frame 0 as Radiance HDR
	WriteTIFF              bool     // Also write frame 0 as a 16 bit TIFF
	Overwrite              bool
}

var(
	Blenders = []string{"convex", "additive"}
)

func NewConfig() Config {
	c := Config{
		Location:         "Greenwich",
		Latitude:         51.4769,
		Longitude:        -0.0005,
		Timezone:         "Europe/London",
		StartDate:        "2024-01-15",
		StartTime:        "22:00:00",
		Interval:         "10m",
		FieldOfView:      30,
		Altitude:         45,
		Azimuth:          180,
		ImagePixels:      500,
		LightSpreadDeg:   0.1,
		SpreadTruncation: 3,
		Blender:          "convex",
		Filename:         "skysim.png",
		FrameDir:         "skysim-frames",
		FPS:              10,
		Title:            true,
	}
	c.fillDefaultTables()
	return c
}

// fillDefaultTables sets any colour or magnitude table that is missing.
// They are all-or-nothing: a table from the yaml replaces the default,
// it does not merge with it.
func (c *Config)fillDefaultTables() {
	if len(c.ObjectColours) == 0 {
		c.ObjectColours = map[string]interface{}{
			"O": []interface{}{155, 176, 255},
			"B": []interface{}{170, 191, 255},
			"A": []interface{}{202, 215, 255},
			"F": []interface{}{248, 247, 255},
			"G": []interface{}{255, 244, 234},
			"K": []interface{}{255, 210, 161},
			"M": []interface{}{255, 204, 111},
			"":  "white",

			"mercury": "#b1adad",
			"venus":   "#fff5d7",
			"mars":    "coral",
			"jupiter": "#e3c39d",
			"saturn":  "#f4d59e",
			"uranus":  "paleturquoise",
			"neptune": "#5b76e4",
		}
	}

	dayCurve := map[float64]int{0: 0, 5: 0, 6.5: 1, 8: 2, 17: 2, 18.5: 1, 20: 0, 24: 0}

	if len(c.ColourValues) == 0 || len(c.ColourTimeIndices) == 0 {
		c.ColourValues = []interface{}{"#02030a", "#1d2b53", "#87ceeb"}
		c.ColourTimeIndices = map[float64]int{}
		for k, v := range dayCurve { c.ColourTimeIndices[k] = v }
	}
	if len(c.MagnitudeValues) == 0 || len(c.MagnitudeTimeIndices) == 0 {
		c.MagnitudeValues = []float64{6.5, 3, -4}
		c.MagnitudeTimeIndices = map[float64]int{}
		for k, v := range dayCurve { c.MagnitudeTimeIndices[k] = v }
	}
}

func newConfigFromYaml(b []byte) (Config, error) {
	c := NewConfig()

	// Clear the tables, so the yaml replaces them rather than merging in
	c.ObjectColours = nil
	c.ColourValues = nil
	c.ColourTimeIndices = nil
	c.MagnitudeValues = nil
	c.MagnitudeTimeIndices = nil

	err := yaml.Unmarshal(b, &c)
	c.fillDefaultTables()
	return c, err
}

// LoadConfig reads a yaml file over the defaults.
func LoadConfig(filename string) (Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("config read '%s': %v", filename, err)
	}
	c, err := newConfigFromYaml(b)
	if err != nil {
		return Config{}, fmt.Errorf("config parse '%s': %v", filename, err)
	}
	return c, nil
}

func (c Config)AsYaml() string {
	b, err := yaml.Marshal(c)
	if err != nil {
		log.Fatalf("Can't marshal config yaml: %v\n", err)
	}
	return string(b)
}

func (c Config)ListBlenders() string {
	return fmt.Sprintf("%v", Blenders)
}

// A BlendFunc folds `src` into the existing pixel value `dst`, with weight
// w in [0,1].
type BlendFunc func(dst, src hdrcolor.RGB, w float64) hdrcolor.RGB

func (c Config)GetBlender() (BlendFunc, error) {
	switch c.Blender {
	case "convex", "": return ecolor.Mix, nil
	case "additive":   return ecolor.AddSaturate, nil
	default:
		return nil, fmt.Errorf("no Blender strategy named '%s', wanted %s", c.Blender, c.ListBlenders())
	}
}

func (c Config)GetWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	if n := runtime.NumCPU() - 1; n > 1 {
		return n
	}
	return 1
}
