package skysim

import(
	"fmt"
	"time"

	"github.com/mdouchement/hdr/hdrcolor"
	"gonum.org/v1/gonum/floats"

	"github.com/abworrall/skysim/pkg/astro"
	"github.com/abworrall/skysim/pkg/ecolor"
	"github.com/abworrall/skysim/pkg/wcs"
)

// Derived holds everything computed from a Config, once, up front. It is
// not modified after Derive returns.
type Derived struct {
	Config

	Observer          astro.Observer
	TZ                *time.Location
	Frames            int
	LocalTimes        []time.Time
	Pointings         []astro.Equatorial
	Projections       []wcs.Projection
	DegreesPerPixel   float64
	Falloff           Falloff
	ColourMapping     ecolor.ColorMap
	MagnitudeMapping  MagnitudeLookup
	MaximumMagnitude  float64
	ObjectColours     map[string]hdrcolor.RGB
	Blend             BlendFunc
}

func parseDuration(name, s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s '%s': %v", name, s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%s '%s': must not be negative", name, s)
	}
	return d, nil
}

// FrameCount is how many snapshots fit in duration. A zero duration is a
// still image, one frame.
func FrameCount(duration, interval time.Duration) (int, error) {
	if duration == 0 {
		return 1, nil
	}
	if interval <= 0 {
		return 0, fmt.Errorf("a duration of %s needs a positive interval", duration)
	}
	if n := int(duration / interval); n > 0 {
		return n, nil
	}
	return 1, nil
}

// Derive works out the per-frame times, pointings and projections, and
// builds the lookup tables and kernel shared by all frames.
func (c Config)Derive() (Derived, error) {
	d := Derived{Config: c}

	if c.ImagePixels <= 0 {
		return d, fmt.Errorf("ImagePixels must be positive, got %d", c.ImagePixels)
	}
	if c.FieldOfView <= 0 || c.FieldOfView >= 180 {
		return d, fmt.Errorf("FieldOfView must be in (0,180) degrees, got %v", c.FieldOfView)
	}

	d.Observer = astro.Observer{Name: c.Location, LatDeg: c.Latitude, LonDeg: c.Longitude}

	tz, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return d, fmt.Errorf("timezone '%s': %v", c.Timezone, err)
	}
	d.TZ = tz

	start, err := time.ParseInLocation("2006-01-02 15:04:05", c.StartDate + " " + c.StartTime, tz)
	if err != nil {
		return d, fmt.Errorf("start '%s %s': %v", c.StartDate, c.StartTime, err)
	}

	duration, err := parseDuration("Duration", c.Duration)
	if err != nil {
		return d, err
	}
	interval, err := parseDuration("Interval", c.Interval)
	if err != nil {
		return d, err
	}
	if d.Frames, err = FrameCount(duration, interval); err != nil {
		return d, err
	}

	d.DegreesPerPixel = c.FieldOfView / float64(c.ImagePixels)
	look := astro.Horizontal{AltDeg: c.Altitude, AzDeg: c.Azimuth}

	for i:=0; i<d.Frames; i++ {
		t := start.Add(time.Duration(i) * interval)
		p := astro.HorizontalToEquatorial(look, d.Observer, t)
		d.LocalTimes = append(d.LocalTimes, t)
		d.Pointings = append(d.Pointings, p)
		d.Projections = append(d.Projections, wcs.NewTan(p, d.DegreesPerPixel, c.ImagePixels))
	}

	if d.Falloff, err = NewFalloff(FalloffSigma(c.LightSpreadDeg, d.DegreesPerPixel), c.SpreadTruncation); err != nil {
		return d, err
	}

	if d.ColourMapping, err = NewColourMapping(c.ColourTimeIndices, c.ColourValues); err != nil {
		return d, err
	}
	if d.MagnitudeMapping, err = NewMagnitudeLookup(c.MagnitudeTimeIndices, c.MagnitudeValues); err != nil {
		return d, err
	}
	d.MaximumMagnitude = floats.Max(c.MagnitudeValues)

	d.ObjectColours = map[string]hdrcolor.RGB{}
	for k, v := range c.ObjectColours {
		col, err := ecolor.Parse(v)
		if err != nil {
			return d, fmt.Errorf("ObjectColours[%q]: %v", k, err)
		}
		d.ObjectColours[k] = col
	}
	if _, exists := d.ObjectColours[""]; !exists {
		d.ObjectColours[""] = hdrcolor.RGB{R: 1, G: 1, B: 1}
	}

	if d.Blend, err = c.GetBlender(); err != nil {
		return d, err
	}

	return d, nil
}

// ThresholdAt is the faintest magnitude visible in frame i.
func (d Derived)ThresholdAt(i int) float64 {
	return d.MagnitudeMapping.At(SecondsSinceMidnight(d.LocalTimes[i]))
}

// BackgroundAt is the sky colour for frame i.
func (d Derived)BackgroundAt(i int) hdrcolor.RGB {
	return d.ColourMapping.At(DayFraction(d.LocalTimes[i]))
}

// ObservationInfo is the part of a frame's title that doesn't change.
func (d Derived)ObservationInfo() string {
	return fmt.Sprintf("%s   Altitude: %.1f°, Azimuth: %.1f°, FOV: %.1f°", d.Location, d.Altitude, d.Azimuth, d.FieldOfView)
}

// FrameTitle is the local time of frame i.
func (d Derived)FrameTitle(i int) string {
	return d.LocalTimes[i].Format("2006-01-02 15:04:05 MST")
}
