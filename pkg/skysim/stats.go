package skysim

import(
	"fmt"
	"sync"
	"time"

	"github.com/codahale/hdrhistogram"
	"github.com/skypies/util/histogram"

	"github.com/abworrall/skysim/pkg/catalog"
)

// renderStats collects timings and brightnesses over a run, for verbose
// logging. Safe for concurrent use.
type renderStats struct {
	sync.Mutex
	composite   *hdrhistogram.Histogram  // microseconds per frame
	brightness  histogram.Histogram      // object brightness, on a 0-255 scale
	objects     int
	frames      int
}

func newRenderStats() *renderStats {
	return &renderStats{
		composite:  hdrhistogram.New(1, int64(10*time.Minute/time.Microsecond), 3),
		brightness: histogram.Histogram{NumBuckets:256, ValMin:0, ValMax:256},
	}
}

// recordFrame counts the frame even if its time is out of the
// histogram's range; the error says it was left out of the timings.
func (rs *renderStats)recordFrame(d time.Duration) error {
	rs.Lock()
	defer rs.Unlock()
	rs.frames++
	if err := rs.composite.RecordValue(d.Microseconds()); err != nil {
		return fmt.Errorf("frame time %s not recorded: %v", d, err)
	}
	return nil
}

func (rs *renderStats)recordObjects(t catalog.Table) {
	rs.Lock()
	defer rs.Unlock()
	for _, r := range t {
		rs.objects++
		rs.brightness.Add(histogram.ScalarVal(int(r.Brightness * 255.0)))
	}
}

func (rs *renderStats)String() string {
	rs.Lock()
	defer rs.Unlock()
	h := rs.composite
	return fmt.Sprintf("%d frames composited (mean %.0fus, p50 %dus, p99 %dus, max %dus), %d objects",
		rs.frames, h.Mean(), h.ValueAtQuantile(50), h.ValueAtQuantile(99), h.Max(), rs.objects)
}

func (rs *renderStats)BrightnessHistogram() string {
	rs.Lock()
	defer rs.Unlock()
	return fmt.Sprintf("%v", rs.brightness)
}
