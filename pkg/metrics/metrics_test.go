package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveFrame(t *testing.T) {
	before := testutil.ToFloat64(FramesRendered)
	ObserveFrame(3 * time.Millisecond)
	ObserveFrame(5 * time.Millisecond)

	// Frames are counted by the renderer, whether or not they get composited
	if got := testutil.ToFloat64(FramesRendered) - before; got != 0 {
		t.Errorf("frames rendered delta = %v, want 0", got)
	}

	filename := filepath.Join(t.TempDir(), "frames.prom")
	if err := WriteTextfile(filename); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(b), "skysim_frame_composite_seconds_count") {
		t.Errorf("no composite timings in dump:\n%s", b)
	}
}

func TestFilteredByReason(t *testing.T) {
	mag := ObjectsFiltered.WithLabelValues(ReasonMagnitude)
	fov := ObjectsFiltered.WithLabelValues(ReasonFieldOfView)
	beforeMag, beforeFOV := testutil.ToFloat64(mag), testutil.ToFloat64(fov)

	mag.Add(4)
	fov.Inc()

	if got := testutil.ToFloat64(mag) - beforeMag; got != 4 {
		t.Errorf("magnitude delta = %v, want 4", got)
	}
	if got := testutil.ToFloat64(fov) - beforeFOV; got != 1 {
		t.Errorf("fov delta = %v, want 1", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	ObjectsComposited.WithLabelValues("star").Inc()
	filename := filepath.Join(t.TempDir(), "skysim.prom")
	if err := WriteTextfile(filename); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}

	b, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"skysim_frames_rendered_total", "skysim_objects_composited_total"} {
		if !strings.Contains(string(b), name) {
			t.Errorf("textfile missing %s", name)
		}
	}
}
