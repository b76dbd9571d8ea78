// Package metrics counts what the renderer did, in prometheus form.
package metrics

import(
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var(
	// Registry holds all the render metrics. It is separate from the
	// default registry, so a dump contains nothing but ours.
	Registry = prometheus.NewRegistry()

	FramesRendered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "skysim_frames_rendered_total",
			Help: "Total number of frames rendered, including those with nothing to composite.",
		},
	)

	ObjectsComposited = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skysim_objects_composited_total",
			Help: "Objects blended into frames, by kind (star or planet).",
		},
		[]string{"kind"},
	)

	ObjectsFiltered = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skysim_objects_filtered_total",
			Help: "Objects removed while preparing frame tables, by reason.",
		},
		[]string{"reason"},
	)

	FrameCompositeSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "skysim_frame_composite_seconds",
			Help:    "Time spent compositing a single frame.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 16),
		},
	)
)

const(
	ReasonMagnitude     = "magnitude"
	ReasonFieldOfView   = "field_of_view"
	ReasonOffCanvas     = "off_canvas"
)

func init() {
	Registry.MustRegister(FramesRendered)
	Registry.MustRegister(ObjectsComposited)
	Registry.MustRegister(ObjectsFiltered)
	Registry.MustRegister(FrameCompositeSeconds)
}

// ObserveFrame records how long one frame took to composite.
func ObserveFrame(d time.Duration) {
	FrameCompositeSeconds.Observe(d.Seconds())
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func WriteTextfile(filename string) error {
	if err := prometheus.WriteToTextfile(filename, Registry); err != nil {
		return fmt.Errorf("metrics open+w '%s': %v", filename, err)
	}
	return nil
}
