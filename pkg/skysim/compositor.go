package skysim

import(
	"log"
	"math"

	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/abworrall/skysim/pkg/catalog"
	"github.com/abworrall/skysim/pkg/metrics"
	"github.com/abworrall/skysim/pkg/wcs"
)

// FillFrameBackground paints the whole frame in a single colour.
func FillFrameBackground(fb *FrameBuffer, col hdrcolor.RGB) {
	fb.Fill(col)
}

// AddObjectToFrame spreads one object's light over the pixels around
// (r.X, r.Y), where X is the row and Y the column. Offsets that land off
// the frame are dropped; there is no wrapping or clamping.
func AddObjectToFrame(fb *FrameBuffer, r catalog.Record, falloff Falloff, blend BlendFunc) {
	for i, off := range falloff.Offsets {
		row, col := r.X + off.Row, r.Y + off.Col
		if !fb.InBounds(row, col) {
			continue
		}

		weight := falloff.Weights[i] * r.Brightness
		fb.SetRGB(row, col, blend(fb.RGB(row, col), r.RGB, weight))
	}
}

// ProjectObjects rounds each object's projected position to the nearest
// pixel. The projection's y (pixel row) becomes X and its x (pixel
// column) becomes Y, to match the (row, col) layout of a FrameBuffer.
// Halves round to even.
// Objects that can't be projected are dropped.
func ProjectObjects(t catalog.Table, proj wcs.Projection) catalog.Table {
	out := make(catalog.Table, 0, len(t))
	for _, r := range t {
		px, py, err := proj.SkyToPixel(r.RA, r.Dec)
		if err != nil {
			metrics.ObjectsFiltered.WithLabelValues(metrics.ReasonOffCanvas).Inc()
			continue
		}
		r.X = int(math.RoundToEven(py))
		r.Y = int(math.RoundToEven(px))
		out = append(out, r)
	}
	return out
}

// FrameTask is one unit of work for the compositing pool. It owns its
// Buffer and Objects outright; Falloff and Projection are shared and
// read only.
type FrameTask struct {
	Index       int
	Buffer      FrameBuffer
	Objects     catalog.Table
	Projection  wcs.Projection
	Falloff     Falloff
	Blend       BlendFunc
	Verbosity   int
}

// FillFrameObjects draws every object in the task's table into its
// buffer, in table order, and hands the buffer back with its index.
func FillFrameObjects(task FrameTask) (int, FrameBuffer) {
	projected := ProjectObjects(task.Objects, task.Projection)

	for _, r := range projected {
		AddObjectToFrame(&task.Buffer, r, task.Falloff, task.Blend)
		metrics.ObjectsComposited.WithLabelValues(r.KindLabel()).Inc()
	}

	if task.Verbosity > 1 {
		log.Printf("Added %d objects to frame %d", len(projected), task.Index)
	}

	return task.Index, task.Buffer
}
