package skysim

import(
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/abworrall/skysim/pkg/catalog"
	"github.com/abworrall/skysim/pkg/metrics"
)

// ImageMatrix is the finished render: Frames frames of Pixels x Pixels,
// in (frame, row, col, channel) order, channel values in [0,1]. Row 0 is
// the bottom of the sky.
type ImageMatrix struct {
	Frames  int
	Pixels  int
	Values  []float64
}

func (m *ImageMatrix)offset(f, row, col, c int) int {
	return ((f*m.Pixels + row)*m.Pixels + col)*3 + c
}

func (m *ImageMatrix)At(f, row, col, c int) float64 { return m.Values[m.offset(f, row, col, c)] }

// Shape is (frames, rows, cols, channels)
func (m *ImageMatrix)Shape() (int, int, int, int) { return m.Frames, m.Pixels, m.Pixels, 3 }

// NewImageMatrix moves each buffer's channel axis to the end, and flips
// the column axis so that east is on the left, as seen looking up.
func NewImageMatrix(buffers []FrameBuffer, pixels int) *ImageMatrix {
	m := &ImageMatrix{
		Frames: len(buffers),
		Pixels: pixels,
		Values: make([]float64, len(buffers)*pixels*pixels*3),
	}

	for f := range buffers {
		for row:=0; row<pixels; row++ {
			for col:=0; col<pixels; col++ {
				flipped := pixels - 1 - col
				for c:=0; c<3; c++ {
					m.Values[m.offset(f, row, flipped, c)] = buffers[f].Channels[c].Get(col, row)
				}
			}
		}
	}
	return m
}

type compositeJob struct {
	Task     FrameTask

	// Output
	Buffer   FrameBuffer
	Err      error
}

// A Compositor fills one frame. FillFrameObjects is the one used for
// real; tests swap in others.
type Compositor func(FrameTask) (int, FrameBuffer)

// CreateImageMatrix renders every frame. Background fill and table
// preparation run here, one frame at a time; object compositing is
// farmed out to a pool of workers. Frames come back in any order and are
// put back by index. If anything fails, or ctx is cancelled, no matrix
// is returned.
func CreateImageMatrix(ctx context.Context, d Derived, planetTables []catalog.Table, stars catalog.Table) (*ImageMatrix, error) {
	return createImageMatrix(ctx, d, planetTables, stars, FillFrameObjects)
}

func createImageMatrix(ctx context.Context, d Derived, planetTables []catalog.Table, stars catalog.Table, compose Compositor) (*ImageMatrix, error) {
	if len(planetTables) != d.Frames {
		return nil, fmt.Errorf("got %d planet tables for %d frames", len(planetTables), d.Frames)
	}

	stats := newRenderStats()

	// 1. Allocate, 2. paint backgrounds
	buffers := make([]FrameBuffer, d.Frames)
	for i := range buffers {
		buffers[i] = NewFrameBuffer(d.ImagePixels)
		FillFrameBackground(&buffers[i], d.BackgroundAt(i))
	}

	// 3. Prepare each frame's table
	tasks := []FrameTask{}
	for i:=0; i<d.Frames; i++ {
		table, err := PrepareObjectTable(FrameInputs{
			Index:         i,
			MaxMagnitude:  d.ThresholdAt(i),
			Pointing:      d.Pointings[i],
			FieldOfView:   d.FieldOfView,
			Stars:         stars,
			Planets:       planetTables[i],
			ObjectColours: d.ObjectColours,
		})
		if err != nil {
			return nil, err
		}
		if len(table) == 0 {
			continue
		}

		stats.recordObjects(table)
		tasks = append(tasks, FrameTask{
			Index:      i,
			Buffer:     buffers[i].Clone(),
			Objects:    table,
			Projection: d.Projections[i],
			Falloff:    d.Falloff,
			Blend:      d.Blend,
			Verbosity:  d.Verbosity,
		})
	}

	if d.Verbosity > 0 {
		log.Printf("Compositing %d of %d frames over %d workers, %s", len(tasks), d.Frames, d.GetWorkers(), d.Falloff)
	}
	if d.Verbosity > 2 {
		kernel := d.Falloff.AsGrid()
		if err := kernel.ToImg(d.Falloff.String(), "skysim-falloff.png"); err != nil {
			log.Printf("Could not dump falloff kernel: %v", err)
		}
	}

	// 4. Composite in parallel, 5. put the results back by index
	results, err := compositeConcurrently(ctx, tasks, d.GetWorkers(), compose, stats)
	if err != nil {
		return nil, err
	}
	for _, job := range results {
		buffers[job.Task.Index] = job.Buffer
	}

	if d.Verbosity > 0 {
		log.Printf("Render stats: %s", stats)
	}
	if d.Verbosity > 1 {
		log.Printf("Brightness histogram: %s", stats.BrightnessHistogram())
	}

	metrics.FramesRendered.Add(float64(d.Frames))

	// 6. Channel last, flip the columns
	return NewImageMatrix(buffers, d.ImagePixels), nil
}

// compositeConcurrently runs the tasks over a pool of goroutines. The
// first failure cancels everything still queued, and is returned.
func compositeConcurrently(ctx context.Context, tasks []FrameTask, nWorkers int, compose Compositor, stats *renderStats) ([]compositeJob, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	jobsChan    := make(chan compositeJob, len(tasks))
	resultsChan := make(chan compositeJob, len(tasks))

	if nWorkers < 1 {
		nWorkers = 1
	}

	// Kick off worker pool
	for i:=0; i<nWorkers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			for job := range jobsChan {
				if ctx.Err() != nil {
					job.Err = ctx.Err()
					resultsChan<- job
					continue
				}
				job = runCompositeJob(job, compose, stats)
				if job.Err != nil {
					cancel()
				}
				resultsChan<- job
			}
		}()
	}

	// Feed in jobs
	for _, task := range tasks {
		jobsChan<- compositeJob{Task: task}
	}

	close(jobsChan)
	wg.Wait()
	close(resultsChan)

	// results processor
	results := []compositeJob{}
	var firstErr error
	for result := range resultsChan {
		if result.Err != nil && firstErr == nil {
			firstErr = result.Err
		}
		results = append(results, result)
	}

	if firstErr == nil && ctx.Err() != nil {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		return nil, fmt.Errorf("compositing aborted: %v", firstErr)
	}

	return results, nil
}

func runCompositeJob(job compositeJob, compose Compositor, stats *renderStats) (out compositeJob) {
	out = job
	start := time.Now()

	// A panicking frame takes down the batch, not the process
	defer func() {
		if r := recover(); r != nil {
			out.Err = fmt.Errorf("frame %d: %v", job.Task.Index, r)
		}
	}()

	idx, buf := compose(job.Task)
	if idx != job.Task.Index {
		out.Err = fmt.Errorf("frame %d: compositor returned index %d", job.Task.Index, idx)
		return out
	}
	out.Buffer = buf

	elapsed := time.Since(start)
	if err := stats.recordFrame(elapsed); err != nil && job.Task.Verbosity > 1 {
		log.Printf("frame %d: %v", job.Task.Index, err)
	}
	metrics.ObserveFrame(elapsed)

	return out
}
