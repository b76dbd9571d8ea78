package skysim

import(
	"fmt"

	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/abworrall/skysim/pkg/emath"
)

// FrameBuffer is one frame in channel-first layout: three planes of
// Pixels x Pixels floats, addressed by (row, col). Row 0 is the bottom
// of the sky.
type FrameBuffer struct {
	Pixels    int
	Channels  [3]emath.FloatGrid
}

func NewFrameBuffer(pixels int) FrameBuffer {
	fb := FrameBuffer{Pixels: pixels}
	for c := range fb.Channels {
		fb.Channels[c] = emath.NewFloatGrid(pixels, pixels)
	}
	return fb
}

// Shape is (channels, rows, cols)
func (fb *FrameBuffer)Shape() (int, int, int) {
	return len(fb.Channels), fb.Channels[0].Dy(), fb.Channels[0].Dx()
}

func (fb *FrameBuffer)InBounds(row, col int) bool {
	return row >= 0 && row < fb.Pixels && col >= 0 && col < fb.Pixels
}

func (fb *FrameBuffer)RGB(row, col int) hdrcolor.RGB {
	return hdrcolor.RGB{
		R: fb.Channels[0].Get(col, row),
		G: fb.Channels[1].Get(col, row),
		B: fb.Channels[2].Get(col, row),
	}
}

func (fb *FrameBuffer)SetRGB(row, col int, c hdrcolor.RGB) {
	fb.Channels[0].Set(col, row, c.R)
	fb.Channels[1].Set(col, row, c.G)
	fb.Channels[2].Set(col, row, c.B)
}

// Fill sets every pixel to the one colour.
func (fb *FrameBuffer)Fill(c hdrcolor.RGB) {
	fb.Channels[0].Fill(c.R)
	fb.Channels[1].Fill(c.G)
	fb.Channels[2].Fill(c.B)
}

// Clone gives a deep copy, so a worker can own its buffer outright.
func (fb *FrameBuffer)Clone() FrameBuffer {
	out := FrameBuffer{Pixels: fb.Pixels}
	for c := range fb.Channels {
		out.Channels[c] = *fb.Channels[c].Copy()
	}
	return out
}

func (fb FrameBuffer)String() string {
	return fmt.Sprintf("FrameBuffer[%dpx, R%s G%s B%s]", fb.Pixels,
		fb.Channels[0].Stats(), fb.Channels[1].Stats(), fb.Channels[2].Stats())
}
