package skysim

import(
	"fmt"
	"image"
	"image/color"

	"github.com/mdouchement/hdr/hdrcolor"
)

// FrameImage is a view of one frame of an ImageMatrix. Implements the
// image.Image and hdr.Image interfaces, so frames can go straight into
// the tonemappers and encoders. Matrix row 0 is the bottom of the sky,
// image row 0 is the top, so rows are flipped on the way out.
type FrameImage struct {
	Matrix  *ImageMatrix
	Frame   int
}

func NewFrameImage(m *ImageMatrix, frame int) FrameImage {
	return FrameImage{Matrix: m, Frame: frame}
}

// Implement image.Image
func (fi FrameImage)ColorModel() color.Model       { return hdrcolor.RGBModel }
func (fi FrameImage)Bounds() image.Rectangle       { return image.Rect(0, 0, fi.Matrix.Pixels, fi.Matrix.Pixels) }
func (fi FrameImage)At(x, y int) color.Color       { return fi.HDRAt(x,y) }

// Implement hdr.Image
func (fi FrameImage)HDRAt(x, y int) hdrcolor.Color { return fi.RGB(x,y) }
func (fi FrameImage)Size() int                     { return fi.Bounds().Dx() * fi.Bounds().Dy() }

func (fi FrameImage)RGB(x, y int) hdrcolor.RGB {
	if !(image.Point{x, y}).In(fi.Bounds()) {
		return hdrcolor.RGB{}
	}
	row := fi.Matrix.Pixels - 1 - y
	return hdrcolor.RGB{
		R: fi.Matrix.At(fi.Frame, row, x, 0),
		G: fi.Matrix.At(fi.Frame, row, x, 1),
		B: fi.Matrix.At(fi.Frame, row, x, 2),
	}
}

func (fi FrameImage)String() string {
	return fmt.Sprintf("FrameImage[%d/%d] %s", fi.Frame, fi.Matrix.Frames, fi.Bounds())
}
