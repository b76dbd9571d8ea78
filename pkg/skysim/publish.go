package skysim

import(
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// OutputFiles lists every file Publish would write for m, in the order
// it writes them.
func OutputFiles(d Derived, m *ImageMatrix) []string {
	files := []string{}

	if m.Frames > 1 {
		for i:=0; i<m.Frames; i++ {
			files = append(files, frameFilename(d.FrameDir, i, m.Frames))
		}
	}
	files = append(files, mainFilename(d.Filename, m.Frames))

	base := strings.TrimSuffix(d.Filename, filepath.Ext(d.Filename))
	if d.WriteHDR {
		files = append(files, base + ".hdr")
	}
	if d.WriteTIFF {
		files = append(files, base + ".tif")
	}

	return files
}

// A single frame is a PNG; a sequence is an animated GIF, whatever the
// filename said.
func mainFilename(filename string, frames int) string {
	if frames > 1 && strings.ToLower(filepath.Ext(filename)) != ".gif" {
		return strings.TrimSuffix(filename, filepath.Ext(filename)) + ".gif"
	}
	return filename
}

func frameFilename(dir string, i, n int) string {
	digits := len(fmt.Sprintf("%d", n-1))
	return filepath.Join(dir, fmt.Sprintf("frame-%0*d.png", digits, i))
}

// Publish turns the matrix into files. Nothing is written if any of the
// outputs already exist, unless Overwrite is set.
func Publish(d Derived, m *ImageMatrix) error {
	if m.Frames < 1 {
		return fmt.Errorf("nothing to publish, no frames")
	}
	if m.Frames > 1 && d.FPS <= 0 {
		return fmt.Errorf("FPS must be positive for %d frames, got %v", m.Frames, d.FPS)
	}

	files := OutputFiles(d, m)
	if !d.Overwrite {
		for _, f := range files {
			if _, err := os.Stat(f); err == nil {
				return fmt.Errorf("output '%s' already exists (set Overwrite to replace it)", f)
			}
		}
	}

	var face font.Face
	if d.Title {
		var err error
		if face, err = titleFace(d.OutputPixelsOr(m.Pixels)); err != nil {
			return err
		}
	}

	frames := make([]image.Image, m.Frames)
	for i := range frames {
		img, err := d.developFrame(m, i, face)
		if err != nil {
			return fmt.Errorf("frame %d: %v", i, err)
		}
		frames[i] = img
	}

	if m.Frames == 1 {
		if err := WritePNG(frames[0], files[0]); err != nil {
			return err
		}
		if d.Verbosity > 0 {
			log.Printf("Wrote %s", files[0])
		}

	} else {
		if err := os.MkdirAll(d.FrameDir, 0755); err != nil {
			return fmt.Errorf("mkdir '%s': %v", d.FrameDir, err)
		}
		for i, img := range frames {
			if err := WritePNG(img, frameFilename(d.FrameDir, i, m.Frames)); err != nil {
				return err
			}
		}
		filename := mainFilename(d.Filename, m.Frames)
		if err := WriteGIF(frames, d.FPS, filename); err != nil {
			return err
		}
		if d.Verbosity > 0 {
			log.Printf("Wrote %d frames to %s, and %s", m.Frames, d.FrameDir, filename)
		}
	}

	base := strings.TrimSuffix(d.Filename, filepath.Ext(d.Filename))
	if d.WriteHDR {
		if err := WriteHDR(NewFrameImage(m, 0), base + ".hdr"); err != nil {
			return err
		}
	}
	if d.WriteTIFF {
		raw := NewFrameImage(m, 0)
		rgba64 := image.NewRGBA64(raw.Bounds())
		draw.Draw(rgba64, rgba64.Bounds(), raw, image.Point{}, draw.Src)
		if err := WriteTIFF(rgba64, base + ".tif"); err != nil {
			return err
		}
	}

	return nil
}

// OutputPixelsOr is the published frame size.
func (c Config)OutputPixelsOr(pixels int) int {
	if c.OutputPixels > 0 {
		return c.OutputPixels
	}
	return pixels
}

// developFrame does everything to get frame i ready for an 8 bit file:
// tonemap, resize, title.
func (d Derived)developFrame(m *ImageMatrix, i int, face font.Face) (image.Image, error) {
	img, err := Tonemap(NewFrameImage(m, i), d.Tonemapper)
	if err != nil {
		return nil, err
	}
	img = ScaleImage(img, d.OutputPixels)

	if face == nil {
		return ToRGBA(img), nil
	}

	dc := gg.NewContextForImage(img)
	dc.SetFontFace(face)
	dc.SetColor(color.White)

	_, lineHeight := dc.MeasureString("Mg")
	margin := lineHeight / 2
	h := float64(dc.Height())
	dc.DrawStringAnchored(d.ObservationInfo(), margin, h - margin - 1.5*lineHeight, 0, 0)
	dc.DrawStringAnchored(d.FrameTitle(i), margin, h - margin, 0, 0)

	return dc.Image(), nil
}

func titleFace(pixels int) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("title font: %v", err)
	}
	size := math.Max(8, float64(pixels)/40)
	return truetype.NewFace(f, &truetype.Options{Size: size}), nil
}

// WriteGIF writes the frames as an endlessly looping animation,
// dithered down to the Plan 9 palette.
func WriteGIF(frames []image.Image, fps float64, filename string) error {
	if fps <= 0 {
		return fmt.Errorf("WriteGIF: FPS must be positive, got %v", fps)
	}
	delay := int(math.Round(100 / fps))

	anim := gif.GIF{LoopCount: 0}
	for _, img := range frames {
		b := img.Bounds()
		pal := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Plan9)
		draw.FloydSteinberg.Draw(pal, pal.Bounds(), img, b.Min)
		anim.Image = append(anim.Image, pal)
		anim.Delay = append(anim.Delay, delay)
	}

	if writer, err := os.Create(filename); err != nil {
		return fmt.Errorf("open+w '%s': %v", filename, err)
	} else {
		defer writer.Close()
		return gif.EncodeAll(writer, &anim)
	}
}
