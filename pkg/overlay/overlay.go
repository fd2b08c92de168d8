// Package overlay draws the info lines and the watermark onto a frame.
//
// Layout is fixed: lines start at (LineX, FirstBaseline) and step down by
// LineHeight; the watermark sits Margin pixels from the right and bottom
// edges. Text is anti-aliased and clipped at the frame edges.
package overlay

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Watermark is stamped on every output image.
const Watermark = "<azlanio>"

const (
	LineX         = 10
	FirstBaseline = 30
	LineHeight    = 20
	Margin        = 10

	lineSize      = 15.0
	watermarkSize = 12.5
	dpi           = 72
)

var (
	lineColor      = color.NRGBA{255, 255, 255, 255}
	watermarkColor = color.NRGBA{200, 200, 200, 255}
)

// Renderer holds the two font faces used for drawing.
type Renderer struct {
	lineFace      font.Face
	watermarkFace font.Face
}

// NewRenderer parses the embedded Go Regular font.
func NewRenderer() (*Renderer, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	lf, err := newFace(f, lineSize)
	if err != nil {
		return nil, err
	}
	wf, err := newFace(f, watermarkSize)
	if err != nil {
		lf.Close()
		return nil, err
	}
	return &Renderer{lineFace: lf, watermarkFace: wf}, nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %.1fpt: %w", size, err)
	}
	return face, nil
}

// Close releases both faces.
func (r *Renderer) Close() error {
	err := r.lineFace.Close()
	if werr := r.watermarkFace.Close(); err == nil {
		err = werr
	}
	return err
}

// DrawLines draws lines top to bottom in slice order.
func (r *Renderer) DrawLines(dst draw.Image, lines []string) {
	o := dst.Bounds().Min
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(lineColor),
		Face: r.lineFace,
	}
	for i, line := range lines {
		d.Dot = fixed.P(o.X+LineX, o.Y+FirstBaseline+i*LineHeight)
		d.DrawString(line)
	}
}

// DrawWatermark draws text in the bottom-right corner of dst.
func (r *Renderer) DrawWatermark(dst draw.Image, text string) {
	box := r.WatermarkBounds(dst.Bounds(), text)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(watermarkColor),
		Face: r.watermarkFace,
		Dot:  fixed.P(box.Min.X, dst.Bounds().Max.Y-Margin),
	}
	d.DrawString(text)
}

// WatermarkBounds returns the box the watermark occupies on canvas: its
// advance width by ascent plus descent. For canvases smaller than the text
// the box may start at negative coordinates.
func (r *Renderer) WatermarkBounds(canvas image.Rectangle, text string) image.Rectangle {
	width := font.MeasureString(r.watermarkFace, text).Ceil()
	m := r.watermarkFace.Metrics()
	x := canvas.Max.X - width - Margin
	baseline := canvas.Max.Y - Margin
	return image.Rect(x, baseline-m.Ascent.Ceil(), x+width, baseline+m.Descent.Ceil())
}
