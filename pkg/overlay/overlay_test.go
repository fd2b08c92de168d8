package overlay

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/PhantomInTheWire/bwconvert/pkg/tone"
)

var background = color.NRGBA{40, 40, 40, 255}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

// changed counts pixels inside rect that differ from background.
func changed(img *image.NRGBA, rect image.Rectangle) int {
	n := 0
	rect = rect.Intersect(img.Rect)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if img.NRGBAAt(x, y) != background {
				n++
			}
		}
	}
	return n
}

func TestDrawLinesMarksTopLeft(t *testing.T) {
	r := newRenderer(t)
	img := imaging.New(200, 120, background)

	r.DrawLines(img, []string{"Resolution: 200x120", "Size: 3 KB"})

	if changed(img, image.Rect(LineX, FirstBaseline-15, 120, FirstBaseline+3)) == 0 {
		t.Fatal("first line left no pixels")
	}
	if changed(img, image.Rect(LineX, FirstBaseline+LineHeight-15, 120, FirstBaseline+LineHeight+3)) == 0 {
		t.Fatal("second line left no pixels")
	}
	if n := changed(img, image.Rect(0, FirstBaseline+2*LineHeight, 200, 120)); n != 0 {
		t.Fatalf("%d pixels drawn below the last line", n)
	}
}

func TestDrawLinesOrderFollowsSlice(t *testing.T) {
	r := newRenderer(t)
	img := imaging.New(200, 120, background)

	r.DrawLines(img, []string{"", "", "third"})

	if n := changed(img, image.Rect(0, 0, 200, FirstBaseline+LineHeight+3)); n != 0 {
		t.Fatalf("%d pixels drawn for empty leading lines", n)
	}
	row := FirstBaseline + 2*LineHeight
	if changed(img, image.Rect(0, row-15, 200, row+3)) == 0 {
		t.Fatal("third line not drawn at its slot")
	}
}

func TestWatermarkInsideBottomRight(t *testing.T) {
	r := newRenderer(t)
	img := imaging.New(100, 100, background)

	box := r.WatermarkBounds(img.Rect, Watermark)
	if !box.In(img.Rect) {
		t.Fatalf("watermark box %v outside %v", box, img.Rect)
	}
	if box.Max.X != 100-Margin {
		t.Errorf("right edge %d, want %d", box.Max.X, 100-Margin)
	}

	r.DrawWatermark(img, Watermark)

	if changed(img, box) == 0 {
		t.Fatal("watermark left no pixels in its box")
	}
	outside := changed(img, img.Rect) - changed(img, box)
	if outside != 0 {
		t.Fatalf("%d watermark pixels outside %v", outside, box)
	}
	var brightest uint8
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if c := img.NRGBAAt(x, y); c.R > brightest {
				brightest = c.R
			}
		}
	}
	if brightest > watermarkColor.R {
		t.Fatalf("watermark pixel %d brighter than its color %d", brightest, watermarkColor.R)
	}
}

func TestWatermarkOnTinyCanvasGoesNegative(t *testing.T) {
	r := newRenderer(t)
	box := r.WatermarkBounds(image.Rect(0, 0, 20, 12), Watermark)
	if box.Min.X >= 0 {
		t.Fatalf("box %v: expected negative x on a 20px canvas", box)
	}

	// Drawing must clip rather than panic.
	r.DrawWatermark(imaging.New(20, 12, background), Watermark)
}

func TestDrawingKeepsGrayscaleNeutral(t *testing.T) {
	r := newRenderer(t)
	src := imaging.New(120, 90, color.NRGBA{180, 20, 60, 255})
	img := tone.ToDisplayable(tone.ToGrayscale(src))

	r.DrawLines(img, []string{"Resolution: 120x90", "Size: 1 KB", "Modified: Unavailable", "Location: Unavailable"})
	r.DrawWatermark(img, Watermark)

	if !tone.IsNeutral(img) {
		t.Fatal("overlay introduced colored pixels")
	}
}

func TestDrawingIsDeterministic(t *testing.T) {
	r := newRenderer(t)
	render := func() []byte {
		img := imaging.New(100, 100, background)
		r.DrawLines(img, []string{"Resolution: 100x100", "Modified: Tue Mar  5 14:07:09 2024"})
		r.DrawWatermark(img, Watermark)
		return img.Pix
	}
	if !bytes.Equal(render(), render()) {
		t.Fatal("two renders differ")
	}
}
