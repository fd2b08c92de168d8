package tone

import (
	"image"

	"github.com/disintegration/imaging"
)

// ToGrayscale converts img to one luminance channel using Rec. 601 weights
// (0.299 R + 0.587 G + 0.114 B). Alpha is dropped. The result starts at (0, 0).
func ToGrayscale(img image.Image) *image.Gray {
	src := imaging.Grayscale(img)
	dst := image.NewGray(src.Rect)
	w, h := src.Rect.Dx(), src.Rect.Dy()
	for y := 0; y < h; y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+w*4]
		d := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x := range d {
			d[x] = s[x*4]
		}
	}
	return dst
}

// ToDisplayable replicates the gray channel into opaque R, G and B so text
// can be drawn onto the buffer.
func ToDisplayable(gray *image.Gray) *image.NRGBA {
	return imaging.Clone(gray)
}

// IsNeutral reports whether every pixel of img has R == G == B.
func IsNeutral(img *image.NRGBA) bool {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for i := 0; i < len(row); i += 4 {
			if row[i] != row[i+1] || row[i] != row[i+2] {
				return false
			}
		}
	}
	return true
}
