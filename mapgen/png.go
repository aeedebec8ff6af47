package mapgen

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/katalvlaran/sectorgrid/grid"
)

// Image renders b as a grayscale image: white cells are traversable, black blocked.
func (b *Bitmap) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.w, b.h))
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if b.cells[y*b.w+x] {
				img.SetGray(x, y, color.Gray{Y: 0xff})
			} else {
				img.SetGray(x, y, color.Gray{Y: 0})
			}
		}
	}
	return img
}

// FromImage reads a bitmap from img with the same pixel rule as
// grid.NewFromImage (see grid.TraversablePixel). Pixel (Min.X+x, Min.Y+y)
// becomes cell (x, y).
func FromImage(img image.Image) (*Bitmap, error) {
	r := img.Bounds()
	b, err := Open(r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			b.cells[y*b.w+x] = grid.TraversablePixel(img.At(r.Min.X+x, r.Min.Y+y))
		}
	}
	return b, nil
}

// Decode reads a PNG map.
func Decode(r io.Reader) (*Bitmap, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("mapgen: decode png: %w", err)
	}
	return FromImage(img)
}

// Encode writes b as a grayscale PNG.
func Encode(w io.Writer, b *Bitmap) error {
	if err := png.Encode(w, b.Image()); err != nil {
		return fmt.Errorf("mapgen: encode png: %w", err)
	}
	return nil
}

// LoadFile reads a PNG map from path.
func LoadFile(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// SaveFile writes b to path as a PNG.
func SaveFile(path string, b *Bitmap) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, b); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
