package mapgen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/sectorgrid/grid"
)

// Sentinel errors for mapgen.
var (
	// ErrBadSize indicates a non-positive width or height, or ragged rows.
	ErrBadSize = errors.New("mapgen: invalid bitmap size")

	// ErrBadParam indicates a generator parameter outside its domain.
	ErrBadParam = errors.New("mapgen: invalid generator parameter")
)

// Bitmap holds one traversability bit per cell, row-major.
// It satisfies grid.Source.
type Bitmap struct {
	w, h  int
	cells []bool
}

var _ grid.Source = (*Bitmap)(nil)

// Open returns a w×h bitmap with every cell traversable.
func Open(w, h int) (*Bitmap, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadSize, w, h)
	}
	b := &Bitmap{w: w, h: h, cells: make([]bool, w*h)}
	for i := range b.cells {
		b.cells[i] = true
	}
	return b, nil
}

// Parse builds a bitmap from rows of '.' (traversable) and any other byte (blocked).
func Parse(rows ...string) (*Bitmap, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrBadSize)
	}
	b := &Bitmap{w: len(rows[0]), h: len(rows), cells: make([]bool, len(rows[0])*len(rows))}
	for y, row := range rows {
		if len(row) != b.w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadSize, y, len(row), b.w)
		}
		for x := 0; x < b.w; x++ {
			b.cells[y*b.w+x] = row[x] == '.'
		}
	}
	return b, nil
}

// Size returns the bitmap dimensions.
func (b *Bitmap) Size() (w, h int) { return b.w, b.h }

// Traversable reports the bit at (x, y); out-of-range cells are blocked.
func (b *Bitmap) Traversable(x, y int) bool {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return false
	}
	return b.cells[y*b.w+x]
}

// Set writes the bit at (x, y); out-of-range writes are ignored.
func (b *Bitmap) Set(x, y int, traversable bool) {
	if x < 0 || x >= b.w || y < 0 || y >= b.h {
		return
	}
	b.cells[y*b.w+x] = traversable
}

// Count returns the number of traversable cells.
func (b *Bitmap) Count() int {
	n := 0
	for _, c := range b.cells {
		if c {
			n++
		}
	}
	return n
}

// String renders the bitmap as rows of '.' and '#'.
func (b *Bitmap) String() string {
	var sb strings.Builder
	sb.Grow((b.w + 1) * b.h)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if b.cells[y*b.w+x] {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CrossWalls blocks the middle row and the middle column of b, leaving four
// quadrants with no connection between them.
func CrossWalls(b *Bitmap) {
	midX, midY := b.w/2, b.h/2
	for x := 0; x < b.w; x++ {
		b.Set(x, midY, false)
	}
	for y := 0; y < b.h; y++ {
		b.Set(midX, y, false)
	}
}
