package mapgen

import (
	"fmt"

	"github.com/aquilax/go-perlin"
)

// Perlin generator constants: smoothing, frequency and octave count.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = int32(3)
)

// PerlinOptions configures Perlin.
//
// Seed      – noise seed; equal seeds give equal bitmaps.
// Scale     – coordinate multiplier; smaller values give larger blobs.
// Threshold – cells whose normalized height in [0,1] falls below it are blocked.
type PerlinOptions struct {
	Seed      int64
	Scale     float64
	Threshold float64
}

// DefaultPerlinOptions returns Seed=1, Scale=0.08, Threshold=0.42.
func DefaultPerlinOptions() PerlinOptions {
	return PerlinOptions{Seed: 1, Scale: 0.08, Threshold: 0.42}
}

// Perlin returns a w×h bitmap of noise terrain: low ground is blocked.
//
// Errors: ErrBadSize for non-positive dimensions, ErrBadParam for
// Scale <= 0 or Threshold outside [0,1].
func Perlin(w, h int, opts PerlinOptions) (*Bitmap, error) {
	b, err := Open(w, h)
	if err != nil {
		return nil, err
	}
	if opts.Scale <= 0 {
		return nil, fmt.Errorf("%w: scale %v", ErrBadParam, opts.Scale)
	}
	if opts.Threshold < 0 || opts.Threshold > 1 {
		return nil, fmt.Errorf("%w: threshold %v", ErrBadParam, opts.Threshold)
	}

	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, opts.Seed)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Noise2D is roughly in [-1,1]; normalize and clamp to [0,1].
			height := (noise.Noise2D(float64(x)*opts.Scale, float64(y)*opts.Scale) + 1) / 2
			height = max(0, min(1, height))
			b.Set(x, y, height >= opts.Threshold)
		}
	}
	return b, nil
}
