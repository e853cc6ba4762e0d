package canvas

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned by New when the viewport geometry is
// degenerate. It is never silently corrected.
var ErrInvalidGeometry = errors.New("width, height and resolution must be positive")

// ScaleFunc maps a logical coordinate before normalization, enabling
// logarithmic or otherwise nonlinear axes. Functions are assumed
// monotonic; results are not validated, so NaN/Inf for inputs outside
// the function's domain propagate into the draw path where the affected
// dots are silently dropped.
type ScaleFunc func(float64) float64

// Identity is the default scale function.
func Identity(v float64) float64 { return v }

// Params describes the logical viewport: the span of data space the
// canvas covers, its pixel density, and the per-axis transforms.
// A Params value is set once at canvas construction and never mutated.
type Params struct {
	Width      float64 // logical span, x
	Height     float64 // logical span, y
	Resolution float64 // dot pixels per logical unit
	OriginX    float64
	OriginY    float64
	XFlip      bool
	YFlip      bool
	XScale     ScaleFunc // nil means identity
	YScale     ScaleFunc
}

// DefaultParams returns the standard 128x64 viewport at resolution 1
// with origin (0,0), no flips and identity scales.
func DefaultParams() Params {
	return Params{
		Width:      128,
		Height:     64,
		Resolution: 1.0,
		XScale:     Identity,
		YScale:     Identity,
	}
}

// Validate rejects non-positive width, height or resolution.
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 || p.Resolution <= 0 {
		return fmt.Errorf("canvas: %w (width=%g height=%g resolution=%g)",
			ErrInvalidGeometry, p.Width, p.Height, p.Resolution)
	}
	return nil
}
