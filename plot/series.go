package plot

import "fmt"

// Series provides read access to a sequence of (x, y) samples. It is a
// closed contract: implementations either own their buffer (XYData) or
// compute samples on demand (FuncSeries); callers never reach through
// to a backing array type.
type Series interface {
	Len() int
	XY(i int) (x, y float64)
}

// XYData is an owned buffer of paired samples.
type XYData struct {
	xs, ys []float64
}

// NewXYData pairs two equally sized slices into a series. The slices
// are not copied; the caller must not mutate them while plotting.
func NewXYData(xs, ys []float64) (XYData, error) {
	if len(xs) != len(ys) {
		return XYData{}, fmt.Errorf("plot: x/y length mismatch (%d vs %d)", len(xs), len(ys))
	}
	return XYData{xs: xs, ys: ys}, nil
}

// YData builds a series from y values alone, with x = sample index.
func YData(ys []float64) XYData {
	xs := make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i)
	}
	return XYData{xs: xs, ys: ys}
}

func (d XYData) Len() int { return len(d.xs) }

func (d XYData) XY(i int) (float64, float64) { return d.xs[i], d.ys[i] }

// FuncSeries samples F uniformly over [Min, Max] at N points without
// materializing a buffer.
type FuncSeries struct {
	Min, Max float64
	N        int
	F        func(float64) float64
}

func (s FuncSeries) Len() int {
	if s.F == nil || s.N < 1 {
		return 0
	}
	return s.N
}

func (s FuncSeries) XY(i int) (float64, float64) {
	x := s.Min
	if s.N > 1 {
		x = s.Min + (s.Max-s.Min)*float64(i)/float64(s.N-1)
	}
	return x, s.F(x)
}
