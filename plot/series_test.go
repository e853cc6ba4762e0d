package plot

import (
	"math"
	"testing"
)

func TestNewXYDataMismatch(t *testing.T) {
	if _, err := NewXYData([]float64{1, 2}, []float64{1}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}

func TestYData(t *testing.T) {
	s := YData([]float64{9, -6, 8})
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	x, y := s.XY(2)
	if x != 2 || y != 8 {
		t.Errorf("XY(2) = (%g,%g), want (2,8)", x, y)
	}
}

func TestFuncSeries(t *testing.T) {
	s := FuncSeries{Min: 0, Max: 2, N: 3, F: func(x float64) float64 { return x * x }}
	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}

	wantX := []float64{0, 1, 2}
	for i, wx := range wantX {
		x, y := s.XY(i)
		if math.Abs(x-wx) > 1e-12 || math.Abs(y-wx*wx) > 1e-12 {
			t.Errorf("XY(%d) = (%g,%g), want (%g,%g)", i, x, y, wx, wx*wx)
		}
	}
}

func TestFuncSeriesEdgeCases(t *testing.T) {
	if (FuncSeries{Min: 0, Max: 1, N: 5}).Len() != 0 {
		t.Error("nil function should have zero length")
	}
	if (FuncSeries{Min: 0, Max: 1, N: 0, F: math.Sin}).Len() != 0 {
		t.Error("non-positive N should have zero length")
	}

	single := FuncSeries{Min: 3, Max: 7, N: 1, F: func(x float64) float64 { return x }}
	if x, y := single.XY(0); x != 3 || y != 3 {
		t.Errorf("single sample = (%g,%g), want (3,3)", x, y)
	}
}
