package cvec

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestNorm(t *testing.T) {
	v := []complex128{complex(3, 0), complex(0, 4)}
	if got := Norm(v); math.Abs(got-5) > 1e-12 {
		t.Errorf("Norm = %v, want 5", got)
	}
	if got := SquaredNorm(v); math.Abs(got-25) > 1e-12 {
		t.Errorf("SquaredNorm = %v, want 25", got)
	}
}

func TestArgs(t *testing.T) {
	v := []complex128{complex(1, 0), complex(0, 1), complex(-1, 0), 0}
	got := Args(v)
	want := []float64{0, math.Pi / 2, math.Pi, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Args[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFinite(t *testing.T) {
	if !Finite([]complex128{1, complex(0, -2)}) {
		t.Error("finite vector reported non-finite")
	}
	if Finite([]complex128{complex(math.Inf(1), 0)}) {
		t.Error("Inf not detected")
	}
	if Finite([]complex128{complex(0, math.NaN())}) {
		t.Error("NaN not detected")
	}
}

func TestIsReal(t *testing.T) {
	if !IsReal([]complex128{1, -2, 0}) {
		t.Error("real vector reported complex")
	}
	if IsReal([]complex128{complex(1, 1e-3)}) {
		t.Error("imaginary part not detected")
	}
}

func TestScale(t *testing.T) {
	v := []complex128{complex(0, 2), 4}
	got := Scale(v, 0.5)
	if cmplx.Abs(got[0]-complex(0, 1)) > 1e-12 || cmplx.Abs(got[1]-2) > 1e-12 {
		t.Errorf("Scale = %v", got)
	}
	// input untouched
	if v[1] != 4 {
		t.Error("Scale mutated its input")
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{1, 2, 3, 6}); math.Abs(got-3) > 1e-12 {
		t.Errorf("Mean = %v, want 3", got)
	}
}
