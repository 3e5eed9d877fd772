// Package cvec provides small helpers for complex amplitude vectors.
package cvec

import (
	"math"
	"math/cmplx"
)

// Norm returns the L2 norm of v.
func Norm(v []complex128) float64 {
	var sum float64
	for _, c := range v {
		sum += real(c)*real(c) + imag(c)*imag(c)
	}
	return math.Sqrt(sum)
}

// SquaredNorm returns the squared L2 norm of v.
func SquaredNorm(v []complex128) float64 {
	var sum float64
	for _, c := range v {
		sum += real(c)*real(c) + imag(c)*imag(c)
	}
	return sum
}

// Abs returns |v| element-wise.
func Abs(v []complex128) []float64 {
	out := make([]float64, len(v))
	for i, c := range v {
		out[i] = cmplx.Abs(c)
	}
	return out
}

// Args returns arg(v) element-wise. arg(0) is 0.
func Args(v []complex128) []float64 {
	out := make([]float64, len(v))
	for i, c := range v {
		if c != 0 {
			out[i] = cmplx.Phase(c)
		}
	}
	return out
}

// Finite reports whether every component of v is finite.
func Finite(v []complex128) bool {
	for _, c := range v {
		if math.IsNaN(real(c)) || math.IsInf(real(c), 0) ||
			math.IsNaN(imag(c)) || math.IsInf(imag(c), 0) {
			return false
		}
	}
	return true
}

// IsReal reports whether every component of v has zero imaginary part.
func IsReal(v []complex128) bool {
	for _, c := range v {
		if imag(c) != 0 {
			return false
		}
	}
	return true
}

// Scale returns v scaled by s.
func Scale(v []complex128, s float64) []complex128 {
	out := make([]complex128, len(v))
	for i, c := range v {
		out[i] = c * complex(s, 0)
	}
	return out
}

// NormFloat returns the L2 norm of a real vector.
func NormFloat(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Mean returns the arithmetic mean of v, 0 for an empty slice.
func Mean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}
