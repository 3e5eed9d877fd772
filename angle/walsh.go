package angle

import (
	"slices"

	"github.com/hupe1980/qsynth/internal/bits"
)

// SFWHT applies the scaled fast Walsh-Hadamard transform to a copy of a.
// The length of a must be a power of two.
func SFWHT(a []float64) []float64 {
	out := slices.Clone(a)
	n := len(out)
	for h := 1; h <= bits.Log2(n); h++ {
		step := 1 << h
		half := step >> 1
		for i := 0; i < n; i += step {
			for j := i; j < i+half; j++ {
				x, y := out[j], out[j+half]
				out[j] = (x + y) / 2
				out[j+half] = (x - y) / 2
			}
		}
	}
	return out
}

// GrayPermute reorders a by the Gray code sequence: out[i] = a[gray(i)].
func GrayPermute(a []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[bits.Gray(i)]
	}
	return out
}

// UniformAngles converts the per-node angles of one uniformly controlled
// rotation layer into the single-qubit angles of its Gray-code
// decomposition.
func UniformAngles(a []float64) []float64 {
	return GrayPermute(SFWHT(a))
}
