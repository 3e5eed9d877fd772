package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// NormFloat64 returns a standard normally distributed float64.
func (r *RNG) NormFloat64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.NormFloat64()
}

// State returns a random normalized complex vector of length 2^n.
// Locks only once per call.
func (r *RNG) State(n int) []complex128 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := make([]complex128, 1<<n)
	for i := range v {
		v[i] = complex(r.rand.NormFloat64(), r.rand.NormFloat64())
	}
	normalize(v)
	return v
}

// RealState returns a random normalized real-valued vector of length 2^n.
func (r *RNG) RealState(n int) []complex128 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := make([]complex128, 1<<n)
	for i := range v {
		v[i] = complex(r.rand.NormFloat64(), 0)
	}
	normalize(v)
	return v
}

// Matrix returns a random complex 2^n x 2^n matrix with unit Frobenius
// norm.
func (r *RNG) Matrix(n int) [][]complex128 {
	r.mu.Lock()
	defer r.mu.Unlock()
	dim := 1 << n
	a := make([][]complex128, dim)
	var sum float64
	for i := range a {
		a[i] = make([]complex128, dim)
		for j := range a[i] {
			c := complex(r.rand.NormFloat64(), r.rand.NormFloat64())
			a[i][j] = c
			sum += real(c)*real(c) + imag(c)*imag(c)
		}
	}
	inv := complex(1/math.Sqrt(sum), 0)
	for i := range a {
		for j := range a[i] {
			a[i][j] *= inv
		}
	}
	return a
}

// RealMatrix returns a random real-valued 2^n x 2^n matrix with unit
// Frobenius norm.
func (r *RNG) RealMatrix(n int) [][]complex128 {
	r.mu.Lock()
	defer r.mu.Unlock()
	dim := 1 << n
	a := make([][]complex128, dim)
	var sum float64
	for i := range a {
		a[i] = make([]complex128, dim)
		for j := range a[i] {
			x := r.rand.NormFloat64()
			a[i][j] = complex(x, 0)
			sum += x * x
		}
	}
	inv := complex(1/math.Sqrt(sum), 0)
	for i := range a {
		for j := range a[i] {
			a[i][j] *= inv
		}
	}
	return a
}

func normalize(v []complex128) {
	var sum float64
	for _, c := range v {
		sum += real(c)*real(c) + imag(c)*imag(c)
	}
	inv := complex(1/math.Sqrt(sum), 0)
	for i := range v {
		v[i] *= inv
	}
}

// Dist returns the L2 distance between two complex vectors.
func Dist(a, b []complex128) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += real(d)*real(d) + imag(d)*imag(d)
	}
	return math.Sqrt(sum)
}

// MatrixDist returns the Frobenius distance between two matrices.
func MatrixDist(a, b [][]complex128) float64 {
	var sum float64
	for i := range a {
		for j := range a[i] {
			d := a[i][j] - b[i][j]
			sum += real(d)*real(d) + imag(d)*imag(d)
		}
	}
	return math.Sqrt(sum)
}
