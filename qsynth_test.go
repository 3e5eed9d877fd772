package qsynth_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	qsynth "github.com/hupe1980/qsynth"
	"github.com/hupe1980/qsynth/sim"
	"github.com/hupe1980/qsynth/testutil"
)

// prepared synthesizes vector and reads the resulting state back out of
// the circuit unitary.
func prepared(t *testing.T, s *qsynth.Synthesizer, v []complex128, n int, opts ...qsynth.CallOption) []complex128 {
	t.Helper()

	c, err := s.PrepareState(v, opts...)
	require.NoError(t, err)
	return qsynth.GetPreparedState(sim.Unitary(c, n))
}

func TestPrepareStateRoundTrip(t *testing.T) {
	s := qsynth.New()
	rng := testutil.NewRNG(1)

	for n := 1; n <= 6; n++ {
		v := rng.State(n)
		got := prepared(t, s, v, n)
		assert.InDelta(t, 0, testutil.Dist(got, v), 1e-10, "n=%d", n)
	}
}

func TestPrepareStateRealRoundTrip(t *testing.T) {
	s := qsynth.New()
	rng := testutil.NewRNG(2)

	for n := 1; n <= 6; n++ {
		v := rng.RealState(n)
		got := prepared(t, s, v, n, qsynth.WithReal())
		assert.InDelta(t, 0, testutil.Dist(got, v), 1e-10, "n=%d", n)
	}
}

func TestPrepareStateNormalizesInput(t *testing.T) {
	s := qsynth.New()

	got := prepared(t, s, []complex128{3, 4}, 1, qsynth.WithReal())
	assert.InDelta(t, 0.6, real(got[0]), 1e-12)
	assert.InDelta(t, 0.8, real(got[1]), 1e-12)
}

func TestPrepareStateSingleAmplitude(t *testing.T) {
	s := qsynth.New()

	c, err := s.PrepareState([]complex128{1})
	require.NoError(t, err)
	assert.Zero(t, c.Len())

	state := qsynth.GetPreparedState(sim.Unitary(c, 0))
	require.Len(t, state, 1)
	assert.InDelta(t, 0, real(state[0]-1), 1e-12)
}

func TestPrepareStateRealMatchesComplex(t *testing.T) {
	s := qsynth.New()
	rng := testutil.NewRNG(4)
	v := rng.RealState(4)

	asReal := prepared(t, s, v, 4, qsynth.WithReal())
	asComplex := prepared(t, s, v, 4)
	assert.InDelta(t, 0, testutil.Dist(asReal, asComplex), 1e-10)
}

func TestPrepareStateErrorWithinEpsilon(t *testing.T) {
	s := qsynth.New()

	// Dominant amplitude plus two small blocks of distinct mass, so
	// growing budgets prune strictly more.
	v := []complex128{1, 0, 0, 0, 0.05, 0.05, 0.02, 0}

	var prev float64
	for _, eps := range []float64{0, 0.03, 0.08, 0.2} {
		got := prepared(t, s, v, 3, qsynth.WithReal(), qsynth.WithEpsilon(eps))

		want := normalized(v)
		d := testutil.Dist(got, want)
		assert.LessOrEqual(t, d, eps+1e-10, "epsilon %v", eps)
		assert.GreaterOrEqual(t, d, prev-1e-10, "epsilon %v", eps)
		prev = d
	}
}

func TestPrepareStateEpsilonReducesGateCount(t *testing.T) {
	s := qsynth.New()
	v := []complex128{1, 0, 0, 0, 0.05, 0.05, 0.02, 0}

	exact, err := s.PrepareState(v, qsynth.WithReal())
	require.NoError(t, err)
	lossy, err := s.PrepareState(v, qsynth.WithReal(), qsynth.WithEpsilon(0.2))
	require.NoError(t, err)

	assert.Less(t, lossy.Len(), exact.Len())
}

func TestPrepareStateUniformRotations(t *testing.T) {
	s := qsynth.New()
	rng := testutil.NewRNG(6)
	v := rng.State(4)

	plain := prepared(t, s, v, 4)
	uniform := prepared(t, s, v, 4, qsynth.WithUniformRotations())
	assert.InDelta(t, 0, testutil.Dist(plain, uniform), 1e-10)
}

func TestPrepareStateWithQubits(t *testing.T) {
	s := qsynth.New()

	// Prepare on qubit 1 of a two-qubit register: |00> -> |0>(a|0>+b|1>).
	c, err := s.PrepareState([]complex128{0.6, 0.8}, qsynth.WithReal(), qsynth.WithQubits(1))
	require.NoError(t, err)

	state := qsynth.GetPreparedState(sim.Unitary(c, 2))
	assert.InDelta(t, 0.6, real(state[0]), 1e-12)
	assert.InDelta(t, 0.8, real(state[1]), 1e-12)
}

func TestPrepareStateErrors(t *testing.T) {
	s := qsynth.New()

	_, err := s.PrepareState([]complex128{1, 0, 0})
	assert.ErrorIs(t, err, qsynth.ErrInvalidInput)

	_, err = s.PrepareState([]complex128{0, 0})
	assert.ErrorIs(t, err, qsynth.ErrNormalization)

	_, err = s.PrepareState([]complex128{1, 0}, qsynth.WithEpsilon(1))
	assert.ErrorIs(t, err, qsynth.ErrToleranceExceeded)
	_, err = s.PrepareState([]complex128{1, 0}, qsynth.WithEpsilon(-0.5))
	assert.ErrorIs(t, err, qsynth.ErrToleranceExceeded)

	_, err = s.PrepareState([]complex128{complex(0, 1), 0}, qsynth.WithReal())
	assert.ErrorIs(t, err, qsynth.ErrInvalidInput)
}

func TestEncodeMatrixRoundTrip(t *testing.T) {
	s := qsynth.New()
	rng := testutil.NewRNG(8)

	for n := 1; n <= 2; n++ {
		a := rng.Matrix(n)
		res, err := s.EncodeMatrix(a)
		require.NoError(t, err)

		block := qsynth.GetEncodedMatrix(sim.Unitary(res.Circuit, 2*n), n)
		for i := range block {
			for j := range block[i] {
				block[i][j] *= complex(res.FrobeniusNorm, 0)
			}
		}
		assert.InDelta(t, 0, testutil.MatrixDist(block, a), 1e-10, "n=%d", n)
	}
}

func TestEncodeMatrixErrors(t *testing.T) {
	s := qsynth.New()

	_, err := s.EncodeMatrix([][]complex128{{1, 0}})
	assert.ErrorIs(t, err, qsynth.ErrInvalidInput)

	_, err = s.EncodeMatrix([][]complex128{{0, 0}, {0, 0}})
	assert.ErrorIs(t, err, qsynth.ErrNormalization)

	_, err = s.EncodeMatrix([][]complex128{{1, 0}, {0, 1}}, qsynth.WithEpsilon(2))
	assert.ErrorIs(t, err, qsynth.ErrToleranceExceeded)
}

func normalized(v []complex128) []complex128 {
	var sum float64
	for _, c := range v {
		sum += real(c)*real(c) + imag(c)*imag(c)
	}
	out := make([]complex128, len(v))
	inv := complex(1/math.Sqrt(sum), 0)
	for i, c := range v {
		out[i] = c * inv
	}
	return out
}
