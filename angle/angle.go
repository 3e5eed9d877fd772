package angle

import (
	"math"
	"math/cmplx"

	"github.com/hupe1980/qsynth/internal/bits"
	"github.com/hupe1980/qsynth/internal/cvec"
)

// normTolerance is the smallest norm considered normalizable.
const normTolerance = 1e-12

// Decompose builds the binary angle tree of vector.
//
// The vector length must be a power of two; it is normalized internally and
// the caller's slice is never mutated. In real mode every component must
// have zero imaginary part and leaf angles carry the sign of the
// amplitudes, so no phase tree is produced.
//
// epsilon is a shared squared-norm budget: a subtree whose block norm beta
// satisfies beta^2 <= remaining budget is pruned, the budget is reduced by
// beta^2 and the sibling absorbs the branch. The L2 distance between the
// prepared and the target state stays below epsilon up to a small numeric
// factor. All-zero blocks prune at zero cost, for any epsilon.
func Decompose(vector []complex128, epsilon float64, isReal bool) (*Tree, error) {
	if !bits.IsPowerOfTwo(len(vector)) {
		return nil, &ErrInvalidLength{Length: len(vector)}
	}
	if !cvec.Finite(vector) {
		return nil, ErrNonFinite
	}
	if epsilon < 0 || epsilon >= 1 {
		return nil, &ErrEpsilonOutOfRange{Epsilon: epsilon}
	}
	if isReal && !cvec.IsReal(vector) {
		return nil, ErrNotReal
	}

	norm := cvec.Norm(vector)
	if norm < normTolerance {
		return nil, ErrZeroNorm
	}

	n := bits.Log2(len(vector))
	t := &Tree{
		numQubits: n,
		isReal:    isReal,
		epsilon:   epsilon,
	}
	if n == 0 {
		// Single amplitude: nothing to rotate, global phase is ignored.
		t.Norm = []float64{}
		return t, nil
	}

	dim := 1 << n

	// Heap-ordered magnitude array: leaves hold the (signed, in real mode)
	// amplitudes, internal slots the L2 norm of their block.
	val := make([]float64, 2*dim)
	for i, c := range vector {
		if isReal {
			val[dim+i] = real(c) / norm
		} else {
			val[dim+i] = cmplx.Abs(c) / norm
		}
	}
	for k := dim - 1; k >= 1; k-- {
		val[k] = math.Hypot(val[2*k], val[2*k+1])
	}

	t.Norm = make([]float64, dim-1)
	budget := epsilon * epsilon
	t.walk(1, dim, val, &budget)

	if !isReal {
		t.Phase = phaseTree(vector)
		// Pruned branches emit no gates; zeroing their phase angles lets
		// the uniform Gray-code emitter merge them away too.
		if t.pruned != nil {
			it := t.pruned.Iterator()
			for it.HasNext() {
				t.Phase[it.Next()] = 0
			}
		}
	}
	return t, nil
}

// walk computes the rotation angle of node k and descends into its
// children, pruning blocks whose squared norm fits into the remaining
// budget. The budget is shared across the whole tree.
func (t *Tree) walk(k, dim int, val []float64, budget *float64) {
	l, r := 2*k, 2*k+1
	lv, rv := val[l], val[r]

	// Try to prune the lighter child first so the heavier one survives.
	// At most one child with non-zero mass is pruned per node; a heavier
	// sibling that also fits the budget is left to deeper levels. Exact
	// zero blocks always prune, at zero cost.
	first, second := r, l
	if math.Abs(lv) < math.Abs(rv) {
		first, second = l, r
	}
	prunedMass := false
	for _, c := range []int{first, second} {
		w := val[c] * val[c]
		if w == 0 || (!prunedMass && w <= *budget) {
			*budget -= w
			val[c] = 0
			t.discarded += w
			t.markPruned(c)
			prunedMass = prunedMass || w > 0
		}
	}
	lv, rv = val[l], val[r]

	t.Norm[k-1] = 2 * math.Atan2(rv, lv)

	if l < dim {
		if !t.Pruned(l) {
			t.walk(l, dim, val, budget)
		}
		if !t.Pruned(r) {
			t.walk(r, dim, val, budget)
		}
	}
}

// phaseTree computes the Z-rotation angles of a complex vector.
//
// With phi the component phases and mean(k) the phase average over the
// block of node k, the layout is Phase[0] = -2*mean(1) (a global phase
// correction) and Phase[k] = mean(2k+1) - mean(2k). Along any root-to-leaf
// path the telescoping sum reproduces the phase of that leaf exactly, so
// phases of pruned branches never contaminate surviving amplitudes.
func phaseTree(vector []complex128) []float64 {
	dim := len(vector)
	mean := make([]float64, 2*dim)
	copy(mean[dim:], cvec.Args(vector))
	for k := dim - 1; k >= 1; k-- {
		mean[k] = (mean[2*k] + mean[2*k+1]) / 2
	}

	phase := make([]float64, dim)
	phase[0] = -2 * mean[1]
	for k := 1; k < dim; k++ {
		phase[k] = mean[2*k+1] - mean[2*k]
	}
	return phase
}
