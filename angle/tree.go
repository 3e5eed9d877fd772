package angle

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Tree is the binary angle tree of a decomposed amplitude vector.
//
// Angles are stored in flat level-ordered arrays addressed by heap index
// k = 2^d + j for the node at depth d covering the j-th block of that
// level. Norm holds 2^n - 1 Y-rotation angles (node k at Norm[k-1]).
// Phase is nil for real input; otherwise it holds 2^n Z-rotation angles:
// Phase[0] is the global phase correction and Phase[k] the mean phase
// difference between the children of node k.
type Tree struct {
	Norm  []float64
	Phase []float64

	numQubits int
	isReal    bool
	epsilon   float64
	pruned    *roaring.Bitmap
	discarded float64
}

// NumQubits returns n, the depth of the tree.
func (t *Tree) NumQubits() int { return t.numQubits }

// Dim returns 2^n, the length of the decomposed vector.
func (t *Tree) Dim() int { return 1 << t.numQubits }

// IsReal reports whether the tree was built in real mode (no phase angles).
func (t *Tree) IsReal() bool { return t.isReal }

// Epsilon returns the error budget the tree was built with.
func (t *Tree) Epsilon() float64 { return t.epsilon }

// Pruned reports whether the node with heap index k lies in a pruned
// subtree and therefore emits no gates.
func (t *Tree) Pruned(k int) bool {
	return t.pruned != nil && t.pruned.Contains(uint32(k))
}

// PrunedCount returns the number of pruned internal nodes.
func (t *Tree) PrunedCount() uint64 {
	if t.pruned == nil {
		return 0
	}
	return t.pruned.GetCardinality()
}

// Discarded returns the squared L2 mass removed by pruning. It never
// exceeds epsilon squared.
func (t *Tree) Discarded() float64 { return t.discarded }

// NormAt returns the Y-rotation angle of node k.
func (t *Tree) NormAt(k int) float64 { return t.Norm[k-1] }

// PhaseAt returns the Z-rotation angle of node k, 0 in real mode.
func (t *Tree) PhaseAt(k int) float64 {
	if t.Phase == nil {
		return 0
	}
	return t.Phase[k]
}

// LevelNorm returns the Y-rotation angles of all 2^d nodes at depth d,
// pruned nodes included (their angles are zero).
func (t *Tree) LevelNorm(d int) []float64 {
	return t.Norm[(1<<d)-1 : (1<<(d+1))-1]
}

// LevelPhase returns the Z-rotation angles of all 2^d nodes at depth d.
// It returns nil in real mode.
func (t *Tree) LevelPhase(d int) []float64 {
	if t.Phase == nil {
		return nil
	}
	return t.Phase[1<<d : 1<<(d+1)]
}

// markPruned records the subtree rooted at heap index k as pruned.
// Only internal nodes (k < dim) are tracked; single amplitudes carry no
// gates.
func (t *Tree) markPruned(k int) {
	dim := t.Dim()
	if k >= dim {
		return
	}
	if t.pruned == nil {
		t.pruned = roaring.New()
	}
	// The subtree of k at distance h spans heap indices [k<<h, (k+1)<<h).
	for lo, hi := k, k+1; lo < dim; lo, hi = lo<<1, hi<<1 {
		t.pruned.AddRange(uint64(lo), uint64(hi))
	}
}
