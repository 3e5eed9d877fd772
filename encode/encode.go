// Package encode embeds arbitrary complex matrices as sub-blocks of larger
// unitaries.
//
// A 2^n x 2^n matrix A occupies 2n qubits: the data register (qubits 0..n-1,
// the most significant index bits) and the selector register (qubits
// n..2n-1). Encoding is column-oriented: stage one prepares each normalized
// column on the data register conditioned on the selector holding the
// column index, stage two swaps the registers, stage three applies the
// dagger of the column-norm preparation to disentangle the selector. The
// top-left 2^n block of the resulting unitary is A divided by its Frobenius
// norm.
package encode

import (
	"fmt"
	"math"

	"github.com/hupe1980/qsynth/angle"
	"github.com/hupe1980/qsynth/gate"
	"github.com/hupe1980/qsynth/internal/bits"
	"github.com/hupe1980/qsynth/internal/cvec"
)

const normTolerance = 1e-12

// ErrNotSquare indicates a non-square input matrix.
type ErrNotSquare struct {
	Rows int
	Cols int
}

func (e *ErrNotSquare) Error() string {
	return fmt.Sprintf("matrix is not square: %d x %d", e.Rows, e.Cols)
}

// Options configures matrix encoding.
type Options struct {
	// Uniform selects the uniformly-controlled-rotation decomposition with
	// the combined data-prefix + selector control space. The pruning
	// epsilon doubles as the small-angle drop threshold, as in plain
	// uniform emission.
	Uniform bool
}

// Result is a synthesized block encoding.
type Result struct {
	// Circuit holds the emitted operation sequence.
	Circuit *gate.Circuit

	// FrobeniusNorm is the norm of the input; the extracted block times
	// this norm recovers the matrix.
	FrobeniusNorm float64

	// NumQubits is n, the number of data qubits. The circuit spans 2n.
	NumQubits int
}

// Matrix synthesizes a block encoding of the square matrix a onto the
// given 2n qubits. epsilon is applied independently to every column
// decomposition and to the selector decomposition, so the total Frobenius
// error grows as O(n*epsilon). Zero columns are skipped outright; they
// cost neither gates nor budget.
func Matrix(a [][]complex128, qubits []int, epsilon float64, isReal bool, optFns ...func(*Options)) (*Result, error) {
	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}

	dim := len(a)
	for _, row := range a {
		if len(row) != dim {
			return nil, &ErrNotSquare{Rows: dim, Cols: len(row)}
		}
		if !cvec.Finite(row) {
			return nil, angle.ErrNonFinite
		}
	}
	if !bits.IsPowerOfTwo(dim) {
		return nil, &angle.ErrInvalidLength{Length: dim}
	}
	if epsilon < 0 || epsilon >= 1 {
		return nil, &angle.ErrEpsilonOutOfRange{Epsilon: epsilon}
	}

	n := bits.Log2(dim)
	if len(qubits) != 2*n {
		return nil, fmt.Errorf("qubit count mismatch: matrix needs %d, got %d", 2*n, len(qubits))
	}

	colNorms := make([]float64, dim)
	var fro2 float64
	for j := 0; j < dim; j++ {
		var sum float64
		for i := 0; i < dim; i++ {
			c := a[i][j]
			sum += real(c)*real(c) + imag(c)*imag(c)
		}
		colNorms[j] = math.Sqrt(sum)
		fro2 += sum
	}
	fro := math.Sqrt(fro2)
	if fro < normTolerance {
		return nil, angle.ErrZeroNorm
	}

	res := &Result{
		Circuit:       gate.NewCircuit(),
		FrobeniusNorm: fro,
		NumQubits:     n,
	}
	if n == 0 {
		// A 1x1 matrix reduces to a global phase on zero qubits.
		return res, nil
	}

	data, sel := qubits[:n], qubits[n:]

	// Per-column trees; nil marks a zero column.
	colTrees := make([]*angle.Tree, dim)
	col := make([]complex128, dim)
	for j := 0; j < dim; j++ {
		if colNorms[j] < normTolerance {
			continue
		}
		for i := 0; i < dim; i++ {
			col[i] = a[i][j]
		}
		t, err := angle.Decompose(col, epsilon, isReal)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", j, err)
		}
		colTrees[j] = t
	}

	// Selector distribution: component j is the norm share of column j.
	g := make([]complex128, dim)
	for j, cn := range colNorms {
		g[j] = complex(cn/fro, 0)
	}
	gTree, err := angle.Decompose(g, epsilon, true)
	if err != nil {
		return nil, fmt.Errorf("column norms: %w", err)
	}

	if opts.Uniform {
		emitColumnsUniform(res.Circuit, colTrees, data, sel, n, epsilon, isReal)
	} else {
		for j, t := range colTrees {
			if t == nil {
				continue
			}
			selCtls := gate.PrefixControls(sel, j)
			if err := gate.Emit(t, data, res.Circuit, gate.WithExtraControls(selCtls...)); err != nil {
				return nil, err
			}
		}
	}

	for t := 0; t < n; t++ {
		res.Circuit.Append(gate.Swap(data[t], sel[t]))
	}

	prepG := gate.NewCircuit()
	emitOpts := []gate.EmitOption{}
	if opts.Uniform {
		emitOpts = append(emitOpts, gate.WithUniform(), gate.WithThreshold(epsilon))
	}
	if err := gate.Emit(gTree, data, prepG, emitOpts...); err != nil {
		return nil, err
	}
	res.Circuit.Extend(prepG.Dagger())

	return res, nil
}

// emitColumnsUniform emits stage one with each layer's angles flattened
// over the combined (data prefix, selector) control space, so the whole
// layer collapses into one Gray-code walk.
func emitColumnsUniform(dst *gate.Circuit, colTrees []*angle.Tree, data, sel []int, n int, epsilon float64, isReal bool) {
	dim := 1 << n

	layer := func(read func(t *angle.Tree, k int) float64, d int) []float64 {
		width := 1 << d
		angles := make([]float64, width*dim)
		for j := 0; j < width; j++ {
			for c, t := range colTrees {
				if t == nil {
					continue
				}
				angles[j*dim+c] = read(t, width+j)
			}
		}
		return angles
	}

	if !isReal {
		// Per-column global phase, uniformly controlled by the selector.
		phase0 := make([]float64, dim)
		for c, t := range colTrees {
			if t != nil {
				phase0[c] = t.PhaseAt(0)
			}
		}
		gate.EmitUniform(gate.KindRZ, data[0], sel, angle.UniformAngles(phase0), epsilon, dst)
	}

	readNorm := func(t *angle.Tree, k int) float64 { return t.NormAt(k) }
	readPhase := func(t *angle.Tree, k int) float64 { return t.PhaseAt(k) }

	for d := 0; d < n; d++ {
		controls := append(append([]int{}, data[:d]...), sel...)
		gate.EmitUniform(gate.KindRY, data[d], controls, angle.UniformAngles(layer(readNorm, d)), epsilon, dst)
	}
	if !isReal {
		for d := 0; d < n; d++ {
			controls := append(append([]int{}, data[:d]...), sel...)
			gate.EmitUniform(gate.KindRZ, data[d], controls, angle.UniformAngles(layer(readPhase, d)), epsilon, dst)
		}
	}
}
