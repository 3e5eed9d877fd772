package gate

import (
	"fmt"
	"math"

	"github.com/hupe1980/qsynth/angle"
	"github.com/hupe1980/qsynth/internal/bits"
)

// EmitOptions configures one emission pass.
type EmitOptions struct {
	// Uniform selects the uniformly-controlled-rotation decomposition:
	// every tree layer becomes a Gray-code walk of single-qubit rotations
	// and self-cancelling CNOTs instead of one fan-out rotation per node.
	Uniform bool

	// Threshold drops rotations with |angle| <= Threshold in uniform mode.
	// Zero still drops exact zeros.
	Threshold float64

	// ExtraControls are appended to every emitted operation, turning the
	// whole preparation into a conditional block. Not supported in uniform
	// mode, where callers fold extra qubits into the control space instead.
	ExtraControls []Control
}

// EmitOption mutates EmitOptions.
type EmitOption func(*EmitOptions)

// WithUniform enables the uniformly controlled rotation decomposition.
func WithUniform() EmitOption {
	return func(o *EmitOptions) { o.Uniform = true }
}

// WithThreshold sets the small-angle drop threshold for uniform emission.
func WithThreshold(threshold float64) EmitOption {
	return func(o *EmitOptions) { o.Threshold = threshold }
}

// WithExtraControls conditions every emitted operation on the given
// controls.
func WithExtraControls(extra ...Control) EmitOption {
	return func(o *EmitOptions) { o.ExtraControls = extra }
}

// Emit walks the angle tree depth-first and appends the state-preparation
// gate sequence to dst.
//
// The rotation of node k at depth d targets qubits[d]; its controls pin
// qubits[0:d] to the bits of the node's block index, most significant
// first. Pruned nodes and exact-zero angles emit nothing. In complex mode
// the Z-rotation tree follows the Y-rotation tree; the two commute
// gate-by-gate, so the grouping is free.
func Emit(t *angle.Tree, qubits []int, dst Appender, optFns ...EmitOption) error {
	var opts EmitOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	n := t.NumQubits()
	if len(qubits) != n {
		return fmt.Errorf("qubit count mismatch: tree needs %d, got %d", n, len(qubits))
	}
	if opts.Uniform && len(opts.ExtraControls) > 0 {
		return fmt.Errorf("uniform emission does not support extra controls")
	}
	if n == 0 {
		return nil
	}

	emitRoot := func(kind Kind, a float64) {
		if math.Abs(a) > opts.Threshold {
			dst.Append(Op{Kind: kind, Target: qubits[0], Angle: a}.Controlled(opts.ExtraControls...))
		}
	}

	if !t.IsReal() {
		emitRoot(KindRZ, t.PhaseAt(0))
	}
	emitRoot(KindRY, t.NormAt(1))
	for d := 1; d < n; d++ {
		emitLayer(t, KindRY, t.LevelNorm(d), qubits, d, dst, &opts)
	}

	if !t.IsReal() {
		emitRoot(KindRZ, t.PhaseAt(1))
		for d := 1; d < n; d++ {
			emitLayer(t, KindRZ, t.LevelPhase(d), qubits, d, dst, &opts)
		}
	}
	return nil
}

// emitLayer emits all rotations of one tree depth, either as fan-out
// controlled rotations per node or as one uniform Gray-code walk.
func emitLayer(t *angle.Tree, kind Kind, angles []float64, qubits []int, d int, dst Appender, opts *EmitOptions) {
	if opts.Uniform {
		EmitUniform(kind, qubits[d], qubits[:d], angle.UniformAngles(angles), opts.Threshold, dst)
		return
	}
	for j, a := range angles {
		k := 1<<d + j
		if t.Pruned(k) || a == 0 {
			continue
		}
		op := Op{
			Kind:     kind,
			Target:   qubits[d],
			Angle:    a,
			Controls: PrefixControls(qubits[:d], j),
		}
		dst.Append(op.Controlled(opts.ExtraControls...))
	}
}

// PrefixControls pins the given qubits to the bits of index, most
// significant bit first.
func PrefixControls(qubits []int, index int) []Control {
	ctls := make([]Control, len(qubits))
	for i, b := range bits.Of(index, len(qubits)) {
		ctls[i] = Control{Qubit: qubits[i], Value: b}
	}
	return ctls
}

// EmitUniform appends the Gray-code decomposition of one uniformly
// controlled rotation layer: single-qubit rotations on target interleaved
// with CNOTs whose control follows the Gray transition bit. Consecutive
// CNOTs on the same control cancel and rotations with |angle| <= threshold
// are dropped, merging their neighbouring CNOTs. angles must already be
// transformed by angle.UniformAngles and have length 2^len(controls).
func EmitUniform(kind Kind, target int, controls []int, angles []float64, threshold float64, dst Appender) {
	if len(controls) == 0 {
		if len(angles) > 0 && math.Abs(angles[0]) > threshold {
			dst.Append(Op{Kind: kind, Target: target, Angle: angles[0]})
		}
		return
	}

	// Pending CNOT controls, kept as a parity set: toggling twice cancels.
	var pending []int
	flush := func() {
		for _, q := range pending {
			dst.Append(X(target, Control{Qubit: controls[q], Value: 1}))
		}
		pending = pending[:0]
	}
	toggle := func(idx int) {
		for i, q := range pending {
			if q == idx {
				pending = append(pending[:i], pending[i+1:]...)
				return
			}
		}
		pending = append(pending, idx)
	}

	for i, a := range angles {
		if math.Abs(a) > threshold {
			flush()
			dst.Append(Op{Kind: kind, Target: target, Angle: a})
		}
		// The closing CNOT of the walk is always controlled by the top
		// qubit.
		if i != len(angles)-1 {
			toggle(bits.GrayDiffIndex(i, i+1, len(controls)))
		} else {
			toggle(0)
		}
	}
	flush()
}
