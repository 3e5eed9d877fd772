package qsynth

import (
	"github.com/hupe1980/qsynth/angle"
	"github.com/hupe1980/qsynth/encode"
	"github.com/hupe1980/qsynth/gate"
	"github.com/hupe1980/qsynth/internal/bits"
	"github.com/hupe1980/qsynth/sim"
)

// Synthesizer turns numeric inputs into gate sequences. It is stateless
// apart from configuration; methods may be called concurrently.
type Synthesizer struct {
	logger *Logger
}

// New creates a Synthesizer.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		logger: NoopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PrepareState synthesizes a circuit that prepares the given vector from
// the all-zero basis state. The vector length must be a power of two; it
// is normalized internally.
func (s *Synthesizer) PrepareState(vector []complex128, opts ...CallOption) (*gate.Circuit, error) {
	o := applyCallOptions(opts)

	tree, err := angle.Decompose(vector, o.epsilon, o.real)
	if err != nil {
		err = translateError(err)
		s.logger.WithEpsilon(o.epsilon).LogPrepare(0, 0, err)
		return nil, err
	}

	n := tree.NumQubits()
	qubits := o.qubits
	if qubits == nil {
		qubits = defaultQubits(n)
	}

	circuit := gate.NewCircuit()
	if err := gate.Emit(tree, qubits, circuit, emitOptions(o)...); err != nil {
		return nil, err
	}

	s.logger.WithEpsilon(o.epsilon).LogPrepare(n, circuit.Len(), nil)
	return circuit, nil
}

// EncodeMatrix synthesizes a block encoding of the square matrix a. The
// returned result carries the Frobenius norm needed to rescale the
// extracted block.
func (s *Synthesizer) EncodeMatrix(a [][]complex128, opts ...CallOption) (*encode.Result, error) {
	o := applyCallOptions(opts)

	n := 0
	if bits.IsPowerOfTwo(len(a)) {
		n = bits.Log2(len(a))
	}
	qubits := o.qubits
	if qubits == nil {
		qubits = defaultQubits(2 * n)
	}

	var encodeOpts []func(*encode.Options)
	if o.uniform {
		encodeOpts = append(encodeOpts, func(eo *encode.Options) { eo.Uniform = true })
	}

	res, err := encode.Matrix(a, qubits, o.epsilon, o.real, encodeOpts...)
	if err != nil {
		err = translateError(err)
		s.logger.WithEpsilon(o.epsilon).LogEncode(n, 0, 0, err)
		return nil, err
	}

	s.logger.WithEpsilon(o.epsilon).LogEncode(n, res.Circuit.Len(), res.FrobeniusNorm, nil)
	return res, nil
}

// GetPreparedState reads the prepared state out of a circuit unitary: the
// image of the all-zero basis state.
func GetPreparedState(unitary [][]complex128) []complex128 {
	return sim.ExtractState(unitary)
}

// GetEncodedMatrix reads the encoded block out of a circuit unitary. The
// result is the original matrix divided by its Frobenius norm.
func GetEncodedMatrix(unitary [][]complex128, numQubits int) [][]complex128 {
	return sim.ExtractBlock(unitary, numQubits)
}

func applyCallOptions(opts []CallOption) *callOptions {
	o := &callOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func defaultQubits(n int) []int {
	qubits := make([]int, n)
	for i := range qubits {
		qubits[i] = i
	}
	return qubits
}

func emitOptions(o *callOptions) []gate.EmitOption {
	if !o.uniform {
		return nil
	}
	return []gate.EmitOption{gate.WithUniform(), gate.WithThreshold(o.epsilon)}
}
