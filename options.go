package qsynth

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithLogger sets the logger used for synthesis events. The default
// discards all output.
func WithLogger(logger *Logger) Option {
	return func(s *Synthesizer) {
		if logger == nil {
			logger = NoopLogger()
		}
		s.logger = logger
	}
}

// callOptions hold the per-call knobs shared by PrepareState and
// EncodeMatrix.
type callOptions struct {
	epsilon float64
	real    bool
	uniform bool
	qubits  []int
}

// CallOption configures a single synthesis call.
type CallOption func(*callOptions)

// WithEpsilon sets the approximation budget. The L2 (Frobenius, for
// matrices) distance between target and synthesized object stays within
// epsilon per decomposition call. Zero means exact synthesis.
func WithEpsilon(epsilon float64) CallOption {
	return func(o *callOptions) { o.epsilon = epsilon }
}

// WithReal declares the input real-valued: signs are folded into the
// Y-rotations and no phase gates are emitted.
func WithReal() CallOption {
	return func(o *callOptions) { o.real = true }
}

// WithUniformRotations replaces fan-out controlled rotations by their
// Gray-code CNOT decomposition. Rotations whose transformed angle falls
// below epsilon are merged away.
func WithUniformRotations() CallOption {
	return func(o *callOptions) { o.uniform = true }
}

// WithQubits assigns explicit qubit indices. PrepareState needs n of them,
// EncodeMatrix 2n (data register first). The default is 0..n-1 and
// 0..2n-1.
func WithQubits(qubits ...int) CallOption {
	return func(o *callOptions) { o.qubits = qubits }
}
