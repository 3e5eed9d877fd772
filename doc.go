// Package qsynth synthesizes quantum gate sequences that prepare arbitrary
// complex state vectors and block-encode arbitrary complex matrices, within
// a configurable approximation tolerance.
//
// # Quick Start
//
// State preparation:
//
//	s := qsynth.New()
//	circuit, _ := s.PrepareState(vector)                       // exact
//	circuit, _ = s.PrepareState(vector, qsynth.WithEpsilon(1e-3)) // pruned
//
//	u := sim.Unitary(circuit, n)
//	got := qsynth.GetPreparedState(u) // equals vector up to epsilon
//
// Block encoding:
//
//	res, _ := s.EncodeMatrix(a, qsynth.WithEpsilon(1e-3))
//	u := sim.Unitary(res.Circuit, 2*n)
//	block := qsynth.GetEncodedMatrix(u, n) // a / res.FrobeniusNorm
//
// # Conventions
//
// Index i of an amplitude vector is the n-bit binary expansion of i with
// qubit 0 as the most significant bit. Matrices are encoded per column;
// the data register occupies qubits 0..n-1 and the selector register
// qubits n..2n-1. All packages, including the verification simulator,
// share this ordering, so no bit reversal appears anywhere.
//
// # Compression
//
// WithEpsilon sets a shared squared-norm budget: subtrees of the angle
// decomposition whose L2 contribution fits into the budget are pruned and
// emit no gates, keeping the prepared state within epsilon of the target.
// WithUniformRotations additionally replaces fan-out controlled rotations
// by their Gray-code CNOT decomposition with small-angle merging.
//
// Synthesis is pure and deterministic; independent calls may run
// concurrently (see PrepareStates and EncodeMatrices).
package qsynth
