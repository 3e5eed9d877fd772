// Package sim provides a dense statevector simulator used to verify
// synthesized circuits, plus the extraction routines that read a prepared
// state or an encoded block back out of a unitary.
//
// The simulator shares the module-wide bit convention: qubit 0 is the most
// significant bit of a basis index. Because decomposer, emitter and
// simulator agree on the ordering, no bit reversal is needed anywhere.
package sim

import (
	"math"
	"math/cmplx"

	"github.com/hupe1980/qsynth/gate"
)

// Apply applies a single operation to state, in place. The state length
// must be 2^numQubits.
func Apply(state []complex128, op gate.Op, numQubits int) {
	bit := func(q int) int { return 1 << (numQubits - 1 - q) }

	match := func(i int) bool {
		for _, c := range op.Controls {
			if uint8(i>>(numQubits-1-c.Qubit))&1 != c.Value {
				return false
			}
		}
		return true
	}

	switch op.Kind {
	case gate.KindRY:
		t := bit(op.Target)
		c := math.Cos(op.Angle / 2)
		s := math.Sin(op.Angle / 2)
		for i := range state {
			if i&t != 0 || !match(i) {
				continue
			}
			j := i | t
			a0, a1 := state[i], state[j]
			state[i] = complex(c, 0)*a0 - complex(s, 0)*a1
			state[j] = complex(s, 0)*a0 + complex(c, 0)*a1
		}
	case gate.KindRZ:
		t := bit(op.Target)
		lo := cmplx.Exp(complex(0, -op.Angle/2))
		hi := cmplx.Exp(complex(0, op.Angle/2))
		for i := range state {
			if !match(i) {
				continue
			}
			if i&t == 0 {
				state[i] *= lo
			} else {
				state[i] *= hi
			}
		}
	case gate.KindX:
		t := bit(op.Target)
		for i := range state {
			if i&t != 0 || !match(i) {
				continue
			}
			j := i | t
			state[i], state[j] = state[j], state[i]
		}
	case gate.KindSwap:
		b1 := bit(op.Target)
		b2 := bit(op.Target2)
		for i := range state {
			if i&b1 == 0 || i&b2 != 0 || !match(i) {
				continue
			}
			j := i ^ b1 ^ b2
			state[i], state[j] = state[j], state[i]
		}
	}
}

// Run applies a full operation sequence to state, in place.
func Run(ops []gate.Op, state []complex128, numQubits int) {
	for _, op := range ops {
		Apply(state, op, numQubits)
	}
}

// Unitary computes the dense 2^n x 2^n matrix of the circuit by evolving
// every basis column. This is the unitary-query collaborator of the
// verification path; synthesis itself never calls it.
func Unitary(c *gate.Circuit, numQubits int) [][]complex128 {
	dim := 1 << numQubits
	u := make([][]complex128, dim)
	for i := range u {
		u[i] = make([]complex128, dim)
	}
	col := make([]complex128, dim)
	for b := 0; b < dim; b++ {
		for i := range col {
			col[i] = 0
		}
		col[b] = 1
		Run(c.Ops(), col, numQubits)
		for i := range col {
			u[i][b] = col[i]
		}
	}
	return u
}

// ExtractState returns the first column of the unitary, the image of the
// all-zero basis state.
func ExtractState(u [][]complex128) []complex128 {
	out := make([]complex128, len(u))
	for i := range u {
		out[i] = u[i][0]
	}
	return out
}

// ExtractBlock returns the top-left 2^n x 2^n sub-block: the matrix the
// circuit encodes, scaled by the inverse Frobenius norm of the original.
func ExtractBlock(u [][]complex128, n int) [][]complex128 {
	dim := 1 << n
	out := make([][]complex128, dim)
	for i := 0; i < dim; i++ {
		out[i] = make([]complex128, dim)
		copy(out[i], u[i][:dim])
	}
	return out
}
