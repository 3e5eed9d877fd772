package sim

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/qsynth/gate"
)

func TestApplyRY(t *testing.T) {
	state := []complex128{1, 0}
	Apply(state, gate.RY(math.Pi/2, 0), 1)

	s := math.Sqrt2 / 2
	assert.InDelta(t, s, real(state[0]), 1e-12)
	assert.InDelta(t, s, real(state[1]), 1e-12)
}

func TestApplyRZ(t *testing.T) {
	s := math.Sqrt2 / 2
	state := []complex128{complex(s, 0), complex(s, 0)}
	Apply(state, gate.RZ(math.Pi, 0), 1)

	assert.InDelta(t, 0, cmplx.Abs(state[0]-complex(0, -s)), 1e-12)
	assert.InDelta(t, 0, cmplx.Abs(state[1]-complex(0, s)), 1e-12)
}

func TestApplyXQubitOrdering(t *testing.T) {
	// Qubit 0 is the most significant index bit: X on qubit 0 of a
	// two-qubit register maps |00> to |10>, index 0 to index 2.
	state := []complex128{1, 0, 0, 0}
	Apply(state, gate.X(0), 2)
	assert.Equal(t, complex128(1), state[2])

	state = []complex128{1, 0, 0, 0}
	Apply(state, gate.X(1), 2)
	assert.Equal(t, complex128(1), state[1])
}

func TestApplyControlled(t *testing.T) {
	// CNOT control qubit 0, target qubit 1.
	cnot := gate.X(1, gate.Control{Qubit: 0, Value: 1})

	state := []complex128{1, 0, 0, 0} // |00>
	Apply(state, cnot, 2)
	assert.Equal(t, complex128(1), state[0])

	state = []complex128{0, 0, 1, 0} // |10>
	Apply(state, cnot, 2)
	assert.Equal(t, complex128(1), state[3])

	// A value-0 control fires on the complementary branch.
	notc := gate.X(1, gate.Control{Qubit: 0, Value: 0})
	state = []complex128{1, 0, 0, 0}
	Apply(state, notc, 2)
	assert.Equal(t, complex128(1), state[1])
}

func TestApplySwap(t *testing.T) {
	// SWAP(0,1) on |01> gives |10>.
	state := []complex128{0, 1, 0, 0}
	Apply(state, gate.Swap(0, 1), 2)
	assert.Equal(t, complex128(1), state[2])

	// |00> and |11> are fixed points.
	state = []complex128{0, 0, 0, 1}
	Apply(state, gate.Swap(0, 1), 2)
	assert.Equal(t, complex128(1), state[3])
}

func TestUnitary(t *testing.T) {
	c := gate.NewCircuit()
	c.Append(gate.X(0))

	u := Unitary(c, 1)
	assert.Equal(t, complex128(1), u[1][0])
	assert.Equal(t, complex128(1), u[0][1])
	assert.Equal(t, complex128(0), u[0][0])
}

func TestUnitaryIsUnitary(t *testing.T) {
	c := gate.NewCircuit()
	c.Append(gate.RY(0.7, 0))
	c.Append(gate.RZ(-1.3, 1, gate.Control{Qubit: 0, Value: 1}))
	c.Append(gate.X(1, gate.Control{Qubit: 0, Value: 0}))

	u := Unitary(c, 2)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var dot complex128
			for k := 0; k < 4; k++ {
				dot += cmplx.Conj(u[k][i]) * u[k][j]
			}
			want := complex128(0)
			if i == j {
				want = 1
			}
			assert.InDelta(t, 0, cmplx.Abs(dot-want), 1e-12, "entry %d,%d", i, j)
		}
	}
}

func TestExtract(t *testing.T) {
	c := gate.NewCircuit()
	c.Append(gate.RY(math.Pi/2, 0))
	u := Unitary(c, 1)

	s := math.Sqrt2 / 2
	state := ExtractState(u)
	assert.InDelta(t, s, real(state[0]), 1e-12)
	assert.InDelta(t, s, real(state[1]), 1e-12)

	block := ExtractBlock(u, 0)
	assert.Len(t, block, 1)
	assert.InDelta(t, s, real(block[0][0]), 1e-12)
}
