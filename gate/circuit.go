package gate

// Appender is the append-only sink gate emission writes to. A live circuit
// collaborator implements it; Circuit is the in-memory default.
type Appender interface {
	Append(op Op)
}

// Circuit is an ordered, append-only sequence of gate operations.
//
// It is not safe for concurrent mutation; one emission call owns the
// circuit for its duration.
type Circuit struct {
	ops []Op
}

// NewCircuit returns an empty circuit.
func NewCircuit() *Circuit {
	return &Circuit{}
}

// Append adds op to the end of the sequence.
func (c *Circuit) Append(op Op) {
	c.ops = append(c.ops, op)
}

// Extend appends all operations of other, in order.
func (c *Circuit) Extend(other *Circuit) {
	c.ops = append(c.ops, other.ops...)
}

// Ops returns the operation sequence in emission order. The returned slice
// is owned by the circuit; callers must not mutate it.
func (c *Circuit) Ops() []Op {
	return c.ops
}

// Len returns the number of operations.
func (c *Circuit) Len() int {
	return len(c.ops)
}

// Rotations returns the number of rotation operations. Pruning and
// Gray-code merging show up here first.
func (c *Circuit) Rotations() int {
	var n int
	for _, op := range c.ops {
		if op.Kind == KindRY || op.Kind == KindRZ {
			n++
		}
	}
	return n
}

// NumQubits returns one past the highest qubit index referenced.
func (c *Circuit) NumQubits() int {
	max := -1
	for _, op := range c.ops {
		if op.Target > max {
			max = op.Target
		}
		if op.Kind == KindSwap && op.Target2 > max {
			max = op.Target2
		}
		for _, ctl := range op.Controls {
			if ctl.Qubit > max {
				max = ctl.Qubit
			}
		}
	}
	return max + 1
}

// Dagger returns the inverse circuit: reversed order, each operation
// inverted.
func (c *Circuit) Dagger() *Circuit {
	inv := &Circuit{ops: make([]Op, 0, len(c.ops))}
	for i := len(c.ops) - 1; i >= 0; i-- {
		inv.ops = append(inv.ops, c.ops[i].Dagger())
	}
	return inv
}
