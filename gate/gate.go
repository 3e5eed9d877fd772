// Package gate defines the abstract gate model and emits gate sequences
// from binary angle trees.
//
// Emission only appends immutable Op records to an Appender; executing or
// simulating the resulting sequence is the collaborator's concern.
package gate

import (
	"fmt"
	"strings"
)

// Kind discriminates the supported operation variants.
type Kind uint8

const (
	// KindRY is a rotation around the Y axis.
	KindRY Kind = iota
	// KindRZ is a rotation around the Z axis.
	KindRZ
	// KindX is a NOT, or a fan-out controlled NOT when controls are set.
	KindX
	// KindSwap exchanges two qubits.
	KindSwap
)

func (k Kind) String() string {
	switch k {
	case KindRY:
		return "RY"
	case KindRZ:
		return "RZ"
	case KindX:
		return "X"
	case KindSwap:
		return "SWAP"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Control is one control qubit together with the basis value (0 or 1) it
// must hold for the operation to fire.
type Control struct {
	Qubit int
	Value uint8
}

// Op is a single immutable gate operation. Target2 is only meaningful for
// KindSwap, Angle only for rotations.
type Op struct {
	Kind     Kind
	Target   int
	Target2  int
	Angle    float64
	Controls []Control
}

// RY returns a Y rotation on target, optionally fan-out controlled.
func RY(angle float64, target int, controls ...Control) Op {
	return Op{Kind: KindRY, Target: target, Angle: angle, Controls: controls}
}

// RZ returns a Z rotation on target, optionally fan-out controlled.
func RZ(angle float64, target int, controls ...Control) Op {
	return Op{Kind: KindRZ, Target: target, Angle: angle, Controls: controls}
}

// X returns a NOT on target, optionally fan-out controlled.
func X(target int, controls ...Control) Op {
	return Op{Kind: KindX, Target: target, Controls: controls}
}

// Swap returns a SWAP of qubits a and b.
func Swap(a, b int) Op {
	return Op{Kind: KindSwap, Target: a, Target2: b}
}

// Dagger returns the inverse of the operation: rotations negate their
// angle, X and SWAP are self-inverse.
func (o Op) Dagger() Op {
	switch o.Kind {
	case KindRY, KindRZ:
		inv := o
		inv.Angle = -o.Angle
		return inv
	default:
		return o
	}
}

// Controlled returns a copy of the operation with extra controls appended.
func (o Op) Controlled(extra ...Control) Op {
	if len(extra) == 0 {
		return o
	}
	out := o
	out.Controls = make([]Control, 0, len(o.Controls)+len(extra))
	out.Controls = append(out.Controls, o.Controls...)
	out.Controls = append(out.Controls, extra...)
	return out
}

func (o Op) String() string {
	var sb strings.Builder
	switch o.Kind {
	case KindSwap:
		fmt.Fprintf(&sb, "SWAP(%d,%d)", o.Target, o.Target2)
	case KindX:
		fmt.Fprintf(&sb, "X(%d)", o.Target)
	default:
		fmt.Fprintf(&sb, "%s(%.6g)@%d", o.Kind, o.Angle, o.Target)
	}
	for _, c := range o.Controls {
		fmt.Fprintf(&sb, " c%d=%d", c.Qubit, c.Value)
	}
	return sb.String()
}
