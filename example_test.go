package qsynth_test

import (
	"bytes"
	"fmt"
	"log"
	"math"

	qsynth "github.com/hupe1980/qsynth"
	"github.com/hupe1980/qsynth/persist"
)

// Example_prepareState synthesizes a Bell state preparation circuit.
func Example_prepareState() {
	s := math.Sqrt2 / 2
	bell := []complex128{complex(s, 0), 0, 0, complex(s, 0)}

	synth := qsynth.New()
	circuit, err := synth.PrepareState(bell, qsynth.WithReal())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("ops: %d rotations: %d\n", circuit.Len(), circuit.Rotations())
	// Output: ops: 2 rotations: 2
}

// Example_encodeMatrix embeds a matrix as the top-left block of a unitary.
func Example_encodeMatrix() {
	a := [][]complex128{
		{complex(0.6, 0), 0},
		{complex(0.8, 0), 0},
	}

	synth := qsynth.New()
	res, err := synth.EncodeMatrix(a, qsynth.WithReal())
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("data qubits: %d circuit qubits: %d norm: %.1f\n",
		res.NumQubits, 2*res.NumQubits, res.FrobeniusNorm)
	// Output: data qubits: 1 circuit qubits: 2 norm: 1.0
}

// Example_persist round-trips a synthesized circuit through the snapshot
// format.
func Example_persist() {
	synth := qsynth.New()
	circuit, err := synth.PrepareState([]complex128{3, 4}, qsynth.WithReal())
	if err != nil {
		log.Fatal(err)
	}

	snap := &persist.Snapshot{
		NumQubits: 1,
		IsReal:    true,
		Ops:       circuit.Ops(),
	}

	var buf bytes.Buffer
	if err := persist.Save(&buf, snap, persist.CodecZstd); err != nil {
		log.Fatal(err)
	}
	loaded, err := persist.Load(&buf)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("ops restored: %d\n", loaded.Circuit().Len())
	// Output: ops restored: 1
}
