// Package persist serializes synthesized circuits. Synthesis is
// deterministic but not free for large qubit counts, so gate sequences are
// written once and shared through a blobstore.
//
// Snapshot layout (little-endian): a fixed header with magic, version,
// codec and synthesis metadata, a compressed op stream, and a CRC-32C
// trailer over everything before it.
package persist

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/qsynth/blobstore"
	"github.com/hupe1980/qsynth/gate"
)

// Snapshot is a persisted synthesis result.
type Snapshot struct {
	NumQubits     int
	IsReal        bool
	Epsilon       float64
	FrobeniusNorm float64
	Ops           []gate.Op
}

// Circuit rebuilds the circuit from the op stream.
func (s *Snapshot) Circuit() *gate.Circuit {
	c := gate.NewCircuit()
	for _, op := range s.Ops {
		c.Append(op)
	}
	return c
}

const flagIsReal = 1 << 0

// Save writes the snapshot to w using the given codec.
func Save(w io.Writer, snap *Snapshot, codec Codec) error {
	payload, err := compress(encodeOps(snap.Ops), codec)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	var flags uint8
	if snap.IsReal {
		flags |= flagIsReal
	}
	for _, v := range []any{
		uint32(MagicNumber),
		uint32(Version),
		uint8(codec),
		flags,
		[2]byte{},
		uint32(snap.NumQubits),
		math.Float64bits(snap.Epsilon),
		math.Float64bits(snap.FrobeniusNorm),
		uint32(len(payload)),
	} {
		if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
			return err
		}
	}
	buf.Write(payload)
	if err := binary.Write(&buf, binary.LittleEndian, checksum(buf.Bytes())); err != nil {
		return err
	}

	_, err = w.Write(buf.Bytes())
	return err
}

// Load reads a snapshot written by Save.
func Load(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	const headerLen = 4 + 4 + 1 + 1 + 2 + 4 + 8 + 8 + 4
	if len(data) < headerLen+4 {
		return nil, ErrTruncated
	}

	body, trailer := data[:len(data)-4], data[len(data)-4:]
	if binary.LittleEndian.Uint32(trailer) != checksum(body) {
		return nil, ErrChecksum
	}

	if binary.LittleEndian.Uint32(body[0:]) != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if binary.LittleEndian.Uint32(body[4:]) != Version {
		return nil, ErrInvalidVersion
	}
	codec := Codec(body[8])
	flags := body[9]
	numQubits := binary.LittleEndian.Uint32(body[12:])
	epsilon := math.Float64frombits(binary.LittleEndian.Uint64(body[16:]))
	fro := math.Float64frombits(binary.LittleEndian.Uint64(body[24:]))
	payloadLen := binary.LittleEndian.Uint32(body[32:])

	if int(payloadLen) != len(body)-headerLen {
		return nil, ErrTruncated
	}
	raw, err := decompress(body[headerLen:], codec)
	if err != nil {
		return nil, err
	}
	ops, err := decodeOps(raw)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		NumQubits:     int(numQubits),
		IsReal:        flags&flagIsReal != 0,
		Epsilon:       epsilon,
		FrobeniusNorm: fro,
		Ops:           ops,
	}, nil
}

// SaveTo persists the snapshot into a blobstore.
func SaveTo(ctx context.Context, store blobstore.Store, name string, snap *Snapshot, codec Codec) error {
	var buf bytes.Buffer
	if err := Save(&buf, snap, codec); err != nil {
		return err
	}
	return store.Put(ctx, name, buf.Bytes())
}

// LoadFrom reads a snapshot back from a blobstore.
func LoadFrom(ctx context.Context, store blobstore.Store, name string) (*Snapshot, error) {
	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	return Load(bytes.NewReader(data))
}

// encodeOps writes the op stream.
// Format per op: [Kind:1][Target:2][Target2:2][Angle:8][NumControls:2]
// followed by [Qubit:2][Value:1] per control.
func encodeOps(ops []gate.Op) []byte {
	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(ops)))
	for _, op := range ops {
		_ = binary.Write(&buf, binary.LittleEndian, uint8(op.Kind))
		_ = binary.Write(&buf, binary.LittleEndian, uint16(op.Target))  //nolint:gosec
		_ = binary.Write(&buf, binary.LittleEndian, uint16(op.Target2)) //nolint:gosec
		_ = binary.Write(&buf, binary.LittleEndian, math.Float64bits(op.Angle))
		_ = binary.Write(&buf, binary.LittleEndian, uint16(len(op.Controls))) //nolint:gosec
		for _, c := range op.Controls {
			_ = binary.Write(&buf, binary.LittleEndian, uint16(c.Qubit)) //nolint:gosec
			_ = binary.Write(&buf, binary.LittleEndian, c.Value)
		}
	}
	return buf.Bytes()
}

func decodeOps(data []byte) ([]gate.Op, error) {
	r := bytes.NewReader(data)
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTruncated, err)
	}
	ops := make([]gate.Op, 0, count)
	for i := uint32(0); i < count; i++ {
		var (
			kind         uint8
			target, tg2  uint16
			angleBits    uint64
			controlCount uint16
		)
		for _, dst := range []any{&kind, &target, &tg2, &angleBits, &controlCount} {
			if err := binary.Read(r, binary.LittleEndian, dst); err != nil {
				return nil, fmt.Errorf("%w: op %d: %w", ErrTruncated, i, err)
			}
		}
		op := gate.Op{
			Kind:    gate.Kind(kind),
			Target:  int(target),
			Target2: int(tg2),
			Angle:   math.Float64frombits(angleBits),
		}
		if controlCount > 0 {
			op.Controls = make([]gate.Control, controlCount)
			for j := range op.Controls {
				var qubit uint16
				var value uint8
				if err := binary.Read(r, binary.LittleEndian, &qubit); err != nil {
					return nil, fmt.Errorf("%w: op %d control %d: %w", ErrTruncated, i, j, err)
				}
				if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
					return nil, fmt.Errorf("%w: op %d control %d: %w", ErrTruncated, i, j, err)
				}
				op.Controls[j] = gate.Control{Qubit: int(qubit), Value: value}
			}
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func compress(raw []byte, codec Codec) ([]byte, error) {
	switch codec {
	case CodecRaw:
		return raw, nil
	case CodecZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(raw, nil), nil
	case CodecLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(raw); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, ErrUnknownCodec
	}
}

func decompress(payload []byte, codec Codec) ([]byte, error) {
	switch codec {
	case CodecRaw:
		return payload, nil
	case CodecZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(payload, nil)
	case CodecLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(payload)))
	default:
		return nil, ErrUnknownCodec
	}
}
