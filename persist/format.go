package persist

import (
	"errors"
	"hash/crc32"
)

const (
	// MagicNumber identifies qsynth snapshot blobs (ASCII: "QSN0")
	MagicNumber = 0x51534E30
	// Version is the current snapshot format version (v1.0.0)
	Version = 0x00010000
)

// Codec selects the payload compression.
type Codec uint8

const (
	// CodecRaw stores the op stream uncompressed.
	CodecRaw Codec = iota
	// CodecZstd compresses with zstd, the default for large circuits.
	CodecZstd
	// CodecLZ4 compresses with lz4, cheaper but lighter.
	CodecLZ4
)

func (c Codec) String() string {
	switch c {
	case CodecRaw:
		return "raw"
	case CodecZstd:
		return "zstd"
	case CodecLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported version")
	ErrUnknownCodec   = errors.New("unknown codec")
	ErrChecksum       = errors.New("checksum mismatch")
	ErrTruncated      = errors.New("truncated snapshot")
)

// crcTable is pre-computed for the CRC32-Castagnoli polynomial; hardware
// accelerated where available.
var crcTable = crc32.MakeTable(crc32.Castagnoli)

func checksum(data []byte) uint32 {
	return crc32.Checksum(data, crcTable)
}
