package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Endianness is the byte order used for the numeric fields and samples of a
// WAV file. The format carries no marker for it, see DetectByteOrder.
type Endianness uint8

const (
	// LittleEndian is the byte order of canonical RIFF files.
	LittleEndian Endianness = iota
	// BigEndian stores the most significant byte first.
	BigEndian
)

const maxCodecLength = 4

var (
	// ErrOutOfBounds is returned when a field read runs past the end of the buffer.
	ErrOutOfBounds = errors.New("read out of bounds")
	// ErrInvalidLength is returned for field lengths the codec can't represent.
	ErrInvalidLength = errors.New("invalid field length")
)

func (e Endianness) String() string {
	switch e {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	default:
		return fmt.Sprintf("Endianness(%d)", uint8(e))
	}
}

func (e Endianness) appendOrder() binary.AppendByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// DecodeUint reads length bytes of b starting at offset and combines them
// into an unsigned integer. With LittleEndian the first byte is the least
// significant one.
func DecodeUint(b []byte, offset, length int, order Endianness) (uint32, error) {
	if length < 1 || length > maxCodecLength {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	if offset < 0 || offset+length > len(b) {
		return 0, fmt.Errorf("%w: %d bytes at offset %d, buffer size %d", ErrOutOfBounds, length, offset, len(b))
	}

	var v uint32

	span := b[offset : offset+length]
	for i := range span {
		shift := i
		if order == BigEndian {
			shift = length - 1 - i
		}

		v |= uint32(span[i]) << (8 * shift)
	}

	return v, nil
}

// EncodeUint is the inverse of DecodeUint. Bits above length bytes are
// discarded, the result always has exactly length bytes.
func EncodeUint(v uint32, length int, order Endianness) []byte {
	return appendUint(make([]byte, 0, max(length, 0)), v, length, order)
}

func appendUint(dst []byte, v uint32, length int, order Endianness) []byte {
	for i := range length {
		shift := i
		if order == BigEndian {
			shift = length - 1 - i
		}

		// shifts of 32 or more yield 0 for uint32
		dst = append(dst, byte(v>>(8*uint(shift))))
	}

	return dst
}
