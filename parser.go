package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrAmbiguousOrCorruptHeader is returned when the RIFF chunk size can't
	// be reconciled with the buffer length under either byte order, or when
	// the data chunk size disagrees with the payload.
	ErrAmbiguousOrCorruptHeader = errors.New("ambiguous or corrupt wav header")
	// ErrUnsupportedChunkLayout is returned when the fmt chunk is not the
	// minimal 16-byte PCM layout.
	ErrUnsupportedChunkLayout = errors.New("unsupported fmt chunk layout")
)

// Header field offsets of the canonical 44-byte layout.
const (
	offRiffID        = 0
	offRiffSize      = 4
	offFormat        = 8
	offFmtID         = 12
	offFmtSize       = 16
	offFormatTag     = 20
	offNumChannels   = 22
	offSampleRate    = 24
	offByteRate      = 28
	offBlockAlign    = 32
	offBitsPerSample = 34
	offDataID        = 36
	offDataSize      = 40
)

// Read reads r until EOF and parses the result.
func Read(r io.Reader) (*File, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read wav data: %w", err)
	}

	return Parse(b)
}

// DetectByteOrder infers the byte order of a WAV buffer from its RIFF chunk
// size, the only hint the format provides. The size must account for the
// whole buffer minus the 8 bytes of the RIFF tag and size. Little-endian is
// tried first and wins when both readings match.
func DetectByteOrder(b []byte) (Endianness, error) {
	le, err := DecodeUint(b, offRiffSize, 4, LittleEndian)
	if err != nil {
		return LittleEndian, err
	}

	total := uint64(len(b))
	if uint64(le)+8 == total {
		return LittleEndian, nil
	}

	be, _ := DecodeUint(b, offRiffSize, 4, BigEndian)
	if uint64(be)+8 == total {
		return BigEndian, nil
	}

	return LittleEndian, fmt.Errorf("%w: riff size reads %d (little-endian) or %d (big-endian), want %d for a %d byte buffer",
		ErrAmbiguousOrCorruptHeader, le, be, total-8, total)
}

// Parse decodes a canonical WAV file held in b. The sample data is copied,
// b can be reused once Parse returns.
//
// An odd sized data chunk may be followed by a single pad byte. It is
// dropped, and the riff size is adjusted to describe the unpadded file.
func Parse(b []byte) (*File, error) {
	if len(b) < HeaderSize {
		return nil, fmt.Errorf("%w: header needs %d bytes, buffer size %d", ErrOutOfBounds, HeaderSize, len(b))
	}

	order, err := DetectByteOrder(b)
	if err != nil {
		return nil, err
	}

	f := &File{order: order}
	copy(f.RiffID[:], b[offRiffID:])
	copy(f.Format[:], b[offFormat:])
	copy(f.Fmt.ID[:], b[offFmtID:])
	copy(f.DataID[:], b[offDataID:])

	r := fieldReader{b: b, order: order}
	f.RiffSize = r.u32(offRiffSize)
	f.Fmt.Size = r.u32(offFmtSize)
	f.Fmt.FormatTag = r.u16(offFormatTag)
	f.Fmt.NumChannels = r.u16(offNumChannels)
	f.Fmt.SampleRate = r.u32(offSampleRate)
	f.Fmt.AvgBytesPerSec = r.u32(offByteRate)
	f.Fmt.BlockAlign = r.u16(offBlockAlign)
	f.Fmt.BitsPerSample = r.u16(offBitsPerSample)
	f.DataSize = r.u32(offDataSize)

	if r.err != nil {
		return nil, r.err
	}

	if f.Fmt.Size != fmtChunkSizePCM {
		return nil, fmt.Errorf("%w: fmt chunk size %d at offset %d, want %d",
			ErrUnsupportedChunkLayout, f.Fmt.Size, offFmtSize, fmtChunkSizePCM)
	}

	payload := b[HeaderSize:]
	if hasPadByte(f.DataSize, len(payload)) {
		// RIFF pads odd sized chunks to an even length, the pad byte is not
		// sample data and the riff size no longer counts it.
		payload = payload[:f.DataSize]
		f.RiffSize = f.DataSize + riffSizeOverhead
	}

	if uint64(f.DataSize) != uint64(len(payload)) {
		return nil, fmt.Errorf("%w: data size %d at offset %d, payload is %d bytes",
			ErrAmbiguousOrCorruptHeader, f.DataSize, offDataSize, len(payload))
	}

	f.Data = bytes.Clone(payload)

	return f, nil
}

func hasPadByte(dataSize uint32, payloadLen int) bool {
	return dataSize%2 == 1 && uint64(dataSize)+1 == uint64(payloadLen)
}

// fieldReader decodes header fields and keeps the first error.
type fieldReader struct {
	b     []byte
	order Endianness
	err   error
}

func (r *fieldReader) u32(offset int) uint32 {
	return r.read(offset, 4)
}

func (r *fieldReader) u16(offset int) uint16 {
	return uint16(r.read(offset, 2))
}

func (r *fieldReader) read(offset, length int) uint32 {
	if r.err != nil {
		return 0
	}

	var v uint32

	v, r.err = DecodeUint(r.b, offset, length, r.order)

	return v
}
