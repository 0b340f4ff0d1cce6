package wav

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/go-audio/riff"
)

// ErrInconsistentHeader is returned by Validate when the header fields
// disagree with each other or with the sample data.
var ErrInconsistentHeader = errors.New("inconsistent wav header")

// File is an in-memory canonical WAV file: the 44-byte header fields and the
// raw sample bytes.
//
// The identifier fields are tags and don't depend on the byte order. Every
// other numeric field was decoded, and is encoded again, using ByteOrder.
type File struct {
	RiffID   [4]byte
	RiffSize uint32
	Format   [4]byte

	Fmt FmtChunk

	DataID   [4]byte
	DataSize uint32
	// Data holds the raw PCM payload.
	Data []byte

	order Endianness
}

// New creates a canonical PCM file holding data, with every size field
// derived from it. bitDepth is stored rounded up to whole bytes.
func New(order Endianness, numChans uint16, sampleRate uint32, bitDepth uint16, data []byte) *File {
	fmtChunk := FmtChunk{
		ID:          riff.FmtID,
		Size:        fmtChunkSizePCM,
		FormatTag:   wavFormatPCM,
		NumChannels: numChans,
		SampleRate:  sampleRate,
	}

	f := &File{
		RiffID: riff.RiffID,
		Format: riff.WavFormatID,
		Fmt:    fmtChunk.withBitDepth(storageBitDepth(bitDepth)),
		DataID: riff.DataFormatID,
		order:  order,
	}
	f.setData(bytes.Clone(data))

	return f
}

// ByteOrder returns the byte order detected when the file was parsed. It
// never changes for the lifetime of the file.
func (f *File) ByteOrder() Endianness {
	return f.order
}

// BitDepth returns the number of bits per sample.
func (f *File) BitDepth() uint16 {
	return f.Fmt.BitsPerSample
}

// IsRIFFWave reports whether the identifier fields carry the standard
// RIFF/WAVE/fmt/data tags.
func (f *File) IsRIFFWave() bool {
	return f.RiffID == riff.RiffID &&
		f.Format == riff.WavFormatID &&
		f.Fmt.ID == riff.FmtID &&
		f.DataID == riff.DataFormatID
}

// NumFrames returns the number of complete multi-channel frames in Data.
func (f *File) NumFrames() int {
	if f.Fmt.BlockAlign == 0 {
		return 0
	}

	return len(f.Data) / int(f.Fmt.BlockAlign)
}

// Duration returns the playback time of the sample data.
func (f *File) Duration() time.Duration {
	return framesDuration(f.NumFrames(), f.Fmt.SampleRate)
}

// Clone returns a deep copy of f.
func (f *File) Clone() *File {
	if f == nil {
		return nil
	}

	out := *f
	out.Data = bytes.Clone(f.Data)

	return &out
}

// Validate checks that the size and rate fields agree with each other and
// with the sample data.
func (f *File) Validate() error {
	if want := f.DataSize + riffSizeOverhead; f.RiffSize != want {
		return fmt.Errorf("%w: riff size %d, want %d", ErrInconsistentHeader, f.RiffSize, want)
	}

	if int64(f.DataSize) != int64(len(f.Data)) {
		return fmt.Errorf("%w: data size %d, payload is %d bytes", ErrInconsistentHeader, f.DataSize, len(f.Data))
	}

	want := f.Fmt.withBitDepth(f.Fmt.BitsPerSample)
	if f.Fmt.BlockAlign != want.BlockAlign {
		return fmt.Errorf("%w: block align %d, want %d", ErrInconsistentHeader, f.Fmt.BlockAlign, want.BlockAlign)
	}

	if f.Fmt.AvgBytesPerSec != want.AvgBytesPerSec {
		return fmt.Errorf("%w: byte rate %d, want %d", ErrInconsistentHeader, f.Fmt.AvgBytesPerSec, want.AvgBytesPerSec)
	}

	return nil
}

// setData replaces the payload and updates the two size fields that depend
// on it.
func (f *File) setData(data []byte) {
	f.Data = data
	f.DataSize = uint32(len(data))
	f.RiffSize = f.DataSize + riffSizeOverhead
}
