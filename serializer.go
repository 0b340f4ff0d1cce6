package wav

import (
	"fmt"
	"io"
)

// Bytes serializes f to the canonical 44-byte header followed by the sample
// data. Tags are written as is, every other field uses f.ByteOrder().
func (f *File) Bytes() []byte {
	order := f.order.appendOrder()

	out := make([]byte, 0, HeaderSize+len(f.Data))
	out = append(out, f.RiffID[:]...)
	out = order.AppendUint32(out, f.RiffSize)
	out = append(out, f.Format[:]...)

	out = append(out, f.Fmt.ID[:]...)
	out = order.AppendUint32(out, f.Fmt.Size)
	out = order.AppendUint16(out, f.Fmt.FormatTag)
	out = order.AppendUint16(out, f.Fmt.NumChannels)
	out = order.AppendUint32(out, f.Fmt.SampleRate)
	out = order.AppendUint32(out, f.Fmt.AvgBytesPerSec)
	out = order.AppendUint16(out, f.Fmt.BlockAlign)
	out = order.AppendUint16(out, f.Fmt.BitsPerSample)

	out = append(out, f.DataID[:]...)
	out = order.AppendUint32(out, f.DataSize)

	return append(out, f.Data...)
}

// WriteTo writes the serialized file to w.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Bytes())
	if err != nil {
		return int64(n), fmt.Errorf("failed to write wav data: %w", err)
	}

	return int64(n), nil
}
