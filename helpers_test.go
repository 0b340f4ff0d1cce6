package wav

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// rawHeader describes a 44-byte header independently of the package
// serializer so tests can build malformed files.
type rawHeader struct {
	order      Endianness
	riffSize   uint32
	fmtSize    uint32
	formatTag  uint16
	channels   uint16
	sampleRate uint32
	byteRate   uint32
	blockAlign uint16
	bitDepth   uint16
	dataSize   uint32
}

func canonicalHeader(order Endianness, channels uint16, sampleRate uint32, bitDepth uint16, dataLen int) rawHeader {
	blockAlign := channels * uint16((bitDepth+7)/8)

	return rawHeader{
		order:      order,
		riffSize:   uint32(dataLen) + 36,
		fmtSize:    16,
		formatTag:  1,
		channels:   channels,
		sampleRate: sampleRate,
		byteRate:   sampleRate * uint32(blockAlign),
		blockAlign: blockAlign,
		bitDepth:   bitDepth,
		dataSize:   uint32(dataLen),
	}
}

func (h rawHeader) build(payload []byte) []byte {
	var order binary.ByteOrder = binary.LittleEndian
	if h.order == BigEndian {
		order = binary.BigEndian
	}

	b := make([]byte, 44, 44+len(payload))
	copy(b[0:], "RIFF")
	order.PutUint32(b[4:], h.riffSize)
	copy(b[8:], "WAVE")
	copy(b[12:], "fmt ")
	order.PutUint32(b[16:], h.fmtSize)
	order.PutUint16(b[20:], h.formatTag)
	order.PutUint16(b[22:], h.channels)
	order.PutUint32(b[24:], h.sampleRate)
	order.PutUint32(b[28:], h.byteRate)
	order.PutUint16(b[32:], h.blockAlign)
	order.PutUint16(b[34:], h.bitDepth)
	copy(b[36:], "data")
	order.PutUint32(b[40:], h.dataSize)

	return append(b, payload...)
}

func mustParse(t *testing.T, b []byte) *File {
	t.Helper()

	f, err := Parse(b)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	return f
}

func assertFilesEqual(t *testing.T, got, want *File) {
	t.Helper()

	if got.ByteOrder() != want.ByteOrder() {
		t.Fatalf("byte order=%s, want %s", got.ByteOrder(), want.ByteOrder())
	}

	if got.RiffID != want.RiffID || got.Format != want.Format || got.DataID != want.DataID {
		t.Fatalf("tags=%q/%q/%q, want %q/%q/%q", got.RiffID, got.Format, got.DataID, want.RiffID, want.Format, want.DataID)
	}

	if got.RiffSize != want.RiffSize || got.DataSize != want.DataSize {
		t.Fatalf("sizes=%d/%d, want %d/%d", got.RiffSize, got.DataSize, want.RiffSize, want.DataSize)
	}

	if got.Fmt != want.Fmt {
		t.Fatalf("fmt chunk=%+v, want %+v", got.Fmt, want.Fmt)
	}

	if !bytes.Equal(got.Data, want.Data) {
		t.Fatalf("data=%v, want %v", got.Data, want.Data)
	}
}
