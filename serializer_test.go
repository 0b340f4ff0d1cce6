package wav

import (
	"bytes"
	"errors"
	"testing"
)

func TestBytesLayout(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5, 6}

	for _, order := range []Endianness{LittleEndian, BigEndian} {
		t.Run(order.String(), func(t *testing.T) {
			want := canonicalHeader(order, 1, 16000, 16, len(payload)).build(payload)

			f := New(order, 1, 16000, 16, payload)

			got := f.Bytes()
			if !bytes.Equal(got, want) {
				t.Fatalf("Bytes()=\n%v\nwant\n%v", got, want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		order    Endianness
		channels uint16
		rate     uint32
		depth    uint16
		data     []byte
	}{
		{"empty", LittleEndian, 1, 8000, 16, nil},
		{"mono 8 bit", LittleEndian, 1, 11025, 8, []byte{0, 128, 255}},
		{"stereo 16 bit big", BigEndian, 2, 44100, 16, []byte{1, 2, 3, 4, 5, 6, 7, 8}},
		{"24 bit big", BigEndian, 1, 96000, 24, []byte{1, 2, 3, 4, 5, 6}},
		{"32 bit surround", LittleEndian, 6, 48000, 32, make([]byte, 48)},
		{"odd payload", LittleEndian, 1, 8000, 16, []byte{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.order, tt.channels, tt.rate, tt.depth, tt.data)
			if err := f.Validate(); err != nil {
				t.Fatalf("New built an inconsistent file: %v", err)
			}

			got := mustParse(t, f.Bytes())
			assertFilesEqual(t, got, f)
		})
	}
}

func TestRoundTripParsedFile(t *testing.T) {
	h := canonicalHeader(BigEndian, 2, 22050, 16, 4)
	h.formatTag = 0xFFFE
	in := h.build([]byte{9, 8, 7, 6})

	f := mustParse(t, in)

	if out := f.Bytes(); !bytes.Equal(out, in) {
		t.Fatalf("Bytes()=%v, want the parsed input %v", out, in)
	}
}

func TestRoundTripAfterTransform(t *testing.T) {
	in := newTestFile(t, BigEndian, 2, 24, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12})

	out, err := Transform(in, 12)
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	assertFilesEqual(t, mustParse(t, out.Bytes()), out)
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWriteTo(t *testing.T) {
	f := New(LittleEndian, 1, 8000, 8, []byte{1, 2, 3})

	var buf bytes.Buffer

	n, err := f.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}

	if n != 47 || !bytes.Equal(buf.Bytes(), f.Bytes()) {
		t.Fatalf("WriteTo wrote %d bytes, want 47 matching Bytes()", n)
	}

	if _, err := f.WriteTo(failingWriter{}); !errors.Is(err, errWrite) {
		t.Fatalf("WriteTo err=%v, want %v", err, errWrite)
	}
}
