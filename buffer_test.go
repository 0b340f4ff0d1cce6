package wav

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-audio/audio"
)

func TestIntBuffer(t *testing.T) {
	tests := []struct {
		name  string
		order Endianness
		depth uint16
		data  []byte
		want  []int
	}{
		{"8 bit", LittleEndian, 8, []byte{0, 128, 255}, []int{-128, 0, 127}},
		{"16 bit little", LittleEndian, 16, []byte{0xFF, 0x7F, 0x00, 0x80, 0xFF, 0xFF}, []int{32767, -32768, -1}},
		{"16 bit big", BigEndian, 16, []byte{0x7F, 0xFF, 0x80, 0x00}, []int{32767, -32768}},
		{"24 bit big", BigEndian, 24, []byte{0xFF, 0xFF, 0xFE, 0x00, 0x00, 0x02}, []int{-2, 2}},
		{"32 bit little", LittleEndian, 32, []byte{0x00, 0x00, 0x00, 0x80}, []int{-2147483648}},
		{"trailing byte", LittleEndian, 16, []byte{0x01, 0x00, 0x05}, []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.order, 1, 8000, tt.depth, tt.data)

			buf, err := f.IntBuffer()
			if err != nil {
				t.Fatalf("IntBuffer failed: %v", err)
			}

			if buf.SourceBitDepth != int(tt.depth) || buf.Format.SampleRate != 8000 || buf.Format.NumChannels != 1 {
				t.Fatalf("unexpected buffer format %+v @ %d bits", buf.Format, buf.SourceBitDepth)
			}

			if len(buf.Data) != len(tt.want) {
				t.Fatalf("got %d samples, want %d", len(buf.Data), len(tt.want))
			}

			for i := range tt.want {
				if buf.Data[i] != tt.want[i] {
					t.Fatalf("sample[%d]=%d, want %d", i, buf.Data[i], tt.want[i])
				}
			}
		})
	}
}

func TestIntBufferErrors(t *testing.T) {
	f := New(LittleEndian, 1, 8000, 16, []byte{0, 0})
	f.Fmt.FormatTag = 3

	if _, err := f.IntBuffer(); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("IntBuffer err=%v, want %v", err, ErrUnsupportedFormat)
	}

	f = New(LittleEndian, 1, 8000, 16, []byte{0, 0})
	f.Fmt.BitsPerSample = 0

	if _, err := f.IntBuffer(); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Fatalf("IntBuffer err=%v, want %v", err, ErrUnsupportedBitDepth)
	}
}

func TestNewFromIntBuffer(t *testing.T) {
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 2, SampleRate: 22050},
		Data:   []int{-32768, 32767, 0, -1},
	}

	f, err := NewFromIntBuffer(buf, 16, BigEndian)
	if err != nil {
		t.Fatalf("NewFromIntBuffer failed: %v", err)
	}

	want := []byte{0x80, 0x00, 0x7F, 0xFF, 0x00, 0x00, 0xFF, 0xFF}
	if !bytes.Equal(f.Data, want) {
		t.Fatalf("data=%v, want %v", f.Data, want)
	}

	if err := f.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}

	back, err := f.IntBuffer()
	if err != nil {
		t.Fatalf("IntBuffer failed: %v", err)
	}

	for i := range buf.Data {
		if back.Data[i] != buf.Data[i] {
			t.Fatalf("sample[%d]=%d, want %d", i, back.Data[i], buf.Data[i])
		}
	}
}

func TestNewFromIntBuffer8Bit(t *testing.T) {
	buf := &audio.IntBuffer{
		Format: &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:   []int{-128, 0, 127},
	}

	f, err := NewFromIntBuffer(buf, 8, LittleEndian)
	if err != nil {
		t.Fatalf("NewFromIntBuffer failed: %v", err)
	}

	if !bytes.Equal(f.Data, []byte{0, 128, 255}) {
		t.Fatalf("data=%v, want [0 128 255]", f.Data)
	}
}

func TestNewFromIntBufferErrors(t *testing.T) {
	if _, err := NewFromIntBuffer(nil, 16, LittleEndian); !errors.Is(err, errNilBuffer) {
		t.Fatalf("err=%v, want %v", err, errNilBuffer)
	}

	buf := &audio.IntBuffer{Format: &audio.Format{NumChannels: 1, SampleRate: 8000}}
	if _, err := NewFromIntBuffer(buf, 33, LittleEndian); !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Fatalf("err=%v, want %v", err, ErrUnsupportedBitDepth)
	}
}
