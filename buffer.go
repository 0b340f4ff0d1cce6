package wav

import (
	"errors"
	"fmt"

	"github.com/go-audio/audio"
)

const pcm8Center = 128

var errNilBuffer = errors.New("can't convert a nil buffer")

// IntBuffer decodes the sample data into signed integers. 8-bit samples,
// stored unsigned, are re-centered around zero. A trailing partial sample is
// ignored.
func (f *File) IntBuffer() (*audio.IntBuffer, error) {
	if !f.Fmt.IsPCM() {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, f.Fmt.FormatTag)
	}

	depth := f.Fmt.BitsPerSample
	if depth == 0 || depth > maxBitDepth {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, depth)
	}

	stride := bytesPerSample(int(depth))
	buf := &audio.IntBuffer{
		Format:         f.AudioFormat(),
		SourceBitDepth: int(depth),
		Data:           make([]int, len(f.Data)/stride),
	}

	for i := range buf.Data {
		v, err := DecodeUint(f.Data, i*stride, stride, f.order)
		if err != nil {
			return nil, err
		}

		buf.Data[i] = signedSample(v, stride)
	}

	return buf, nil
}

// NewFromIntBuffer encodes signed samples into a new canonical PCM file.
// Values outside the range of bitDepth are truncated to its storage size.
func NewFromIntBuffer(buf *audio.IntBuffer, bitDepth uint16, order Endianness) (*File, error) {
	if buf == nil || buf.Format == nil {
		return nil, errNilBuffer
	}

	if bitDepth == 0 || bitDepth > maxBitDepth {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	stride := bytesPerSample(int(bitDepth))
	data := make([]byte, 0, len(buf.Data)*stride)

	for _, v := range buf.Data {
		data = appendUint(data, unsignedSample(v, stride), stride, order)
	}

	return New(order, uint16(buf.Format.NumChannels), uint32(buf.Format.SampleRate), bitDepth, data), nil
}

func signedSample(v uint32, stride int) int {
	if stride == 1 {
		return int(v) - pcm8Center
	}

	shift := 32 - 8*stride

	return int(int32(v<<shift) >> shift)
}

func unsignedSample(v int, stride int) uint32 {
	if stride == 1 {
		return uint32(v + pcm8Center)
	}

	return uint32(int32(v))
}
