package wav

import (
	"errors"
	"fmt"
)

const maxBitDepth = 32

var (
	// ErrUnsupportedBitDepth is returned when a bit depth conversion can't be
	// stored in whole bytes or doesn't fit the 32-bit sample range.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth conversion")
	// ErrUnsupportedFormat is returned when transforming non-PCM sample data.
	ErrUnsupportedFormat = errors.New("unsupported wav format")
	// ErrTrailingPartialSample is returned by a strict Transformer when the
	// payload doesn't end on a sample boundary.
	ErrTrailingPartialSample = errors.New("trailing partial sample")
)

// ScaleSample rescales a sample from oldDepth to newDepth bits. Reducing the
// depth truncates the low bits, increasing it zero fills them.
//
// A newDepth that is not a multiple of 8 is reached and then immediately
// expanded to the next multiple of 8, so the stored sample keeps only
// newDepth bits of precision.
//
// Equal depths leave the sample as is. Otherwise one of the two depths must
// be a multiple of 8, ScaleSample panics if neither is.
func ScaleSample(sample uint32, oldDepth, newDepth uint16) uint32 {
	if oldDepth == newDepth {
		return sample
	}

	if !byteAligned(oldDepth) && !byteAligned(newDepth) {
		panic(fmt.Sprintf("wav: scaling between two unaligned bit depths %d and %d", oldDepth, newDepth))
	}

	var out uint32
	if oldDepth > newDepth {
		out = sample >> (oldDepth - newDepth)
	} else {
		out = sample << (newDepth - oldDepth)
	}

	if !byteAligned(newDepth) {
		// newDepth is unaligned so storageBitDepth(newDepth) is aligned and
		// this recursion stops after one step.
		out = ScaleSample(out, newDepth, storageBitDepth(newDepth))
	}

	return out
}

// Transformer rewrites the sample data of a file at a new bit depth.
type Transformer struct {
	// Strict rejects payloads ending with an incomplete sample instead of
	// silently dropping those bytes.
	Strict bool
}

// Transform converts f to bitDepth using the default, lenient Transformer.
func Transform(f *File, bitDepth uint16) (*File, error) {
	return Transformer{}.Transform(f, bitDepth)
}

// Transform returns a copy of f with every sample rescaled to bitDepth and
// the dependent header fields updated. f is left untouched.
//
// Samples are read in order in strides of the current storage size and
// written back with the byte order of f. The stored bit depth is bitDepth
// rounded up to a multiple of 8, see ScaleSample.
func (t Transformer) Transform(f *File, bitDepth uint16) (*File, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil file", ErrUnsupportedFormat)
	}

	oldDepth := f.Fmt.BitsPerSample
	if err := checkBitDepths(oldDepth, bitDepth); err != nil {
		return nil, err
	}

	if !f.Fmt.IsPCM() {
		return nil, fmt.Errorf("%w: format tag %d", ErrUnsupportedFormat, f.Fmt.FormatTag)
	}

	oldStride := bytesPerSample(int(oldDepth))
	newStride := bytesPerSample(int(bitDepth))

	rest := len(f.Data) % oldStride
	if rest != 0 && t.Strict {
		return nil, fmt.Errorf("%w: %d trailing bytes after %d samples of %d bytes",
			ErrTrailingPartialSample, rest, len(f.Data)/oldStride, oldStride)
	}

	numSamples := len(f.Data) / oldStride
	data := make([]byte, 0, numSamples*newStride)

	for off := 0; off+oldStride <= len(f.Data); off += oldStride {
		sample, err := DecodeUint(f.Data, off, oldStride, f.order)
		if err != nil {
			return nil, fmt.Errorf("failed to decode sample at offset %d: %w", off, err)
		}

		data = appendUint(data, ScaleSample(sample, oldDepth, bitDepth), newStride, f.order)
	}

	out := f.Clone()
	out.Fmt = f.Fmt.withBitDepth(storageBitDepth(bitDepth))
	out.setData(data)

	return out, nil
}

func checkBitDepths(oldDepth, newDepth uint16) error {
	for _, depth := range []uint16{oldDepth, newDepth} {
		if depth == 0 || depth > maxBitDepth {
			return fmt.Errorf("%w: %d bits is outside 1..%d", ErrUnsupportedBitDepth, depth, maxBitDepth)
		}
	}

	if !byteAligned(oldDepth) && !byteAligned(newDepth) && oldDepth != newDepth {
		return fmt.Errorf("%w: %d to %d bits, one of them must be a multiple of 8",
			ErrUnsupportedBitDepth, oldDepth, newDepth)
	}

	return nil
}
