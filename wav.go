package wav

import (
	"math"
	"time"
)

const (
	// HeaderSize is the size of the canonical RIFF/WAVE header.
	HeaderSize = 44
	// riffSizeOverhead is the part of the header counted in the RIFF size,
	// everything but the RIFF tag and size fields.
	riffSizeOverhead = HeaderSize - 8
)

// bytesPerSample returns the number of whole bytes needed to store one
// sample of bitDepth bits.
func bytesPerSample(bitDepth int) int {
	if bitDepth <= 0 {
		return 0
	}

	return (bitDepth-1)/8 + 1
}

// storageBitDepth rounds bitDepth up to the next multiple of 8.
func storageBitDepth(bitDepth uint16) uint16 {
	return uint16(bytesPerSample(int(bitDepth)) * 8)
}

func byteAligned(bitDepth uint16) bool {
	return bitDepth%8 == 0
}

func framesDuration(frames int, sampleRate uint32) time.Duration {
	if sampleRate == 0 {
		return 0
	}

	return time.Duration(math.Round(float64(frames) / float64(sampleRate) * float64(time.Second)))
}
