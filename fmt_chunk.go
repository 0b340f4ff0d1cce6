package wav

const (
	wavFormatPCM = 1
	// fmtChunkSizePCM is the size of the minimal PCM fmt chunk body.
	fmtChunkSizePCM = 16
)

// FmtChunk stores the fields of the minimal 16-byte PCM fmt chunk.
type FmtChunk struct {
	ID             [4]byte
	Size           uint32
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

// IsPCM reports whether the chunk describes linear integer PCM.
func (f *FmtChunk) IsPCM() bool {
	return f != nil && f.FormatTag == wavFormatPCM
}

func (f *FmtChunk) Clone() *FmtChunk {
	if f == nil {
		return nil
	}

	out := *f

	return &out
}

// withBitDepth returns a copy using bitDepth as its storage depth, with block
// align and byte rate recomputed.
func (f FmtChunk) withBitDepth(bitDepth uint16) FmtChunk {
	f.BitsPerSample = bitDepth
	f.BlockAlign = f.NumChannels * uint16(bytesPerSample(int(bitDepth)))
	f.AvgBytesPerSec = f.SampleRate * uint32(f.BlockAlign)

	return f
}
