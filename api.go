package wav

import "github.com/go-audio/audio"

// FormatChunk returns a copy of the fmt chunk.
func (f *File) FormatChunk() *FmtChunk {
	if f == nil {
		return nil
	}

	return f.Fmt.Clone()
}

// AudioFormat returns the audio format of the sample data.
func (f *File) AudioFormat() *audio.Format {
	if f == nil {
		return nil
	}

	return &audio.Format{
		NumChannels: int(f.Fmt.NumChannels),
		SampleRate:  int(f.Fmt.SampleRate),
	}
}
