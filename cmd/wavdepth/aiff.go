package main

import (
	"fmt"
	"os"

	wav "github.com/cwbudde/wavdepth"
	"github.com/go-audio/aiff"
)

// exportAIFF writes the samples of f to path as a big-endian AIFF file.
func exportAIFF(path string, f *wav.File) error {
	buf, err := f.IntBuffer()
	if err != nil {
		return fmt.Errorf("failed to decode samples for aiff: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	encoder := aiff.NewEncoder(out, int(f.Fmt.SampleRate), int(f.BitDepth()), int(f.Fmt.NumChannels))

	if err := encoder.Write(buf); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode aiff: %w", err)
	}

	if err := encoder.Close(); err != nil {
		out.Close()
		return fmt.Errorf("failed to finalize aiff: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}

	return nil
}
