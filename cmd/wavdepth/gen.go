package main

import (
	"fmt"
	"math"
	"os"

	wav "github.com/cwbudde/wavdepth"
	"github.com/go-audio/audio"
	"github.com/spf13/cobra"
)

func newGenCmd(a *app) *cobra.Command {
	var (
		output    string
		frequency float64
		length    float64
		depth     uint16
		rate      uint32
		bigEndian bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a mono sine wave WAV file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order := wav.LittleEndian
			if bigEndian {
				order = wav.BigEndian
			}

			return a.gen(output, frequency, length, depth, rate, order)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "output.wav", "filename to write to")
	cmd.Flags().Float64Var(&frequency, "frequency", 440, "frequency in hertz to generate")
	cmd.Flags().Float64Var(&length, "length", 5, "length in seconds of output file")
	cmd.Flags().Uint16VarP(&depth, "depth", "d", 16, "bit depth (1-32), stored rounded up to whole bytes")
	cmd.Flags().Uint32Var(&rate, "rate", 48000, "sample rate in hertz")
	cmd.Flags().BoolVar(&bigEndian, "big-endian", false, "write numeric fields and samples big-endian")

	return cmd
}

func (a *app) gen(output string, frequency, length float64, depth uint16, rate uint32, order wav.Endianness) error {
	if length <= 0 {
		return fmt.Errorf("length must be positive, got %f", length)
	}

	if depth == 0 || depth > 32 {
		return fmt.Errorf("%w: %d", wav.ErrUnsupportedBitDepth, depth)
	}

	a.log.Info("generating sine", "seconds", length, "hz", frequency, "bits", depth, "byte_order", order)

	buf := sineBuffer(frequency, length, depth, rate)

	f, err := wav.NewFromIntBuffer(buf, depth, order)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, f.Bytes(), 0o644); err != nil {
		return fmt.Errorf("error creating %s: %w", output, err)
	}

	return nil
}

// sineBuffer renders a sine at 0 dBFS minus one step for depth bits. When
// depth is not a multiple of 8 the values are shifted into the storage size
// with the low bits left at zero.
func sineBuffer(frequency, length float64, depth uint16, rate uint32) *audio.IntBuffer {
	numSamples := int(float64(rate) * length)
	storageBits := ((int(depth) + 7) / 8) * 8
	pad := storageBits - int(depth)
	amplitude := float64(int64(1)<<(depth-1) - 1)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: int(rate)},
		SourceBitDepth: int(depth),
		Data:           make([]int, numSamples),
	}

	for i := range numSamples {
		fv := math.Sin(float64(i) / float64(rate) * frequency * 2 * math.Pi)
		buf.Data[i] = int(math.Round(fv*amplitude)) << pad
	}

	return buf
}
