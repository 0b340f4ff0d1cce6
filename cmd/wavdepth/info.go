package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	wav "github.com/cwbudde/wavdepth"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

// headerReport is the printable form of a WAV header.
type headerReport struct {
	Path        string `json:"path" yaml:"path"`
	ByteOrder   string `json:"byte_order" yaml:"byte_order"`
	ChunkID     string `json:"chunk_id" yaml:"chunk_id"`
	ChunkSize   uint32 `json:"chunk_size" yaml:"chunk_size"`
	Format      string `json:"format" yaml:"format"`
	SubchunkID  string `json:"subchunk_id" yaml:"subchunk_id"`
	SubchunkSz  uint32 `json:"subchunk_size" yaml:"subchunk_size"`
	AudioFormat uint16 `json:"audio_format" yaml:"audio_format"`
	Channels    uint16 `json:"channels" yaml:"channels"`
	SampleRate  uint32 `json:"sample_rate" yaml:"sample_rate"`
	ByteRate    uint32 `json:"byte_rate" yaml:"byte_rate"`
	BlockAlign  uint16 `json:"block_align" yaml:"block_align"`
	BitDepth    uint16 `json:"bit_depth" yaml:"bit_depth"`
	DataID      string `json:"data_id" yaml:"data_id"`
	DataSize    uint32 `json:"data_size" yaml:"data_size"`
	Frames      int    `json:"frames" yaml:"frames"`
	Duration    string `json:"duration" yaml:"duration"`
	Consistent  bool   `json:"consistent" yaml:"consistent"`
	Problem     string `json:"problem,omitempty" yaml:"problem,omitempty"`
}

func newInfoCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "info <in.wav>",
		Short: "Print the header of a WAV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Format
			}

			return a.info(args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", defaultFormat, "output format (yaml, json)")

	return cmd
}

func (a *app) info(path, format string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w %s: %w", errInvalidPath, path, err)
	}

	f, err := wav.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return writeReport(a.out, newHeaderReport(path, f), format)
}

func newHeaderReport(path string, f *wav.File) headerReport {
	r := headerReport{
		Path:        path,
		ByteOrder:   f.ByteOrder().String(),
		ChunkID:     string(f.RiffID[:]),
		ChunkSize:   f.RiffSize,
		Format:      string(f.Format[:]),
		SubchunkID:  string(f.Fmt.ID[:]),
		SubchunkSz:  f.Fmt.Size,
		AudioFormat: f.Fmt.FormatTag,
		Channels:    f.Fmt.NumChannels,
		SampleRate:  f.Fmt.SampleRate,
		ByteRate:    f.Fmt.AvgBytesPerSec,
		BlockAlign:  f.Fmt.BlockAlign,
		BitDepth:    f.Fmt.BitsPerSample,
		DataID:      string(f.DataID[:]),
		DataSize:    f.DataSize,
		Frames:      f.NumFrames(),
		Duration:    f.Duration().String(),
		Consistent:  true,
	}

	if err := f.Validate(); err != nil {
		r.Consistent = false
		r.Problem = err.Error()
	}

	return r
}

func writeReport(w io.Writer, r headerReport, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(r)
	case formatYAML, "":
		data, err := yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("failed to format report: %w", err)
		}

		_, err = w.Write(data)

		return err
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
