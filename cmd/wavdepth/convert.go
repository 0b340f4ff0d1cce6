package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	wav "github.com/cwbudde/wavdepth"
	"github.com/spf13/cobra"
)

var errInvalidPath = errors.New("invalid path")

func newConvertCmd(a *app) *cobra.Command {
	var (
		depth  uint16
		output string
		strict bool
		toAIFF bool
	)

	cmd := &cobra.Command{
		Use:   "convert <in.wav>",
		Short: "Rewrite a WAV file at a new bit depth",
		Long: `Rewrite a WAV file at a new bit depth.

Reducing the depth truncates the low bits of every sample. The output keeps
the byte order of the input.

Examples:
  wavdepth convert drums.wav --depth 8
  wavdepth convert drums.wav --depth 5 --out crushed.wav --aiff`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("depth") {
				depth = a.cfg.Depth
			}

			if !flags.Changed("strict") {
				strict = a.cfg.Strict
			}

			if !flags.Changed("aiff") {
				toAIFF = a.cfg.AIFF
			}

			if output == "" {
				output = outputPath(args[0], a.cfg.Suffix, depth)
			}

			return a.convert(args[0], output, depth, strict, toAIFF)
		},
	}

	cmd.Flags().Uint16VarP(&depth, "depth", "d", defaultDepth, "target bit depth (1-32)")
	cmd.Flags().StringVarP(&output, "out", "o", "", "output path (default <in>_<depth>bit.wav)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on a trailing partial sample instead of dropping it")
	cmd.Flags().BoolVar(&toAIFF, "aiff", false, "also write an AIFF copy next to the output")

	return cmd
}

func (a *app) convert(inPath, outPath string, depth uint16, strict, toAIFF bool) error {
	if _, err := os.Stat(inPath); err != nil {
		return fmt.Errorf("%w %s: %w", errInvalidPath, inPath, err)
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inPath, err)
	}

	in, err := wav.Parse(data)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", inPath, err)
	}

	a.log.Debug("parsed input",
		"path", inPath,
		"byte_order", in.ByteOrder(),
		"channels", in.Fmt.NumChannels,
		"sample_rate", in.Fmt.SampleRate,
		"bit_depth", in.BitDepth(),
		"data_size", in.DataSize)

	out, err := wav.Transformer{Strict: strict}.Transform(in, depth)
	if err != nil {
		return fmt.Errorf("failed to convert %s: %w", inPath, err)
	}

	if err := os.WriteFile(outPath, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	a.log.Info("converted",
		"in", inPath,
		"out", outPath,
		"from_bits", in.BitDepth(),
		"to_bits", depth,
		"stored_bits", out.BitDepth(),
		"data_size", out.DataSize)

	if !toAIFF {
		return nil
	}

	aiffPath := replaceExt(outPath, ".aif")
	if err := exportAIFF(aiffPath, out); err != nil {
		return err
	}

	a.log.Info("exported aiff", "out", aiffPath)

	return nil
}

func outputPath(inPath, suffix string, depth uint16) string {
	if suffix == "" {
		suffix = fmt.Sprintf("_%dbit", depth)
	}

	ext := filepath.Ext(inPath)
	if ext == "" {
		ext = ".wav"
	}

	return strings.TrimSuffix(inPath, filepath.Ext(inPath)) + suffix + ext
}

func replaceExt(path, ext string) string {
	return path[:len(path)-len(filepath.Ext(path))] + ext
}
