package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	out    io.Writer
	errOut io.Writer
	log    *slog.Logger
	cfg    Config

	configPath string
	verbose    bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut, cfg: defaultConfig()}

	root := &cobra.Command{
		Use:   "wavdepth",
		Short: "Change the bit depth of PCM WAV files",
		Long: `Change the bit depth of canonical PCM WAV files.

The byte order of each file is detected from its RIFF chunk size and kept
when the file is rewritten. Bit depths that are not a multiple of 8 are
allowed as targets: the samples keep that precision but are stored in
whole bytes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}

	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file with default settings")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newConvertCmd(a),
		newInfoCmd(a),
		newGenCmd(a),
	)

	return root
}

func (a *app) setup() error {
	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}

	a.log = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))

	if a.configPath == "" {
		return nil
	}

	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log.Debug("loaded config", "path", a.configPath, "depth", cfg.Depth, "format", cfg.Format)

	return nil
}
