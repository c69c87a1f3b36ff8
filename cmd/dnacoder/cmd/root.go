package cmd

import (
	"fmt"
	"os"

	"github.com/arloliu/dnacoder/convert"
	"github.com/arloliu/dnacoder/internal/config"
	"github.com/arloliu/dnacoder/internal/logging"
	"github.com/spf13/cobra"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfg    *config.Config
	logger logging.Logger
	sync   func() error
}

// NewRootCmd creates the dnacoder command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dnacoder",
		Short: "Convert binary data to and from nucleotide text",
		Long: `dnacoder stores arbitrary bytes as fixed-width words over a nucleotide
alphabet. Every byte becomes one codeword; a five byte header records the
codec variant ("ENC3_" for ACG, "ENC4_" for ACGT).

Examples:
  dnacoder encode photo.jpg photo.dna --variant four
  dnacoder decode photo.dna photo.jpg
  dnacoder transcode photo.dna photo3.dna --variant three`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.sync != nil {
				// Sync on a terminal stderr fails with EINVAL on some platforms.
				_ = a.sync()
			}

			return nil
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", logging.LevelInfo, "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().String("log-backend", logging.BackendZap, "Log backend: zap, logrus or nop")

	rootCmd.AddCommand(
		newEncodeCmd(a),
		newDecodeCmd(a),
		newTranscodeCmd(a),
		newInfoCmd(a),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg := config.DefaultConfig()
	if configPath != "" {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("log-backend") {
		cfg.Logging.Backend, _ = cmd.Flags().GetString("log-backend")
	}
	if cmd.Flags().Lookup("variant") != nil && cmd.Flags().Changed("variant") {
		cfg.Variant, _ = cmd.Flags().GetString("variant")
	}
	if cmd.Flags().Lookup("compression") != nil && cmd.Flags().Changed("compression") {
		cfg.Compression, _ = cmd.Flags().GetString("compression")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, sync, err := logging.New(cfg.Logging.Backend, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.cfg = cfg
	a.logger = logger
	a.sync = sync

	return nil
}

func (a *app) converter() (*convert.Converter, error) {
	variant, err := a.cfg.VariantType()
	if err != nil {
		return nil, err
	}
	compression, err := a.cfg.CompressionType()
	if err != nil {
		return nil, err
	}

	return convert.New(
		convert.WithVariant(variant),
		convert.WithCompression(compression),
		convert.WithBufferSize(a.cfg.BufferSize),
		convert.WithLogger(a.logger),
	)
}

func printResult(cmd *cobra.Command, op, src, dst string, res convert.Result) {
	cmd.Printf("%s %s -> %s: %d plain bytes, %d encoded bytes, %d codeword bytes, xxh64 %016x\n",
		op, src, dst, res.PlainBytes, res.EncodedBytes, res.RawBytes, res.Digest)
}
