package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/treeman/rqr"
	"github.com/treeman/rqr/render"
)

var (
	flagConfig  string
	flagECL     string
	flagVersion int
	flagMask    int
	flagMode    string
	flagOut     string
	flagBorder  int
	flagScale   int
	flagVerbose bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <text>",
	Short: "Encode text into a QR code symbol",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVar(&flagConfig, "config", "", "config file (YAML) supplying flag defaults")
	encodeCmd.Flags().StringVar(&flagECL, "ecl", "", "error correction level: low, medium, quartile, high")
	encodeCmd.Flags().IntVar(&flagVersion, "version", 0, "force a version 1-40 (default: smallest that fits)")
	encodeCmd.Flags().IntVar(&flagMask, "mask", -1, "force a mask pattern 0-7 (default: lowest penalty)")
	encodeCmd.Flags().StringVar(&flagMode, "mode", "", "force a mode: numeric, alphanumeric, byte (default: auto-detected)")
	encodeCmd.Flags().StringVar(&flagOut, "out", "", "output format: string, svg, png")
	encodeCmd.Flags().IntVar(&flagBorder, "border", 4, "quiet-zone border width in modules")
	encodeCmd.Flags().IntVar(&flagScale, "scale", 8, "pixels per module, for png output")
	encodeCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "log each build decision to stderr")
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlagOverrides(cmd, cfg)

	logger := zerolog.Nop()
	if flagVerbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	ecl, err := parseECL(cfg.ECL)
	if err != nil {
		return err
	}

	b := rqr.NewBuilder().ECL(ecl).Logger(logger)

	if cfg.Version != 0 {
		if cfg.Version < int(rqr.MinVersion) || cfg.Version > int(rqr.MaxVersion) {
			return fmt.Errorf("version must be in [%d, %d], got %d", rqr.MinVersion, rqr.MaxVersion, cfg.Version)
		}
		b = b.WithVersion(rqr.Version(cfg.Version))
	}
	if cfg.Mask != -1 {
		b = b.WithMask(rqr.Mask(cfg.Mask))
	}
	if cfg.Mode != "" {
		mode, err := parseMode(cfg.Mode)
		if err != nil {
			return err
		}
		b = b.WithMode(mode)
	}

	q, err := b.Build(args[0])
	if err != nil {
		return fmt.Errorf("encoding: %w", err)
	}

	out := cmd.OutOrStdout()
	switch strings.ToLower(cfg.Out) {
	case "", "string":
		fmt.Fprint(out, render.String(q, flagBorder))
	case "svg":
		svg, err := render.SVG(q, flagBorder)
		if err != nil {
			return err
		}
		fmt.Fprint(out, svg)
	case "png":
		return render.PNG(q, flagScale, flagBorder, out)
	default:
		return fmt.Errorf("unknown output format %q", cfg.Out)
	}

	return nil
}

// applyFlagOverrides lets explicitly-set command-line flags win over
// whatever the config file supplied, leaving config values in place for
// flags the user didn't touch.
func applyFlagOverrides(cmd *cobra.Command, cfg *config) {
	flags := cmd.Flags()
	if flags.Changed("ecl") {
		cfg.ECL = flagECL
	}
	if flags.Changed("version") {
		cfg.Version = flagVersion
	}
	if flags.Changed("mask") {
		cfg.Mask = flagMask
	}
	if flags.Changed("mode") {
		cfg.Mode = flagMode
	}
	if flags.Changed("out") {
		cfg.Out = flagOut
	}
}

func parseECL(s string) (rqr.ECLevel, error) {
	switch strings.ToLower(s) {
	case "", "low", "l":
		return rqr.Low, nil
	case "medium", "m":
		return rqr.Medium, nil
	case "quartile", "q":
		return rqr.Quartile, nil
	case "high", "h":
		return rqr.High, nil
	default:
		return 0, fmt.Errorf("unknown error correction level %q", s)
	}
}

func parseMode(s string) (rqr.Mode, error) {
	switch strings.ToLower(s) {
	case "numeric":
		return rqr.Numeric, nil
	case "alphanumeric":
		return rqr.Alphanumeric, nil
	case "byte":
		return rqr.Byte, nil
	default:
		return rqr.Mode{}, fmt.Errorf("unknown mode %q", s)
	}
}
