package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gompdf/leasedoc/internal/config"
	"github.com/gompdf/leasedoc/internal/logging"
	"github.com/gompdf/leasedoc/pkg/api"
)

var (
	configPath string
	debugFlag  bool
	strictFlag bool
	logoFlag   string

	generator *api.Generator
	logger    *zap.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: ./leasedoc.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&strictFlag, "strict", false, "validate template variables and markup strictly")
	rootCmd.PersistentFlags().StringVar(&logoFlag, "logo", "", "letterhead logo image for PDF output")
}

var rootCmd = &cobra.Command{
	Use:           "leasedoc",
	Short:         "Generate rental documents",
	Long:          "Generate lease contracts, inspection checklists and template documents as text, PDF or HTML.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("debug") {
			cfg.Debug = debugFlag
		}
		if cmd.Flags().Changed("strict") {
			cfg.Strict = strictFlag
		}
		if logoFlag != "" {
			cfg.PDF.Logo = logoFlag
		}

		logger, err = logging.New(cfg.Debug)
		if err != nil {
			return err
		}
		opts := append(cfg.Options(), api.WithLogger(logger))
		generator = api.New(opts...)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Output formats.
const (
	formatText = "text"
	formatPDF  = "pdf"
	formatHTML = "html"
)

func checkFormat(format string, allowed ...string) error {
	for _, f := range allowed {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported format %q (want one of %v)", format, allowed)
}

// openOutput returns stdout for "" or "-", and creates the file otherwise.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// writePDF saves doc to path or streams it to stdout.
func writePDF(doc *api.Document, path string) error {
	if path == "" || path == "-" {
		_, err := doc.WriteTo(os.Stdout)
		return err
	}
	if err := doc.Save(path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s (%d pages, id %s)\n", path, doc.PageCount(), doc.ID)
	return nil
}

func writeHTML(path string, render func(io.Writer) error) error {
	out, err := openOutput(path)
	if err != nil {
		return err
	}
	if err := render(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
