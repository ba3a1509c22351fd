// Package main provides the CLI entry point for cardgallery.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/cardgallery-go/internal/config"
	"github.com/ukaji3/cardgallery-go/internal/logging"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/render"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/source"
)

var (
	configPath   string
	envFile      string
	workbookPath string
	templatesDir string
	baseURL      string
	debug        bool

	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cardgallery",
		Short: "Serve card gallery pages from spreadsheet rows",
		Long: `cardgallery renders card gallery pages (title, description, image, link)
from the sheets of an xlsx workbook. Each page reads one sheet and renders
one template; the landing page and the interactive learning apps catalogue
have their own sheet layouts.`,
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	pf.StringVar(&envFile, "env-file", ".env", "Environment file loaded before reading the config")
	pf.StringVarP(&workbookPath, "workbook", "w", "", "Path to the xlsx workbook (overrides config)")
	pf.StringVar(&templatesDir, "templates-dir", "", "Directory of page templates (overrides config)")
	pf.StringVar(&baseURL, "base-url", "", "Public base URL for same-origin links (overrides config)")
	pf.BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newServeCmd(), newRenderCmd(), newCardsCmd(), newPagesCmd())
	return rootCmd
}

// loadConfig reads the env file, config file, environment and flags, in
// that order of increasing precedence.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	optional := !cmd.Flags().Changed("env-file")
	if err := config.LoadDotEnv(optional, envFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if workbookPath != "" {
		cfg.Workbook = workbookPath
	}
	if templatesDir != "" {
		cfg.TemplatesDir = templatesDir
	}
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err = logging.New(cfg.Logging, debug)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// newGallery wires a Gallery over the configured workbook and templates.
func newGallery(cfg *config.Config) (*cardgallery.Gallery, *source.Workbook, error) {
	pages, err := cfg.Registry()
	if err != nil {
		return nil, nil, err
	}
	wb := source.NewWorkbook(cfg.Workbook)
	g := cardgallery.New(pages, wb, render.New(cfg.TemplatesDir), cardgallery.WithLogger(logger))
	return g, wb, nil
}
