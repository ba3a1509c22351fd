package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/cardgallery-go/internal/server"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/source"
)

var addr string

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve gallery pages over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Addr = addr
	}

	// Validate workbook exists
	if _, err := os.Stat(cfg.Workbook); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", cfg.Workbook)
	}

	gallery, wb, err := newGallery(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	warnMissingSheets(ctx, gallery.Pages(), wb)

	srv := server.New(gallery, server.Options{
		BaseURL:   cfg.BaseURL,
		RateLimit: cfg.RateLimit,
		Logger:    logger,
	})

	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr, err)
	}
	return server.Serve(ctx, ln, srv.Handler(), cfg.Server, logger)
}

// warnMissingSheets logs pages whose sheet is absent from the workbook.
// Such pages still fail per request; this only surfaces them early.
func warnMissingSheets(ctx context.Context, pages *cardgallery.Registry, wb *source.Workbook) {
	sheets, err := wb.Sheets(ctx)
	if err != nil {
		logger.Warn("Cannot list workbook sheets", zap.String("workbook", wb.Path()), zap.Error(err))
		return
	}
	present := make(map[string]bool, len(sheets))
	for _, s := range sheets {
		present[s] = true
	}
	for _, p := range pages.Pages() {
		sheet := source.ParseReference(p.Source).Sheet
		if !present[sheet] {
			logger.Warn("Page sheet not found in workbook",
				zap.String("page", p.ID),
				zap.String("sheet", sheet))
		}
	}
}
