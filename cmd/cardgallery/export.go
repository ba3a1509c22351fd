package main

import (
	"bytes"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ukaji3/cardgallery-go/pkg/cardgallery"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/output"
	"github.com/ukaji3/cardgallery-go/pkg/cardgallery/render"
)

var (
	outputPath string
	format     string
	pretty     bool
)

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [page]",
		Short: "Render one page to stdout or a file",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRender,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "html", "Output format: html, markdown")
	return cmd
}

func newCardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cards [page]",
		Short: "Print the projected cards of a page as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCards,
	}
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}

func newPagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the registered pages",
		Args:  cobra.NoArgs,
		RunE:  runPages,
	}
}

func pageArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runRender(cmd *cobra.Command, args []string) error {
	if format != "html" && format != "markdown" {
		return fmt.Errorf("invalid format: %s (must be html or markdown)", format)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gallery, _, err := newGallery(cfg)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if _, err := gallery.Render(cmd.Context(), &buf, pageArg(args), cardgallery.StaticBaseURL(cfg.BaseURL)); err != nil {
		return fmt.Errorf("%s: %w", cardgallery.UserMessage(err), err)
	}

	data := buf.Bytes()
	if format == "markdown" {
		md, err := render.ToMarkdown(buf.String())
		if err != nil {
			return fmt.Errorf("markdown conversion failed: %w", err)
		}
		data = []byte(md + "\n")
	}
	return writeOutput(cmd, data)
}

func runCards(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	gallery, _, err := newGallery(cfg)
	if err != nil {
		return err
	}

	_, view, err := gallery.View(cmd.Context(), pageArg(args), cardgallery.StaticBaseURL(cfg.BaseURL))
	if err != nil {
		return fmt.Errorf("%s: %w", cardgallery.UserMessage(err), err)
	}

	jsonData, err := output.CardsToJSON(view, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(cmd, append(jsonData, '\n'))
}

func runPages(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	pages, err := cfg.Registry()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLAYOUT\tSOURCE\tTEMPLATE\tTITLE")
	for _, p := range pages.Pages() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Layout, p.Source, p.Template, p.Title)
	}
	return tw.Flush()
}

// writeOutput writes data to --output, or to stdout when unset.
func writeOutput(cmd *cobra.Command, data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}
