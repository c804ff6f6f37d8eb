package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/marcus/lightbox/internal/models"
	"github.com/marcus/lightbox/internal/output"
	"github.com/marcus/lightbox/internal/registry"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// maxConcurrentScans bounds how many pages are parsed at once
const maxConcurrentScans = 4

// pageScan is the result of scanning one page
type pageScan struct {
	Page        string             `json:"page"`
	Groups      []string           `json:"groups"`
	Items       []models.MediaItem `json:"items"`
	Unsupported int                `json:"unsupported,omitempty"` // items the overlay cannot show
}

var scanCmd = &cobra.Command{
	Use:     "scan PAGE...",
	Aliases: []string{"ls"},
	Short:   "List the lightbox items of one or more pages",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		scans, err := scanPages(cmd.Context(), args)
		if err != nil {
			if jsonOutput {
				output.JSONError("scan_failed", err.Error())
			} else {
				output.Error("%v", err)
			}
			return err
		}

		if jsonOutput {
			return output.JSON(scans)
		}

		width := 0
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
		showSrc, _ := cmd.Flags().GetBool("src")
		for i, s := range scans {
			if i > 0 {
				fmt.Fprintln(output.Stdout)
			}
			for _, line := range scanLines(s, showSrc, width) {
				fmt.Fprintln(output.Stdout, line)
			}
		}
		return nil
	},
}

// scanPages scans every page concurrently. Results keep argument order and
// the first failure cancels the rest.
func scanPages(ctx context.Context, paths []string) ([]pageScan, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	scans := make([]pageScan, len(paths))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentScans)

	for i, path := range paths {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			reg, err := registry.ScanFile(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			items := reg.Items()
			if items == nil {
				items = []models.MediaItem{}
			}
			groups := reg.Groups()
			if groups == nil {
				groups = []string{}
			}
			unsupported := 0
			for _, item := range items {
				if !models.IsValidTag(item.Tag) {
					unsupported++
				}
			}
			if unsupported > 0 {
				slog.Warn("scan: items with unsupported tags", "page", path, "count", unsupported)
			}
			scans[i] = pageScan{Page: path, Groups: groups, Items: items, Unsupported: unsupported}
			slog.Debug("scan: page", "page", path, "items", len(items), "groups", len(groups))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return scans, nil
}

// scanLines renders one page as a header followed by its group tree.
// Lines are cut to width when width is positive.
func scanLines(s pageScan, showSrc bool, width int) []string {
	header := fmt.Sprintf("%s  %d items, %d groups", s.Page, len(s.Items), len(s.Groups))
	if s.Unsupported > 0 {
		header += fmt.Sprintf(", %d unsupported", s.Unsupported)
	}
	lines := []string{header}
	if len(s.Items) == 0 {
		lines = append(lines, output.Muted("  no data-lb-item elements"))
	}
	tree := output.RenderTreeLines(output.GroupTree(s.Items), output.TreeRenderOptions{
		ShowTag:     true,
		ShowNote:    showSrc,
		Indentation: 2,
	})
	lines = append(lines, tree...)
	if width > 0 {
		for i, line := range lines {
			lines[i] = ansi.Truncate(line, width, "…")
		}
	}
	return lines
}

func init() {
	scanCmd.Flags().Bool("json", false, "Machine-readable JSON")
	scanCmd.Flags().Bool("src", false, "Show item sources")
	rootCmd.AddCommand(scanCmd)
}
