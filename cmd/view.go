package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/lightbox/internal/gesture"
	"github.com/marcus/lightbox/internal/output"
	"github.com/marcus/lightbox/internal/registry"
	"github.com/marcus/lightbox/pkg/viewer"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	viewFlags     optionFlags
	viewCellWidth int
	viewDebugLog  string
	viewDrag      int
	viewTapSlop   int
)

var viewCmd = &cobra.Command{
	Use:   "view PAGE",
	Short: "Open the lightbox for an HTML page",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			err := errors.New("view needs a terminal; use 'lightbox scan' or 'lightbox render' instead")
			output.Error("%v", err)
			return err
		}

		opts, err := loadOptions(cmd, &viewFlags)
		if err != nil {
			output.Error("%v", err)
			return err
		}

		reg, err := registry.ScanFile(args[0])
		if err != nil {
			output.Error("%v", err)
			return err
		}

		logger, closeLog, err := viewLogger(viewDebugLog)
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer closeLog()
		logger.Info("view: scanned page", "page", args[0], "items", reg.Len())

		m := viewer.New(reg, viewer.Config{
			Title:         args[0],
			Options:       opts,
			CellWidth:     viewCellWidth,
			Logger:        logger,
			DragThreshold: viewDrag,
			TapSlop:       viewTapSlop,
		})
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			output.Error("%v", err)
			return err
		}
		return nil
	},
}

// viewLogger returns a file logger when path is set. The terminal belongs
// to the viewer, so without a path nothing is logged.
func viewLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { _ = f.Close() }, nil
}

func init() {
	addOptionFlags(viewCmd, &viewFlags)
	viewCmd.Flags().IntVar(&viewCellWidth, "cell-width", viewer.DefaultCellWidth, "pixels per terminal column for drag thresholds")
	viewCmd.Flags().IntVar(&viewDrag, "drag-threshold", gesture.DragThreshold, "pixels of drag over the item that change items")
	viewCmd.Flags().IntVar(&viewTapSlop, "tap-slop", gesture.TapSlop, "pixels a press may travel and still count as a click")
	viewCmd.Flags().StringVar(&viewDebugLog, "debug-log", "", "write debug logs to this file")
	rootCmd.AddCommand(viewCmd)
}
