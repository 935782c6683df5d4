package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/watcher"
	"github.com/custodia-labs/docanalyzer/internal/app"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/logger"
)

// watchDir is the inbox directory watched for new uploads.
var watchDir string

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [files...]",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal UI.

Files given as arguments are uploaded at start-up. With --watch, every
supported file dropped into the directory is uploaded as it appears.

Controls:
  tab/shift+tab  - Next / previous panel
  1-7            - Jump to panel
  ↑/k, ↓/j       - Navigate lists
  enter          - Select / Submit
  esc            - Back / Cancel
  q              - Quit`,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&watchDir, "watch", "", "upload files dropped into this directory")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	a, err := newApp(app.Options{})
	if err != nil {
		return err
	}
	defer a.Close()

	files, err := describeFiles(args)
	if err != nil {
		return err
	}
	if len(files) > 0 {
		if _, err := a.Upload.Submit(files); err != nil {
			return fmt.Errorf("upload: %w", err)
		}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if watchDir != "" {
		inbox := watcher.New(watchDir)
		defer inbox.Close()

		ch, err := inbox.Watch(ctx)
		if err != nil {
			return err
		}
		go watcher.Feed(ch, a.Upload)
	}

	// Warnings would draw over the alt screen.
	if logFile == "" {
		logger.SetOutput(io.Discard)
		defer logger.SetOutput(os.Stderr)
	}

	ui, err := tui.NewApp(tui.NewPorts(a, watcher.DescribeSupported))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	if err := ui.WithContext(ctx).Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// describeFiles reads every path. Unreadable or unsupported paths are
// reported together.
func describeFiles(paths []string) ([]domain.FileDescriptor, error) {
	files := make([]domain.FileDescriptor, 0, len(paths))
	var errs []error
	for _, p := range paths {
		fd, err := watcher.DescribeSupported(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		files = append(files, fd)
	}
	return files, errors.Join(errs...)
}
