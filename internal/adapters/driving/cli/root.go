// Package cli provides the cobra command tree for docanalyzer.
// It is a driving adapter: every command assembles the application and
// drives it through the core services.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/docanalyzer/internal/app"
	"github.com/custodia-labs/docanalyzer/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	configDir string
	verbose   bool
	logFile   string

	// closeLog restores logger output after --log-file.
	closeLog func() error
)

var rootCmd = &cobra.Command{
	Use:   "docanalyzer",
	Short: "AI document analyzer",
	Long: `docanalyzer is a terminal demo of an AI document analyzer.

Upload documents, ask questions about them, and browse the synthesised
search results, agents, analytics and integrations from one terminal UI.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: teardownLogging,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configDir, "config", "", "config directory (default ~/.docanalyzer)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func setupLogging(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if logFile == "" {
		return nil
	}

	closer, err := logger.OpenFile(logFile)
	if err != nil {
		return err
	}
	closeLog = closer
	return nil
}

func teardownLogging(_ *cobra.Command, _ []string) error {
	if closeLog == nil {
		return nil
	}
	err := closeLog()
	closeLog = nil
	return err
}

// newApp assembles the application from the persistent flags.
func newApp(opts app.Options) (*app.App, error) {
	opts.ConfigDir = configDir
	return app.New(opts)
}
