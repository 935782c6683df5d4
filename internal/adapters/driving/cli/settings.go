package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docanalyzer/internal/app"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage simulation settings",
	Long: `View and change the timings and constants of the simulation.

Settings are stored in config.toml under the config directory.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting",
	Long: `Change one setting and save it.

Keys:
  upload_delay_ms     milliseconds a batch stays processing
  reply_delay_ms      milliseconds before the assistant answers
  navigate_delay_ms   pause before switching to the library
  auto_navigate       switch to the library once uploads finish
  confidence          confidence attached to replies, 0 to 1
  max_sources         documents cited per reply
  responder           template or catalogue`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	a, err := newApp(app.Options{})
	if err != nil {
		return err
	}
	defer a.Close()

	settings, err := a.Config.Get()
	if err != nil {
		cmd.Printf("Warning: %v\n\n", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	values := settings.Values()
	for _, key := range a.Config.Keys() {
		cmd.Printf("  %-18s %s\n", key, values[key])
	}
	cmd.Println()
	cmd.Printf("Stored in %s\n", a.Config.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	a, err := newApp(app.Options{})
	if err != nil {
		return err
	}
	defer a.Close()

	key, value := args[0], args[1]
	if err := a.Config.Set(key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}
