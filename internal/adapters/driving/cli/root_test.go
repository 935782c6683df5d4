package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docanalyzer/internal/logger"
)

// execute runs the root command with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		configDir, verbose, logFile = "", false, ""
		demoQuestion, demoJSON = DefaultDemoQuestion, false
		watchDir = ""
		logger.SetVerbose(false)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Flags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	for _, name := range []string{"config", "verbose", "log-file"} {
		assert.NotNil(t, flags.Lookup(name), name)
	}
	assert.Equal(t, "v", flags.Lookup("verbose").Shorthand)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"tui", "demo", "settings", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestRootCmd_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docanalyzer.log")

	_, err := execute(t, "version", "--verbose", "--log-file", path)

	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Nil(t, closeLog, "log file is closed after the command")
}

func TestRootCmd_LogFileBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "docanalyzer.log")

	_, err := execute(t, "version", "--log-file", path)

	assert.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	SetVersion("")
	assert.Equal(t, "1.2.3", version, "empty keeps the current version")
}
