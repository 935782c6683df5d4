package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/watcher"
)

// lineBuffer collects output and splits it into lines.
type lineBuffer struct {
	bytes.Buffer
}

func (b *lineBuffer) lines() []string {
	return strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
}

func TestTUICmd_Flags(t *testing.T) {
	assert.Equal(t, "tui [files...]", tuiCmd.Use)
	assert.NotNil(t, tuiCmd.Flags().Lookup("watch"))
}

func TestDescribeFiles(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "report.txt")
	binary := filepath.Join(dir, "tool.exe")
	require.NoError(t, os.WriteFile(report, []byte("quarterly report"), 0600))
	require.NoError(t, os.WriteFile(binary, []byte{0x4d, 0x5a}, 0600))

	files, err := describeFiles([]string{report, binary, filepath.Join(dir, "missing.pdf")})

	assert.ErrorIs(t, err, watcher.ErrUnsupported)
	assert.ErrorIs(t, err, os.ErrNotExist)
	require.Len(t, files, 1)
	assert.Equal(t, "report.txt", files[0].Name)
	assert.Equal(t, int64(16), files[0].Size)
}

func TestDescribeFiles_Empty(t *testing.T) {
	files, err := describeFiles(nil)

	assert.NoError(t, err)
	assert.Empty(t, files)
}
