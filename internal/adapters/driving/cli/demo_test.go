package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docanalyzer/internal/app"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
)

func TestDemoCmd_JSON(t *testing.T) {
	out, err := execute(t, "demo", "--json", "--config", app.InMemoryConfig)
	require.NoError(t, err)

	var report DemoReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	require.Len(t, report.Documents, 1)
	doc := report.Documents[0]
	assert.Equal(t, "contract.pdf", doc.Name)
	assert.Equal(t, string(domain.StatusCompleted), doc.Status)
	assert.Positive(t, doc.Pages)

	require.Len(t, report.Messages, 2)
	assert.Equal(t, string(domain.SenderUser), report.Messages[0].Sender)
	assert.Equal(t, DefaultDemoQuestion, report.Messages[0].Content)
	reply := report.Messages[1]
	assert.Equal(t, string(domain.SenderAI), reply.Sender)
	assert.Equal(t, []string{doc.ID}, reply.Sources)
	assert.InDelta(t, 0.92, reply.Confidence, 1e-9)

	require.Len(t, report.Results, 1)
	assert.Equal(t, doc.ID, report.Results[0].DocumentID)
	assert.Equal(t, domain.ViewDocuments, report.View)
}

func TestDemoCmd_Text(t *testing.T) {
	out, err := execute(t, "demo", "--config", app.InMemoryConfig, "--question", "Who signed it?")

	require.NoError(t, err)
	assert.Contains(t, out, "Documents (1)")
	assert.Contains(t, out, "contract.pdf")
	assert.Contains(t, out, "246 kB")
	assert.Contains(t, out, "View: Document Library")
	assert.Contains(t, out, "You: Who signed it?")
	assert.Contains(t, out, "Confidence: 92% · Sources: contract.pdf")
	assert.Contains(t, out, "Search results (1)")
}

func TestDemoCmd_Files(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "lease.txt")
	second := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(first, []byte("term: twelve months"), 0600))
	require.NoError(t, os.WriteFile(second, []byte("renewal notes"), 0600))

	out, err := execute(t, "demo", "--json", "--config", app.InMemoryConfig, first, second)
	require.NoError(t, err)

	var report DemoReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	require.Len(t, report.Documents, 2)
	assert.Equal(t, "lease.txt", report.Documents[0].Name)
	assert.Equal(t, int64(19), report.Documents[0].Size)
	assert.Equal(t, []string{report.Documents[0].ID, report.Documents[1].ID}, report.Messages[1].Sources)
}

func TestDemoCmd_BlankQuestion(t *testing.T) {
	_, err := execute(t, "demo", "--config", app.InMemoryConfig, "--question", "   ")

	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
}

func TestPrintDemo_Truncates(t *testing.T) {
	var buf lineBuffer
	printDemo(&buf, DemoReport{
		Messages: []DemoMessage{{Sender: string(domain.SenderUser), Content: "a very long question indeed"}},
		View:     domain.ViewChat,
	}, 12)

	for _, line := range buf.lines() {
		assert.LessOrEqual(t, len([]rune(line)), 12, line)
	}
}

func TestTerminalWidth_NotATerminal(t *testing.T) {
	assert.Zero(t, terminalWidth(&lineBuffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.Zero(t, terminalWidth(f))
}
