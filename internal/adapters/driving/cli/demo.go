package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driven/timer"
	"github.com/custodia-labs/docanalyzer/internal/app"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
)

// DefaultDemoQuestion is asked when --question is not given.
const DefaultDemoQuestion = "What is the contract term?"

// demoFile is uploaded when no files are given.
var demoFile = domain.FileDescriptor{Name: "contract.pdf", Type: "application/pdf", Size: 240 << 10}

var (
	demoQuestion string
	demoJSON     bool
)

var demoCmd = &cobra.Command{
	Use:   "demo [files...]",
	Short: "Run the upload and chat flow without the UI",
	Long: `Run the upload and chat flow end to end on a virtual clock and print
the outcome: upload the files, wait for processing, ask one question,
wait for the answer, and list the synthesised search results.

Without files a sample contract.pdf is uploaded.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVarP(&demoQuestion, "question", "q", DefaultDemoQuestion, "question to ask")
	demoCmd.Flags().BoolVar(&demoJSON, "json", false, "print the outcome as JSON")
	rootCmd.AddCommand(demoCmd)
}

// DemoReport is the outcome of a demo run.
type DemoReport struct {
	Documents []DemoDocument `json:"documents"`
	Messages  []DemoMessage  `json:"messages"`
	Results   []DemoResult   `json:"results"`
	View      domain.View    `json:"view"`
}

// DemoDocument is one uploaded document.
type DemoDocument struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Size   int64  `json:"size"`
	Status string `json:"status"`
	Pages  int    `json:"pages"`
}

// DemoMessage is one conversation entry.
type DemoMessage struct {
	Sender     string   `json:"sender"`
	Content    string   `json:"content"`
	Sources    []string `json:"sources,omitempty"`
	Confidence float64  `json:"confidence,omitempty"`
}

// DemoResult is one synthesised search result.
type DemoResult struct {
	DocumentID   string  `json:"document_id"`
	DocumentName string  `json:"document_name"`
	Excerpt      string  `json:"excerpt"`
	Relevance    float64 `json:"relevance"`
	Page         int     `json:"page"`
}

func runDemo(cmd *cobra.Command, args []string) error {
	clock := timer.NewManual(time.Now())
	a, err := newApp(app.Options{Scheduler: clock})
	if err != nil {
		return err
	}
	defer a.Close()

	files := []domain.FileDescriptor{demoFile}
	if len(args) > 0 {
		if files, err = describeFiles(args); err != nil {
			return err
		}
	}

	report, err := playDemo(a, clock, files, demoQuestion)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if demoJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printDemo(out, report, terminalWidth(out))
	return nil
}

// playDemo uploads files, asks question, and lets every timer fire.
func playDemo(a *app.App, clock *timer.Manual, files []domain.FileDescriptor, question string) (DemoReport, error) {
	if _, err := a.Upload.Submit(files); err != nil {
		return DemoReport{}, fmt.Errorf("upload: %w", err)
	}
	clock.Advance(a.Settings.UploadDelay)
	clock.Advance(a.Settings.NavigateDelay)

	if _, err := a.Chat.Send(question); err != nil {
		return DemoReport{}, fmt.Errorf("ask: %w", err)
	}
	clock.Advance(a.Settings.ReplyDelay)

	return buildReport(a), nil
}

func buildReport(a *app.App) DemoReport {
	r := DemoReport{View: a.Router.Current()}
	for _, d := range a.Registry.List() {
		r.Documents = append(r.Documents, DemoDocument{
			ID: d.ID, Name: d.Name, Type: d.Type, Size: d.Size, Status: string(d.Status), Pages: d.Pages,
		})
	}
	for _, m := range a.Chat.History() {
		r.Messages = append(r.Messages, DemoMessage{
			Sender: string(m.Sender), Content: m.Content, Sources: m.SourceDocuments, Confidence: m.Confidence,
		})
	}
	for _, res := range a.Search.Results() {
		r.Results = append(r.Results, DemoResult{
			DocumentID: res.DocumentID, DocumentName: res.DocumentName,
			Excerpt: res.Excerpt, Relevance: res.RelevanceScore, Page: res.PageNumber,
		})
	}
	return r
}

// terminalWidth returns the width of w when it is a terminal, else 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

func printDemo(w io.Writer, r DemoReport, width int) {
	line := func(format string, args ...any) {
		s := fmt.Sprintf(format, args...)
		if width > 0 && len([]rune(s)) > width {
			s = string([]rune(s)[:width-1]) + "…"
		}
		fmt.Fprintln(w, s)
	}

	names := make(map[string]string, len(r.Documents))
	line("Documents (%s)", humanize.Comma(int64(len(r.Documents))))
	for _, d := range r.Documents {
		names[d.ID] = d.Name
		line("  %-30s %8s  %-10s %d pages", d.Name, humanize.Bytes(uint64(d.Size)), d.Status, d.Pages)
	}
	line("")
	line("View: %s", r.View.Label())
	line("")

	for _, m := range r.Messages {
		if m.Sender == string(domain.SenderUser) {
			line("You: %s", m.Content)
			continue
		}
		line("AI:  %s", m.Content)
		sources := make([]string, 0, len(m.Sources))
		for _, id := range m.Sources {
			if n, ok := names[id]; ok {
				id = n
			}
			sources = append(sources, id)
		}
		line("     Confidence: %.0f%% · Sources: %s", m.Confidence*100, strings.Join(sources, ", "))
	}
	line("")

	line("Search results (%d)", len(r.Results))
	for _, res := range r.Results {
		line("  %-30s p.%d  %.0f%%", res.DocumentName, res.Page, res.Relevance*100)
		line("    %s", res.Excerpt)
	}
}
