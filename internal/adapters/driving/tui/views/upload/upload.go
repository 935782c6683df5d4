// Package upload provides the document upload view for the TUI.
// Files are added by typing paths, the terminal stand-in for drag and drop.
package upload

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/docanalyzer/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/docanalyzer/internal/core/domain"
	"github.com/custodia-labs/docanalyzer/internal/core/ports/driving"
)

// Describer turns a path on disk into a file descriptor.
type Describer func(path string) (domain.FileDescriptor, error)

// ErrNoDescriber is returned when paths are entered but nothing can read them.
var ErrNoDescriber = errors.New("file picker is not available")

// View is the upload view.
type View struct {
	styles   *styles.Styles
	upload   driving.UploadSimulator
	registry driving.DocumentRegistry
	describe Describer

	path      *input.Field
	submitted map[string]struct{}
	order     []string
	width     int
	height    int
}

// NewView creates a new upload view.
func NewView(
	s *styles.Styles,
	upload driving.UploadSimulator,
	registry driving.DocumentRegistry,
	describe Describer,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:    s,
		upload:    upload,
		registry:  registry,
		describe:  describe,
		path:      input.NewField(s, "Path", "report.pdf, notes.txt", input.CharLimit(1024)),
		submitted: make(map[string]struct{}),
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Capturing reports whether typed keys go to the path input.
func (v *View) Capturing() bool {
	return v.path.Focused()
}

// Update handles messages for the upload view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if !v.path.Focused() {
		switch keyMsg.String() {
		case "enter", "n":
			return v, v.path.Focus()
		}
		return v, nil
	}

	switch keyMsg.String() {
	case "esc":
		v.path.Blur()
		return v, nil
	case "enter":
		cmd := v.submit(v.path.Value())
		v.path.Reset()
		return v, cmd
	}

	var cmd tea.Cmd
	v.path, cmd = v.path.Update(msg)
	return v, cmd
}

// submit describes every comma separated path and submits the
// readable ones as a single batch.
func (v *View) submit(raw string) tea.Cmd {
	paths := splitPaths(raw)
	if len(paths) == 0 {
		return nil
	}
	if v.describe == nil {
		return messages.ErrorCmd(ErrNoDescriber)
	}

	files := make([]domain.FileDescriptor, 0, len(paths))
	var errs []error
	for _, p := range paths {
		f, err := v.describe(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		files = append(files, f)
	}

	if len(files) > 0 {
		if _, err := v.Submit(files); err != nil {
			errs = append(errs, err)
		}
	}
	return messages.ErrorCmd(errors.Join(errs...))
}

// Submit uploads files and tracks them in the progress list.
func (v *View) Submit(files []domain.FileDescriptor) ([]domain.Document, error) {
	docs, err := v.upload.Submit(files)
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		if _, seen := v.submitted[d.ID]; !seen {
			v.submitted[d.ID] = struct{}{}
			v.order = append(v.order, d.ID)
		}
	}
	return docs, nil
}

func splitPaths(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// View renders the upload view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Upload Your Documents"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("Leverage advanced AI to extract insights, answer questions, and analyze your documents."))
	b.WriteString("\n\n")

	box := v.styles.Border.Width(max(v.width-4, 40)).Padding(1, 2)
	prompt := v.styles.Normal.Render("Drop files by typing their paths, separated by commas")
	if !v.path.Focused() {
		prompt += "\n" + v.styles.Muted.Render("press enter to browse your files")
	}
	hint := v.styles.Muted.Render(fmt.Sprintf("Supported formats: PDF, DOCX, TXT (Max %s per file)",
		humanize.Bytes(uint64(domain.MaxUploadSize))))
	b.WriteString(box.Render(prompt + "\n\n" + v.path.View() + "\n\n" + hint))
	b.WriteString("\n")

	if len(v.order) > 0 {
		b.WriteString("\n")
		b.WriteString(v.styles.Subtitle.Render("Upload Progress"))
		b.WriteString("\n")
		for _, id := range v.order {
			doc, err := v.registry.Get(id)
			if err != nil {
				continue
			}
			b.WriteString(v.renderProgress(doc))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (v *View) renderProgress(doc domain.Document) string {
	status := v.styles.Warning.Render("Processing")
	if doc.Status == domain.StatusCompleted {
		status = v.styles.Success.Render("Processed")
	}
	meta := v.styles.Muted.Render(fmt.Sprintf("%s · %s", humanize.Bytes(uint64(doc.Size)), doc.Type))
	return fmt.Sprintf("  %s  %s  %s", v.styles.Normal.Render(doc.Name), meta, status)
}

// Tracked returns the IDs of documents uploaded from this view in order.
func (v *View) Tracked() []string {
	return append([]string(nil), v.order...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.path.SetWidth(min(width-8, 80))
}
