// Package watcher turns files on disk into upload submissions.
//
// Describe builds a FileDescriptor from a path, sniffing the MIME type
// from content. Inbox watches a directory and submits every supported
// file that lands in it, which is the terminal equivalent of dropping
// files onto the upload area.
package watcher

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/custodia-labs/docanalyzer/internal/core/domain"
)

// ErrUnsupported is returned for files outside the pdf/docx/txt allow-list.
var ErrUnsupported = errors.New("unsupported file type")

// Describe stats path and detects its MIME type.
func Describe(path string) (domain.FileDescriptor, error) {
	info, err := os.Stat(path)
	if err != nil {
		return domain.FileDescriptor{}, err
	}
	if info.IsDir() {
		return domain.FileDescriptor{}, fmt.Errorf("%s: %w: is a directory", path, domain.ErrInvalidInput)
	}

	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return domain.FileDescriptor{}, fmt.Errorf("detect type of %s: %w", path, err)
	}

	return domain.FileDescriptor{
		Name: filepath.Base(path),
		Type: mtype.String(),
		Size: info.Size(),
	}, nil
}

// DescribeSupported is Describe restricted to the allow-list.
func DescribeSupported(path string) (domain.FileDescriptor, error) {
	f := domain.FileDescriptor{Name: filepath.Base(path)}
	if !f.Supported() {
		return f, fmt.Errorf("%s: %w (accepted: %s)", f.Name, ErrUnsupported, strings.Join(domain.SupportedExtensions, ", "))
	}
	return Describe(path)
}
