package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// DocumentStatus is the processing lifecycle state of a document.
type DocumentStatus string

const (
	// StatusProcessing is the initial state of every new document.
	StatusProcessing DocumentStatus = "processing"
	// StatusCompleted is the terminal state reached after simulated processing.
	StatusCompleted DocumentStatus = "completed"
	// StatusError is a reserved terminal state. Nothing produces it today.
	StatusError DocumentStatus = "error"
)

// Valid reports whether s is a known status.
func (s DocumentStatus) Valid() bool {
	switch s {
	case StatusProcessing, StatusCompleted, StatusError:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s DocumentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// SecurityLevel classifies a document for richer display contexts.
type SecurityLevel string

const (
	SecurityPublic       SecurityLevel = "public"
	SecurityConfidential SecurityLevel = "confidential"
	SecurityRestricted   SecurityLevel = "restricted"
)

// Document represents an uploaded artifact tracked by the registry.
// Its real file content is never read.
type Document struct {
	// ID is the unique identifier, assigned at creation.
	ID string

	// Name, Type and Size are copied verbatim from the FileDescriptor.
	Name string
	Type string
	Size int64

	// UploadDate is when the document was created.
	UploadDate time.Time

	// Status is the lifecycle state.
	Status DocumentStatus

	// Pages and WordCount are synthetic placeholders for real extraction.
	Pages     int
	WordCount int

	// Optional fields. The upload path never populates these.
	Summary       string
	Tags          []string
	Language      string
	SecurityLevel SecurityLevel
}

// FileDescriptor is the minimal description of a file handed to the
// upload simulator by a file picker, drop target or watched directory.
type FileDescriptor struct {
	Name string
	Type string
	Size int64
}

// MaxUploadSize is the advertised per-file size limit. It is a hint only.
const MaxUploadSize int64 = 10 << 20

// SupportedExtensions lists the advertised upload formats.
var SupportedExtensions = []string{".pdf", ".docx", ".txt"}

// Supported reports whether the file extension is on the advertised allow-list.
func (f FileDescriptor) Supported() bool {
	ext := strings.ToLower(filepath.Ext(f.Name))
	for _, s := range SupportedExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// Oversized reports whether the file exceeds the advertised size limit.
func (f FileDescriptor) Oversized() bool {
	return f.Size > MaxUploadSize
}
