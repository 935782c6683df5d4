package timer

import (
	"time"

	"github.com/custodia-labs/docanalyzer/internal/core/ports/driven"
)

// Ensure Wall implements the interface.
var _ driven.Scheduler = Wall{}

// Wall schedules callbacks with time.AfterFunc. Callbacks run on their
// own goroutine.
type Wall struct{}

// Now returns the current wall clock time.
func (Wall) Now() time.Time {
	return time.Now()
}

// AfterFunc runs fn after d.
func (Wall) AfterFunc(d time.Duration, fn func()) driven.Task {
	return time.AfterFunc(d, fn)
}
