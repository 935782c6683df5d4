package driven

import "time"

// Task is a handle to a scheduled one-shot callback.
type Task interface {
	// Stop cancels the task. It returns false if the task already ran
	// or was already stopped.
	Stop() bool
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// Scheduler runs callbacks after a delay on its own clock.
type Scheduler interface {
	Clock

	// AfterFunc runs fn once, after d has elapsed.
	AfterFunc(d time.Duration, fn func()) Task
}
