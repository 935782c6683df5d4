// Package timer implements driven.Scheduler.
//
// Wall runs callbacks on real timers. Manual keeps a virtual clock that
// only moves when Advance is called, which makes every deferred
// completion in the simulators deterministic under test.
package timer
