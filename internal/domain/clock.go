package domain

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// clock is a package-level time source so tests can freeze time via SetClock.
// Production code uses the real clock; tests inject a fake so report
// timestamps come out deterministic.
var clock = clockwork.NewRealClock()

// Now returns the current time from the package clock. Report building
// stamps GeneratedAt through this rather than time.Now.
func Now() time.Time {
	return clock.Now()
}

// SetClock swaps the time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
