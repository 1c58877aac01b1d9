package core

import "time"

// Delayer blocks the caller for a number of milliseconds.
// There is no cancellation: a delay always runs to completion.
type Delayer interface {
	DelayMs(ms uint32)
}

// SleepDelayer implements Delayer with time.Sleep.
// On TinyGo the scheduler has nothing else to run, so this blocks the
// whole firmware for the duration.
type SleepDelayer struct{}

// DelayMs sleeps for ms milliseconds.
func (SleepDelayer) DelayMs(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
