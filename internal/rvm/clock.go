package rvm

import "time"

// Clock abstracts wall time and one-shot timers so the inactivity timeout can
// be driven by a simulated clock in tests instead of real sleeps.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	Stop() bool
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

func SystemClock() Clock { return systemClock{} }
