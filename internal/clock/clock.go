// Package clock abstracts time reads so that request creation, edits and
// staleness checks are deterministic under test.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// System reads the wall clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed is a test clock that only moves when told to.
type Fixed struct {
	t time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{t: t}
}

func (f *Fixed) Now() time.Time {
	return f.t
}

func (f *Fixed) Advance(d time.Duration) {
	f.t = f.t.Add(d)
}

func (f *Fixed) Set(t time.Time) {
	f.t = t
}
