package testing

import (
	"time"

	"github.com/go-drift/spark/pkg/animation"
)

// TestingT is the subset of *testing.T used by this package.
type TestingT interface {
	Helper()
	Cleanup(func())
}

// FakeScheduler is an [animation.Scheduler] whose tasks fire only when the
// test advances its clock.
type FakeScheduler struct {
	*animation.FrameScheduler
	clock *FakeClock
}

// NewFakeScheduler installs a FakeClock as the animation clock for the
// duration of the test.
func NewFakeScheduler(t TestingT) *FakeScheduler {
	t.Helper()
	clk := NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return &FakeScheduler{
		FrameScheduler: animation.NewFrameScheduler(),
		clock:          clk,
	}
}

// Clock returns the fake clock driving the scheduler.
func (s *FakeScheduler) Clock() *FakeClock {
	return s.clock
}

// Advance moves time forward by d and fires every task that came due.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.clock.Advance(d)
	s.Step()
}
