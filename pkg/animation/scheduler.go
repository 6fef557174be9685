// Package animation provides timing primitives for component animations.
//
// # Core Components
//
//   - [Scheduler]: a periodic callback owned by the hosting view. View models
//     never own timers; they expose a step entry point and the host calls it
//     from a scheduler task.
//
//   - [FrameScheduler]: a scheduler stepped from the host's frame loop, driven
//     by the package [Clock] so tests can advance time deterministically.
//
//   - [TickerScheduler]: a scheduler backed by [time.Ticker] that hands each
//     tick to a dispatch function (for example the UI loop).
//
//   - [Curve] and [Tween]: easing and interpolation for sampling geometry
//     between animation steps.
//
//   - [Spring]: a damped spring that follows a moving target.
package animation

import (
	"slices"
	"sync"
	"time"
)

// Scheduler runs fn every interval until the returned cancel function is
// called. Cancel is idempotent.
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

type frameTask struct {
	interval  time.Duration
	next      time.Time
	fn        func()
	cancelled bool
}

// FrameScheduler fires tasks when the host steps it. Each call to Step runs
// every task whose deadline has passed, catching up on missed intervals in
// order. Tasks fire in registration order.
//
// FrameScheduler is the timing source for hosts that already run a frame
// loop; call Step once per frame.
type FrameScheduler struct {
	mu     sync.Mutex
	tasks  map[int]*frameTask
	nextID int
}

// NewFrameScheduler creates a scheduler with no tasks.
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{tasks: make(map[int]*frameTask)}
}

// Every registers fn to run every interval, first one interval from now.
func (s *FrameScheduler) Every(interval time.Duration, fn func()) func() {
	if interval <= 0 {
		interval = time.Millisecond
	}
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	task := &frameTask{interval: interval, next: Now().Add(interval), fn: fn}
	s.tasks[id] = task
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		task.cancelled = true
		delete(s.tasks, id)
	}
}

// Step runs due tasks. A task cancelled from inside a callback (its own or
// another task's) stops firing immediately.
func (s *FrameScheduler) Step() {
	now := Now()

	s.mu.Lock()
	ids := make([]int, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	s.mu.Unlock()
	slices.Sort(ids)

	for _, id := range ids {
		s.mu.Lock()
		task, ok := s.tasks[id]
		s.mu.Unlock()
		if !ok {
			continue
		}
		for s.due(task, now) {
			task.fn()
		}
	}
}

func (s *FrameScheduler) due(task *frameTask, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if task.cancelled || task.next.After(now) {
		return false
	}
	task.next = task.next.Add(task.interval)
	return true
}

// HasActiveTasks reports whether any task is registered.
func (s *FrameScheduler) HasActiveTasks() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks) > 0
}

// TickerScheduler runs tasks on [time.Ticker] goroutines. Each tick is
// handed to Dispatch so callbacks land on the host's event loop; a nil
// Dispatch runs them on the ticker goroutine.
type TickerScheduler struct {
	Dispatch func(func())
}

// Every starts a ticker for fn.
func (s TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if s.Dispatch != nil {
					s.Dispatch(fn)
				} else {
					fn()
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}
