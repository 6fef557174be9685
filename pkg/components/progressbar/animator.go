package progressbar

import (
	"sync"
	"time"

	"github.com/go-drift/spark/pkg/animation"
)

// Animator is the host side of the indeterminate loop. It arms a
// scheduler task when the view model emits Start, cancels it on Stop and
// forwards every tick to AnimationStepIsDone.
type Animator struct {
	vm        *IndeterminateViewModel
	scheduler animation.Scheduler
	interval  time.Duration

	mu     sync.Mutex
	cancel func()
	unsub  func()
}

// NewAnimator attaches to vm. A zero interval uses StepInterval. If vm is
// already animating the task is armed immediately.
func NewAnimator(vm *IndeterminateViewModel, scheduler animation.Scheduler, interval time.Duration) *Animator {
	if interval <= 0 {
		interval = StepInterval
	}
	a := &Animator{vm: vm, scheduler: scheduler, interval: interval}
	a.unsub = vm.Status().AddListener(a.handle)
	if vm.IsAnimating() {
		a.arm()
	}
	return a
}

func (a *Animator) handle(status AnimationStatus) {
	switch status {
	case AnimationStart:
		a.arm()
	case AnimationStop:
		a.disarm()
	}
}

func (a *Animator) arm() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		return
	}
	a.cancel = a.scheduler.Every(a.interval, a.vm.AnimationStepIsDone)
}

func (a *Animator) disarm() {
	a.mu.Lock()
	cancel := a.cancel
	a.cancel = nil
	a.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Running reports whether a scheduler task is armed.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}

// Close detaches from the view model and cancels any armed task.
func (a *Animator) Close() {
	a.unsub()
	a.disarm()
}
