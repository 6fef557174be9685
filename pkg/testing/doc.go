// Package testing provides deterministic time for component tests.
//
// # Fake Time
//
// [NewFakeScheduler] installs a [FakeClock] as the animation clock and
// returns a scheduler whose tasks only fire when the test advances time:
//
//	func TestSpinner(t *testing.T) {
//	    sched := sparktest.NewFakeScheduler(t)
//	    animator := progressbar.NewAnimator(vm, sched, 0)
//	    vm.SetIsAnimating(true)
//
//	    sched.Advance(progressbar.StepInterval) // one tick
//	}
//
// The previous clock is restored when the test finishes.
package testing
