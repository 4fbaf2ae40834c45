package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond
	checkTimeout = time.Second
)

// GoroutineChecker compares the goroutine count against a baseline taken at creation
type GoroutineChecker struct {
	baseline int
	t        testing.TB
}

// NewGoroutineChecker records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	time.Sleep(settleDelay)
	return &GoroutineChecker{baseline: runtime.NumGoroutine(), t: t}
}

// Check fails the test if more than tolerance goroutines outlive the baseline.
// Goroutines are given checkTimeout to wind down first.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(checkTimeout)
	current := runtime.NumGoroutine()
	for current-g.baseline > tolerance && time.Now().Before(deadline) {
		runtime.Gosched()
		time.Sleep(pollInterval)
		current = runtime.NumGoroutine()
	}

	if leaked := current - g.baseline; leaked > tolerance {
		g.t.Errorf("goroutine leak: baseline=%d current=%d leaked=%d tolerance=%d",
			g.baseline, current, leaked, tolerance)
	}
}

// CheckNoGoroutineLeak runs fn and requires every goroutine it started to exit
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}
