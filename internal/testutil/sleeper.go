package testutil

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/prilive-com/tgbind/internal/resilience"
)

var _ resilience.Sleeper = (*FakeSleeper)(nil)

// FakeSleeper stands in for resilience.RealSleeper: waits are recorded and
// return at once. A cancelled context is honoured and not recorded.
type FakeSleeper struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (f *FakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.waits = append(f.waits, d)
	return nil
}

// Calls returns a copy of the recorded waits in order.
func (f *FakeSleeper) Calls() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.waits)
}

func (f *FakeSleeper) CallCount() int {
	return len(f.Calls())
}

// LastCall returns the latest wait, or zero when there was none.
func (f *FakeSleeper) LastCall() time.Duration {
	waits := f.Calls()
	if len(waits) == 0 {
		return 0
	}
	return waits[len(waits)-1]
}

// Total is the time the waits would have taken.
func (f *FakeSleeper) Total() time.Duration {
	var sum time.Duration
	for _, d := range f.Calls() {
		sum += d
	}
	return sum
}
