// Package timer operates the focus countdown. Elapsed time is computed from
// the monotonic clock reading carried by time.Time, so wall-clock
// adjustments never skew a running countdown.
package timer

import (
	"sync"
	"time"
)

// Countdown tracks the remaining time for a single session. Create one with
// Start or StartFor; the zero value is not usable.
type Countdown struct {
	deadline time.Time
	timer    *time.Timer
	done     chan struct{}

	mu        sync.Mutex
	expired   bool
	cancelled bool
}

// Start begins a countdown of the given number of minutes.
func Start(minutes int) (*Countdown, error) {
	if minutes <= 0 {
		return nil, ErrInvalidDuration
	}

	return StartFor(time.Duration(minutes) * time.Minute)
}

// StartFor begins a countdown for an arbitrary positive duration.
func StartFor(d time.Duration) (*Countdown, error) {
	if d <= 0 {
		return nil, ErrInvalidDuration
	}

	c := &Countdown{
		deadline: time.Now().Add(d),
		done:     make(chan struct{}),
	}

	c.timer = time.AfterFunc(d, c.expire)

	return c, nil
}

// expire delivers the expiry signal. The channel is closed under the same
// mutex that Cancel holds, so a Cancel that returned first always wins.
func (c *Countdown) expire() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelled || c.expired {
		return
	}

	c.expired = true
	close(c.done)
}

// Remaining reports the time left until expiry. It never goes below zero,
// has no side effects, and is safe for concurrent use.
func (c *Countdown) Remaining() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelled || c.expired {
		return 0
	}

	r := time.Until(c.deadline)
	if r < 0 {
		r = 0
	}

	return r
}

// Cancel stops the countdown and marks it inert. It is idempotent, and once
// it returns no expiry signal is ever delivered for this countdown.
func (c *Countdown) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancelled || c.expired {
		return
	}

	c.cancelled = true
	c.timer.Stop()
}

// Done is closed exactly once when the countdown expires. It stays open
// forever for a cancelled countdown.
func (c *Countdown) Done() <-chan struct{} {
	return c.done
}

// Expired is the poll form of Done.
func (c *Countdown) Expired() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.expired
}
