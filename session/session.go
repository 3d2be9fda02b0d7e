// Package session orchestrates the focus-session lifecycle: it validates
// start requests, runs the countdown, raises the alert on expiry, collects
// the note, and commits the completed record to the store.
//
// A Controller drives at most one session at a time through
// Configuring -> Running -> AwaitingNote -> Completed, with Cancelled as the
// escape from Running. Only sessions that reach Completed are ever
// persisted; a session abandoned while awaiting its note (for example when
// the process exits at the prompt) is discarded.
package session

import (
	"os/exec"
	"sync"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/sanyam-singhal/focus-tracker-lite/internal/config"
	"github.com/sanyam-singhal/focus-tracker-lite/internal/models"
	"github.com/sanyam-singhal/focus-tracker-lite/notify"
	"github.com/sanyam-singhal/focus-tracker-lite/report"
	"github.com/sanyam-singhal/focus-tracker-lite/store"
	"github.com/sanyam-singhal/focus-tracker-lite/timer"
)

// State identifies a point in the session lifecycle.
type State string

const (
	Configuring  State = "configuring"
	Running      State = "running"
	AwaitingNote State = "awaiting note"
	Completed    State = "completed"
	Cancelled    State = "cancelled"
)

// countdownFor starts the underlying countdown for a validated session
// length. Tests substitute a shorter countdown to avoid waiting out real
// minutes.
var countdownFor = func(minutes int) (*timer.Countdown, error) {
	return timer.StartFor(time.Duration(minutes) * time.Minute)
}

// Controller drives one session at a time through the lifecycle state
// machine. All transitions are serialized by a single mutex.
type Controller struct {
	db       store.DB
	notifier notify.Notifier
	opts     *config.TimerConfig

	mu        sync.Mutex
	state     State
	countdown *timer.Countdown
	startTime time.Time
	minutes   int
	tag       string
	expired   chan struct{}
	quit      chan struct{}
}

// New returns a Controller in the Configuring state.
func New(
	db store.DB,
	notifier notify.Notifier,
	opts *config.TimerConfig,
) *Controller {
	return &Controller{
		db:       db,
		notifier: notifier,
		opts:     opts,
		state:    Configuring,
	}
}

// State reports the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Start validates the request, records the start time, and begins the
// countdown. A non-positive duration or an already-active session leaves
// the controller unchanged.
func (c *Controller) Start(minutes int, tag string) error {
	if minutes <= 0 {
		return timer.ErrInvalidDuration
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Configuring {
		return ErrInvalidState
	}

	cd, err := countdownFor(minutes)
	if err != nil {
		return err
	}

	c.countdown = cd
	c.startTime = time.Now()
	c.minutes = minutes
	c.tag = tag
	c.expired = make(chan struct{})
	c.quit = make(chan struct{})
	c.state = Running

	go c.watch(cd, c.quit)

	return nil
}

// watch waits for the countdown to expire, moves the session to
// AwaitingNote, and raises the alert. It exits without delivering anything
// when the session is cancelled first.
func (c *Controller) watch(cd *timer.Countdown, quit chan struct{}) {
	select {
	case <-cd.Done():
	case <-quit:
		return
	}

	c.mu.Lock()

	if c.state != Running || c.countdown != cd {
		c.mu.Unlock()
		return
	}

	c.state = AwaitingNote
	close(c.expired)
	c.mu.Unlock()

	// the alert is best-effort: a playback failure must not hold up the
	// note prompt or the eventual persist
	if err := c.notifier.Play(); err != nil {
		report.Warn(err)
	}
}

// Expired is closed when the running session's countdown ends and the
// controller is ready to accept the note. It is nil before Start.
func (c *Controller) Expired() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.expired
}

// Remaining reports the time left in the running countdown, or zero when no
// countdown is active.
func (c *Controller) Remaining() time.Duration {
	c.mu.Lock()
	cd := c.countdown
	c.mu.Unlock()

	if cd == nil {
		return 0
	}

	return cd.Remaining()
}

// Cancel abandons the running session. Nothing is ever persisted for a
// cancelled session, and no expiry alert fires after Cancel returns.
func (c *Controller) Cancel() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Running {
		return ErrInvalidState
	}

	c.countdown.Cancel()
	close(c.quit)
	c.state = Cancelled

	return nil
}

// SubmitNote attaches the note and commits the completed session record.
// On a storage failure the controller stays in AwaitingNote so the caller
// can retry without losing the session data; a successful retry produces
// exactly one record.
func (c *Controller) SubmitNote(note string) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != AwaitingNote {
		return 0, ErrInvalidState
	}

	rec := models.SessionRecord{
		StartTime:       c.startTime,
		DurationMinutes: c.minutes,
		Tag:             c.tag,
		Notes:           note,
	}

	id, err := c.db.Insert(&rec)
	if err != nil {
		return 0, err
	}

	c.state = Completed

	c.runSessionCmd()

	return id, nil
}

// History returns up to limit completed sessions, most recent first.
func (c *Controller) History(limit int) ([]models.SessionRecord, error) {
	return c.db.Recent(limit)
}

// runSessionCmd executes the configured post-session command. Failures are
// warnings; the record is already saved by the time this runs.
func (c *Controller) runSessionCmd() {
	if c.opts == nil || c.opts.SessionCmd == "" {
		return
	}

	cmdSlice, err := shellquote.Split(c.opts.SessionCmd)
	if err != nil {
		report.Warn(errSessionCmd.Wrap(err))
		return
	}

	if len(cmdSlice) == 0 {
		return
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	if err := cmd.Run(); err != nil {
		report.Warn(errSessionCmd.Wrap(err))
	}
}
