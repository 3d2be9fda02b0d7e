package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/sanyam-singhal/focus-tracker-lite/internal/models"
	"github.com/sanyam-singhal/focus-tracker-lite/store"
	"github.com/sanyam-singhal/focus-tracker-lite/timer"
)

// dbMock implements store.DB in memory. Setting failures makes the next n
// Insert calls report a storage error.
type dbMock struct {
	mu       sync.Mutex
	records  []models.SessionRecord
	failures int
}

func (d *dbMock) Insert(rec *models.SessionRecord) (uint64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.failures > 0 {
		d.failures--
		return 0, store.ErrStorage.Wrap(errors.New("disk full"))
	}

	rec.ID = uint64(len(d.records) + 1)
	d.records = append(d.records, *rec)

	return rec.ID, nil
}

func (d *dbMock) Recent(limit int) ([]models.SessionRecord, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out []models.SessionRecord

	for i := len(d.records) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, d.records[i])
	}

	return out, nil
}

func (d *dbMock) Close() error { return nil }

func (d *dbMock) saved() []models.SessionRecord {
	d.mu.Lock()
	defer d.mu.Unlock()

	return append([]models.SessionRecord(nil), d.records...)
}

// notifierMock counts Play invocations and optionally fails them.
type notifierMock struct {
	mu    sync.Mutex
	plays int
	err   error
}

func (n *notifierMock) Play() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.plays++

	return n.err
}

func (n *notifierMock) playCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.plays
}

// shortCountdowns makes every session expire after roughly 20ms regardless
// of the requested minutes.
func shortCountdowns(t *testing.T) {
	t.Helper()

	orig := countdownFor
	countdownFor = func(minutes int) (*timer.Countdown, error) {
		return timer.StartFor(20 * time.Millisecond)
	}

	t.Cleanup(func() {
		countdownFor = orig
	})
}

func awaitExpiry(t *testing.T, c *Controller) {
	t.Helper()

	select {
	case <-c.Expired():
	case <-time.After(2 * time.Second):
		t.Fatal("session never expired")
	}
}

// waitForPlays polls the notifier because the alert fires on the watcher
// goroutine just after the state transition.
func waitForPlays(t *testing.T, n *notifierMock, want int) {
	t.Helper()

	deadline := time.Now().Add(time.Second)

	for time.Now().Before(deadline) {
		if n.playCount() == want {
			return
		}

		time.Sleep(5 * time.Millisecond)
	}

	t.Fatalf("notifier played %d times, want %d", n.playCount(), want)
}

func TestStartRejectsNonPositiveDuration(t *testing.T) {
	c := New(&dbMock{}, &notifierMock{}, nil)

	for _, minutes := range []int{0, -5} {
		err := c.Start(minutes, "deep-work")
		if !errors.Is(err, timer.ErrInvalidDuration) {
			t.Errorf(
				"Start(%d) error = %v, want ErrInvalidDuration",
				minutes, err,
			)
		}

		if got := c.State(); got != Configuring {
			t.Errorf("State() = %q after rejected start, want %q", got, Configuring)
		}
	}
}

func TestStartWhileActive(t *testing.T) {
	c := New(&dbMock{}, &notifierMock{}, nil)

	if err := c.Start(25, "first"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := c.Start(10, "second"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second Start error = %v, want ErrInvalidState", err)
	}

	// the first session's timer must be unaffected
	if r := c.Remaining(); r <= 24*time.Minute {
		t.Errorf("Remaining() = %v after rejected second start", r)
	}

	if err := c.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
}

func TestLifecycleCompletion(t *testing.T) {
	shortCountdowns(t)

	db := &dbMock{}
	n := &notifierMock{}
	c := New(db, n, nil)

	if err := c.Start(25, "deep-work"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if got := c.State(); got != Running {
		t.Fatalf("State() = %q, want %q", got, Running)
	}

	awaitExpiry(t, c)

	if got := c.State(); got != AwaitingNote {
		t.Fatalf("State() = %q after expiry, want %q", got, AwaitingNote)
	}

	waitForPlays(t, n, 1)

	id, err := c.SubmitNote("shipped feature")
	if err != nil {
		t.Fatalf("SubmitNote: %v", err)
	}

	if got := c.State(); got != Completed {
		t.Errorf("State() = %q after submit, want %q", got, Completed)
	}

	want := []models.SessionRecord{
		{
			ID:              id,
			DurationMinutes: 25,
			Tag:             "deep-work",
			Notes:           "shipped feature",
		},
	}

	diff := cmp.Diff(
		want,
		db.saved(),
		cmpopts.IgnoreFields(models.SessionRecord{}, "StartTime"),
	)
	if diff != "" {
		t.Errorf("saved records mismatch (-want +got):\n%s", diff)
	}

	if db.saved()[0].StartTime.IsZero() {
		t.Error("saved record has zero start time")
	}

	// the controller is terminal: every further call must be rejected
	if err := c.Start(5, ""); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Start after completion error = %v, want ErrInvalidState", err)
	}

	if _, err := c.SubmitNote("again"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second SubmitNote error = %v, want ErrInvalidState", err)
	}
}

func TestCancelDiscardsSession(t *testing.T) {
	shortCountdowns(t)

	db := &dbMock{}
	n := &notifierMock{}
	c := New(db, n, nil)

	if err := c.Start(25, "deep-work"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if err := c.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	if got := c.State(); got != Cancelled {
		t.Errorf("State() = %q, want %q", got, Cancelled)
	}

	// wait past the would-be expiry: no alert, no record
	time.Sleep(60 * time.Millisecond)

	if got := n.playCount(); got != 0 {
		t.Errorf("notifier played %d times for a cancelled session", got)
	}

	if got := len(db.saved()); got != 0 {
		t.Errorf("%d records persisted for a cancelled session", got)
	}

	if _, err := c.SubmitNote("too late"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("SubmitNote after Cancel error = %v, want ErrInvalidState", err)
	}

	if err := c.Cancel(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("second Cancel error = %v, want ErrInvalidState", err)
	}
}

func TestSubmitNoteRetriesAfterStorageFailure(t *testing.T) {
	shortCountdowns(t)

	db := &dbMock{failures: 1}
	c := New(db, &notifierMock{}, nil)

	if err := c.Start(25, "deep-work"); err != nil {
		t.Fatalf("Start: %v", err)
	}

	awaitExpiry(t, c)

	_, err := c.SubmitNote("did X")
	if !errors.Is(err, store.ErrStorage) {
		t.Fatalf("SubmitNote error = %v, want ErrStorage", err)
	}

	// the session data must survive the failure so the caller can retry
	if got := c.State(); got != AwaitingNote {
		t.Fatalf("State() = %q after storage failure, want %q", got, AwaitingNote)
	}

	if _, err := c.SubmitNote("did X"); err != nil {
		t.Fatalf("retried SubmitNote: %v", err)
	}

	records := db.saved()
	if len(records) != 1 {
		t.Fatalf("retry produced %d records, want exactly 1", len(records))
	}

	if records[0].Notes != "did X" {
		t.Errorf("Notes = %q, want %q", records[0].Notes, "did X")
	}
}

func TestSubmitNoteBeforeExpiry(t *testing.T) {
	c := New(&dbMock{}, &notifierMock{}, nil)

	if _, err := c.SubmitNote("note"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("SubmitNote in Configuring error = %v, want ErrInvalidState", err)
	}

	if err := c.Start(25, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}

	if _, err := c.SubmitNote("note"); !errors.Is(err, ErrInvalidState) {
		t.Errorf("SubmitNote while Running error = %v, want ErrInvalidState", err)
	}

	if err := c.Cancel(); err != nil {
		t.Fatalf("Cancel: %v", err)
	}
}

func TestNotifierFailureDoesNotBlockCompletion(t *testing.T) {
	shortCountdowns(t)

	db := &dbMock{}
	n := &notifierMock{err: errors.New("no audio device")}
	c := New(db, n, nil)

	if err := c.Start(25, ""); err != nil {
		t.Fatalf("Start: %v", err)
	}

	awaitExpiry(t, c)

	if got := c.State(); got != AwaitingNote {
		t.Fatalf("State() = %q despite notifier failure, want %q", got, AwaitingNote)
	}

	if _, err := c.SubmitNote("saved anyway"); err != nil {
		t.Fatalf("SubmitNote: %v", err)
	}

	if got := len(db.saved()); got != 1 {
		t.Errorf("%d records persisted, want 1", got)
	}
}

func TestHistoryDelegatesToStore(t *testing.T) {
	db := &dbMock{
		records: []models.SessionRecord{
			{ID: 1, DurationMinutes: 25, Notes: "oldest"},
			{ID: 2, DurationMinutes: 50, Notes: "newest"},
		},
	}

	c := New(db, &notifierMock{}, nil)

	got, err := c.History(1)
	if err != nil {
		t.Fatalf("History: %v", err)
	}

	if len(got) != 1 || got[0].Notes != "newest" {
		t.Errorf("History(1) = %+v, want only the newest record", got)
	}
}
