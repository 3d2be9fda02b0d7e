// Package store connects to the data store and manages session records
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/sanyam-singhal/focus-tracker-lite/internal/models"
	"github.com/sanyam-singhal/focus-tracker-lite/internal/timeutil"
)

var sessionsBucket = []byte("sessions")

// DB is the database storage interface.
type DB interface {
	// Insert durably persists a completed session record and returns the
	// assigned id
	Insert(rec *models.SessionRecord) (uint64, error)
	// Recent returns up to limit records ordered from most recently
	// started to least
	Recent(limit int) ([]models.SessionRecord, error)
	// Close ends the database connection
	Close() error
}

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
}

// recordKey orders records chronologically, with insertion order breaking
// ties between identical start times.
func recordKey(startTime time.Time, id uint64) []byte {
	return fmt.Appendf(timeutil.ToKey(startTime), "/%020d", id)
}

// Insert persists a completed session. The record is committed before
// Insert returns, so it is immediately visible to Recent. The assigned id
// is also written back to rec.
func (c *Client) Insert(rec *models.SessionRecord) (uint64, error) {
	err := c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(sessionsBucket)

		id, err := b.NextSequence()
		if err != nil {
			return err
		}

		rec.ID = id

		value, err := json.Marshal(rec)
		if err != nil {
			return err
		}

		return b.Put(recordKey(rec.StartTime, id), value)
	})
	if err != nil {
		return 0, ErrStorage.Wrap(err)
	}

	return rec.ID, nil
}

// Recent returns up to limit records, most recently started first. An empty
// store yields an empty slice, not an error.
func (c *Client) Recent(limit int) ([]models.SessionRecord, error) {
	records := make([]models.SessionRecord, 0, limit)

	err := c.View(func(tx *bolt.Tx) error {
		cur := tx.Bucket(sessionsBucket).Cursor()

		for k, v := cur.Last(); k != nil && len(records) < limit; k, v = cur.Prev() {
			var rec models.SessionRecord

			err := json.Unmarshal(v, &rec)
			if err != nil {
				return err
			}

			records = append(records, rec)
		}

		return nil
	})
	if err != nil {
		return nil, ErrStorage.Wrap(err)
	}

	return records, nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyRunning
		}

		return nil, ErrStorage.Wrap(err)
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection. The sessions bucket is
// created if it does not exist already.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(sessionsBucket)

		return err
	})
	if err != nil {
		return nil, ErrStorage.Wrap(err)
	}

	return &Client{
		db,
	}, nil
}
