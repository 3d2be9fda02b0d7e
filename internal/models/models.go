// Package models defines the persisted data models
package models

import "time"

// SessionRecord is the durable projection of a completed focus session.
// It is immutable once written.
type SessionRecord struct {
	StartTime       time.Time `json:"start_time"`
	Tag             string    `json:"tag,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	ID              uint64    `json:"id"`
	DurationMinutes int       `json:"duration_minutes"`
}
