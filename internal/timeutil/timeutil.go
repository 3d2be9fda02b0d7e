// Package timeutil provides utility functions for time keys and countdown
// display.
package timeutil

import "time"

// keyFormat is RFC 3339 in UTC with a fixed-width fractional second so that
// lexical byte order matches chronological order. time.RFC3339Nano trims
// trailing zeros and cannot be compared bytewise.
const keyFormat = "2006-01-02T15:04:05.000000000Z"

// ToKey converts a time value to a database key prefix for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyFormat))
}

// MinSec splits a duration into whole minutes and leftover seconds.
func MinSec(d time.Duration) (mins, secs int) {
	if d < 0 {
		d = 0
	}

	total := int(d.Round(time.Second) / time.Second)

	return total / 60, total % 60
}
