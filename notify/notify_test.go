package notify

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestPrepSoundStreamMissingFile(t *testing.T) {
	_, _, err := prepSoundStream(
		filepath.Join(t.TempDir(), "does-not-exist.wav"),
	)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestPrepSoundStreamUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alarm.txt")

	if err := os.WriteFile(path, []byte("not audio"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := prepSoundStream(path)
	if !errors.Is(err, errInvalidSoundFormat) {
		t.Errorf("error = %v, want errInvalidSoundFormat", err)
	}
}

func TestNoopNeverFails(t *testing.T) {
	if err := (Noop{}).Play(); err != nil {
		t.Errorf("Noop.Play() = %v, want nil", err)
	}
}
