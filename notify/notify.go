// Package notify produces the end-of-session alert. Playback is strictly
// best-effort: every failure is reported through the returned error and the
// session lifecycle must keep moving regardless.
package notify

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pterm/pterm"
)

// Notifier signals the end of a session with an audible cue.
type Notifier interface {
	Play() error
}

// Noop is a Notifier that does nothing.
type Noop struct{}

func (Noop) Play() error { return nil }

// Alert plays the configured alarm sound and optionally sends a desktop
// notification. A missing or unreadable sound file degrades to the system
// beep rather than failing the caller outright.
type Alert struct {
	// SoundPath is the audio file played on expiry (wav, mp3, flac, or
	// ogg, chosen by extension).
	SoundPath string
	// Desktop also raises a desktop notification when true.
	Desktop bool
}

// Play blocks until the alarm sound finishes.
func (a *Alert) Play() error {
	if a.Desktop {
		err := beeep.Notify(
			"Focus session complete",
			"Time is up. What did you get done?",
			"",
		)
		if err != nil {
			pterm.Error.Printfln("unable to display notification: %v", err)
		}
	}

	stream, format, err := prepSoundStream(a.SoundPath)
	if err != nil {
		// fall back to the system beep so the user still hears
		// something when the sound file is absent or unreadable
		if berr := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); berr != nil {
			pterm.Error.Printfln("system beep failed: %v", berr)
		}

		return errAlarmPlayback.Wrap(err)
	}

	defer func() {
		_ = stream.Close()
	}()

	bufferSize := 10

	err = speaker.Init(
		format.SampleRate,
		format.SampleRate.N(time.Duration(int(time.Second)/bufferSize)),
	)
	if err != nil {
		return errAlarmPlayback.Wrap(err)
	}

	defer speaker.Close()

	done := make(chan bool)

	speaker.Play(beep.Seq(stream, beep.Callback(func() {
		done <- true
	})))

	<-done

	speaker.Clear()

	return nil
}

// prepSoundStream returns an audio stream for the specified sound file.
// Closing the stream closes the underlying file.
func prepSoundStream(sound string) (beep.StreamSeekCloser, beep.Format, error) {
	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)

	f, err := os.Open(sound)
	if err != nil {
		return nil, format, err
	}

	switch filepath.Ext(sound) {
	case ".ogg":
		stream, format, err = vorbis.Decode(f)
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".flac":
		stream, format, err = flac.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		_ = f.Close()

		return nil, format, errInvalidSoundFormat
	}

	if err != nil {
		_ = f.Close()

		return nil, format, err
	}

	return stream, format, nil
}
