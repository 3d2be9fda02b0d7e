package notify

import "github.com/sanyam-singhal/focus-tracker-lite/internal/apperr"

var (
	errAlarmPlayback = &apperr.Error{
		Message: "unable to play alarm sound",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}
)
