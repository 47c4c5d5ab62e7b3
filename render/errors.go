// SPDX-License-Identifier: EPL-2.0

package render

import (
	"errors"
	"fmt"
)

var (
	ErrNoSpeakers       = errors.New("no speakers to render")
	ErrDuplicateSpeaker = errors.New("duplicate speaker id")
)

// SpeakerError is stored in the Output of a speaker that could not be
// rendered. Err is usually an *audio.ConfigError or an *hrtf.LookupError.
type SpeakerError struct {
	ID   string
	Path string
	Err  error
}

func (e *SpeakerError) Error() string {
	return fmt.Sprintf("speaker %q (%s): %v", e.ID, e.Path, e.Err)
}

func (e *SpeakerError) Unwrap() error { return e.Err }
