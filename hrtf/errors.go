// SPDX-License-Identifier: EPL-2.0

package hrtf

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownDatabase = errors.New("unknown hrtf database")
	ErrEmptyResponse   = errors.New("impulse response has no samples")
	ErrChannelLayout   = errors.New("unexpected channel count in hrtf file")
	ErrNoInverseFilter = errors.New("inverse filter is only measured for the full database")
)

// LookupError reports an impulse response that could not be loaded for a
// speaker. The speaker cannot be rendered without it.
type LookupError struct {
	Database Database
	Angle    int // quantized azimuth
	Path     string
	Err      error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("hrtf %s at %d°: %s: %v", e.Database, e.Angle, e.Path, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }
