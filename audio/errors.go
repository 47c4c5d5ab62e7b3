// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedSampleRate = errors.New("unsupported sample rate")
	ErrUnsupportedBitDepth   = errors.New("unsupported bit depth")
	ErrUnsupportedChannels   = errors.New("unsupported channel count")
	ErrUnknownFormat         = errors.New("unknown audio format")
	ErrNoSourcePath          = errors.New("no source path")
	ErrStreamRewind          = errors.New("stream cannot read before released position")
)

// ConfigError describes a source that cannot be rendered. Param names the
// offending stream parameter, Got is the observed value and Want the accepted
// values. Param is empty when the source could not be opened at all.
type ConfigError struct {
	Path  string
	Param string
	Got   int
	Want  string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Param == "" {
		return fmt.Sprintf("source %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("source %q: %s is %d, want %s: %v", e.Path, e.Param, e.Got, e.Want, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
