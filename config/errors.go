// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrNoSpeakers       = errors.New("no speakers configured")
	ErrDuplicateSpeaker = errors.New("duplicate speaker id")
	ErrEmptySpeakerID   = errors.New("speaker id is empty")
	ErrNegativeRate     = errors.New("output block rate must not be negative")
	ErrNegativeWorkers  = errors.New("workers must not be negative")
)
