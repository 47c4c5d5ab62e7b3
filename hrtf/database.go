// SPDX-License-Identifier: EPL-2.0

package hrtf

import (
	"fmt"
	"strings"
)

// Database is one of the KEMAR measurement sets.
type Database int

const (
	// Compact is the reduced set: one stereo file per azimuth covering the
	// right hemisphere, 128 samples per ear, loudspeaker response removed.
	Compact Database = iota
	// NormalEar is the full set measured with the normal pinna, 512 samples.
	NormalEar
	// BigEar is the full set measured with the large pinna, 512 samples.
	BigEar
)

// ParseDatabase accepts the names used in render settings. The "full"
// spellings name the same measurement sets as the short ones.
func ParseDatabase(name string) (Database, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "kemar_compact", "compact":
		return Compact, nil
	case "kemar_normal_ear", "kemar_full_normal_ear", "normal_ear":
		return NormalEar, nil
	case "kemar_big_ear", "kemar_full_big_ear", "big_ear":
		return BigEar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDatabase, name)
	}
}

func (d Database) String() string {
	switch d {
	case Compact:
		return "kemar_compact"
	case NormalEar:
		return "kemar_normal_ear"
	case BigEar:
		return "kemar_big_ear"
	default:
		return fmt.Sprintf("Database(%d)", int(d))
	}
}

// Full reports whether d belongs to the full measurement set, which is the
// only one with a measured loudspeaker inverse filter.
func (d Database) Full() bool { return d == NormalEar || d == BigEar }

// RawLength is the number of samples per ear stored in the files.
func (d Database) RawLength() int {
	if d.Full() {
		return 512
	}
	return 128
}

// IRLength is the zero padded impulse response length used for block
// arithmetic. One extra sample makes FFTSize-IRLength+1 even.
func (d Database) IRLength() int { return d.RawLength() + 1 }

// Selector returns the file selection strategy of d.
func (d Database) Selector() Selector {
	switch d {
	case NormalEar:
		return fullSelector{db: NormalEar, prefix: "L"}
	case BigEar:
		return fullSelector{db: BigEar, prefix: "R"}
	default:
		return compactSelector{}
	}
}
