// SPDX-License-Identifier: EPL-2.0

package hrtf

import (
	"fmt"
	"math"
)

// InverseFilterPath is the minimum phase inverse of the measurement
// loudspeaker inside the full database.
const InverseFilterPath = "full/headphones+spkr/Opti-minphase.wav"

// Step is the azimuth resolution of the horizontal plane measurements.
const Step = 5

// Selection names the files holding the impulse responses for one azimuth.
type Selection struct {
	Database  Database
	Quantized int       // azimuth rounded to Step, in [0, 360)
	Angle     int       // azimuth encoded in the file names
	Files     [2]string // left ear, right ear
	Stereo    bool      // both ears come from one two channel file
	Swap      bool      // exchange the channels of a stereo file
}

// Selector maps a speaker azimuth to database files.
type Selector interface {
	Select(angle float64) Selection
}

// Quantize rounds angle to the nearest multiple of Step after wrapping it
// into [0, 360). Remainders of exactly half a step round up, so the result
// may be 360.
func Quantize(angle float64) int {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}

	r := math.Mod(a, Step)
	q := int(a - r)
	if r >= Step/2.0 {
		q += Step
	}

	return q
}

func wrap(q int) int {
	if q >= 360 {
		return q - 360
	}
	return q
}

type compactSelector struct{}

// Select reflects azimuths of the left hemisphere onto the measured right
// one and marks the channels for exchange. Rounding happens first.
func (compactSelector) Select(angle float64) Selection {
	q := wrap(Quantize(angle))

	sel := Selection{Database: Compact, Quantized: q, Angle: q, Stereo: true}
	if q > 180 {
		sel.Angle = 360 - q
		sel.Swap = true
	}

	name := fmt.Sprintf("compact/elev0/H0e%03da.wav", sel.Angle)
	sel.Files = [2]string{name, name}

	return sel
}

// fullSelector takes both ears from the files of one pinna: the near ear at
// the azimuth and the far ear at the opposite azimuth.
type fullSelector struct {
	db     Database
	prefix string
}

func (s fullSelector) Select(angle float64) Selection {
	q := wrap(Quantize(angle))

	far := q + 180
	if q >= 180 {
		far = q - 180
	}

	near := fmt.Sprintf("full/elev0/%s0e%03da.wav", s.prefix, q)
	opposite := fmt.Sprintf("full/elev0/%s0e%03da.wav", s.prefix, far)

	sel := Selection{Database: s.db, Quantized: q, Angle: q}
	if s.db == BigEar {
		sel.Files = [2]string{opposite, near}
	} else {
		sel.Files = [2]string{near, opposite}
	}

	return sel
}
