// SPDX-License-Identifier: EPL-2.0

package render

import (
	"log"

	"github.com/ik5/binaural/audio"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger reports progress to l. Without it the renderer is silent.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithWorkers limits how many speakers are rendered at once. Zero or less
// renders all of them concurrently.
func WithWorkers(n int) Option {
	return func(r *Renderer) { r.workers = n }
}

// WithRegistry replaces the decoders used to open speaker sources.
func WithRegistry(reg *audio.Registry) Option {
	return func(r *Renderer) {
		if reg != nil {
			r.registry = reg
		}
	}
}
