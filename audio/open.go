// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Open decodes the file at path with the decoder registered for its
// extension, validates its parameters and returns a mono Stream.
// Every failure is reported as a *ConfigError.
func Open(path string, reg *Registry) (*Stream, error) {
	if path == "" {
		return nil, &ConfigError{Path: path, Err: ErrNoSourcePath}
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	dec, ok := reg.Get(ext)
	if !ok {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("%w: %q", ErrUnknownFormat, ext)}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	src, err := dec.Decode(f)
	if err != nil {
		_ = f.Close()
		return nil, &ConfigError{Path: path, Err: err}
	}

	params := ParamsOf(src)
	if err := params.Validate(path); err != nil {
		_ = src.Close()
		_ = f.Close()
		return nil, err
	}

	s, err := NewStream(src, params)
	if err != nil {
		_ = src.Close()
		_ = f.Close()
		return nil, &ConfigError{Path: path, Err: err}
	}
	s.closer = f

	return s, nil
}
