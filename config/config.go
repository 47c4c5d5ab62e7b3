// SPDX-License-Identifier: EPL-2.0

// Package config loads render settings from a JSON file with environment
// variable overrides.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/ik5/binaural/audio"
	"github.com/ik5/binaural/dsp"
	"github.com/ik5/binaural/hrtf"
)

// Speaker is one virtual loudspeaker.
type Speaker struct {
	ID        string  `json:"id"`
	Angle     float64 `json:"angle"`    // azimuth in degrees, clockwise from the front
	Distance  float64 `json:"distance"` // carried through, not rendered
	Path      string  `json:"path"`
	Normalize bool    `json:"normalize"`
}

// Config holds the settings of one render pass.
type Config struct {
	HRTFDatabase    string  `json:"hrtf_database"`
	HRTFRoot        string  `json:"hrtf_root"`
	InverseFilter   bool    `json:"inverse_filter_active"`
	OutputBlockRate float64 `json:"output_block_rate"` // blocks per second, 0 for the default FFT size
	Window          bool    `json:"window"`
	NormalizePerEar bool    `json:"normalize_per_ear"` // drops the level difference between the ears
	Workers         int     `json:"workers"`           // 0 runs every speaker at once
	OutputDir       string  `json:"output_dir"`

	Speakers []Speaker `json:"speakers"`
}

// Default returns the settings used when nothing else is given.
func Default() Config {
	return Config{
		HRTFDatabase: "kemar_compact",
		HRTFRoot:     "./kemar",
		OutputDir:    ".",
	}
}

// Load reads the JSON file at path over the defaults, applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("opening config: %w", err)
		}
		defer f.Close()

		if err := decode(f, &cfg); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse is Load for an already open document.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := decode(r, &cfg); err != nil {
		return Config{}, err
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.HRTFDatabase = envStr("BINAURAL_HRTF_DATABASE", c.HRTFDatabase)
	c.HRTFRoot = envStr("BINAURAL_HRTF_ROOT", c.HRTFRoot)
	c.InverseFilter = envBool("BINAURAL_INVERSE_FILTER", c.InverseFilter)
	c.OutputBlockRate = envFloat("BINAURAL_BLOCK_RATE", c.OutputBlockRate)
	c.Window = envBool("BINAURAL_WINDOW", c.Window)
	c.NormalizePerEar = envBool("BINAURAL_NORMALIZE_PER_EAR", c.NormalizePerEar)
	c.Workers = envInt("BINAURAL_WORKERS", c.Workers)
	c.OutputDir = envStr("BINAURAL_OUTPUT_DIR", c.OutputDir)
}

// Validate reports the first setting that cannot be rendered.
func (c Config) Validate() error {
	db, err := c.Database()
	if err != nil {
		return err
	}

	if c.OutputBlockRate < 0 {
		return fmt.Errorf("%w: %v", ErrNegativeRate, c.OutputBlockRate)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeWorkers, c.Workers)
	}

	if _, err := dsp.NewBlockParams(c.FFTSize(), db.IRLength()); err != nil {
		return fmt.Errorf("output block rate %v with %s: %w", c.OutputBlockRate, db, err)
	}

	if len(c.Speakers) == 0 {
		return ErrNoSpeakers
	}

	seen := make(map[string]bool, len(c.Speakers))
	for i, sp := range c.Speakers {
		if sp.ID == "" {
			return fmt.Errorf("%w: speaker %d", ErrEmptySpeakerID, i)
		}
		if seen[sp.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateSpeaker, sp.ID)
		}
		seen[sp.ID] = true
	}

	return nil
}

// Database parses HRTFDatabase.
func (c Config) Database() (hrtf.Database, error) {
	return hrtf.ParseDatabase(c.HRTFDatabase)
}

// FFTSize converts the output block rate into the power of two closest to
// ReferenceRate / OutputBlockRate samples.
func (c Config) FFTSize() int {
	if c.OutputBlockRate <= 0 {
		return dsp.DefaultFFTSize
	}

	exp := math.Round(math.Log2(audio.ReferenceRate / c.OutputBlockRate))
	exp = min(max(exp, 0), 30)

	return 1 << int(exp)
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
