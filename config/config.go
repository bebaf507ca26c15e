package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rivermaze/slopes"
)

// Default returns the run performed when no file or flag is given.
func Default() Config {
	return Config{
		N:        DefaultN,
		Seed:     DefaultSeed,
		Mode:     ModeBucketed,
		Slopes:   DefaultSlopes,
		Heights:  DefaultHeights,
		Drainage: DefaultDrainage,
	}
}

// Load reads a YAML run file over Default and validates the result.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: reading %s: %w", ErrBadConfig, path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over Default and validates the result. Empty input
// yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: parsing YAML: %w", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges and normalizes Mode.
func (c *Config) Validate() error {
	if c.N <= 0 {
		return fmt.Errorf("%w: n must be positive, got %d", ErrBadConfig, c.N)
	}
	if c.MaxPops < 0 {
		return fmt.Errorf("%w: max_pops cannot be negative (%d)", ErrBadConfig, c.MaxPops)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout cannot be negative (%s)", ErrBadConfig, c.Timeout)
	}
	mode, err := ParseMode(string(c.Mode))
	if err != nil {
		return err
	}
	c.Mode = mode
	if c.Mode == ModeBucketed && c.Slopes == "" {
		return fmt.Errorf("%w: bucketed mode needs a slopes file", ErrBadConfig)
	}
	if c.Heights == "" || c.Drainage == "" {
		return fmt.Errorf("%w: output paths must be set", ErrBadConfig)
	}
	return nil
}

// Table returns the slope table the run uses: Classic for ModeClassic,
// otherwise the file named by Slopes.
func (c Config) Table() (slopes.Table, error) {
	if c.Mode == ModeClassic {
		return slopes.Classic(), nil
	}
	return slopes.Load(c.Slopes)
}

// ParseMode maps a case-insensitive name to a Mode. Unknown names return
// ErrUnknownMode, with a suggestion when one known mode is close.
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, m := range Modes {
		if name == string(m) {
			return m, nil
		}
	}
	if guess, ok := suggest(name); ok {
		return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownMode, s, guess)
	}
	return "", fmt.Errorf("%w %q (want one of %s, %s)", ErrUnknownMode, s, ModeBucketed, ModeClassic)
}

// suggest returns the closest mode within an edit budget that grows with
// the name length.
func suggest(name string) (Mode, bool) {
	best, bestDist := Mode(""), -1
	for _, m := range Modes {
		d := levenshtein.ComputeDistance(name, string(m))
		if d > editLimit(len(m)) {
			continue
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = m, d
		}
	}
	return best, bestDist >= 0
}

func editLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
