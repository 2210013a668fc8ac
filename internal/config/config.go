// Package config carries session defaults, the optional YAML config
// file, and the pure lookup data the controller depends on: the
// framerate table and the glyph validity predicate.
package config

import (
	"fmt"
	"os"
	"time"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFG    = 'O'
	DefaultBG    = ' '
	DefaultLive  = 2
	DefaultBirth = 3

	MinThreshold = 0
	MaxThreshold = 9
)

// Framerates is the fixed ascending table of free-run target rates in
// frames per second. The zero sentinel at the end means unthrottled.
var Framerates = []int{1, 2, 4, 8, 15, 30, 60, 120, 0}

// DefaultFPSIndex selects the 30 fps entry.
const DefaultFPSIndex = 5

// Config holds the startup settings for a session.
type Config struct {
	FG    string `yaml:"fg"`
	BG    string `yaml:"bg"`
	Live  int    `yaml:"live"`
	Birth int    `yaml:"birth"`
	FPS   int    `yaml:"fps"` // index into Framerates
}

func DefaultConfig() *Config {
	return &Config{
		FG:    string(DefaultFG),
		BG:    string(DefaultBG),
		Live:  DefaultLive,
		Birth: DefaultBirth,
		FPS:   DefaultFPSIndex,
	}
}

// Load overlays the YAML file at path onto the defaults and sanitizes
// the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Sanitize()
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Glyphs returns the configured glyph pair as runes.
func (c *Config) Glyphs() (fg, bg rune) {
	fg, _ = utf8.DecodeRuneInString(c.FG)
	bg, _ = utf8.DecodeRuneInString(c.BG)
	return fg, bg
}

// Sanitize replaces values the session cannot use with defaults: glyphs
// that are not exactly one valid rune, an equal glyph pair, thresholds
// outside [MinThreshold, MaxThreshold], and fps indices outside the
// table.
func (c *Config) Sanitize() {
	if utf8.RuneCountInString(c.FG) != 1 || !ValidGlyph([]rune(c.FG)[0]) {
		c.FG = string(DefaultFG)
	}
	if utf8.RuneCountInString(c.BG) != 1 || !ValidGlyph([]rune(c.BG)[0]) {
		c.BG = string(DefaultBG)
	}
	if c.FG == c.BG {
		c.FG = string(DefaultFG)
		c.BG = string(DefaultBG)
	}
	c.Live = ClampThreshold(c.Live)
	c.Birth = ClampThreshold(c.Birth)
	c.FPS = ClampFPSIndex(c.FPS)
}

// ValidGlyph reports whether r may serve as a display glyph: a letter,
// digit, whitespace, or punctuation character.
func ValidGlyph(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || unicode.IsPunct(r)
}

// ClampThreshold clamps a rule threshold into [MinThreshold, MaxThreshold].
func ClampThreshold(v int) int {
	if v < MinThreshold {
		return MinThreshold
	}
	if v > MaxThreshold {
		return MaxThreshold
	}
	return v
}

// ClampFPSIndex clamps an index into the framerate table.
func ClampFPSIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(Framerates) {
		return len(Framerates) - 1
	}
	return i
}

// FrameDuration returns the frame budget of a table entry, zero for the
// unthrottled sentinel.
func FrameDuration(idx int) time.Duration {
	fps := Framerates[ClampFPSIndex(idx)]
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// FPSLabel renders a table entry for the status row.
func FPSLabel(idx int) string {
	fps := Framerates[ClampFPSIndex(idx)]
	if fps <= 0 {
		return "max"
	}
	return fmt.Sprintf("%d", fps)
}
