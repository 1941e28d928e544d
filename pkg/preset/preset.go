// Package preset loads named animation configurations from a motion.yaml
// file, so applications can keep durations, bounds, and curve choices out
// of code:
//
//	version: v1
//	animations:
//	  fade-out:
//	    from: 1
//	    to: 0
//	    duration: 300ms
//	    maxFps: 60
//	    curve: ease-in-out
//	    strength: 0.4
//
// Presets describe static configuration only; they carry no runtime
// animation state. Callbacks, clock, and scheduler are attached in code
// on the Config a preset produces.
package preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/timing"
)

// SchemaVersion is the preset schema this package understands. Files may
// declare any version with the same major.
const SchemaVersion = "v1"

// File represents a parsed motion.yaml.
type File struct {
	// Version is the schema version. Empty means SchemaVersion.
	Version string `yaml:"version,omitempty"`

	// Animations maps preset names to their definitions.
	Animations map[string]Preset `yaml:"animations"`
}

// Preset is one named animation definition.
type Preset struct {
	From     float64 `yaml:"from"`
	To       float64 `yaml:"to"`
	Duration string  `yaml:"duration"`
	Progress float64 `yaml:"progress,omitempty"`
	MaxFPS   float64 `yaml:"maxFps,omitempty"`

	// Curve selects the timing function: linear (default), ease-in,
	// ease-out, ease-in-out, all-or-nothing, steps, fixed, or random.
	Curve string `yaml:"curve,omitempty"`

	// Curve parameters. Each applies only to the curves that use it.
	Strength  float64 `yaml:"strength,omitempty"`
	Threshold float64 `yaml:"threshold,omitempty"`
	Count     int     `yaml:"count,omitempty"`
	Value     float64 `yaml:"value,omitempty"`

	// FlipX and FlipY mirror the curve along the input and output axes.
	FlipX bool `yaml:"flipX,omitempty"`
	FlipY bool `yaml:"flipY,omitempty"`
}

// Load reads and validates a preset file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadOptional reads motion.yaml from dir if present. A missing file is
// not an error and yields an empty File.
func LoadOptional(dir string) (*File, error) {
	path := filepath.Join(dir, "motion.yaml")
	f, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, err
	}
	return f, nil
}

func (f *File) validate() error {
	version := f.Version
	if version == "" {
		return nil
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid preset version %q (want a semantic version like %q)", version, SchemaVersion)
	}
	if semver.Major(version) != semver.Major(SchemaVersion) {
		return fmt.Errorf("unsupported preset version %q (supported major: %s)", version, semver.Major(SchemaVersion))
	}
	return nil
}

// Config resolves the named preset into an animation.Config. Callbacks,
// clock, and scheduler are left nil for the caller to fill in.
func (f *File) Config(name string) (animation.Config, error) {
	p, ok := f.Animations[name]
	if !ok {
		return animation.Config{}, fmt.Errorf("unknown preset %q", name)
	}
	return p.Config()
}

// Config converts the preset into an animation.Config.
func (p Preset) Config() (animation.Config, error) {
	duration, err := time.ParseDuration(p.Duration)
	if err != nil {
		return animation.Config{}, fmt.Errorf("invalid duration %q: %w", p.Duration, err)
	}

	fn, err := p.TimingFunc()
	if err != nil {
		return animation.Config{}, err
	}

	return animation.Config{
		From:     p.From,
		To:       p.To,
		Duration: duration,
		Progress: p.Progress,
		MaxFPS:   p.MaxFPS,
		Timing:   fn,
	}, nil
}

// TimingFunc resolves the preset's curve name and parameters into a
// timing function. Zero-valued Strength and Threshold fall back to 0.5.
func (p Preset) TimingFunc() (timing.Func, error) {
	strength := p.Strength
	if strength == 0 {
		strength = 0.5
	}
	threshold := p.Threshold
	if threshold == 0 {
		threshold = 0.5
	}

	var fn timing.Func
	switch p.Curve {
	case "", "linear":
		fn = timing.Linear
	case "ease-in":
		fn = timing.EaseIn(strength)
	case "ease-out":
		fn = timing.EaseOut(strength)
	case "ease-in-out":
		fn = timing.EaseInOut(strength)
	case "all-or-nothing":
		fn = timing.AllOrNothing(threshold)
	case "steps":
		if p.Count <= 0 {
			return nil, fmt.Errorf("curve %q requires a positive count", p.Curve)
		}
		fn = timing.Steps(p.Count)
	case "fixed":
		fn = timing.Fixed(p.Value)
	case "random":
		fn = timing.Random()
	default:
		return nil, fmt.Errorf("unknown curve %q", p.Curve)
	}

	if p.FlipX {
		fn = timing.FlipX(fn)
	}
	if p.FlipY {
		fn = timing.FlipY(fn)
	}
	return fn, nil
}
