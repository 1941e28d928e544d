package preset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "motion.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sample = `
version: v1
animations:
  fade-out:
    from: 1
    to: 0
    duration: 300ms
    maxFps: 60
    curve: ease-in-out
    strength: 0.4
  slide:
    from: 0
    to: 240
    duration: 1s
    progress: 0.5
  blink:
    from: 0
    to: 1
    duration: 2s
    curve: steps
    count: 4
`

func TestLoadResolvesConfig(t *testing.T) {
	f, err := Load(writeFile(t, sample))
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := f.Config("fade-out")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.From != 1 || cfg.To != 0 {
		t.Errorf("bounds = (%v, %v), want (1, 0)", cfg.From, cfg.To)
	}
	if cfg.Duration != 300*time.Millisecond {
		t.Errorf("duration = %v, want 300ms", cfg.Duration)
	}
	if cfg.MaxFPS != 60 {
		t.Errorf("maxFps = %v, want 60", cfg.MaxFPS)
	}
	if cfg.Timing == nil {
		t.Fatal("timing function not resolved")
	}
	// ease-in-out keeps the endpoints exact.
	if cfg.Timing(0) != 0 || cfg.Timing(1) != 1 {
		t.Error("resolved curve should pin 0 and 1")
	}
}

func TestLoadInitialProgress(t *testing.T) {
	f, err := Load(writeFile(t, sample))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := f.Config("slide")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Progress != 0.5 {
		t.Errorf("progress = %v, want 0.5", cfg.Progress)
	}
}

func TestStepsCurve(t *testing.T) {
	f, err := Load(writeFile(t, sample))
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := f.Config("blink")
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Timing(0.3); got != 0.25 {
		t.Errorf("steps(4)(0.3) = %v, want 0.25", got)
	}
}

func TestUnknownPreset(t *testing.T) {
	f, err := Load(writeFile(t, sample))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Config("nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestUnknownCurve(t *testing.T) {
	p := Preset{From: 0, To: 1, Duration: "1s", Curve: "zigzag"}
	if _, err := p.Config(); err == nil || !strings.Contains(err.Error(), "zigzag") {
		t.Errorf("expected unknown-curve error naming the curve, got %v", err)
	}
}

func TestInvalidDuration(t *testing.T) {
	p := Preset{From: 0, To: 1, Duration: "fast"}
	if _, err := p.Config(); err == nil {
		t.Error("expected error for invalid duration")
	}
}

func TestStepsRequiresCount(t *testing.T) {
	p := Preset{From: 0, To: 1, Duration: "1s", Curve: "steps"}
	if _, err := p.Config(); err == nil {
		t.Error("expected error for steps without count")
	}
}

func TestVersionValidation(t *testing.T) {
	cases := []struct {
		version string
		wantErr bool
	}{
		{"", false},
		{"v1", false},
		{"v1.2.3", false},
		{"v2", true},
		{"1.0", true},
		{"banana", true},
	}
	for _, c := range cases {
		content := "version: " + c.version + "\nanimations: {}\n"
		if c.version == "" {
			content = "animations: {}\n"
		}
		_, err := Load(writeFile(t, content))
		if (err != nil) != c.wantErr {
			t.Errorf("version %q: err = %v, wantErr = %v", c.version, err, c.wantErr)
		}
	}
}

func TestLoadOptionalMissingFile(t *testing.T) {
	f, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Animations) != 0 {
		t.Errorf("expected empty file, got %d animations", len(f.Animations))
	}
}

func TestFlipModifiers(t *testing.T) {
	p := Preset{From: 0, To: 1, Duration: "1s", Curve: "all-or-nothing", FlipX: true}
	cfg, err := p.Config()
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.Timing(0.2); got != 1 {
		t.Errorf("flipped step at 0.2 = %v, want 1", got)
	}
}
