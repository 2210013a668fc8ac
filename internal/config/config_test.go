package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Live != 2 || cfg.Birth != 3 {
		t.Errorf("default thresholds = %d/%d, want 2/3", cfg.Live, cfg.Birth)
	}
	fg, bg := cfg.Glyphs()
	if fg != 'O' || bg != ' ' {
		t.Errorf("default glyphs = %q/%q, want 'O'/' '", fg, bg)
	}
	if Framerates[cfg.FPS] != 30 {
		t.Errorf("default fps entry = %d, want 30", Framerates[cfg.FPS])
	}
}

func TestValidGlyph(t *testing.T) {
	tests := []struct {
		r     rune
		valid bool
	}{
		{'O', true},
		{'x', true},
		{'7', true},
		{' ', true},
		{'.', true},
		{'#', true},
	}
	for _, tt := range tests {
		if got := ValidGlyph(tt.r); got != tt.valid {
			t.Errorf("ValidGlyph(%q) = %v, want %v", tt.r, got, tt.valid)
		}
	}

	for _, r := range []rune{'\x00', '\x1b', '€'} {
		if ValidGlyph(r) {
			t.Errorf("ValidGlyph(%q) = true, want false", r)
		}
	}
}

func TestClampThreshold(t *testing.T) {
	tests := []struct{ in, want int }{
		{-1, 0},
		{0, 0},
		{5, 5},
		{9, 9},
		{10, 9},
		{100, 9},
	}
	for _, tt := range tests {
		if got := ClampThreshold(tt.in); got != tt.want {
			t.Errorf("ClampThreshold(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampFPSIndex(t *testing.T) {
	if got := ClampFPSIndex(-1); got != 0 {
		t.Errorf("ClampFPSIndex(-1) = %d, want 0", got)
	}
	last := len(Framerates) - 1
	if got := ClampFPSIndex(len(Framerates)); got != last {
		t.Errorf("ClampFPSIndex(len) = %d, want %d", got, last)
	}
	if got := ClampFPSIndex(3); got != 3 {
		t.Errorf("ClampFPSIndex(3) = %d, want 3", got)
	}
}

func TestFrameDuration(t *testing.T) {
	if d := FrameDuration(len(Framerates) - 1); d != 0 {
		t.Errorf("unthrottled frame duration = %v, want 0", d)
	}
	for i, fps := range Framerates[:len(Framerates)-1] {
		want := time.Second / time.Duration(fps)
		if d := FrameDuration(i); d != want {
			t.Errorf("FrameDuration(%d) = %v, want %v", i, d, want)
		}
	}
}

func TestFPSLabel(t *testing.T) {
	if got := FPSLabel(len(Framerates) - 1); got != "max" {
		t.Errorf("sentinel label = %q, want \"max\"", got)
	}
	if got := FPSLabel(0); got != "1" {
		t.Errorf("FPSLabel(0) = %q, want \"1\"", got)
	}
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		fg   rune
		bg   rune
	}{
		{"equal glyphs fall back", Config{FG: "O", BG: "O", Live: 2, Birth: 3}, 'O', ' '},
		{"invalid fg falls back", Config{FG: "\x1b", BG: ".", Live: 2, Birth: 3}, 'O', '.'},
		{"multi-rune fg falls back", Config{FG: "OO", BG: ".", Live: 2, Birth: 3}, 'O', '.'},
		{"valid pair kept", Config{FG: "#", BG: " ", Live: 2, Birth: 3}, '#', ' '},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Sanitize()
			fg, bg := tt.in.Glyphs()
			if fg != tt.fg || bg != tt.bg {
				t.Errorf("glyphs = %q/%q, want %q/%q", fg, bg, tt.fg, tt.bg)
			}
		})
	}
}

func TestSanitize_Thresholds(t *testing.T) {
	cfg := Config{FG: "O", BG: " ", Live: -4, Birth: 42, FPS: 99}
	cfg.Sanitize()
	if cfg.Live != 0 || cfg.Birth != 9 {
		t.Errorf("thresholds = %d/%d, want 0/9", cfg.Live, cfg.Birth)
	}
	if cfg.FPS != len(Framerates)-1 {
		t.Errorf("fps index = %d, want %d", cfg.FPS, len(Framerates)-1)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifepad.yaml")
	data := "fg: \"#\"\nbg: \".\"\nlive: 1\nbirth: 4\nfps: 2\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	fg, bg := cfg.Glyphs()
	if fg != '#' || bg != '.' {
		t.Errorf("glyphs = %q/%q, want '#'/'.'", fg, bg)
	}
	if cfg.Live != 1 || cfg.Birth != 4 || cfg.FPS != 2 {
		t.Errorf("got live=%d birth=%d fps=%d", cfg.Live, cfg.Birth, cfg.FPS)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifepad.yaml")
	if err := os.WriteFile(path, []byte("birth: 6\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Birth != 6 {
		t.Errorf("birth = %d, want 6", cfg.Birth)
	}
	if cfg.Live != DefaultLive || cfg.FPS != DefaultFPSIndex {
		t.Errorf("defaults not preserved: live=%d fps=%d", cfg.Live, cfg.FPS)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifepad.yaml")
	cfg := &Config{FG: "@", BG: " ", Live: 3, Birth: 5, FPS: 1}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip = %+v, want %+v", loaded, cfg)
	}
}
