//go:build !tinygo

package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"badge/badgeos/input"
	"badge/badgeos/program"
)

func TestParseConfigOverridesDefaults(t *testing.T) {
	cfg := DefaultConfig()
	doc := `
boot = "menu"
input = "level"
notfound_dwell = "500ms"
`
	if err := parseConfig(doc, &cfg); err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Boot != program.Menu || cfg.Input != input.Level || cfg.NotFoundDwell != 500*time.Millisecond {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.ProgramPeriod != time.Second {
		t.Fatalf("ProgramPeriod = %v, want default kept", cfg.ProgramPeriod)
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, doc := range []string{
		`boot = "tetris"`,
		`menu_period = "fast"`,
		`colour = "red"`,
		`boot = `,
	} {
		cfg := DefaultConfig()
		if err := parseConfig(doc, &cfg); err == nil {
			t.Fatalf("parseConfig(%q) succeeded, want error", doc)
		}
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "badge.toml")
	if err := os.WriteFile(path, []byte("blink_period = \"100ms\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg := DefaultConfig()
	if err := LoadConfig(path, &cfg); err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.BlinkPeriod != 100*time.Millisecond {
		t.Fatalf("BlinkPeriod = %v", cfg.BlinkPeriod)
	}
	if err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"), &cfg); err == nil {
		t.Fatal("expected missing file to fail")
	}
}

func TestConfigListsEveryUnknownKey(t *testing.T) {
	cfg := DefaultConfig()
	err := parseConfig("colour = \"red\"\nsize = 3\n", &cfg)
	if err == nil {
		t.Fatal("parseConfig succeeded, want error")
	}
	for _, key := range []string{"colour", "size"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("err = %v, want it to name %q", err, key)
		}
	}

	path := filepath.Join(t.TempDir(), "badge.toml")
	if err := os.WriteFile(path, []byte("colour = \"red\"\nsize = 3\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	fileErr := LoadConfig(path, &cfg)
	if fileErr == nil || !strings.HasSuffix(fileErr.Error(), strings.TrimPrefix(err.Error(), "app: config: ")) {
		t.Fatalf("LoadConfig err = %v, want same message as %v", fileErr, err)
	}
}
