// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// withConfigDir points Load at dir for the duration of the test.
// Tests using it must not run in parallel.
func withConfigDir(t *testing.T, dir string) {
	t.Helper()
	SetConfigDirOverride(dir)
	t.Cleanup(func() { SetConfigDirOverride("") })
}

func TestLoadDefaults(t *testing.T) {
	withConfigDir(t, t.TempDir()) // empty dir: no config file

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Scripts.Extension != ".sh" {
		t.Errorf("extension = %q, want .sh", cfg.Scripts.Extension)
	}
	if cfg.UI.Theme != "auto" {
		t.Errorf("theme = %q, want auto", cfg.UI.Theme)
	}
	if cfg.Inject.Delay != 250*time.Millisecond {
		t.Errorf("inject delay = %v, want 250ms", cfg.Inject.Delay)
	}
	if cfg.Watch.Debounce != 400*time.Millisecond {
		t.Errorf("watch debounce = %v, want 400ms", cfg.Watch.Debounce)
	}
	if len(cfg.Inject.Command) == 0 || cfg.Inject.Command[0] != "xdotool" {
		t.Errorf("inject command = %v, want xdotool default", cfg.Inject.Command)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "scripts:\n  extension: .bash\nui:\n  theme: dracula\ninject:\n  delay: 1s\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	withConfigDir(t, dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Scripts.Extension != ".bash" {
		t.Errorf("extension = %q, want .bash", cfg.Scripts.Extension)
	}
	if cfg.UI.Theme != "dracula" {
		t.Errorf("theme = %q, want dracula", cfg.UI.Theme)
	}
	if cfg.Inject.Delay != time.Second {
		t.Errorf("inject delay = %v, want 1s", cfg.Inject.Delay)
	}
	// Untouched keys keep their defaults.
	if cfg.Watch.Debounce != 400*time.Millisecond {
		t.Errorf("watch debounce = %v, want default", cfg.Watch.Debounce)
	}
}

func TestLoadRejectsBrokenFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(":{not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	withConfigDir(t, dir)

	if _, err := Load(); err == nil {
		t.Error("Load() accepted a broken config file")
	}
}

func TestConfigIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		cfg    Config
		wantOK bool
	}{
		{
			name: "valid",
			cfg: Config{
				Scripts: ScriptsConfig{Extension: ".sh"},
				Inject:  InjectConfig{Command: []string{"typer"}},
			},
			wantOK: true,
		},
		{
			name: "empty extension",
			cfg: Config{
				Inject: InjectConfig{Command: []string{"typer"}},
			},
			wantOK: false,
		},
		{
			name: "negative delay",
			cfg: Config{
				Scripts: ScriptsConfig{Extension: ".sh"},
				Inject:  InjectConfig{Command: []string{"typer"}, Delay: -time.Second},
			},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ok, errs := tt.cfg.IsValid()
			if ok != tt.wantOK {
				t.Errorf("IsValid() = %v (%v), want %v", ok, errs, tt.wantOK)
			}
			if !ok && len(errs) == 0 {
				t.Error("invalid config produced no errors")
			}
		})
	}
}
