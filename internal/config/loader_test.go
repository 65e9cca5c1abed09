package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestDefaultSnakeConfig(t *testing.T) {
	cfg := DefaultSnakeConfig()

	if cfg != fallbackSnakeConfig() {
		t.Errorf("embedded default %+v differs from fallback %+v", cfg, fallbackSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
	if cfg.TickInterval() != 150*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 150ms", cfg.TickInterval())
	}
	if cfg.Cells() != 400 {
		t.Errorf("Cells() = %d, expected 400", cfg.Cells())
	}
}

func TestLoadCustomPathOverlaysBase(t *testing.T) {
	path := writeConfig(t, "gridSize: 12\ntickIntervalMs: 90\n")

	cfg, source, err := Load(path, DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.GridSize != 12 || cfg.TickIntervalMs != 90 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Absent keys keep base values
	if cfg.InitialBodyLength != 3 || cfg.MaxFruitRejections != 64 {
		t.Errorf("base values lost: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"malformed yaml", "gridSize: [1, 2\n", "failed to parse"},
		{"unknown key", "gridsize: 10\n", "failed to parse"},
		{"grid too small", "gridSize: 1\n", "gridSize 1 out of range"},
		{"grid too large", "gridSize: 65\n", "gridSize 65 out of range"},
		{"tick too fast", "tickIntervalMs: 5\n", "tickIntervalMs 5 below minimum"},
		{"body too long", "gridSize: 4\ninitialBodyLength: 5\n", "initialBodyLength 5 out of range"},
		{"empty body", "initialBodyLength: 0\n", "initialBodyLength 0 out of range"},
		{"negative rejections", "maxFruitRejections: -1\n", "must not be negative"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.body)
			_, _, err := Load(path, DefaultSnakeConfig())
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), DefaultSnakeConfig())
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadEmptyFileKeepsBase(t *testing.T) {
	base := DefaultSnakeConfig()
	base.GridSize = 8

	cfg, _, err := Load(writeConfig(t, ""), base)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != base {
		t.Errorf("empty file changed config: %+v vs %+v", cfg, base)
	}
}

func TestLoadFallsBackToBase(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	base := DefaultSnakeConfig()
	base.GridSize = 10

	cfg, source, err := Load("", base)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != SourceBase {
		t.Errorf("source = %q, expected %q", source, SourceBase)
	}
	if cfg != base {
		t.Errorf("config = %+v, expected base %+v", cfg, base)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".snake")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("seed: 77\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load("", DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Seed != 77 {
		t.Errorf("Seed = %d, expected 77", cfg.Seed)
	}
	if !strings.HasSuffix(source, filepath.Join(".snake", "config.yaml")) {
		t.Errorf("source = %q, expected user config path", source)
	}
}

func TestMarshalRoundTripKeys(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	for _, key := range []string{"gridSize: 20", "tickIntervalMs: 150", "initialBodyLength: 3"} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshaled config missing %q:\n%s", key, data)
		}
	}
}
