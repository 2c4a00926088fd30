package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Path != "." {
		t.Errorf("expected path '.', got %q", cfg.Path)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected log level 'info', got %q", cfg.Log.Level)
	}

	cfg = Config{Path: "/backup", Log: LogConfig{Level: "debug"}}
	cfg.ApplyDefaults()
	if cfg.Path != "/backup" {
		t.Errorf("expected explicit path kept, got %q", cfg.Path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected explicit level kept, got %q", cfg.Log.Level)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
		errMsg  string
	}{
		{"valid info", Config{Log: LogConfig{Level: "info"}}, false, ""},
		{"valid trace", Config{Log: LogConfig{Level: "trace"}}, false, ""},
		{"invalid level", Config{Log: LogConfig{Level: "loud"}}, true, "log.level must be one of"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tc.errMsg) {
					t.Errorf("expected error containing %q, got %q", tc.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadConfigWithYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fsprobe.yml")

	yamlContent := `
path: /backup
write: true
log:
  level: debug
  no_color: true
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var cfg Config
	if err := LoadConfig(&cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Path != "/backup" {
		t.Errorf("expected path '/backup', got %q", cfg.Path)
	}
	if !cfg.Write {
		t.Error("expected write=true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level 'debug', got %q", cfg.Log.Level)
	}
	if !cfg.Log.NoColor {
		t.Error("expected no_color=true")
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fsprobe.yml")
	if err := os.WriteFile(configPath, []byte("log:\n  level: warn\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	t.Setenv("FSPROBE_LOG_LEVEL", "error")
	t.Setenv("FSPROBE_WRITE", "true")

	var cfg Config
	if err := LoadConfig(&cfg, WithConfigFile(configPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Log.Level != "error" {
		t.Errorf("expected env to override file, got level %q", cfg.Log.Level)
	}
	if !cfg.Write {
		t.Error("expected FSPROBE_WRITE to set write=true")
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("FSPROBE_PATH=/from-env-file\n"), 0o644); err != nil {
		t.Fatalf("failed to write .env: %v", err)
	}
	// godotenv loads into the process environment, clean up after
	defer os.Unsetenv("FSPROBE_PATH")

	var cfg Config
	if err := LoadConfig(&cfg, WithEnvFile(envPath)); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Path != "/from-env-file" {
		t.Errorf("expected path from .env file, got %q", cfg.Path)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	var cfg Config
	// a missing explicit config file is skipped, not an error
	if err := LoadConfig(&cfg, WithConfigFile("/nonexistent/fsprobe.yml")); err != nil {
		t.Fatalf("expected LoadConfig to succeed with missing file, got %v", err)
	}
}

func TestResolverWithMockFS(t *testing.T) {
	fs := &mockFS{files: map[string]bool{
		"./config/fsprobe.yml": true,
		"./.env":               true,
	}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles(LoaderConfig{})
	if files.ConfigFile != "./config/fsprobe.yml" {
		t.Errorf("expected config file at ./config/fsprobe.yml, got %q", files.ConfigFile)
	}
	if files.EnvFile != "./.env" {
		t.Errorf("expected env file at ./.env, got %q", files.EnvFile)
	}
}

func TestResolverExplicitPathsWin(t *testing.T) {
	fs := &mockFS{files: map[string]bool{"./fsprobe.yml": true}}
	resolver := &Resolver{FileSystem: fs}
	files := resolver.ResolveFiles(LoaderConfig{ConfigFile: "/etc/fsprobe.yml"})
	if files.ConfigFile != "/etc/fsprobe.yml" {
		t.Errorf("expected explicit config file kept, got %q", files.ConfigFile)
	}
}

type mockFS struct {
	files map[string]bool
}

func (m *mockFS) Exists(path string) bool   { return m.files[path] }
func (m *mockFS) LoadEnv(path string) error { return nil }

func TestEnvKeyVariants(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"PATH", "path"},
		{"LOG_LEVEL", "log.level"},
		{"LOG_NO_COLOR", "log.no_color"},
	}
	for _, tc := range tests {
		variants := envKeyVariants(tc.key)
		found := false
		for _, v := range variants {
			if v == tc.want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("envKeyVariants(%q) = %v, missing %q", tc.key, variants, tc.want)
		}
	}
}
