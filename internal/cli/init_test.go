package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func withConfigDir(t *testing.T, dir string) {
	t.Helper()
	originalFunc := configDirFunc
	configDirFunc = func() string {
		return dir
	}
	t.Cleanup(func() {
		configDirFunc = originalFunc
	})
}

func withForce(t *testing.T, force bool) {
	t.Helper()
	originalForce := initForce
	initForce = force
	t.Cleanup(func() {
		initForce = originalForce
	})
}

func TestCreateConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	withConfigDir(t, tempDir)
	withForce(t, true)

	result := createConfigFile()

	if result.status != "done" {
		t.Errorf("expected status 'done', got %q: %s", result.status, result.message)
	}

	configPath := filepath.Join(tempDir, "config.yaml")
	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("failed to read config file: %v", err)
	}

	if !strings.Contains(string(content), "Shades Configuration File") {
		t.Error("config file doesn't contain expected header")
	}
	if !strings.Contains(string(content), "scale: tailwind") {
		t.Error("config file doesn't contain expected default")
	}
}

func TestCreateConfigFile_ExistingNoForce(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("existing"), 0644); err != nil {
		t.Fatalf("failed to create existing config: %v", err)
	}
	withConfigDir(t, tempDir)
	withForce(t, false)

	result := createConfigFile()

	if result.status != "skipped" {
		t.Errorf("expected status 'skipped', got %q: %s", result.status, result.message)
	}

	content, _ := os.ReadFile(configPath)
	if string(content) != "existing" {
		t.Error("existing config was modified")
	}
}

func TestCreateScalesDir(t *testing.T) {
	tempDir := t.TempDir()
	withConfigDir(t, tempDir)

	if result := createScalesDir(); result.status != "done" {
		t.Fatalf("expected status 'done', got %q: %s", result.status, result.message)
	}
	if info, err := os.Stat(filepath.Join(tempDir, "scales")); err != nil || !info.IsDir() {
		t.Fatalf("scales dir was not created: %v", err)
	}
	if result := createScalesDir(); result.status != "skipped" {
		t.Fatalf("expected status 'skipped' on second run, got %q", result.status)
	}
}

func TestGetConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if dir := defaultConfigDir(); dir != "/custom/config/shades" {
		t.Errorf("expected /custom/config/shades, got %s", dir)
	}

	t.Setenv("XDG_CONFIG_HOME", "")
	homeDir, _ := os.UserHomeDir()
	expected := filepath.Join(homeDir, ".config", "shades")
	if dir := defaultConfigDir(); dir != expected {
		t.Errorf("expected %s, got %s", expected, dir)
	}
}

func TestConfigTemplate(t *testing.T) {
	if !strings.HasPrefix(configTemplate, "# Shades Configuration File") {
		t.Error("config template doesn't have expected header")
	}

	for _, section := range []string{"logging:", "palette:", "tui:"} {
		if !strings.Contains(configTemplate, section) {
			t.Errorf("config template missing section: %s", section)
		}
	}
}

func TestInitCommand(t *testing.T) {
	tempDir := t.TempDir()
	withConfigDir(t, tempDir)

	out, err := runCLI(t, "init")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Config file") || !strings.Contains(out, "done") {
		t.Fatalf("unexpected init output:\n%s", out)
	}

	out, err = runCLI(t, "init")
	if err != nil {
		t.Fatalf("second init: %v", err)
	}
	if !strings.Contains(out, "skipped") {
		t.Fatalf("expected skipped on second run:\n%s", out)
	}
}
