package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestGetConfigDir validates config directory access
func TestGetConfigDir(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test_config")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	configDir := GetConfigDir()
	if configDir == "" {
		t.Fatal("Config directory should not be empty")
	}

	// Verify directory exists
	if _, err := os.Stat(configDir); err != nil {
		t.Errorf("Config directory should exist: %v", err)
	}
}

// TestGetSessionPath validates session file path
func TestGetSessionPath(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test_config")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	sessionPath := GetSessionPath()
	if sessionPath == "" {
		t.Fatal("Session path should not be empty")
	}

	if !filepath.IsAbs(sessionPath) {
		t.Error("Session path should be absolute")
	}

	// Session file should live under the config directory
	if filepath.Dir(sessionPath) != GetConfigDir() {
		t.Errorf("Session path %s should be under config dir %s", sessionPath, GetConfigDir())
	}
}

// TestInitWithCustomPath validates custom config path
func TestInitWithCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	customConfigPath := filepath.Join(tempDir, "custom", "path", "config.toml")

	if err := Init(customConfigPath); err != nil {
		t.Fatalf("Failed to initialize with custom path: %v", err)
	}

	configDir := GetConfigDir()
	expectedDir := filepath.Join(tempDir, "custom", "path")

	if configDir != expectedDir {
		t.Errorf("Expected config dir %s, got %s", expectedDir, configDir)
	}
}

// TestInitWithoutPath validates default path initialization
func TestInitWithoutPath(t *testing.T) {
	if err := Init(""); err != nil {
		t.Fatalf("Failed to initialize with default path: %v", err)
	}

	configDir := GetConfigDir()
	home, _ := os.UserHomeDir()
	expectedDir := filepath.Join(home, ".config", "devconnect", "cli")

	if configDir != expectedDir {
		t.Errorf("Expected default config dir %s, got %s", expectedDir, configDir)
	}
}

// TestConfigDirectoryCreation validates directory is created
func TestConfigDirectoryCreation(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "new", "config", "location", "config.toml")

	if err := Init(configPath); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	configDir := GetConfigDir()
	if _, err := os.Stat(configDir); err != nil {
		t.Fatalf("Config directory was not created: %v", err)
	}
}

// TestDefaults validates the default values the client assumes
func TestDefaults(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test")); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	if got := GetString("api.base_url"); got != "http://localhost:7777" {
		t.Errorf("Expected default base URL 'http://localhost:7777', got '%s'", got)
	}
	if got := GetInt("api.timeout"); got != 30 {
		t.Errorf("Expected default timeout 30, got %d", got)
	}
	if got := GetString("output.format"); got != "text" {
		t.Errorf("Expected default format 'text', got '%s'", got)
	}
	if got := GetString("log.level"); got != "info" {
		t.Errorf("Expected default log level 'info', got '%s'", got)
	}
	if got := GetInt("toast.duration_ms"); got != 3000 {
		t.Errorf("Expected default toast duration 3000, got %d", got)
	}
}

// TestFeedAlwaysRefetchDefault validates that the feed reuses loaded
// data unless the refetch override is set
func TestFeedAlwaysRefetchDefault(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test")); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	if GetBool("feed.always_refetch") {
		t.Error("Expected feed.always_refetch to default to false")
	}
}

// TestMultipleInitCalls validates multiple initialization calls
func TestMultipleInitCalls(t *testing.T) {
	tempDir := t.TempDir()
	path1 := filepath.Join(tempDir, "config1", "config.toml")
	path2 := filepath.Join(tempDir, "config2", "config.toml")

	if err := Init(path1); err != nil {
		t.Fatalf("First init failed: %v", err)
	}

	firstDir := GetConfigDir()

	if err := Init(path2); err != nil {
		t.Fatalf("Second init failed: %v", err)
	}

	secondDir := GetConfigDir()

	// Config dir should change after re-init
	if firstDir == secondDir {
		t.Errorf("Config dir should change after re-init, both were %s", firstDir)
	}
}

// TestUserConfigOverride validates that a user config file overrides
// the defaults
func TestUserConfigOverride(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.toml")

	content := "[api]\nbase_url = \"https://api.devconnect.example\"\n\n[feed]\nalways_refetch = true\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if err := Init(configPath); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	if got := GetString("api.base_url"); got != "https://api.devconnect.example" {
		t.Errorf("Expected configured base URL, got '%s'", got)
	}
	if !GetBool("feed.always_refetch") {
		t.Error("Expected configured feed.always_refetch to be true")
	}
}
