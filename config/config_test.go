package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.EmitListing {
		t.Error("expected EmitListing=false by default")
	}
	if cfg.Output.WordColumn != 6 {
		t.Errorf("WordColumn = %d, want 6", cfg.Output.WordColumn)
	}
	if !cfg.Diagnostics.Color {
		t.Error("expected Color=true by default")
	}
	if cfg.Listing.HistorySize != 500 {
		t.Errorf("HistorySize = %d, want 500", cfg.Listing.HistorySize)
	}
}

func TestGetConfigPath(t *testing.T) {
	path := GetConfigPath()
	if path == "" {
		t.Fatal("GetConfigPath returned empty string")
	}
	if filepath.Base(path) != "assembler.toml" {
		t.Errorf("path base = %q, want assembler.toml", filepath.Base(path))
	}

	switch runtime.GOOS {
	case "darwin", "linux":
		dir := filepath.Dir(path)
		if filepath.Base(dir) != "word24asm" && path != "assembler.toml" {
			t.Errorf("expected path in word24asm directory or fallback, got %s", path)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test_config.toml")

	cfg := DefaultConfig()
	cfg.Output.EmitListing = true
	cfg.Diagnostics.Color = false
	cfg.Listing.HistorySize = 42

	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatal("config file was not created")
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if !loaded.Output.EmitListing {
		t.Error("expected EmitListing=true after round-trip")
	}
	if loaded.Diagnostics.Color {
		t.Error("expected Color=false after round-trip")
	}
	if loaded.Listing.HistorySize != 42 {
		t.Errorf("HistorySize = %d, want 42", loaded.Listing.HistorySize)
	}
}

func TestLoadNonExistent(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "nonexistent.toml")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom should not error on missing file: %v", err)
	}
	if cfg.Output.WordColumn != 6 {
		t.Error("expected default config when file doesn't exist")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid.toml")

	invalidTOML := `
[output]
word_column_width = "not a number"
`
	if err := os.WriteFile(configPath, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected error when loading invalid TOML")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "subdir1", "subdir2", "config.toml")

	cfg := DefaultConfig()
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("config file was not created")
	}
}
