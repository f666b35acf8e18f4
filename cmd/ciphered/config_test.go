package main

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/tinytelemetry/ciphered/internal/model"
)

func TestLoadCLIConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadCLIConfig("", nil)
	if err != nil {
		t.Fatalf("loadCLIConfig error = %v", err)
	}
	if cfg.Sample != model.DefaultSample || cfg.Probe != model.DefaultProbe ||
		cfg.XORKey != model.DefaultXORKey || cfg.Skin != model.DefaultSkin {
		t.Fatalf("defaults = %+v", cfg)
	}
	if cfg.AllowNonTTY || cfg.LogFile != "" {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestLoadCLIConfigPrecedence(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	data := []byte("sample: from-file\nxor-key: file-key\nskin: mono\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CIPHERED_XOR_KEY", "env-key")

	cmd := newRootCmd()
	if err := cmd.Flags().Parse([]string{"--skin", "flag-skin"}); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadCLIConfig(path, cmd.Flags())
	if err != nil {
		t.Fatalf("loadCLIConfig error = %v", err)
	}
	if cfg.Sample != "from-file" {
		t.Errorf("sample = %q, want from-file", cfg.Sample)
	}
	if cfg.XORKey != "env-key" {
		t.Errorf("xor-key = %q, want env-key", cfg.XORKey)
	}
	if cfg.Skin != "flag-skin" {
		t.Errorf("skin = %q, want flag-skin", cfg.Skin)
	}
	if cfg.Probe != model.DefaultProbe {
		t.Errorf("probe = %q, want default", cfg.Probe)
	}
	if cfg.ConfigDir != dir {
		t.Errorf("config dir = %q, want %q", cfg.ConfigDir, dir)
	}
}

func TestLoadCLIConfigBadFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("sample: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadCLIConfig(path, nil); err == nil {
		t.Fatal("loadCLIConfig error = nil for malformed file")
	}
}

func TestSetupLoggingToFile(t *testing.T) {
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	path := filepath.Join(t.TempDir(), "debug.log")
	closeLog, err := setupLogging(path)
	if err != nil {
		t.Fatalf("setupLogging error = %v", err)
	}
	closeLog()

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file not created: %v", err)
	}
}
