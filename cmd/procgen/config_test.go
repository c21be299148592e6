package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseJSONConfigSuccess(t *testing.T) {
	path := writeTempConfig(t, `{"gen":"xorshift1024star","seed":77,"count":3,"width":64,"freq":2.5,"ramp":"terrain","state":"/tmp/ckpt"}`)

	var cfg Config
	if err := parseJSONConfig(&cfg, path); err != nil {
		t.Fatalf("parseJSONConfig returned error: %v", err)
	}

	if cfg.Generator != "xorshift1024star" || cfg.Seed != 77 || cfg.Count != 3 {
		t.Fatalf("unexpected sequence fields: %+v", cfg)
	}
	if cfg.Width != 64 || cfg.Frequency != 2.5 || cfg.Ramp != "terrain" || cfg.StateDir != "/tmp/ckpt" {
		t.Fatalf("unexpected noise fields: %+v", cfg)
	}
}

func TestParseJSONConfigKeepsUnsetFields(t *testing.T) {
	path := writeTempConfig(t, `{"count":9}`)

	cfg := Config{Generator: "xorshift64star", Count: 1}
	if err := parseJSONConfig(&cfg, path); err != nil {
		t.Fatalf("parseJSONConfig returned error: %v", err)
	}
	if cfg.Generator != "xorshift64star" || cfg.Count != 9 {
		t.Fatalf("config file should override only the fields it sets: %+v", cfg)
	}
}

func TestParseJSONConfigMissingFile(t *testing.T) {
	var cfg Config
	missing := filepath.Join(t.TempDir(), "missing.json")
	if err := parseJSONConfig(&cfg, missing); err == nil {
		t.Fatalf("parseJSONConfig expected error for missing file")
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}
