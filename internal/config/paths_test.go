package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFindConfigPrefersYAML(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"install.conf.toml", "install.conf.yaml"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte(""), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	path, found, err := FindConfig(root)
	if err != nil {
		t.Fatalf("FindConfig error: %v", err)
	}
	if !found {
		t.Fatalf("expected config to be found")
	}
	if path != filepath.Join(root, "install.conf.yaml") {
		t.Fatalf("unexpected config path: %s", path)
	}
}

func TestFindConfigSkipsDirectories(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "install.conf.yaml"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "install.conf.json"), []byte("[]"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	path, found, err := FindConfig(root)
	if err != nil {
		t.Fatalf("FindConfig error: %v", err)
	}
	if !found || path != filepath.Join(root, "install.conf.json") {
		t.Fatalf("expected install.conf.json, got %q (found=%v)", path, found)
	}
}

func TestFindConfigMissing(t *testing.T) {
	path, found, err := FindConfig(t.TempDir())
	if err != nil {
		t.Fatalf("FindConfig error: %v", err)
	}
	if found || path != "" {
		t.Fatalf("expected no config, got %q", path)
	}
}

func TestFindConfigRequiresDir(t *testing.T) {
	if _, _, err := FindConfig(""); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}
