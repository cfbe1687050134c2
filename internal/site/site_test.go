package site

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "site.yaml"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if cfg.Title != "Midland" {
		t.Errorf("expected default title, got %q", cfg.Title)
	}
	if !cfg.Sections.Events.Enabled || !cfg.Sections.Videos.Enabled {
		t.Error("expected all sections enabled by default")
	}
	if cfg.Sections.Events.Heading != "Termine" {
		t.Errorf("expected default events heading, got %q", cfg.Sections.Events.Heading)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	data := []byte(`title: Midland Live
tagline: Auf Tour
nav:
  - label: Start
    url: /
sections:
  videos:
    enabled: false
contact:
  recipient: band@example.com
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.Title != "Midland Live" {
		t.Errorf("expected overridden title, got %q", cfg.Title)
	}
	if cfg.Sections.Videos.Enabled {
		t.Error("expected videos section disabled")
	}
	if !cfg.Sections.Events.Enabled {
		t.Error("expected events section to keep its default")
	}
	if len(cfg.Nav) != 1 || cfg.Nav[0].Label != "Start" {
		t.Errorf("expected nav replaced by file, got %+v", cfg.Nav)
	}
	if cfg.Contact.Recipient != "band@example.com" {
		t.Errorf("expected contact recipient, got %q", cfg.Contact.Recipient)
	}
}

func TestLoad_InvalidYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte("title: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
