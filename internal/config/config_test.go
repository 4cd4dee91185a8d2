package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.App.LogLevel != "info" {
		t.Errorf("log level = %q, want %q", c.App.LogLevel, "info")
	}
	if c.Window.Width != 1100 || c.Window.Height != 760 {
		t.Errorf("window = %vx%v, want 1100x760", c.Window.Width, c.Window.Height)
	}
	if c.Report.SiteName != "" {
		t.Errorf("site name = %q, want empty", c.Report.SiteName)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fm-calculator.yaml")
	content := []byte("app:\n  log_level: debug\nwindow:\n  width: 900\n  height: 600\nreport:\n  site_name: North Yard\n  supplier: Riverbed Aggregates\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.App.LogLevel != "debug" {
		t.Errorf("log level = %q, want %q", c.App.LogLevel, "debug")
	}
	if c.Window.Width != 900 || c.Window.Height != 600 {
		t.Errorf("window = %vx%v, want 900x600", c.Window.Width, c.Window.Height)
	}
	if c.Report.SiteName != "North Yard" || c.Report.Supplier != "Riverbed Aggregates" {
		t.Errorf("report defaults = %q / %q", c.Report.SiteName, c.Report.Supplier)
	}
}
