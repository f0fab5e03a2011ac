package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UserAgent != "rsdoc/0.1.0" {
		t.Errorf("user agent %q", cfg.UserAgent)
	}
	if cfg.DocsRs.BaseURL != "https://docs.rs" {
		t.Errorf("docs.rs base URL %q", cfg.DocsRs.BaseURL)
	}
	if cfg.DocsRs.Timeout != 120*time.Second {
		t.Errorf("docs.rs timeout %v", cfg.DocsRs.Timeout)
	}
	if cfg.CratesIO.Timeout != 5*time.Second {
		t.Errorf("crates.io timeout %v", cfg.CratesIO.Timeout)
	}
	if !cfg.Render.RewriteLinks {
		t.Error("link rewriting should default on")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("RSDOC_DOCS_RS_TIMEOUT", "30s")
	t.Setenv("RSDOC_USER_AGENT", "custom/1.0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DocsRs.Timeout != 30*time.Second {
		t.Errorf("docs.rs timeout %v, want 30s", cfg.DocsRs.Timeout)
	}
	if cfg.UserAgent != "custom/1.0" {
		t.Errorf("user agent %q, want custom/1.0", cfg.UserAgent)
	}
}
