package controller

import "testing"

func TestStartOptions(t *testing.T) {
	cfg := &StartConfig{}
	WithBrowseMode()(cfg)
	if cfg.mode != ModeBrowse {
		t.Fatalf("WithBrowseMode() mode = %v, want %v", cfg.mode, ModeBrowse)
	}

	WithReportMode()(cfg)
	if cfg.mode != ModeReport {
		t.Fatalf("WithReportMode() mode = %v, want %v", cfg.mode, ModeReport)
	}
}

func TestNewStartConfig_DefaultsToReport(t *testing.T) {
	if got := newStartConfig(nil).mode; got != ModeReport {
		t.Fatalf("newStartConfig(nil) mode = %v, want %v", got, ModeReport)
	}

	if got := newStartConfig([]StartOption{WithBrowseMode()}).mode; got != ModeBrowse {
		t.Fatalf("newStartConfig(browse) mode = %v, want %v", got, ModeBrowse)
	}
}
