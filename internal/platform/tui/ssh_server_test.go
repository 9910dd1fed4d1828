package tui

import (
	"testing"
)

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	if cfg.Address != ":23234" {
		t.Errorf("Address = %q", cfg.Address)
	}
	if err := cfg.Engine.Validate(); err != nil {
		t.Errorf("default engine config invalid: %v", err)
	}
}

func TestNewSSHServerRejectsBadEngine(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Engine.BoardSize = 0

	if _, err := NewSSHServer(cfg); err == nil {
		t.Error("expected error for invalid engine config")
	}
}
