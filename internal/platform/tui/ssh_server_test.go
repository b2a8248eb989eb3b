package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bug-to-feature/internal/registry"
)

func TestNewSSHServerUnknownGame(t *testing.T) {
	registry.Register("ssh_stub", "SSH Stub", func() registry.Game { return &stubGame{} })

	cfg := DefaultSSHServerConfig()
	cfg.GameID = "pong"
	cfg.Logger = log.New(io.Discard)

	_, err := NewSSHServer(cfg)
	if err == nil {
		t.Fatal("NewSSHServer() should reject an unregistered game")
	}
	if !strings.Contains(err.Error(), `"pong"`) || !strings.Contains(err.Error(), "ssh_stub") {
		t.Errorf("error = %q, want the unknown ID and the registered games", err)
	}
}
