package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/bug-to-feature/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return core.GameState{} }
func (g *stubGame) Step(core.InputFrame, time.Duration) core.StepResult {
	return core.StepResult{}
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz_stub", "Stub", func() Game { return &stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("Exists() should report a registered game")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("Create() returned game %q", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = info.Title == "Stub"
		}
	}
	if !found {
		t.Error("List() should include the stub with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("Create() of an unknown ID should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", "Dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register() should panic")
		}
	}()
	Register("zz_dup", "Dup", func() Game { return &stubGame{id: "zz_dup"} })
}
