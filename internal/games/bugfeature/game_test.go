package bugfeature

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/bug-to-feature/internal/config"
	"github.com/vovakirdan/bug-to-feature/internal/core"
	"github.com/vovakirdan/bug-to-feature/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultBugFeatureConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42})
	return g
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hold(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

// startRun confirms the selected branch and waits out the countdown.
func startRun(t *testing.T, g *Game) {
	t.Helper()
	g.Step(press(core.ActionConfirm), frame)
	for range 4 {
		g.Step(core.NewInputFrame(), time.Second)
	}
	if g.Scene() != SceneGameplay {
		t.Fatalf("scene = %v, want gameplay", g.Scene())
	}
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(ID) {
		t.Fatalf("game %q not registered", ID)
	}
	g, err := registry.Create(ID)
	if err != nil {
		t.Fatal(err)
	}
	if g.Title() != "Bug to Feature" {
		t.Errorf("Title() = %q", g.Title())
	}
}

func TestSelectionCursorClamped(t *testing.T) {
	g := newTestGame(t)

	g.Step(press(core.ActionLeft), frame)
	if g.SelectedBranch() != BranchFrontend {
		t.Errorf("cursor moved past the first branch: %v", g.SelectedBranch())
	}

	for range 5 {
		g.Step(press(core.ActionRight), frame)
	}
	if g.SelectedBranch() != BranchBackend {
		t.Errorf("cursor = %v, want backend", g.SelectedBranch())
	}

	g.Step(press(core.ActionLeft), frame)
	if g.SelectedBranch() != BranchMobile {
		t.Errorf("cursor = %v, want mobile", g.SelectedBranch())
	}
}

func TestCountdownBlocksInput(t *testing.T) {
	g := newTestGame(t)
	g.Step(press(core.ActionConfirm), frame)

	if g.Scene() != SceneCountdown {
		t.Fatalf("scene = %v, want countdown", g.Scene())
	}
	if g.CountdownSeconds() != 3 {
		t.Errorf("CountdownSeconds() = %d, want 3", g.CountdownSeconds())
	}

	g.Step(press(core.ActionFire, core.ActionRight), time.Second)
	if g.Session().Bullets.Len() != 0 {
		t.Error("fire accepted during countdown")
	}
	if g.SelectedBranch() != BranchFrontend {
		t.Error("branch changed during countdown")
	}
	if g.CountdownSeconds() != 2 {
		t.Errorf("CountdownSeconds() = %d, want 2", g.CountdownSeconds())
	}

	g.Step(core.NewInputFrame(), 2*time.Second)
	if g.Scene() != SceneGameplay {
		t.Errorf("scene = %v, want gameplay after 3s", g.Scene())
	}
}

func TestGameplayInput(t *testing.T) {
	g := newTestGame(t)
	startRun(t, g)

	res := g.Step(press(core.ActionFire), frame)
	if g.Session().Bullets.Len() != 1 {
		t.Fatalf("bullets = %d, want 1", g.Session().Bullets.Len())
	}
	if len(res.Tones) == 0 || res.Tones[0] != toneShoot {
		t.Errorf("tones = %v, want shoot cue", res.Tones)
	}

	x := g.Session().Player.X
	g.Step(hold(core.ActionRight), 100*time.Millisecond)
	if got := g.Session().Player.X; got != x+20 {
		t.Errorf("player X = %v, want %v", got, x+20)
	}
	g.Step(hold(core.ActionLeft, core.ActionRight), 100*time.Millisecond)
	if got := g.Session().Player.X; got != x {
		t.Errorf("left should win a tie, player X = %v, want %v", got, x)
	}
}

func TestPauseStopsSimulation(t *testing.T) {
	g := newTestGame(t)
	startRun(t, g)

	g.Step(press(core.ActionPause), frame)
	if !g.State().Paused {
		t.Fatal("pause not applied")
	}

	shipX := g.Session().Mothership.X
	g.Step(press(core.ActionFire), time.Second)
	if g.Session().Mothership.X != shipX || g.Session().Bullets.Len() != 0 {
		t.Error("simulation advanced while paused")
	}

	g.Step(press(core.ActionPause), frame)
	if g.State().Paused {
		t.Error("pause not toggled off")
	}
}

func TestRestartOnlyFromGameOver(t *testing.T) {
	g := newTestGame(t)

	g.Step(press(core.ActionRight), frame)
	startRun(t, g)

	g.Step(press(core.ActionRestart), frame)
	if g.Scene() != SceneGameplay {
		t.Fatalf("restart accepted during gameplay")
	}

	s := g.Session()
	s.Score = 500
	s.Lives = 1
	s.Bugs.Spawn(100, 599)
	g.Step(core.NewInputFrame(), 100*time.Millisecond)

	state := g.State()
	if g.Scene() != SceneGameOver || !state.GameOver || state.Victory {
		t.Fatalf("scene=%v state=%+v, want defeat", g.Scene(), state)
	}

	g.Step(press(core.ActionFire, core.ActionConfirm), frame)
	if g.Scene() != SceneGameOver {
		t.Fatal("only restart should leave game over")
	}

	g.Step(press(core.ActionRestart), frame)
	if g.Scene() != SceneSelection {
		t.Fatalf("scene = %v, want selection", g.Scene())
	}
	if g.SelectedBranch() != BranchMobile {
		t.Errorf("branch = %v, want mobile kept across restart", g.SelectedBranch())
	}

	fresh := g.Session()
	if fresh.Score != 0 || fresh.Lives != 3 || fresh.Bugs.Len() != 0 || fresh.GameOver {
		t.Errorf("session not reset: score=%d lives=%d bugs=%d", fresh.Score, fresh.Lives, fresh.Bugs.Len())
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := newTestGame(t)
		startRun(t, g)
		for i := range 600 {
			var in core.InputFrame
			switch {
			case i%30 == 0:
				in = press(core.ActionFire)
			case i%90 < 45:
				in = hold(core.ActionLeft)
			default:
				in = hold(core.ActionRight)
			}
			g.Step(in, frame)
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs produced different frames:\n%+v\n%+v", a, b)
	}
}

func TestResetReturnsToSelection(t *testing.T) {
	g := newTestGame(t)
	g.Step(press(core.ActionRight), frame)
	startRun(t, g)
	g.Session().Score = 70

	g.Reset(core.DefaultConfig())

	if g.Scene() != SceneSelection || g.State().Score != 0 {
		t.Errorf("scene=%v score=%d after Reset", g.Scene(), g.State().Score)
	}
	if g.SelectedBranch() != BranchFrontend {
		t.Errorf("Reset should return the cursor to the first branch")
	}
}

func TestRenderScenes(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "BUG TO FEATURE") || !strings.Contains(out, "frontend") {
		t.Errorf("selection screen missing title or branches:\n%s", out)
	}

	startRun(t, g)
	g.Session().FeatureCount = 5
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Score: 0", "Features: 5/5", "Level: Intern", "READY TO LAUNCH"} {
		if !strings.Contains(out, want) {
			t.Errorf("gameplay screen missing %q:\n%s", want, out)
		}
	}

	for range 4 {
		g.Step(press(core.ActionFire), frame)
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "OUT OF TOKENS") {
		t.Errorf("overheated screen missing warning:\n%s", screen.String())
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	screen := core.NewScreen(30, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Errorf("expected size warning:\n%s", screen.String())
	}
}

func TestHeatColor(t *testing.T) {
	tests := []struct {
		progress float64
		want     core.Color
	}{
		{0, core.ColorGreen},
		{0.25, core.ColorLime},
		{0.5, core.ColorYellow},
		{0.75, core.ColorOrange},
		{1, core.ColorRed},
	}
	for _, tt := range tests {
		if got := HeatColor(tt.progress); got != tt.want {
			t.Errorf("HeatColor(%v) = %v, want %v", tt.progress, got, tt.want)
		}
	}
}

func TestSetDifficultyPreset(t *testing.T) {
	defer func() { difficultyPreset = "" }()

	if err := SetDifficultyPreset("hard"); err != nil {
		t.Fatal(err)
	}
	if difficultyPreset != config.DifficultyHard {
		t.Errorf("preset = %q", difficultyPreset)
	}
	if err := SetDifficultyPreset("nightmare"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
