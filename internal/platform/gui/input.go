package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/bug-to-feature/internal/core"
)

// keyReader reports keyboard state for the current tick.
type keyReader interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

type binding struct {
	action core.Action
	keys   []ebiten.Key
	held   bool // Reported every tick the key is down, not only on press
}

// bindings follow the arcade cabinet layout used by the terminal keymap:
// player 1 on WASD with U (A) and J (X), player 2 on the arrows with R (A).
var bindings = []binding{
	{core.ActionLeft, []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, true},
	{core.ActionRight, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}, true},
	{core.ActionFire, []ebiten.Key{ebiten.KeyU, ebiten.KeySpace}, false},
	{core.ActionLaunch, []ebiten.Key{ebiten.KeyJ}, false},
	{core.ActionConfirm, []ebiten.Key{ebiten.Key1, ebiten.KeyEnter, ebiten.KeySpace}, false},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}, false},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, false},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}, false},
}

// readInput builds the input frame for one tick. Unlike a terminal, the
// window sees key releases, so movement is held exactly as long as the key.
func readInput(r keyReader) core.InputFrame {
	in := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			if r.JustPressed(k) {
				in.Set(b.action)
			}
			if b.held && r.Pressed(k) {
				in.Hold(b.action)
			}
		}
	}
	return in
}
