package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bug-to-feature/internal/core"
)

// ArcadeButton is the code an arcade cabinet sends for one of its buttons.
type ArcadeButton string

const (
	ButtonP1Up    ArcadeButton = "P1U"
	ButtonP1Down  ArcadeButton = "P1D"
	ButtonP1Left  ArcadeButton = "P1L"
	ButtonP1Right ArcadeButton = "P1R"
	ButtonP1A     ArcadeButton = "P1A"
	ButtonP1B     ArcadeButton = "P1B"
	ButtonP1C     ArcadeButton = "P1C"
	ButtonP1X     ArcadeButton = "P1X"
	ButtonP1Y     ArcadeButton = "P1Y"
	ButtonP1Z     ArcadeButton = "P1Z"
	ButtonStart1  ArcadeButton = "START1"

	ButtonP2Up    ArcadeButton = "P2U"
	ButtonP2Down  ArcadeButton = "P2D"
	ButtonP2Left  ArcadeButton = "P2L"
	ButtonP2Right ArcadeButton = "P2R"
	ButtonP2A     ArcadeButton = "P2A"
	ButtonP2B     ArcadeButton = "P2B"
	ButtonP2C     ArcadeButton = "P2C"
	ButtonP2X     ArcadeButton = "P2X"
	ButtonP2Y     ArcadeButton = "P2Y"
	ButtonP2Z     ArcadeButton = "P2Z"
	ButtonStart2  ArcadeButton = "START2"
)

// ArcadeControls maps cabinet buttons to the keyboard keys that emulate them.
// Player 1 uses WASD and U/I/O J/K/L, player 2 the arrows and R/T/Y F/G/H.
var ArcadeControls = map[ArcadeButton][]string{
	ButtonP1Up:    {"w"},
	ButtonP1Down:  {"s"},
	ButtonP1Left:  {"a"},
	ButtonP1Right: {"d"},
	ButtonP1A:     {"u"},
	ButtonP1B:     {"i"},
	ButtonP1C:     {"o"},
	ButtonP1X:     {"j"},
	ButtonP1Y:     {"k"},
	ButtonP1Z:     {"l"},
	ButtonStart1:  {"1", "enter"},

	ButtonP2Up:    {"up"},
	ButtonP2Down:  {"down"},
	ButtonP2Left:  {"left"},
	ButtonP2Right: {"right"},
	ButtonP2A:     {"r"},
	ButtonP2B:     {"t"},
	ButtonP2C:     {"y"},
	ButtonP2X:     {"f"},
	ButtonP2Y:     {"g"},
	ButtonP2Z:     {"h"},
	ButtonStart2:  {"2"},
}

// keyToButton is the reverse lookup of ArcadeControls.
var keyToButton = func() map[string]ArcadeButton {
	m := make(map[string]ArcadeButton)
	for button, keys := range ArcadeControls {
		for _, k := range keys {
			m[k] = button
		}
	}
	return m
}()

// ButtonForKey returns the cabinet button a keyboard key emulates.
func ButtonForKey(k string) (ArcadeButton, bool) {
	b, ok := keyToButton[k]
	return b, ok
}

func keysFor(buttons ...ArcadeButton) []string {
	var keys []string
	for _, b := range buttons {
		keys = append(keys, ArcadeControls[b]...)
	}
	return keys
}

// KeyMap holds the gameplay bindings. It implements help.KeyMap.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Launch  key.Binding
	Start   key.Binding
	Restart key.Binding
	Pause   key.Binding
	Quit    key.Binding
}

// DefaultKeyMap builds the bindings from ArcadeControls. Space doubles as
// start on the selection screen and fire during gameplay.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys(keysFor(ButtonP1Left, ButtonP2Left)...),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys(keysFor(ButtonP1Right, ButtonP2Right)...),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(append(keysFor(ButtonP1A), " ")...),
			key.WithHelp("space/u", "shoot"),
		),
		Launch: key.NewBinding(
			key.WithKeys(keysFor(ButtonP1X)...),
			key.WithHelp("j", "launch"),
		),
		Start: key.NewBinding(
			key.WithKeys(append(keysFor(ButtonStart1), " ")...),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys(keysFor(ButtonP2A)...),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Launch, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire, k.Launch},
		{k.Start, k.Restart, k.Pause, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys     KeyMap
	bindings []actionBinding
}

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	keys := DefaultKeyMap()
	return &KeyMapper{
		keys: keys,
		bindings: []actionBinding{
			{keys.Left, core.ActionLeft},
			{keys.Right, core.ActionRight},
			{keys.Fire, core.ActionFire},
			{keys.Launch, core.ActionLaunch},
			{keys.Start, core.ActionConfirm},
			{keys.Restart, core.ActionRestart},
			{keys.Pause, core.ActionPause},
		},
	}
}

// Keys returns the bindings, for help views.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to the actions it triggers.
// A key may trigger more than one action; the active scene decides which
// one it honors.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	if key.Matches(msg, km.keys.Quit) {
		return []core.Action{core.ActionQuit}, true
	}

	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			actions = append(actions, b.action)
		}
	}
	return actions, false
}
