// Package gui runs the game in a desktop window with ebiten. It draws the
// world from game snapshots with plain rectangles and the debug font.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/bug-to-feature/internal/core"
	"github.com/vovakirdan/bug-to-feature/internal/games/bugfeature"
	"github.com/vovakirdan/bug-to-feature/internal/storage"
)

// Debug font metrics.
const (
	glyphW = 6
	glyphH = 16
)

const heatBarH = 10

var (
	backgroundColor = color.RGBA{R: 0x10, G: 0x12, B: 0x1a, A: 0xff}
	overlayColor    = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xb0}
	playerColor     = color.RGBA{R: 0x33, G: 0x99, B: 0xff, A: 0xff}
	shipColor       = color.RGBA{R: 0xcc, G: 0x33, B: 0xcc, A: 0xff}
	frameColor      = color.RGBA{R: 0x55, G: 0x55, B: 0x66, A: 0xff}
)

// Option configures a Window.
type Option func(*Window)

// WithSound plays the game's tones on p.
func WithSound(p core.TonePlayer) Option {
	return func(w *Window) { w.sound = p }
}

// WithLogger routes window and game logs to logger.
func WithLogger(logger *log.Logger) Option {
	return func(w *Window) { w.logger = logger }
}

// WithPlayer records runs under the given player name.
func WithPlayer(name string) Option {
	return func(w *Window) { w.player = name }
}

// Window implements ebiten.Game around a Bug to Feature game.
type Window struct {
	game     *bugfeature.Game
	store    *storage.Store
	sound    core.TonePlayer
	logger   *log.Logger
	player   string
	runtime  core.RuntimeConfig
	keys     keyReader
	best     int
	runSaved bool
}

// NewWindow resets game and wraps it for ebiten.
func NewWindow(game *bugfeature.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) *Window {
	w := &Window{
		game:    game,
		store:   store,
		sound:   core.Silent{},
		logger:  log.New(io.Discard),
		player:  "local",
		runtime: cfg,
		keys:    ebitenKeys{},
	}
	for _, opt := range opts {
		opt(w)
	}

	game.SetLogger(w.logger)
	game.Reset(cfg)
	w.best = w.loadBest()
	return w
}

// Update advances the game by one tick. Ebiten calls it TickRate times per
// second, so the delta is fixed.
func (w *Window) Update() error {
	in := readInput(w.keys)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	result := w.game.Step(in, w.runtime.FrameInterval())
	w.sound.Play(result.Tones...)

	state := result.State
	switch {
	case !state.GameOver:
		w.runSaved = false
	case !w.runSaved:
		w.saveRun(state)
		w.runSaved = true
		w.best = max(w.best, state.Score)
	}
	return nil
}

func (w *Window) saveRun(state core.GameState) {
	if w.store == nil {
		w.logger.Info("run finished", "player", w.player, "score", state.Score, "victory", state.Victory)
		return
	}
	id, err := w.store.SaveRun(storage.RunRecord{
		GameID:   w.game.ID(),
		Player:   w.player,
		Score:    state.Score,
		Victory:  state.Victory,
		Launches: state.Launches,
		Level:    state.Level,
		Branch:   state.Branch,
		Duration: state.Elapsed,
	})
	if err != nil {
		w.logger.Warn("could not save run", "error", err)
		return
	}
	w.logger.Info("run saved", "id", id, "player", w.player, "score", state.Score, "victory", state.Victory)
}

func (w *Window) loadBest() int {
	if w.store == nil {
		return 0
	}
	best, err := w.store.HighScore(w.game.ID())
	if err != nil {
		w.logger.Warn("could not load best score", "error", err)
		return 0
	}
	return best
}

// Layout keeps the logical screen at world size; ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	cfg := w.game.Config()
	return int(cfg.World.Width), int(cfg.World.Height)
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := w.game.Snapshot()
	switch snap.Scene {
	case bugfeature.SceneSelection:
		drawSelection(screen, snap)
	case bugfeature.SceneCountdown:
		drawCentered(screen, snap, int(snap.WorldH/2), fmt.Sprintf("Starting in %d", snap.Countdown))
	case bugfeature.SceneGameplay:
		drawPlayfield(screen, snap)
		drawBest(screen, snap, w.best)
		if snap.Paused {
			drawOverlay(screen, snap, "PAUSED", "Press P to continue")
		}
	case bugfeature.SceneGameOver:
		drawPlayfield(screen, snap)
		drawBest(screen, snap, w.best)
		drawOverlay(screen, snap, gameOverLines(snap)...)
	}
}

func drawSelection(screen *ebiten.Image, snap bugfeature.Snapshot) {
	top := int(snap.WorldH/2) - 120
	drawCentered(screen, snap, top, "BUG TO FEATURE")
	drawCentered(screen, snap, top+glyphH*2, "Choose your branch")

	const boxW, boxH, gap = 160, 60, 20
	n := len(bugfeature.Branches)
	left := (float32(snap.WorldW) - float32(n*boxW+(n-1)*gap)) / 2
	y := float32(top + glyphH*4)

	for i, b := range bugfeature.Branches {
		x := left + float32(i*(boxW+gap))
		vector.FillRect(screen, x, y, boxW, boxH, color.RGBA{R: 0x20, G: 0x24, B: 0x30, A: 0xff}, false)
		border, width := frameColor, float32(1)
		if b == snap.Cursor {
			border, width = core.ColorBrightGreen.ToRGBA(), 3
		}
		vector.StrokeRect(screen, x, y, boxW, boxH, width, border, false)

		label := fmt.Sprintf("%s %s", b.Icon(), b)
		ebitenutil.DebugPrintAt(screen, label, int(x)+(boxW-textWidth(label))/2, int(y)+(boxH-glyphH)/2)
	}

	drawCentered(screen, snap, int(y)+boxH+glyphH*2, "A/D or arrows to choose, Enter or 1 to start")
}

func drawPlayfield(screen *ebiten.Image, snap bugfeature.Snapshot) {
	if snap.MothershipVisible {
		fillRect(screen, snap.Mothership, shipColor)
	}
	for _, e := range snap.Entities {
		fillRect(screen, e.Bounds, bugfeature.KindColor(e.Kind).ToRGBA())
	}
	if snap.PlayerVisible {
		r := snap.Player
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, playerColor, false)
		icon := snap.Branch.Icon()
		cx, cy := r.Center()
		ebitenutil.DebugPrintAt(screen, icon, int(cx)-textWidth(icon)/2, int(cy)-glyphH/2)
	}

	ebitenutil.DebugPrintAt(screen, hudText(snap), 8, 4)
	drawHeatBar(screen, snap)

	if snap.Banner != "" {
		drawCentered(screen, snap, int(snap.WorldH/2)-glyphH, snap.Banner)
	}
}

func drawBest(screen *ebiten.Image, snap bugfeature.Snapshot, best int) {
	text := bestText(best)
	ebitenutil.DebugPrintAt(screen, text, int(snap.WorldW)-textWidth(text)-8, 4)
}

func drawHeatBar(screen *ebiten.Image, snap bugfeature.Snapshot) {
	const barW = 200
	x := float32(8)
	y := float32(snap.WorldH) - heatBarH - 8

	vector.FillRect(screen, x, y, barW, heatBarH, frameColor, false)
	vector.FillRect(screen, x, y, float32(barW*snap.Heat), heatBarH, bugfeature.HeatColor(snap.Heat).ToRGBA(), false)
	vector.StrokeRect(screen, x, y, barW, heatBarH, 1, color.White, false)

	status := statusText(snap)
	if status != "" {
		ebitenutil.DebugPrintAt(screen, status, int(x)+barW+12, int(y)-(glyphH-heatBarH)/2)
	}
}

func drawOverlay(screen *ebiten.Image, snap bugfeature.Snapshot, lines ...string) {
	h := float32(len(lines)*glyphH + 2*glyphH)
	y := float32(snap.WorldH)/2 - h/2
	vector.FillRect(screen, 0, y, float32(snap.WorldW), h, overlayColor, false)
	for i, line := range lines {
		drawCentered(screen, snap, int(y)+glyphH+i*glyphH, line)
	}
}

func drawCentered(screen *ebiten.Image, snap bugfeature.Snapshot, y int, text string) {
	ebitenutil.DebugPrintAt(screen, text, (int(snap.WorldW)-textWidth(text))/2, y)
}

func fillRect(screen *ebiten.Image, r core.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func textWidth(s string) int {
	return len([]rune(s)) * glyphW
}

// hudText is the status line at the top of the playfield.
func hudText(snap bugfeature.Snapshot) string {
	return fmt.Sprintf("Score: %d   Lives: %s   Features: %d/%d   Launches: %d/%d   Level: %s",
		snap.Score,
		strings.Repeat("<3 ", max(0, snap.Lives)),
		snap.Features, snap.FeaturesPerRocket,
		snap.Launches, snap.VictoryLaunches,
		snap.Level,
	)
}

func bestText(best int) string {
	return fmt.Sprintf("Best: %d", best)
}

// statusText is the weapon and rocket notice next to the heat bar.
func statusText(snap bugfeature.Snapshot) string {
	switch {
	case snap.Overheated:
		return fmt.Sprintf("OUT OF TOKENS %.1fs", snap.CooldownLeft.Seconds())
	case snap.ReadyToLaunch:
		return "READY TO LAUNCH [J]"
	default:
		return ""
	}
}

func gameOverLines(snap bugfeature.Snapshot) []string {
	title := "BUGS REACHED PRODUCTION"
	if snap.Victory {
		title = "RELEASE SHIPPED!"
	}
	return []string{title, "", fmt.Sprintf("Final score: %d", snap.Score), "Press R to restart"}
}

// Run opens the window and blocks until it is closed or Q is pressed.
func Run(game *bugfeature.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) error {
	w := NewWindow(game, store, cfg, opts...)

	world := game.Config().World
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowSize(int(world.Width), int(world.Height))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TickRate > 0 {
		ebiten.SetTPS(cfg.TickRate)
	}

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
