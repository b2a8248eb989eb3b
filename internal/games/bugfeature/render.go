package bugfeature

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/bug-to-feature/internal/core"
)

// Minimum terminal size the playfield can be drawn in.
const (
	minScreenW = 40
	minScreenH = 12
)

// Glyphs used by the terminal renderer.
const (
	bugGlyph     = 'ж'
	featureGlyph = '◆'
	bulletGlyph  = '|'
	rocketGlyph  = '▲'
	heatFull     = '█'
	heatEmpty    = '░'
)

// Render draws the current frame. Row 0 is the HUD, the last row is the
// weapon heat bar, everything between is the world scaled to fit.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	snap := g.Snapshot()
	switch snap.Scene {
	case SceneSelection:
		renderSelection(dst, snap)
	case SceneCountdown:
		renderCountdown(dst, snap)
	case SceneGameplay:
		renderPlayfield(dst, snap)
		if snap.Paused {
			renderOverlay(dst, "Paused", "Press P to continue")
		}
	case SceneGameOver:
		renderPlayfield(dst, snap)
		renderGameOver(dst, snap)
	}
}

func renderSelection(dst *core.Screen, snap Snapshot) {
	top := dst.Height()/2 - 5

	dst.DrawTextCentered(top, "BUG TO FEATURE", core.ColorBrightGreen)
	dst.DrawTextCentered(top+1, "turn bugs into features, ship them to production", core.ColorGray)
	dst.DrawTextCentered(top+3, "Choose your branch", core.ColorWhite)

	var row strings.Builder
	for i, b := range Branches {
		if i > 0 {
			row.WriteString("   ")
		}
		label := fmt.Sprintf("%s %s", b.Icon(), b)
		if b == snap.Cursor {
			label = "> " + label + " <"
		} else {
			label = "  " + label + "  "
		}
		row.WriteString(label)
	}
	dst.DrawTextCentered(top+5, row.String(), core.ColorYellow)

	dst.DrawTextCentered(top+8, "←/→ choose   Enter start", core.ColorGray)
	dst.DrawTextCentered(top+9, "←/→ move   Space shoot   J launch   P pause", core.ColorGray)
}

func renderCountdown(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-2, fmt.Sprintf("%s %s", snap.Cursor.Icon(), snap.Cursor), core.ColorWhite)
	dst.DrawTextCentered(mid, fmt.Sprintf("%d", max(1, snap.Countdown)), core.ColorBrightYellow)
	dst.DrawTextCentered(mid+2, "get ready", core.ColorGray)
}

// viewport converts world coordinates to screen cells.
type viewport struct {
	cols, rows     int
	worldW, worldH float64
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	return viewport{cols: dst.Width(), rows: dst.Height() - 2, worldW: snap.WorldW, worldH: snap.WorldH}
}

func (v viewport) cell(x, y float64) (int, int) {
	col := int(x / v.worldW * float64(v.cols))
	row := 1 + int(y/v.worldH*float64(v.rows))
	return core.Clamp(col, 0, v.cols-1), core.Clamp(row, 1, v.rows)
}

func (v viewport) span(r core.Rect) (int, int, int) {
	left, row := v.cell(r.X, r.Y+r.H/2)
	right, _ := v.cell(r.Right(), r.Y+r.H/2)
	return left, right, row
}

func renderPlayfield(dst *core.Screen, snap Snapshot) {
	vp := newViewport(dst, snap)

	renderHUD(dst, snap)

	if snap.MothershipVisible {
		left, right, row := vp.span(snap.Mothership)
		dst.SetWithColor(left, row, '<', core.ColorMagenta)
		dst.DrawHLine(left+1, row, right-left-1, '=', core.ColorMagenta)
		dst.SetWithColor(right, row, '>', core.ColorMagenta)
	}

	for _, e := range snap.Entities {
		cx, cy := e.Bounds.Center()
		col, row := vp.cell(cx, cy)
		dst.SetWithColor(col, row, kindGlyph(e.Kind), KindColor(e.Kind))
	}

	if snap.PlayerVisible {
		cx, cy := snap.Player.Center()
		col, row := vp.cell(cx, cy)
		icon := snap.Branch.Icon()
		dst.DrawTextColor(col-utf8.RuneCountInString(icon)/2, row, icon, core.ColorWhite)
	}

	if snap.Banner != "" {
		dst.DrawTextCentered(dst.Height()/2, snap.Banner, core.ColorBrightYellow)
	}

	renderHeatBar(dst, snap)
}

func renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Score: %d  Lives: %s  Features: %d/%d  Launches: %d/%d  Level: %s",
		snap.Score,
		strings.Repeat("♥", max(0, snap.Lives)),
		snap.Features, snap.FeaturesPerRocket,
		snap.Launches, snap.VictoryLaunches,
		snap.Level,
	)
	dst.DrawTextColor(0, 0, hud, core.ColorWhite)
}

func renderHeatBar(dst *core.Screen, snap Snapshot) {
	y := dst.Height() - 1
	label := " Tokens "
	dst.DrawTextColor(0, y, label, core.ColorGray)

	barW := dst.Width() / 3
	filled := int(snap.Heat * float64(barW))
	color := HeatColor(snap.Heat)
	dst.DrawHLine(len(label), y, filled, heatFull, color)
	dst.DrawHLine(len(label)+filled, y, barW-filled, heatEmpty, core.ColorGray)

	x := len(label) + barW + 2
	switch {
	case snap.Overheated:
		dst.DrawTextColor(x, y, fmt.Sprintf("OUT OF TOKENS %.1fs", snap.CooldownLeft.Seconds()), core.ColorRed)
	case snap.ReadyToLaunch:
		dst.DrawTextColor(x, y, "READY TO LAUNCH [J]", core.ColorBrightGreen)
	}
}

func renderGameOver(dst *core.Screen, snap Snapshot) {
	title := "BUGS REACHED PRODUCTION"
	if snap.Victory {
		title = "RELEASE SHIPPED!"
	}
	renderOverlay(dst, title, fmt.Sprintf("Score: %d  Launches: %d", snap.Score, snap.Launches), "Press R to restart")
}

// renderOverlay draws a framed message box in the middle of the screen.
func renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	boxW := width + 4
	boxH := len(lines)*2 + 1
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextCentered(boxY+1+i*2, l, c)
	}
}

func kindGlyph(k Kind) rune {
	switch k {
	case KindBug:
		return bugGlyph
	case KindFeature:
		return featureGlyph
	case KindBullet:
		return bulletGlyph
	case KindRocket:
		return rocketGlyph
	default:
		return '?'
	}
}
