package invaders

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Visual characters for rendering
const (
	TargetChar      = '█'
	PaddleChar      = '▀'
	PaddleShotChar  = '│'
	SwarmShotChar   = '¦'
	LoseLineChar    = '┈'
	hudRows         = 1
	minScreenWidth  = 40
	minScreenHeight = 12
)

// viewport maps world coordinates onto the cells below the HUD.
type viewport struct {
	halfW, halfH float64
	w, h, top    int
}

func newViewport(dst *core.Screen, field config.FieldConfig) viewport {
	return viewport{
		halfW: field.HalfWidth,
		halfH: field.HalfHeight,
		w:     dst.Width(),
		h:     dst.Height() - hudRows,
		top:   hudRows,
	}
}

// col returns the cell column for world x, clamped to the screen.
func (v viewport) col(x float64) int {
	c := int(math.Floor((x + v.halfW) / (2 * v.halfW) * float64(v.w)))
	return core.Clamp(c, 0, v.w-1)
}

// row returns the cell row for world y (+Y up), clamped to the field.
func (v viewport) row(y float64) int {
	r := int(math.Floor((v.halfH - y) / (2 * v.halfH) * float64(v.h)))
	return v.top + core.Clamp(r, 0, v.h-1)
}

// cells returns the cell rectangle covered by a world box, at least one cell.
func (v viewport) cells(b core.Box) core.Rect {
	x0, x1 := v.col(b.Min.X), v.col(b.Max.X)
	y0, y1 := v.row(b.Max.Y), v.row(b.Min.Y)
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws a snapshot into dst. The screen is expected to be cleared.
func Render(dst *core.Screen, snap Snapshot, field config.FieldConfig, label string) {
	if dst.Width() < minScreenWidth || dst.Height() < minScreenHeight {
		renderTooSmall(dst)
		return
	}

	v := newViewport(dst, field)

	// Lose line under everything else
	dst.DrawHLine(0, v.row(field.LoseLine), v.w, LoseLineChar, core.ColorDim)

	for _, t := range snap.Targets {
		dst.FillRect(v.cells(t.Box), TargetChar, core.ColorSlate)
	}

	if snap.HasPaddle {
		dst.FillRect(v.cells(snap.Paddle), PaddleChar, core.ColorOrange)
	}

	for _, p := range snap.Projectiles {
		ch, color := PaddleShotChar, core.ColorSteel
		if p.Owner == OwnerSwarm {
			ch, color = SwarmShotChar, core.ColorAlert
		}
		dst.SetColored(v.col(p.Pos.X), v.row(p.Pos.Y), ch, color)
	}

	renderHUD(dst, snap, label)

	if snap.Overlay {
		renderOverlay(dst, snap)
	}
}

func renderHUD(dst *core.Screen, snap Snapshot, label string) {
	left := fmt.Sprintf(" SCORE %d   TIME %.1f", snap.Score, snap.PlayTime)
	dst.DrawTextColored(0, 0, left, core.ColorSand)

	right := fmt.Sprintf("TARGETS %d/%d  %s ", snap.Live, snap.Total, label)
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorSlate)
}

// overlayText returns the title and option line for the menu overlay.
func overlayText(phase Phase) (string, string) {
	switch phase {
	case PhasePaused:
		return "PAUSED", "[Esc] Close   [Q] Quit"
	case PhaseWon:
		return "SWARM CLEARED", "[R] Restart   [Q] Quit"
	case PhaseLost:
		return "GAME OVER", "[R] Restart   [Q] Quit"
	default:
		return "GET READY", "[Q] Quit"
	}
}

func renderOverlay(dst *core.Screen, snap Snapshot) {
	title, options := overlayText(snap.Phase)

	w, h := 30, 7
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorSand)

	titleColor := core.ColorSand
	if snap.Phase.Finished() {
		titleColor = core.ColorAlert
	}
	dst.DrawTextCentered(box.Y+1, title, titleColor)
	dst.DrawTextCentered(box.Y+3, fmt.Sprintf("Score: %d", snap.Score), core.ColorDefault)
	dst.DrawTextCentered(box.Y+4, fmt.Sprintf("Time: %.1f", snap.PlayTime), core.ColorDefault)
	dst.DrawTextCentered(box.Y+5, options, core.ColorDim)
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Terminal too small", core.ColorAlert)
	dst.DrawTextCentered(y, fmt.Sprintf("Need %dx%d", minScreenWidth, minScreenHeight), core.ColorDim)
}
