package rocket

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/retro-rocket/internal/core"
)

// Glyphs
const (
	BulletChar = '•'
	FlameChar  = '*'
	LifeChar   = '▲'
)

// shipGlyphs are indexed by heading in eighths of a turn, starting at east
// and going clockwise (screen Y points down).
var shipGlyphs = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// meteorGlyphs are indexed by crack level.
var meteorGlyphs = [3]rune{'█', '▓', '░'}

// Render draws the current frame. Row 0 is the HUD; the remaining rows show
// the whole world scaled to fit.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()
	if snap.Width <= 0 || dst.Width() == 0 || dst.Height() < 2 {
		return
	}
	v := newViewport(snap.Width, snap.Height, dst.Width(), dst.Height())

	for _, m := range snap.Meteors {
		drawMeteor(dst, v, m)
	}
	for _, b := range snap.Bullets {
		x, y := v.cell(b.X, b.Y)
		dst.SetColored(x, y, BulletChar, core.ColorYellow)
	}
	if snap.Phase != core.PhaseMenu && snap.Ship.Alive {
		drawShip(dst, v, snap.Ship)
	}
	for _, e := range snap.Effects {
		x, y := v.cell(e.X, e.Y)
		c := core.ColorCyan
		if e.Fade < 0.33 {
			c = core.ColorGray
		}
		dst.DrawTextColored(x, y, fmt.Sprintf("+%d", e.Points), c)
	}

	drawHUD(dst, snap)

	switch snap.Phase {
	case core.PhaseMenu:
		drawCenteredMessage(dst, core.ColorCyan, "RETRO ROCKET",
			fmt.Sprintf("High: %d   Credits: %d", snap.HighScore, snap.Credits),
			"Enter to launch  |  Q to quit",
			"←/→ steer  ↑ thrust  Space fire  P pause")
	case core.PhasePaused:
		drawCenteredMessage(dst, core.ColorYellow, "PAUSED", "Press P to resume")
	case core.PhaseGameOver:
		drawCenteredMessage(dst, core.ColorRed, "GAME OVER",
			fmt.Sprintf("Score: %d", snap.Score),
			"R restart  |  M menu")
	}
}

// viewport maps world units onto screen cells below the HUD row.
type viewport struct {
	sx, sy  float64
	cols    int
	rows    int
	originY int
}

func newViewport(worldW, worldH float64, screenW, screenH int) viewport {
	rows := screenH - 1
	return viewport{
		sx:      float64(screenW) / worldW,
		sy:      float64(rows) / worldH,
		cols:    screenW,
		rows:    rows,
		originY: 1,
	}
}

// cell returns the screen cell for a world position.
func (v viewport) cell(x, y float64) (int, int) {
	cx := core.Clamp(int(x*v.sx), 0, v.cols-1)
	cy := core.Clamp(int(y*v.sy), 0, v.rows-1)
	return cx, cy + v.originY
}

// wrapCell folds playfield cell coordinates back onto the screen.
func (v viewport) wrapCell(cx, cy int) (int, int) {
	cx = ((cx % v.cols) + v.cols) % v.cols
	cy = ((cy % v.rows) + v.rows) % v.rows
	return cx, cy + v.originY
}

func drawShip(dst *core.Screen, v viewport, s ShipView) {
	x, y := v.cell(s.X, s.Y)
	dst.SetColored(x, y, shipGlyph(s.Angle), core.ColorWhite)
	if s.Thrusting {
		back := core.FromAngle(s.Angle + math.Pi)
		fx, fy := v.wrapCell(x+int(math.Round(back.X)), y-v.originY+int(math.Round(back.Y)))
		dst.SetColored(fx, fy, FlameChar, core.ColorOrange)
	}
}

// shipGlyph picks the arrow closest to the heading.
func shipGlyph(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return shipGlyphs[octant]
}

// drawMeteor fills the meteor's ellipse in cell space, wrapping across edges.
func drawMeteor(dst *core.Screen, v viewport, m MeteorView) {
	glyph := meteorGlyphs[core.Clamp(m.CrackLevel, 0, len(meteorGlyphs)-1)]
	cx, cy := m.X*v.sx, m.Y*v.sy
	rx := math.Max(m.Radius*v.sx, 0.5)
	ry := math.Max(m.Radius*v.sy, 0.5)

	for y := int(math.Floor(cy - ry)); y <= int(math.Ceil(cy+ry)); y++ {
		for x := int(math.Floor(cx - rx)); x <= int(math.Ceil(cx+rx)); x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy > 1 {
				continue
			}
			sx, sy := v.wrapCell(x, y)
			dst.SetColored(sx, sy, glyph, core.ColorGray)
		}
	}
	// Small meteors may not cover any cell center.
	x, y := v.cell(m.X, m.Y)
	dst.SetColored(x, y, glyph, core.ColorGray)
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Score: %d  High: %d  Credits: %d ", snap.Score, snap.HighScore, snap.Credits)
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)
	if snap.Phase == core.PhaseMenu {
		return
	}
	lives := strings.Repeat(string(LifeChar), snap.Lives)
	dst.DrawTextColored(dst.Width()-len([]rune(lives))-2, 0, lives, core.ColorRed)
}

// drawCenteredMessage draws a boxed message in the middle of the screen.
func drawCenteredMessage(dst *core.Screen, c core.Color, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 4
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, c)
	for i, l := range lines {
		dst.DrawText(boxX+(boxW-len([]rune(l)))/2, boxY+3+i, l)
	}
}
