package platformer

import (
	"fmt"
	"math"

	engine "github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/core"
)

// Frame strips, one rune per animation frame.
var (
	crumbleFrames = []rune("████▓▓▒▒░")
	coinFrames    = []rune("o0O0o·")
)

// tileLook returns the rune and colour of screen column sub (0-based) of
// the tile at (x, y).
func tileLook(w *core.World, x, y, sub int) (rune, engine.Color) {
	timers := w.Timers()
	switch w.Grid().KindAt(x, y) {
	case core.KindWall:
		return '█', engine.ColorGray
	case core.KindCrumblingWall:
		v := timers.Value(core.TimerKey{X: x, Y: y, Kind: core.TimerCrumble})
		return frameRune(crumbleFrames, v), engine.ColorOrange
	case core.KindLadders:
		if sub%2 == 0 {
			return 'H', engine.ColorYellow
		}
		return '=', engine.ColorYellow
	case core.KindCoin:
		if sub%2 != 0 {
			return ' ', engine.ColorDefault
		}
		v := timers.Value(core.TimerKey{X: x, Y: y, Kind: core.TimerCoin})
		return frameRune(coinFrames, v), engine.ColorBrightYellow
	case core.KindEnd:
		key := core.TimerKey{X: x, Y: y, Kind: core.TimerExit}
		r := '['
		if sub%2 != 0 {
			r = ']'
		}
		if !timers.Toggled(key) {
			return r, engine.ColorBlue
		}
		if f, _ := timers.Flash(key); f.Value >= 0.5 {
			return r, engine.ColorBrightCyan
		}
		return r, engine.ColorCyan
	case core.KindStart:
		if sub%2 == 0 {
			return '·', engine.ColorGray
		}
	}
	return ' ', engine.ColorDefault
}

func frameRune(frames []rune, v float64) rune {
	i := int(v)
	if i < 0 {
		i = 0
	}
	if i >= len(frames) {
		i = len(frames) - 1
	}
	return frames[i]
}

// playerSprite returns the two-column sprite for the current animation.
func playerSprite(p *core.Player) [2]rune {
	switch p.Anim {
	case core.AnimRunLeft:
		if int(p.Frame)%4 < 2 {
			return [2]rune{'<', ')'}
		}
		return [2]rune{'«', ')'}
	case core.AnimRunRight:
		if int(p.Frame)%4 < 2 {
			return [2]rune{'(', '>'}
		}
		return [2]rune{'(', '»'}
	case core.AnimJumpLeft:
		return [2]rune{'\\', ')'}
	case core.AnimJumpRight:
		return [2]rune{'(', '/'}
	case core.AnimClimb:
		if int(p.Frame)%2 == 0 {
			return [2]rune{'}', '{'}
		}
		return [2]rune{'{', '}'}
	}
	return [2]rune{'(', ')'}
}

// Render draws the HUD, the visible part of the map and the player.
func (g *Game) Render(dst *engine.Screen) {
	if g.err != nil {
		dst.DrawTextCentered(dst.Height()/2-1, "Cannot load level "+g.id)
		dst.DrawTextColored(0, dst.Height()/2+1, g.err.Error(), engine.ColorRed)
		return
	}
	if g.world == nil {
		return
	}

	g.renderMap(dst)
	g.renderPlayer(dst)
	if g.cfg.Render.ShowHUD {
		g.renderHUD(dst)
	}
	if g.world.Debug() {
		g.renderDebug(dst)
	}

	switch {
	case g.state.Complete:
		g.renderBanner(dst,
			fmt.Sprintf("LEVEL COMPLETE  %.2fs", g.state.Elapsed),
			"N: Next level  |  R: Restart  |  Q: Quit")
	case g.state.Stopped:
		g.renderBanner(dst, "STOPPED", "R: Restart  |  Q: Quit")
	case g.state.Paused:
		g.renderBanner(dst, "PAUSED", "P: Resume  |  R: Restart  |  Q: Quit")
	}
}

// toCell maps a world pixel position to a screen cell.
func (g *Game) toCell(px, py float64) (int, int) {
	ph := g.world.Settings().Physics
	cam := g.world.Camera()
	sx, sy := cam.ToScreen(px, py)
	cols := float64(g.cellColumns())
	return int(math.Floor(sx / float64(ph.TileW) * cols)),
		hudRows + int(math.Floor(sy/float64(ph.TileH)))
}

func (g *Game) renderMap(dst *engine.Screen) {
	ph := g.world.Settings().Physics
	cam := g.world.Camera()
	cols := g.cellColumns()
	colW := float64(ph.TileW) / float64(cols)

	for sy := hudRows; sy < dst.Height(); sy++ {
		wy := float64((sy-hudRows)*ph.TileH) - cam.Y
		ty := int(math.Floor(wy / float64(ph.TileH)))
		if ty < 0 || ty >= g.world.Grid().H {
			continue
		}
		for sx := 0; sx < dst.Width(); sx++ {
			wx := float64(sx)*colW - cam.X
			tx := int(math.Floor(wx / float64(ph.TileW)))
			if tx < 0 || tx >= g.world.Grid().W {
				continue
			}
			sub := int(math.Floor((wx - float64(tx*ph.TileW)) / colW))
			r, c := tileLook(g.world, tx, ty, sub)
			dst.SetColored(sx, sy, r, c)
		}
	}
}

func (g *Game) renderPlayer(dst *engine.Screen) {
	p := g.world.Player()
	ph := g.world.Settings().Physics
	x0, y0 := g.toCell(p.X+0.5, p.Y+0.5)
	wCells := max(int(math.Round(p.W/float64(ph.TileW)*float64(g.cellColumns()))), 1)
	hCells := max(int(math.Round(p.H/float64(ph.TileH))), 1)

	sprite := playerSprite(p)
	for dy := range hCells {
		for dx := range wCells {
			dst.SetColored(x0+dx, y0+dy, sprite[dx%2], engine.ColorGreen)
		}
	}
}

func (g *Game) renderHUD(dst *engine.Screen) {
	lvl := g.world.Level()
	left := fmt.Sprintf(" %s  coins %d/%d", lvl.Name, g.state.CoinsLeft, lvl.CoinsTotal)
	right := fmt.Sprintf("time %6.2fs ", g.state.Elapsed)
	if lvl.ParTime > 0 {
		right = fmt.Sprintf("par %.0fs  ", lvl.ParTime) + right
	}

	for x := range dst.Width() {
		dst.SetColored(x, 0, ' ', engine.ColorWhite)
	}
	dst.DrawTextColored(0, 0, left, engine.ColorWhite)
	color := engine.ColorWhite
	if lvl.ParTime > 0 && g.state.Elapsed > lvl.ParTime {
		color = engine.ColorRed
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, color)
}

// DebugLines describes the player and the latest neighbour sample.
func DebugLines(w *core.World) []string {
	p := w.Player()
	c := w.Coords()
	s := w.Sample()
	h := w.Hits()
	return []string{
		fmt.Sprintf("pos %.1f,%.1f  yplus %.1f  safe %.0f,%.0f", p.X, p.Y, p.YPlus, p.SafeX, p.SafeY),
		fmt.Sprintf("midair %t  climb %s  anim %s/%d", p.Midair, p.Climbing, p.Anim, int(p.Frame)),
		fmt.Sprintf("tiles cx %d fx %d cy %d fy %d  hits %+v", c.CX, c.FX, c.CY, c.FY, h),
		"under " + s.Under.String(),
		"left  " + s.Left.String(),
		"right " + s.Right.String(),
		"above " + s.Above.String(),
		"below " + s.Below.String(),
		fmt.Sprintf("timers %d", w.Timers().Len()),
	}
}

func (g *Game) renderDebug(dst *engine.Screen) {
	lines := DebugLines(g.world)
	top := dst.Height() - len(lines)
	for i, l := range lines {
		dst.DrawTextColored(0, top+i, l, engine.ColorCyan)
	}
}

func (g *Game) renderBanner(dst *engine.Screen, title, help string) {
	w := max(len([]rune(title)), len([]rune(help))) + 4
	h := 5
	r := engine.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	dst.DrawTextCentered(r.Y+1, title)
	dst.DrawTextCentered(r.Y+3, help)
}
