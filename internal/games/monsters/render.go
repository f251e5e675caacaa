package monsters

import (
	"fmt"
	"math"

	"github.com/vovakirdan/monster-hunt/internal/core"
	"github.com/vovakirdan/monster-hunt/internal/games/monsters/sim"
)

// Render draws the current scene.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Terminal too small!", core.ColorRed)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorDefault)
		return
	}
	if g.machine == nil {
		return
	}

	if g.scene == SceneResult {
		g.renderResult(dst)
		return
	}

	g.renderHUD(dst)
	for _, e := range g.machine.Entities() {
		if s, ok := g.sprites[e.ID]; ok {
			g.drawSprite(dst, e, s)
		}
	}
	for _, b := range g.bursts {
		c := g.worldToCell(b.pos)
		dst.DrawTextColor(c.X-1, c.Y, "*+*", core.ColorOrange)
	}
	dst.SetColor(g.aim.X, g.aim.Y, '+', core.ColorRed)

	if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ", core.ColorBrightYellow)
		dst.DrawTextCentered(dst.Height()/2+1, " Press P to resume ", core.ColorGray)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	if g.hud == 0 {
		return
	}
	kills := g.machine.State().KillCount
	left := fmt.Sprintf("Kills: %d", kills)
	if g.cfg.Rules.WinKills > 0 {
		left = fmt.Sprintf("Kills: %d/%d", kills, g.cfg.Rules.WinKills+1)
	}
	dst.DrawTextColor(1, 0, left, core.ColorBrightGreen)

	title := g.Title()
	dst.DrawTextCentered(0, title, core.ColorCyan)

	right := fmt.Sprintf("%.0fs", g.machine.Clock())
	dst.DrawTextColor(dst.Width()-len(right)-1, 0, right, core.ColorGray)

	if g.hud > 1 {
		dst.DrawHLine(0, g.hud-1, dst.Width(), '─', core.ColorGray)
	}
}

// drawSprite draws s centered on e, clipped to the field.
func (g *Game) drawSprite(dst *core.Screen, e sim.Entity, s sprite) {
	halfW, halfH := e.HalfW, e.HalfH
	if e.Kind == sim.KindProjectile {
		halfW, halfH = 0, 0
	}
	left := int(math.Floor(e.Pos.X - halfW))
	top := int(math.Floor(e.Pos.Y-halfH)) + g.hud

	width := 0
	for _, row := range s.rows {
		width = max(width, len([]rune(row)))
	}
	if !g.field().Intersects(core.NewRect(left, top, width, len(s.rows))) {
		return
	}

	for dy, row := range s.rows {
		y := top + dy
		if y < g.hud {
			continue
		}
		x := left
		for _, r := range row {
			if r != ' ' {
				dst.SetColor(x, y, r, s.color)
			}
			x++
		}
	}
}

func (g *Game) renderResult(dst *core.Screen) {
	cx, mid := core.NewRect(0, 0, dst.Width(), dst.Height()).Center()

	msg, color := "You Lose!", core.ColorBrightRed
	if g.outcome == sim.Won {
		msg, color = "You Win!", core.ColorBrightGreen
	}
	box := core.NewRect(cx-12, mid-3, 24, 7)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	dst.DrawTextCentered(mid-1, msg, color)
	dst.DrawTextCentered(mid, fmt.Sprintf("Monsters: %d", g.machine.State().KillCount), core.ColorDefault)

	secs := int(math.Ceil(g.resultLeft))
	dst.DrawTextCentered(mid+1, fmt.Sprintf("Next hunt in %d", max(secs, 0)), core.ColorGray)
}
