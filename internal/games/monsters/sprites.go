package monsters

import (
	"github.com/vovakirdan/monster-hunt/internal/core"
	"github.com/vovakirdan/monster-hunt/internal/games/monsters/sim"
)

// burstTTL is how long a hit flash stays on screen, in seconds.
const burstTTL = 0.25

// sprite is the visual for one entity. Rows are drawn centered on the
// entity's position.
type sprite struct {
	rows  []string
	color core.Color
}

// burst marks where a monster was destroyed.
type burst struct {
	pos sim.Vec
	ttl float64
}

var (
	playerSprite     = sprite{rows: []string{"]>"}, color: core.ColorBrightCyan}
	projectileSprite = sprite{rows: []string{"•"}, color: core.ColorBrightYellow}
)

// Monster looks, picked by entity ID.
var monsterSprites = []sprite{
	{rows: []string{"<@>", "/ \\"}, color: core.ColorGreen},
	{rows: []string{"{o}", "/^\\"}, color: core.ColorMagenta},
	{rows: []string{"[#]", "d b"}, color: core.ColorYellow},
	{rows: []string{"(ö)", "/‾\\"}, color: core.ColorBrightRed},
}

// EntitySpawned adds the entity to the sprite table.
func (g *Game) EntitySpawned(e sim.Entity) {
	switch e.Kind {
	case sim.KindPlayer:
		g.sprites[e.ID] = playerSprite
	case sim.KindMonster:
		g.sprites[e.ID] = monsterSprites[int(e.ID)%len(monsterSprites)]
	case sim.KindProjectile:
		g.sprites[e.ID] = projectileSprite
	}
}

// EntityRemoved drops the entity's sprite and flashes destroyed monsters.
func (g *Game) EntityRemoved(e sim.Entity, reason sim.RemoveReason) {
	delete(g.sprites, e.ID)
	if reason == sim.RemovedHit && e.Kind == sim.KindMonster {
		g.bursts = append(g.bursts, burst{pos: e.Pos, ttl: burstTTL})
	}
}

// SceneTransition switches to the result scene.
func (g *Game) SceneTransition(outcome sim.Outcome) {
	g.outcome = outcome
	g.scene = SceneResult
	g.resultLeft = g.cfg.Rules.ResultDelay
	g.finished = true
	g.bursts = g.bursts[:0]

	gameLog().Info("hunt over",
		"game", g.ID(),
		"outcome", outcome,
		"kills", g.machine.State().KillCount,
		"seconds", g.machine.Clock(),
	)
}

// ageBursts expires hit flashes.
func (g *Game) ageBursts(dt float64) {
	kept := g.bursts[:0]
	for _, b := range g.bursts {
		b.ttl -= dt
		if b.ttl > 0 {
			kept = append(kept, b)
		}
	}
	g.bursts = kept
}
