package monsters

import "github.com/vovakirdan/monster-hunt/internal/games/monsters/sim"

// StateType is the coarse state of the game for snapshots.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StatePaused      StateType = "paused"
	StateWon         StateType = "won"
	StateLost        StateType = "lost"
	StatePausedSmall StateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Mode        string
	Seed        int64
	Hunt        int
	Kills       int
	Monsters    int
	Projectiles int
	AimX        int
	AimY        int
	Clock       float64
	State       StateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.scene == SceneResult && g.outcome == sim.Won:
		state = StateWon
	case g.scene == SceneResult:
		state = StateLost
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Mode:  string(g.mode),
		Seed:  g.seed,
		Hunt:  g.hunts,
		AimX:  g.aim.X,
		AimY:  g.aim.Y,
		State: state,
	}
	if g.machine == nil {
		return snap
	}

	snap.Tick = g.machine.TickCount()
	snap.Kills = g.machine.State().KillCount
	snap.Clock = g.machine.Clock()
	for _, e := range g.machine.Entities() {
		switch e.Kind {
		case sim.KindMonster:
			snap.Monsters++
		case sim.KindProjectile:
			snap.Projectiles++
		}
	}
	return snap
}
