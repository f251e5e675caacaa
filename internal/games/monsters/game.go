// Package monsters hosts the Monster Hunt simulation on the arcade
// platform. It maps terminal cells to world units, turns input frames into
// shots, keeps a sprite table fed by simulation events and shows the
// result scene between hunts.
package monsters

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/monster-hunt/internal/config"
	"github.com/vovakirdan/monster-hunt/internal/core"
	"github.com/vovakirdan/monster-hunt/internal/games/monsters/sim"
	"github.com/vovakirdan/monster-hunt/internal/registry"
)

// Minimum terminal size for a playable field.
const (
	MinScreenW = 30
	MinScreenH = 10
)

// Scene is the host scene currently on screen.
type Scene string

const (
	ScenePlaying Scene = "playing"
	SceneResult  Scene = "result"
)

// GameMode selects the win rule.
type GameMode string

const (
	ModeCampaign GameMode = "campaign" // Win after the configured kill count
	ModeEndless  GameMode = "endless"  // Hunt until a monster gets through
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives game events; nil means log.Default().
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game event logs to l.
func SetLogger(l *log.Logger) {
	logger = l
}

func gameLog() *log.Logger {
	if logger != nil {
		return logger
	}
	return log.Default()
}

// Game implements registry.Game for Monster Hunt. It is also the
// sim.Presenter of its own machine.
type Game struct {
	mode   GameMode
	preset config.DifficultyPreset // Overrides the CLI preset when set

	machine *sim.Machine
	seeds   *rand.Rand // Seeds for the hunts that follow a result scene

	// Presentation state fed by simulation events
	sprites map[sim.EntityID]sprite
	bursts  []burst

	scene      Scene
	outcome    sim.Outcome
	resultLeft float64 // Seconds until the next hunt starts
	finished   bool    // Set by SceneTransition, consumed by Step
	paused     bool
	tooSmall   bool
	hunts      int // Hunts started since Reset

	aim core.Point // Screen cell targeted by keyboard fire

	// Configuration
	runtime    core.RuntimeConfig
	seed       int64
	cfg        config.MonstersConfig
	difficulty *config.DifficultyManager
	hud        int // Screen rows above the field
}

// New creates a campaign mode game.
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates an endless mode game.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

func init() {
	registry.Register("monsters", func() registry.Game {
		return New()
	})
	registry.Register("monsters_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "monsters_endless"
	}
	return "monsters"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Monster Hunt (Endless)"
	}
	return "Monster Hunt"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	if g.mode == ModeEndless {
		return "Hold the line for as long as you can"
	}
	return "Shoot more than 30 monsters before one gets past you"
}

// SetDifficulty selects a difficulty preset for this instance.
// It takes effect on the next Reset.
func (g *Game) SetDifficulty(preset string) {
	g.preset = config.ParsePreset(preset)
}

// Reset loads configuration and starts the first hunt.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadMonsters(configPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		gameLog().Warn("using default monster config", "err", err)
		cfg = config.DefaultMonstersConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	config.ApplyMonstersPreset(&cfg, preset)
	if g.mode == ModeEndless {
		cfg.Rules.WinKills = 0
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.hud = max(cfg.Field.HUDRows, 0)
	g.tooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	g.seeds = rand.New(rand.NewSource(runtime.Seed))
	g.hunts = 0
	g.startHunt(runtime.Seed)
}

// Resize adapts the game to a new terminal size. The running hunt keeps
// its field; the next hunt is laid out for the new size.
func (g *Game) Resize(runtime core.RuntimeConfig) {
	g.runtime.ScreenW = runtime.ScreenW
	g.runtime.ScreenH = runtime.ScreenH
	g.tooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
}

// startHunt discards the current hunt and begins a new one with seed.
func (g *Game) startHunt(seed int64) {
	g.seed = seed
	g.hunts++
	g.scene = ScenePlaying
	g.outcome = sim.InProgress
	g.resultLeft = 0
	g.finished = false
	g.paused = false
	g.sprites = make(map[sim.EntityID]sprite)
	g.bursts = g.bursts[:0]

	g.machine = sim.NewMachine(g.simConfig(), rand.New(rand.NewSource(seed)), g)

	// Start aiming straight ahead of the player
	pc := g.worldToCell(g.machine.Player().Pos)
	g.aim = core.Point{X: pc.X + g.fieldW()/4, Y: pc.Y}
	g.clampAim()

	gameLog().Info("hunt started", "game", g.ID(), "seed", seed, "win_kills", g.cfg.Rules.WinKills)
}

// simConfig builds the simulation rules for the current screen.
// One world unit is one terminal cell.
func (g *Game) simConfig() sim.Config {
	w, h := float64(g.fieldW()), float64(g.fieldH())
	c := g.cfg
	shotRange, shotDuration := g.shotPath(w, h)
	return sim.Config{
		FieldWidth:         w,
		FieldHeight:        h,
		PlayerPos:          sim.V(w*c.Field.PlayerX, h*c.Field.PlayerY),
		PlayerHalfW:        c.Field.PlayerWidth / 2,
		PlayerHalfH:        c.Field.PlayerHeight / 2,
		MonsterHalfW:       c.Monster.Width / 2,
		MonsterHalfH:       c.Monster.Height / 2,
		ProjectileRadius:   c.Projectile.Radius,
		ProjectileDuration: shotDuration,
		ShotRange:          shotRange,
		SpawnInterval:      c.Monster.SpawnInterval,
		MinDuration:        c.Monster.MinDuration,
		MaxDuration:        c.Monster.MaxDuration,
		WinKills:           c.Rules.WinKills,
	}
}

// shotPath returns the shot range and travel time for a w x h field.
// The range always reaches past the far corner so shots leave the screen
// before expiring, and the travel time is stretched when needed so a shot
// never moves more than half a monster width per tick.
func (g *Game) shotPath(w, h float64) (shotRange, duration float64) {
	p := g.cfg.Projectile
	shotRange = max(p.Range, math.Hypot(w, h)+p.Radius)
	duration = p.Duration

	maxStep := g.cfg.Monster.Width / 2
	if maxStep > 0 {
		duration = max(duration, shotRange*g.runtime.TickSeconds()/maxStep)
	}
	return shotRange, duration
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	dt := g.runtime.TickSeconds()

	if in.Has(core.ActionRestart) {
		g.startHunt(g.seeds.Int63())
		return core.StepResult{State: g.State()}
	}

	if g.scene == SceneResult {
		g.resultLeft -= dt
		if g.resultLeft <= 0 {
			g.startHunt(g.seeds.Int63())
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	g.applyDifficulty()

	res := g.machine.Tick(dt)
	for _, hit := range res.Hits {
		gameLog().Debug("monster hit", "monster", hit.Monster, "projectile", hit.Projectile, "kills", g.machine.State().KillCount)
	}
	g.ageBursts(dt)

	finished := g.finished
	g.finished = false
	return core.StepResult{State: g.State(), Finished: finished}
}

// handleInput moves the aim cursor and fires shots.
func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.aim.Y--
	case in.Has(core.ActionDown):
		g.aim.Y++
	}
	switch {
	case in.Has(core.ActionLeft):
		g.aim.X--
	case in.Has(core.ActionRight):
		g.aim.X++
	}
	g.clampAim()

	if in.Has(core.ActionFire) {
		g.machine.ShootAt(g.cellToWorld(g.aim))
	}
	for _, c := range in.Clicks {
		if !g.field().Contains(c.X, c.Y) {
			continue
		}
		g.aim = c
		g.machine.ShootAt(g.cellToWorld(c))
	}
}

// applyDifficulty speeds up spawning as kills accumulate.
func (g *Game) applyDifficulty() {
	if !g.difficulty.IsEnabled() {
		return
	}
	kills := g.machine.State().KillCount
	ticks := int(g.machine.TickCount())
	m := g.cfg.Monster
	g.machine.SetSpawnPace(
		g.difficulty.Interval(m.SpawnInterval, kills, ticks),
		g.difficulty.Duration(m.MinDuration, kills, ticks),
		g.difficulty.Duration(m.MaxDuration, kills, ticks),
	)
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if g.machine == nil {
		return st
	}
	st.Score = g.machine.State().KillCount
	st.GameOver = g.scene == SceneResult
	st.Won = g.outcome == sim.Won
	return st
}

// Machine exposes the running simulation for inspection.
func (g *Game) Machine() *sim.Machine {
	return g.machine
}

// Scene returns the scene on screen.
func (g *Game) Scene() Scene {
	return g.scene
}

// Outcome returns the outcome of the current hunt.
func (g *Game) Outcome() sim.Outcome {
	return g.outcome
}

// Seed returns the seed of the current hunt.
func (g *Game) Seed() int64 {
	return g.seed
}

// Aim returns the aim cursor cell.
func (g *Game) Aim() core.Point {
	return g.aim
}

func (g *Game) fieldW() int { return g.runtime.ScreenW }
func (g *Game) fieldH() int { return max(g.runtime.ScreenH-g.hud, 1) }

// field is the play area in screen cells, below the HUD.
func (g *Game) field() core.Rect {
	return core.NewRect(0, g.hud, g.fieldW(), g.fieldH())
}

// cellToWorld returns the world position at the center of a screen cell.
func (g *Game) cellToWorld(p core.Point) sim.Vec {
	return sim.V(float64(p.X)+0.5, float64(p.Y-g.hud)+0.5)
}

// worldToCell returns the screen cell containing a world position.
func (g *Game) worldToCell(v sim.Vec) core.Point {
	return core.Point{
		X: int(math.Floor(v.X)),
		Y: int(math.Floor(v.Y)) + g.hud,
	}
}

func (g *Game) clampAim() {
	g.aim.X = core.Clamp(g.aim.X, 0, g.fieldW()-1)
	g.aim.Y = core.Clamp(g.aim.Y, g.hud, g.hud+g.fieldH()-1)
}
