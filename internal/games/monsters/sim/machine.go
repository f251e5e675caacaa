package sim

// Reference tuning values.
const (
	DefaultSpawnInterval      = 1.0
	DefaultMinDuration        = 2.0
	DefaultMaxDuration        = 4.0
	DefaultProjectileDuration = 2.0
	DefaultShotRange          = 1000.0
	DefaultWinKills           = 30
)

// Config describes the play field and the rules of a session.
type Config struct {
	FieldWidth  float64
	FieldHeight float64

	PlayerPos   Vec
	PlayerHalfW float64
	PlayerHalfH float64

	MonsterHalfW float64
	MonsterHalfH float64

	ProjectileRadius   float64
	ProjectileDuration float64 // Seconds for a shot to travel ShotRange
	ShotRange          float64 // Distance a shot aims past the player

	SpawnInterval float64
	MinDuration   float64
	MaxDuration   float64

	// WinKills is the kill count that must be exceeded to win.
	// Zero disables winning (endless play).
	WinKills int
}

// DefaultConfig returns the reference rules for a field of the given size,
// with the player 10% across and halfway down.
func DefaultConfig(width, height float64) Config {
	return Config{
		FieldWidth:         width,
		FieldHeight:        height,
		PlayerPos:          V(width*0.1, height*0.5),
		PlayerHalfW:        1,
		PlayerHalfH:        0.5,
		MonsterHalfW:       1.5,
		MonsterHalfH:       1,
		ProjectileRadius:   0.5,
		ProjectileDuration: DefaultProjectileDuration,
		ShotRange:          DefaultShotRange,
		SpawnInterval:      DefaultSpawnInterval,
		MinDuration:        DefaultMinDuration,
		MaxDuration:        DefaultMaxDuration,
		WinKills:           DefaultWinKills,
	}
}

// GameState is the scoring state of a session.
type GameState struct {
	KillCount int
	Outcome   Outcome
}

// Removal is an entity that left the field during a tick.
type Removal struct {
	Entity Entity
	Reason RemoveReason
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	Tick         uint64
	Spawned      []Entity
	Removed      []Removal
	Hits         []Pair
	Outcome      Outcome
	Transitioned bool // True only on the tick that reached a terminal outcome
}

// Machine is the game-state machine. It is not safe for concurrent use;
// the host drives it from a single loop.
type Machine struct {
	cfg       Config
	presenter Presenter
	spawner   *Spawner

	entities []Entity // Player is always entities[0]
	nextID   EntityID
	clock    float64
	tick     uint64
	kills    int
	outcome  Outcome
}

// NewMachine creates a machine and starts a session.
// A nil presenter discards events.
func NewMachine(cfg Config, rng RandomSource, p Presenter) *Machine {
	if p == nil {
		p = NopPresenter{}
	}
	m := &Machine{
		cfg:       cfg,
		presenter: p,
		spawner: NewSpawner(SpawnConfig{
			Interval:    cfg.SpawnInterval,
			MinDuration: cfg.MinDuration,
			MaxDuration: cfg.MaxDuration,
			FieldHeight: cfg.FieldHeight,
			HalfHeight:  cfg.MonsterHalfH,
		}, rng),
	}
	m.Reset()
	return m
}

// Reset discards all entities and starts a new session with the same
// config and random source. Every discarded entity, the player included,
// is reported with RemovedReset before the new player is spawned.
func (m *Machine) Reset() {
	for _, e := range m.entities {
		e.Alive = false
		m.presenter.EntityRemoved(e, RemovedReset)
	}
	m.entities = m.entities[:0]
	m.nextID = 0
	m.clock = 0
	m.tick = 0
	m.kills = 0
	m.outcome = InProgress
	m.spawner.Reset()

	m.add(Entity{
		Kind:  KindPlayer,
		Pos:   m.cfg.PlayerPos,
		HalfW: m.cfg.PlayerHalfW,
		HalfH: m.cfg.PlayerHalfH,
	})
}

// Config returns the machine's configuration.
func (m *Machine) Config() Config {
	return m.cfg
}

// SetSpawnPace changes the spawn interval and traversal duration range.
// Used by the host to apply difficulty.
func (m *Machine) SetSpawnPace(interval, minDuration, maxDuration float64) {
	m.spawner.SetPace(interval, minDuration, maxDuration)
}

// State returns the current kill count and outcome.
func (m *Machine) State() GameState {
	return GameState{KillCount: m.kills, Outcome: m.outcome}
}

// Clock returns seconds of simulated time since Reset.
func (m *Machine) Clock() float64 {
	return m.clock
}

// TickCount returns the number of processed ticks since Reset.
func (m *Machine) TickCount() uint64 {
	return m.tick
}

// Player returns the player entity.
func (m *Machine) Player() Entity {
	return m.entities[0]
}

// Entities returns a copy of all live entities, player first.
func (m *Machine) Entities() []Entity {
	out := make([]Entity, len(m.entities))
	copy(out, m.entities)
	return out
}

// ShootAt fires a projectile from the player toward target.
// Shots aimed backward (target left of the player) or at the player itself
// are ignored, as is any shot after the session has ended.
func (m *Machine) ShootAt(target Vec) (EntityID, bool) {
	if m.outcome.Terminal() {
		return 0, false
	}
	origin := m.Player().Pos
	offset := target.Sub(origin)
	if offset.X < 0 || offset.Len() == 0 {
		return 0, false
	}

	dir := offset.Normalized()
	e := m.add(Entity{
		Kind:   KindProjectile,
		Pos:    origin,
		Radius: m.cfg.ProjectileRadius,
		Path: Path{
			From:     origin,
			To:       origin.Add(dir.Scale(m.cfg.ShotRange)),
			Duration: m.cfg.ProjectileDuration,
		},
	})
	return e.ID, true
}

// Tick advances the session by dt seconds.
//
// Within a tick: spawning, then motion, then collision resolution, then
// removals and the outcome check. Monsters spawned this tick do not move
// until the next one. Once the outcome is terminal the machine is frozen
// and Tick returns without side effects.
func (m *Machine) Tick(dt float64) TickResult {
	if m.outcome.Terminal() {
		return TickResult{Tick: m.tick, Outcome: m.outcome}
	}
	if dt < 0 {
		dt = 0
	}
	m.tick++
	m.clock += dt
	res := TickResult{Tick: m.tick}

	// Spawn
	movable := len(m.entities)
	if req, ok := m.spawner.Tick(dt); ok {
		res.Spawned = append(res.Spawned, m.spawnMonster(req))
	}

	// Motion
	done := make([]bool, movable)
	for i := 0; i < movable; i++ {
		e := &m.entities[i]
		if !e.Alive || !e.Moving() {
			continue
		}
		e.Path.Elapsed += dt
		e.Pos, done[i] = PositionAt(*e, e.Path.Elapsed)
	}

	// Collisions
	for _, pair := range Resolve(m.entities) {
		if m.applyHit(pair) {
			res.Hits = append(res.Hits, pair)
		}
	}

	// Removals
	reachedEdge := false
	kept := m.entities[:0]
	for i, e := range m.entities {
		var reason RemoveReason
		switch {
		case !e.Alive:
			reason = RemovedHit
		case i < movable && done[i]:
			e.Alive = false
			reason = RemovedPathEnd
			if e.Kind == KindMonster && e.Pos.X <= -m.cfg.MonsterHalfW {
				reachedEdge = true
			}
		case e.Kind == KindProjectile && m.offField(e):
			e.Alive = false
			reason = RemovedOffField
		default:
			kept = append(kept, e)
			continue
		}
		res.Removed = append(res.Removed, Removal{Entity: e, Reason: reason})
		m.presenter.EntityRemoved(e, reason)
	}
	m.entities = kept

	// Outcome
	switch {
	case m.cfg.WinKills > 0 && m.kills > m.cfg.WinKills:
		m.outcome = Won
	case reachedEdge:
		m.outcome = Lost
	}
	res.Outcome = m.outcome
	if m.outcome.Terminal() {
		res.Transitioned = true
		m.presenter.SceneTransition(m.outcome)
	}
	return res
}

// applyHit kills both sides of a resolved pair and counts the kill.
// Pairs naming a missing or already dead monster are ignored. The
// projectile may already be dead: one shot can take out several monsters.
func (m *Machine) applyHit(p Pair) bool {
	mi, pi := m.indexOf(p.Monster), m.indexOf(p.Projectile)
	if mi < 0 || pi < 0 {
		return false
	}
	mon, proj := &m.entities[mi], &m.entities[pi]
	if mon.Kind != KindMonster || proj.Kind != KindProjectile || !mon.Alive {
		return false
	}
	mon.Alive = false
	proj.Alive = false
	m.kills++
	return true
}

func (m *Machine) spawnMonster(req SpawnRequest) Entity {
	hw := m.cfg.MonsterHalfW
	from := V(m.cfg.FieldWidth+hw, req.Y)
	return m.add(Entity{
		Kind:  KindMonster,
		Pos:   from,
		HalfW: hw,
		HalfH: m.cfg.MonsterHalfH,
		Path: Path{
			From:     from,
			To:       V(-hw, req.Y),
			Duration: req.Duration,
		},
	})
}

// add assigns an ID, stores the entity and notifies the presenter.
func (m *Machine) add(e Entity) Entity {
	m.nextID++
	e.ID = m.nextID
	e.Category = CategoryOf(e.Kind)
	e.Alive = true
	m.entities = append(m.entities, e)
	m.presenter.EntitySpawned(e)
	return e
}

func (m *Machine) indexOf(id EntityID) int {
	for i := range m.entities {
		if m.entities[i].ID == id {
			return i
		}
	}
	return -1
}

// offField reports whether an entity is entirely outside the play field.
func (m *Machine) offField(e Entity) bool {
	lo, hi := e.Box()
	return hi.X < 0 || lo.X > m.cfg.FieldWidth || hi.Y < 0 || lo.Y > m.cfg.FieldHeight
}
