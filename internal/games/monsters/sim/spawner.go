package sim

// RandomSource yields uniform values in [0, 1).
// *math/rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// SpawnConfig controls monster spawning.
type SpawnConfig struct {
	Interval    float64 // Seconds between spawns
	MinDuration float64 // Fastest traversal, seconds
	MaxDuration float64 // Slowest traversal, seconds
	FieldHeight float64 // Play field height in world units
	HalfHeight  float64 // Half the monster height; keeps the sprite in bounds
}

// SpawnRequest describes one monster to create.
type SpawnRequest struct {
	Y        float64 // Vertical center of the monster
	Duration float64 // Seconds to cross the field
}

// Spawner fires spawn requests at a fixed interval.
type Spawner struct {
	cfg    SpawnConfig
	rng    RandomSource
	accum  float64
	primed bool // Next Tick fires regardless of the accumulator
}

// NewSpawner creates a spawner. The first Tick always fires; later ones
// fire each time Interval seconds have accumulated.
func NewSpawner(cfg SpawnConfig, rng RandomSource) *Spawner {
	s := &Spawner{cfg: cfg, rng: rng}
	s.Reset()
	return s
}

// Reset rearms the spawner so the next Tick fires.
func (s *Spawner) Reset() {
	s.accum = 0
	s.primed = true
}

// SetPace changes the interval and traversal range, keeping the accumulator.
func (s *Spawner) SetPace(interval, minDuration, maxDuration float64) {
	s.cfg.Interval = interval
	s.cfg.MinDuration = minDuration
	s.cfg.MaxDuration = maxDuration
}

// Config returns the spawner's current configuration.
func (s *Spawner) Config() SpawnConfig {
	return s.cfg
}

// Tick advances the spawn timer by dt seconds and returns a request when
// the interval has elapsed. At most one request fires per call; any excess
// time carries over to the next interval.
func (s *Spawner) Tick(dt float64) (SpawnRequest, bool) {
	switch {
	case s.primed:
		s.primed = false
	case s.cfg.Interval <= 0:
		// Fire every tick.
	default:
		s.accum += dt
		if s.accum < s.cfg.Interval {
			return SpawnRequest{}, false
		}
		s.accum -= s.cfg.Interval
	}
	return SpawnRequest{
		Y:        s.randomY(),
		Duration: s.uniform(s.cfg.MinDuration, s.cfg.MaxDuration),
	}, true
}

func (s *Spawner) randomY() float64 {
	lo := s.cfg.HalfHeight
	hi := s.cfg.FieldHeight - s.cfg.HalfHeight
	if hi < lo {
		return s.cfg.FieldHeight / 2
	}
	return s.uniform(lo, hi)
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return s.rng.Float64()*(hi-lo) + lo
}
