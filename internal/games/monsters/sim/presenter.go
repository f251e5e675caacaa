package sim

// Outcome is the result of a play session.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

// String returns a human-readable outcome.
func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks will be processed.
func (o Outcome) Terminal() bool {
	return o == Won || o == Lost
}

// RemoveReason tells the presenter why an entity left the field.
type RemoveReason int

const (
	RemovedHit      RemoveReason = iota // Destroyed in a collision
	RemovedPathEnd                      // Reached the end of its path
	RemovedOffField                     // Left the play field
	RemovedReset                        // Discarded when the session restarted
)

// String returns a human-readable removal reason.
func (r RemoveReason) String() string {
	switch r {
	case RemovedHit:
		return "hit"
	case RemovedPathEnd:
		return "path_end"
	case RemovedOffField:
		return "off_field"
	case RemovedReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Presenter receives simulation events. It owns every visual, audio and
// scene concern; the machine keeps no rendering data.
type Presenter interface {
	EntitySpawned(e Entity)
	EntityRemoved(e Entity, reason RemoveReason)
	SceneTransition(outcome Outcome)
}

// NopPresenter ignores all events.
type NopPresenter struct{}

func (NopPresenter) EntitySpawned(Entity)               {}
func (NopPresenter) EntityRemoved(Entity, RemoveReason) {}
func (NopPresenter) SceneTransition(Outcome)            {}
