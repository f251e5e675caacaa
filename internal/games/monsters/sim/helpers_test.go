package sim

// seqRand replays a fixed sequence of values, cycling when exhausted.
type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func constRand(v float64) *seqRand {
	return &seqRand{vals: []float64{v}}
}

// recorder is a Presenter that keeps every event.
type recorder struct {
	spawned     []Entity
	removed     []Removal
	transitions []Outcome
}

func (r *recorder) EntitySpawned(e Entity) {
	r.spawned = append(r.spawned, e)
}

func (r *recorder) EntityRemoved(e Entity, reason RemoveReason) {
	r.removed = append(r.removed, Removal{Entity: e, Reason: reason})
}

func (r *recorder) SceneTransition(o Outcome) {
	r.transitions = append(r.transitions, o)
}
