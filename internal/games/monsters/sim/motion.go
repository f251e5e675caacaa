package sim

// PositionAt returns where an entity is after travelling for elapsed seconds
// along its path, and whether the path is complete.
//
// Once elapsed reaches the path duration the result is exactly Path.To, so
// repeated calls past the end are idempotent. A non-positive duration is
// complete immediately.
func PositionAt(e Entity, elapsed float64) (Vec, bool) {
	p := e.Path
	if p.Duration <= 0 || elapsed >= p.Duration {
		return p.To, true
	}
	if elapsed <= 0 {
		return p.From, false
	}
	return Lerp(p.From, p.To, elapsed/p.Duration), false
}
