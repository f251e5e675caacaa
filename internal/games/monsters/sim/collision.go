package sim

// Pair is a projectile/monster contact reported by Resolve.
type Pair struct {
	Projectile EntityID
	Monster    EntityID
}

// contactRules lists the kind pairs that destroy each other on overlap.
// The first kind is the striker.
var contactRules = map[[2]Kind]bool{
	{KindProjectile, KindMonster}: true,
}

// Contacts reports whether an entity of kind a striking one of kind b is a
// destroying contact.
func Contacts(a, b Kind) bool {
	return contactRules[[2]Kind{a, b}]
}

// Resolve finds every alive projectile overlapping an alive monster.
//
// A projectile that overlaps several monsters destroys all of them. Each
// monster appears in at most one pair: the first overlapping projectile in
// slice order claims it. Resolve never mutates its input.
func Resolve(entities []Entity) []Pair {
	var pairs []Pair
	claimed := make(map[EntityID]bool)

	for _, p := range entities {
		if !p.Alive {
			continue
		}
		for _, m := range entities {
			if !m.Alive || claimed[m.ID] || !Contacts(p.Kind, m.Kind) {
				continue
			}
			if Overlaps(p, m) {
				claimed[m.ID] = true
				pairs = append(pairs, Pair{Projectile: p.ID, Monster: m.ID})
			}
		}
	}
	return pairs
}

// Overlaps tests a projectile circle against a monster box.
// Shapes that only touch do not overlap.
func Overlaps(projectile, monster Entity) bool {
	lo, hi := monster.Box()
	nearest := V(
		clampF(projectile.Pos.X, lo.X, hi.X),
		clampF(projectile.Pos.Y, lo.Y, hi.Y),
	)
	d := projectile.Pos.Sub(nearest)
	return d.X*d.X+d.Y*d.Y < projectile.Radius*projectile.Radius
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
