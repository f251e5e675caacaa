package sim

// EntityID identifies an entity within one Machine.
type EntityID uint64

// Kind is the type of a simulated object.
type Kind int

const (
	KindPlayer Kind = iota
	KindMonster
	KindProjectile
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindMonster:
		return "monster"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// Category is a collision category bitmask.
// Contact decisions use the kind rule table; the mask is carried so the
// presenter can group entities without switching on Kind.
type Category uint32

const (
	CategoryNone       Category = 0
	CategoryMonster    Category = 0b1
	CategoryProjectile Category = 0b10
	CategoryAll        Category = ^Category(0)
)

// CategoryOf returns the collision category for a kind.
func CategoryOf(k Kind) Category {
	switch k {
	case KindMonster:
		return CategoryMonster
	case KindProjectile:
		return CategoryProjectile
	default:
		return CategoryNone
	}
}

// Path is a fixed-duration straight-line move.
type Path struct {
	From     Vec
	To       Vec
	Duration float64 // Seconds to travel From -> To
	Elapsed  float64 // Seconds travelled so far
}

// Entity is any simulated object.
type Entity struct {
	ID       EntityID
	Kind     Kind
	Pos      Vec // Center position
	Path     Path
	HalfW    float64 // Box half extents (monsters, player)
	HalfH    float64
	Radius   float64 // Circle radius (projectiles)
	Category Category
	Alive    bool
}

// Moving reports whether the entity follows a path.
func (e Entity) Moving() bool {
	return e.Kind != KindPlayer
}

// Box returns the entity's axis-aligned bounds as min and max corners.
func (e Entity) Box() (Vec, Vec) {
	if e.Kind == KindProjectile {
		return e.Pos.Sub(V(e.Radius, e.Radius)), e.Pos.Add(V(e.Radius, e.Radius))
	}
	return e.Pos.Sub(V(e.HalfW, e.HalfH)), e.Pos.Add(V(e.HalfW, e.HalfH))
}
