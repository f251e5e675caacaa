package sim

import "testing"

func monsterAt(id EntityID, x, y float64) Entity {
	return Entity{
		ID: id, Kind: KindMonster, Pos: V(x, y),
		HalfW: 1.5, HalfH: 1, Category: CategoryMonster, Alive: true,
	}
}

func projectileAt(id EntityID, x, y float64) Entity {
	return Entity{
		ID: id, Kind: KindProjectile, Pos: V(x, y),
		Radius: 0.5, Category: CategoryProjectile, Alive: true,
	}
}

func TestOverlaps(t *testing.T) {
	m := monsterAt(1, 10, 10) // box x [8.5, 11.5], y [9, 11]

	tests := []struct {
		name     string
		p        Entity
		expected bool
	}{
		{"center", projectileAt(2, 10, 10), true},
		{"inside edge", projectileAt(2, 8.2, 10), true},
		{"touching left edge", projectileAt(2, 8.0, 10), false},
		{"clear left", projectileAt(2, 7, 10), false},
		{"touching top edge", projectileAt(2, 10, 8.5), false},
		{"near corner outside", projectileAt(2, 8.1, 8.6), false},
		{"near corner inside", projectileAt(2, 8.3, 8.8), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlaps(tc.p, m); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestResolveSingleHit(t *testing.T) {
	entities := []Entity{
		{ID: 1, Kind: KindPlayer, Pos: V(10, 10), HalfW: 1, HalfH: 1, Alive: true},
		monsterAt(2, 30, 10),
		projectileAt(3, 30, 10),
		monsterAt(4, 60, 5),
	}

	pairs := Resolve(entities)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %v", pairs)
	}
	if pairs[0] != (Pair{Projectile: 3, Monster: 2}) {
		t.Errorf("pair = %+v, expected projectile 3 / monster 2", pairs[0])
	}
}

func TestResolveOneProjectileTwoMonsters(t *testing.T) {
	entities := []Entity{
		monsterAt(1, 30, 10),
		monsterAt(2, 30, 10.5),
		projectileAt(3, 30, 10.2),
	}

	pairs := Resolve(entities)
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %v", pairs)
	}
	if pairs[0].Monster != 1 || pairs[1].Monster != 2 {
		t.Errorf("pairs should follow slice order, got %v", pairs)
	}
}

func TestResolveTwoProjectilesOneMonster(t *testing.T) {
	entities := []Entity{
		monsterAt(1, 30, 10),
		projectileAt(2, 30, 10),
		projectileAt(3, 30.5, 10),
	}

	pairs := Resolve(entities)
	if len(pairs) != 1 {
		t.Fatalf("a monster should be reported once, got %v", pairs)
	}
	if pairs[0].Projectile != 2 {
		t.Errorf("first projectile should claim the monster, got %+v", pairs[0])
	}
}

func TestResolveIgnoresDeadAndOtherKinds(t *testing.T) {
	dead := monsterAt(1, 30, 10)
	dead.Alive = false
	spent := projectileAt(2, 50, 10)
	spent.Alive = false

	entities := []Entity{
		dead,
		projectileAt(3, 30, 10),
		monsterAt(4, 50, 10),
		spent,
		monsterAt(5, 50, 10.2), // monster/monster overlap is not a contact
	}

	if pairs := Resolve(entities); len(pairs) != 0 {
		t.Errorf("expected no pairs, got %v", pairs)
	}
}

func TestResolveDoesNotMutate(t *testing.T) {
	entities := []Entity{monsterAt(1, 30, 10), projectileAt(2, 30, 10)}
	before := append([]Entity(nil), entities...)

	Resolve(entities)

	for i := range entities {
		if entities[i] != before[i] {
			t.Errorf("entity %d changed: %+v -> %+v", i, before[i], entities[i])
		}
	}
}

func TestContactRules(t *testing.T) {
	if !Contacts(KindProjectile, KindMonster) {
		t.Error("projectile should destroy monster")
	}
	for _, pair := range [][2]Kind{
		{KindMonster, KindProjectile},
		{KindMonster, KindMonster},
		{KindProjectile, KindProjectile},
		{KindProjectile, KindPlayer},
		{KindMonster, KindPlayer},
	} {
		if Contacts(pair[0], pair[1]) {
			t.Errorf("Contacts(%v, %v) should be false", pair[0], pair[1])
		}
	}
}

func TestCategoryOf(t *testing.T) {
	if CategoryOf(KindMonster) != CategoryMonster {
		t.Error("monster category")
	}
	if CategoryOf(KindProjectile) != CategoryProjectile {
		t.Error("projectile category")
	}
	if CategoryOf(KindPlayer) != CategoryNone {
		t.Error("player category")
	}
	if CategoryAll&CategoryMonster == 0 || CategoryAll&CategoryProjectile == 0 {
		t.Error("CategoryAll should include every category")
	}
}
