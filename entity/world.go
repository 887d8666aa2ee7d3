package entity

// World holds one Group per entity type plus the id allocator. An entity
// lives in exactly one group; destruction is removal from that group.
type World struct {
	Players       *Group
	Enemies       *Group
	Bosses        *Group
	PlayerBullets *Group
	EnemyBullets  *Group
	Items         *Group
	Missiles      *Group

	Bounds Bounds

	nextID ID
}

// NewWorld creates an empty world with the given playfield bounds
func NewWorld(bounds Bounds) *World {
	return &World{
		Players:       NewGroup(),
		Enemies:       NewGroup(),
		Bosses:        NewGroup(),
		PlayerBullets: NewGroup(),
		EnemyBullets:  NewGroup(),
		Items:         NewGroup(),
		Missiles:      NewGroup(),
		Bounds:        bounds,
	}
}

// AllocateID hands out the next entity id
func (w *World) AllocateID() ID {
	w.nextID++
	return w.nextID
}

// GroupFor returns the owning group for a type tag
func (w *World) GroupFor(t Type) *Group {
	switch t {
	case TypePlayer:
		return w.Players
	case TypeEnemy:
		return w.Enemies
	case TypeBoss:
		return w.Bosses
	case TypePlayerBullet:
		return w.PlayerBullets
	case TypeEnemyBullet:
		return w.EnemyBullets
	case TypeItem:
		return w.Items
	case TypeMissile:
		return w.Missiles
	}
	return nil
}

// Groups returns every group in simulation order
func (w *World) Groups() []*Group {
	return []*Group{
		w.Players, w.Enemies, w.Bosses,
		w.PlayerBullets, w.EnemyBullets,
		w.Items, w.Missiles,
	}
}

// Player returns the player entity, nil before spawn or after removal
func (w *World) Player() *Entity {
	if w.Players.Len() == 0 {
		return nil
	}
	return w.Players.At(0)
}

// BossAlive reports whether any boss is currently in the field
func (w *World) BossAlive() bool {
	return w.Bosses.Len() > 0
}

// EntityCount returns the total live entity count across groups
func (w *World) EntityCount() int {
	n := 0
	for _, g := range w.Groups() {
		n += g.Len()
	}
	return n
}

// Clear empties every group; ids keep advancing so stale ids from the
// previous session can never alias new entities
func (w *World) Clear() {
	for _, g := range w.Groups() {
		g.Clear()
	}
}
