package entity

// ID uniquely identifies an entity within a World session
type ID uint32

// Type tags an entity with its behavior table
type Type uint8

const (
	TypePlayer Type = iota
	TypeEnemy
	TypeBoss
	TypePlayerBullet
	TypeEnemyBullet
	TypeItem
	TypeMissile

	typeCount
)

var typeNames = [...]string{
	TypePlayer:       "player",
	TypeEnemy:        "enemy",
	TypeBoss:         "boss",
	TypePlayerBullet: "player_bullet",
	TypeEnemyBullet:  "enemy_bullet",
	TypeItem:         "item",
	TypeMissile:      "missile",
}

func (t Type) String() string {
	if int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// ItemKind selects the pickup effect
type ItemKind uint8

const (
	ItemHeal ItemKind = iota
	ItemScore
	ItemExtraLife
)

// Entity is the single flat record for everything in the field.
// Per-type behavior lives in the systems, looked up by Type; there is no
// type hierarchy. X/Y is the box center, W/H the full extents in cells.
type Entity struct {
	ID   ID
	Type Type

	X, Y   float64
	VX, VY float64
	W, H   float64

	Health    int
	MaxHealth int

	// Points is the score value carried by enemies, bosses and items
	Points int64

	// Kind is meaningful for TypeItem only
	Kind ItemKind

	// Level stamps bosses with the level they guard
	Level int

	// Lives is meaningful for TypePlayer only
	Lives int

	// TargetID is the entity a missile is tracking; zero when untracked
	TargetID ID
}

// Overlaps reports AABB intersection between two entities
func (e *Entity) Overlaps(o *Entity) bool {
	return abs(e.X-o.X)*2 < e.W+o.W && abs(e.Y-o.Y)*2 < e.H+o.H
}

// Alive reports positive health
func (e *Entity) Alive() bool {
	return e.Health > 0
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Bounds is the playfield extent in cells, origin top-left
type Bounds struct {
	Width  float64
	Height float64
}
