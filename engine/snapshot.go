package engine

import (
	"time"

	"github.com/lixenwraith/nova-strike/entity"
)

// EntityView is the read-only per-entity projection handed to the
// renderer. Values are copied; the renderer never touches live entities.
type EntityView struct {
	ID        uint32
	Type      entity.Type
	X, Y      float64
	W, H      float64
	Health    int
	MaxHealth int
	Kind      entity.ItemKind
}

// Snapshot is the per-tick world projection for the rendering and UI
// collaborators
type Snapshot struct {
	Session  string
	State    StateID
	Frame    int64
	GameTime time.Duration
	Paused   bool
	Language string

	Score      int64
	Level      int
	Lives      int
	Health     int
	MaxHealth  int
	Multiplier float64

	Bounds   entity.Bounds
	Entities []EntityView
}

// Snapshot builds the current projection. Called on the scheduler
// goroutine after the tick completes.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Session:    g.sessionID.String(),
		State:      g.machine.Current(),
		Frame:      g.frame,
		GameTime:   g.lastGameTime,
		Paused:     g.clock.IsPaused(),
		Language:   g.Language(),
		Score:      g.scoring.Score(),
		Level:      g.scoring.Level(),
		Multiplier: g.scoring.Multiplier(),
		Bounds:     g.world.Bounds,
		Entities:   make([]EntityView, 0, g.world.EntityCount()),
	}

	if player := g.world.Player(); player != nil {
		snap.Lives = player.Lives
		snap.Health = player.Health
		snap.MaxHealth = player.MaxHealth
	}

	for _, group := range g.world.Groups() {
		group.Each(func(e *entity.Entity) {
			snap.Entities = append(snap.Entities, EntityView{
				ID:        uint32(e.ID),
				Type:      e.Type,
				X:         e.X,
				Y:         e.Y,
				W:         e.W,
				H:         e.H,
				Health:    e.Health,
				MaxHealth: e.MaxHealth,
				Kind:      e.Kind,
			})
		})
	}

	return snap
}
