package system

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/nova-strike/entity"
	"github.com/lixenwraith/nova-strike/parameter"
)

// Physics integrates motion and applies the per-type boundary policy.
// It runs first each tick so collision checks see post-move positions.
// Position and velocity are the only entity fields it mutates, plus
// removal of entities that left the field.
type Physics struct {
	log *zap.Logger
}

// NewPhysics creates the physics system
func NewPhysics(log *zap.Logger) *Physics {
	return &Physics{log: log}
}

func (p *Physics) Name() string  { return "physics" }
func (p *Physics) Priority() int { return parameter.PriorityPhysics }

// Integrate advances every mobile entity by velocity × dt. Missiles
// re-aim at their target first, bounded by the turn rate.
func (p *Physics) Integrate(w *entity.World, dt time.Duration) {
	sec := dt.Seconds()
	if sec <= 0 {
		return
	}

	p.steerMissiles(w, sec)

	for _, g := range w.Groups() {
		g.Each(func(e *entity.Entity) {
			e.X += e.VX * sec
			e.Y += e.VY * sec
		})
	}

	// Player input sets velocity; damping brings it back to rest so a
	// single move event nudges rather than commits to a direction
	if pl := w.Player(); pl != nil {
		pl.VX *= parameter.PlayerDamping
		pl.VY *= parameter.PlayerDamping
	}
}

// steerMissiles rotates each tracking missile's velocity toward its
// target, capped at MissileTurnRate. A missile whose target is gone
// flies on straight.
func (p *Physics) steerMissiles(w *entity.World, sec float64) {
	w.Missiles.Each(func(m *entity.Entity) {
		if m.TargetID == 0 {
			return
		}
		target, ok := w.Enemies.Get(m.TargetID)
		if !ok {
			target, ok = w.Bosses.Get(m.TargetID)
		}
		if !ok {
			m.TargetID = 0
			return
		}

		current := math.Atan2(m.VY, m.VX)
		desired := math.Atan2(target.Y-m.Y, target.X-m.X)
		delta := normalizeAngle(desired - current)

		maxTurn := parameter.MissileTurnRate * sec
		if delta > maxTurn {
			delta = maxTurn
		} else if delta < -maxTurn {
			delta = -maxTurn
		}

		heading := current + delta
		m.VX = math.Cos(heading) * parameter.MissileSpeed
		m.VY = math.Sin(heading) * parameter.MissileSpeed
	})
}

// ApplyBoundaryPolicy enforces the per-type edge rules: the player
// clamps, the boss bounces off the side walls, everything else that
// leaves its exit edge is removed before the tick ends.
func (p *Physics) ApplyBoundaryPolicy(w *entity.World) {
	b := w.Bounds

	if pl := w.Player(); pl != nil {
		pl.X = clamp(pl.X, pl.W/2, b.Width-pl.W/2)
		pl.Y = clamp(pl.Y, pl.H/2, b.Height-pl.H/2)
	}

	w.Bosses.Each(func(e *entity.Entity) {
		if e.X-e.W/2 < 0 {
			e.X = e.W / 2
			e.VX = math.Abs(e.VX)
		} else if e.X+e.W/2 > b.Width {
			e.X = b.Width - e.W/2
			e.VX = -math.Abs(e.VX)
		}
	})

	removeWhere(w.PlayerBullets, func(e *entity.Entity) bool {
		return e.Y+e.H/2 < 0
	})
	removeWhere(w.EnemyBullets, func(e *entity.Entity) bool {
		return outOfField(e, b)
	})
	removeWhere(w.Enemies, func(e *entity.Entity) bool {
		return e.Y-e.H/2 > b.Height
	})
	removeWhere(w.Items, func(e *entity.Entity) bool {
		return e.Y-e.H/2 > b.Height
	})
	removeWhere(w.Missiles, func(e *entity.Entity) bool {
		return outOfField(e, b)
	})
}

// removeWhere swap-removes matching entities in one pass. The index only
// advances past survivors because removal fills the slot from the tail.
func removeWhere(g *entity.Group, match func(*entity.Entity) bool) {
	i := 0
	for i < g.Len() {
		e := g.At(i)
		if match(e) {
			g.Remove(e.ID)
			continue
		}
		i++
	}
}

func outOfField(e *entity.Entity, b entity.Bounds) bool {
	return e.X+e.W/2 < 0 || e.X-e.W/2 > b.Width ||
		e.Y+e.H/2 < 0 || e.Y-e.H/2 > b.Height
}

func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
