// Package render draws world snapshots to the terminal. It is a pure
// consumer: it reads the per-tick Snapshot and the metrics registry and
// never touches live simulation state.
package render

import (
	"fmt"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/nova-strike/engine"
	"github.com/lixenwraith/nova-strike/entity"
	"github.com/lixenwraith/nova-strike/status"
)

// fieldTop reserves the HUD row above the playfield
const fieldTop = 1

var (
	styleDefault = tcell.StyleDefault
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorLightCyan)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBoss    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBullet  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleMissile = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	styleItem    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleOverlay = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Renderer owns the tcell screen for output
type Renderer struct {
	screen  tcell.Screen
	metrics *status.Registry
	debug   bool
}

// New creates a renderer on an initialized screen
func New(screen tcell.Screen, metrics *status.Registry, debug bool) *Renderer {
	return &Renderer{screen: screen, metrics: metrics, debug: debug}
}

// Draw renders one snapshot
func (r *Renderer) Draw(snap engine.Snapshot) {
	r.screen.Clear()

	switch snap.State {
	case engine.StateMenu:
		r.drawMenu(snap)
	case engine.StateGameOver:
		r.drawField(snap)
		r.drawCentered(snap, label(snap.Language, "game_over"))
	case engine.StateVictory:
		r.drawField(snap)
		r.drawCentered(snap, label(snap.Language, "victory"))
	default:
		r.drawField(snap)
		if snap.Paused {
			r.drawCentered(snap, label(snap.Language, "paused"))
		}
		if snap.State == engine.StateLevelTransition {
			r.drawCentered(snap, fmt.Sprintf("%s %d", label(snap.Language, "level"), snap.Level))
		}
	}

	if r.debug {
		r.drawMetrics(snap)
	}
	r.screen.Show()
}

func (r *Renderer) drawMenu(snap engine.Snapshot) {
	r.drawCentered(snap, label(snap.Language, "title"))
	r.printAt(2, int(snap.Bounds.Height)/2+2, styleDim, label(snap.Language, "menu_hint"))
}

func (r *Renderer) drawField(snap engine.Snapshot) {
	r.drawHUD(snap)
	for _, e := range snap.Entities {
		r.drawEntity(e)
	}
}

func (r *Renderer) drawEntity(e engine.EntityView) {
	cx := int(e.X)
	cy := int(e.Y) + fieldTop
	glyph, style := appearance(e)

	// Wide entities repeat their glyph across the box width
	half := int(e.W) / 2
	for x := cx - half; x <= cx+half; x++ {
		r.screen.SetContent(x, cy, glyph, nil, style)
	}
}

func appearance(e engine.EntityView) (rune, tcell.Style) {
	switch e.Type {
	case entity.TypePlayer:
		return '▲', stylePlayer
	case entity.TypeEnemy:
		return '▼', styleEnemy
	case entity.TypeBoss:
		return '█', styleBoss
	case entity.TypePlayerBullet:
		return '|', styleBullet
	case entity.TypeEnemyBullet:
		return '·', styleEnemy
	case entity.TypeMissile:
		return '↑', styleMissile
	case entity.TypeItem:
		switch e.Kind {
		case entity.ItemHeal:
			return '+', styleItem
		case entity.ItemExtraLife:
			return '♥', styleItem
		default:
			return '$', styleItem
		}
	}
	return '?', styleDefault
}

func (r *Renderer) drawHUD(snap engine.Snapshot) {
	hud := fmt.Sprintf("%s %08d  %s %d  %s %d  %s %d/%d  %s",
		label(snap.Language, "score"), snap.Score,
		label(snap.Language, "level"), snap.Level,
		label(snap.Language, "lives"), snap.Lives,
		label(snap.Language, "health"), snap.Health, snap.MaxHealth,
		snap.GameTime.Truncate(1e8).String())
	r.printAt(0, 0, styleOverlay, hud)
}

func (r *Renderer) drawCentered(snap engine.Snapshot, text string) {
	x := (int(snap.Bounds.Width) - len([]rune(text))) / 2
	y := int(snap.Bounds.Height) / 2
	r.printAt(x, y, styleOverlay, text)
}

// drawMetrics prints the registry below the field, one key=value column
func (r *Renderer) drawMetrics(snap engine.Snapshot) {
	row := int(snap.Bounds.Height) + fieldTop
	col := 0
	r.metrics.Ints.Range(func(key string, ptr *atomic.Int64) {
		cell := fmt.Sprintf("%s=%d ", key, ptr.Load())
		r.printAt(col, row, styleDim, cell)
		col += len(cell)
	})
}

func (r *Renderer) printAt(x, y int, style tcell.Style, text string) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
