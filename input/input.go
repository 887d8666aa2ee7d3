// Package input translates raw terminal events into the logical input
// events the simulation consumes. Key mapping lives here; the core never
// sees tcell types.
package input

// Kind is a logical input event kind
type Kind uint8

const (
	KindNone Kind = iota
	KindMove
	KindFire
	KindPause
	KindLaunchMissile
	KindChangeLanguage
	KindConfirm
	KindQuit
)

// Direction for KindMove events
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Event is one logical input occurrence
type Event struct {
	Kind Kind
	Dir  Direction
}

// Vector returns the unit direction for a move event
func (d Direction) Vector() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}
