package input

import "github.com/gdamore/tcell/v2"

// Translate maps a terminal event to a logical input event. The second
// return is false for events the simulation has no use for (mouse,
// resize handled elsewhere, unbound keys).
func Translate(ev tcell.Event) (Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return Event{}, false
	}

	switch key.Key() {
	case tcell.KeyUp:
		return Event{Kind: KindMove, Dir: DirUp}, true
	case tcell.KeyDown:
		return Event{Kind: KindMove, Dir: DirDown}, true
	case tcell.KeyLeft:
		return Event{Kind: KindMove, Dir: DirLeft}, true
	case tcell.KeyRight:
		return Event{Kind: KindMove, Dir: DirRight}, true
	case tcell.KeyEnter:
		return Event{Kind: KindConfirm}, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Event{Kind: KindQuit}, true
	case tcell.KeyF2:
		return Event{Kind: KindChangeLanguage}, true
	}

	if key.Key() != tcell.KeyRune {
		return Event{}, false
	}

	switch key.Rune() {
	case 'k', 'K':
		return Event{Kind: KindMove, Dir: DirUp}, true
	case 'j', 'J':
		return Event{Kind: KindMove, Dir: DirDown}, true
	case 'h', 'H':
		return Event{Kind: KindMove, Dir: DirLeft}, true
	case 'l', 'L':
		return Event{Kind: KindMove, Dir: DirRight}, true
	case ' ':
		return Event{Kind: KindFire}, true
	case 'm', 'M':
		return Event{Kind: KindLaunchMissile}, true
	case 'p', 'P':
		return Event{Kind: KindPause}, true
	case 'q', 'Q':
		return Event{Kind: KindQuit}, true
	}

	return Event{}, false
}
