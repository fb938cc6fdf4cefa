package game

import "snake/internal/terminal"

// directionFor maps a decoded terminal key to a game direction.
// Non-direction keys (including KeyNone) map to DirNone.
func directionFor(k terminal.Key) Direction {
	switch k {
	case terminal.KeyLeft:
		return DirLeft
	case terminal.KeyRight:
		return DirRight
	case terminal.KeyUp:
		return DirUp
	case terminal.KeyDown:
		return DirDown
	}
	return DirNone
}
