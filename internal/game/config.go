package game

import "time"

// Board dimensions (in cells, border ring included).
const (
	BoardWidth  = 20
	BoardHeight = 20
)

// TickInterval is the fixed delay between simulation steps.
const TickInterval = 100 * time.Millisecond

// Glyphs used by the renderer.
const (
	GlyphBorder = '#'
	GlyphFruit  = 'F'
	GlyphBody   = 'O'
	GlyphBlank  = ' '
)

// Instructions is the static line appended below the board.
const Instructions = "Use arrow keys to move. Ctrl+C to quit."
