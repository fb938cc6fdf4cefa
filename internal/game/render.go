package game

import "strings"

// Render produces one text frame: H rows of W glyphs, newline
// terminated, followed by the instruction line. Pure function, no
// escape codes; positioning and clearing belong to the driver.
//
// Cell priority: border, then fruit, then body, then blank. Fruit wins
// over body so a fruit relocated under the snake stays visible.
func Render(s *State) string {
	var b strings.Builder
	b.Grow((s.W+1)*s.H + len(Instructions) + 1)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			b.WriteByte(glyphAt(s, x, y))
		}
		b.WriteByte('\n')
	}
	b.WriteString(Instructions)
	b.WriteByte('\n')
	return b.String()
}

func glyphAt(s *State, x, y int) byte {
	if x == 0 || x == s.W-1 || y == 0 || y == s.H-1 {
		return GlyphBorder
	}
	if x == s.Fruit.X && y == s.Fruit.Y {
		return GlyphFruit
	}
	for _, seg := range s.Snake {
		if seg.X == x && seg.Y == y {
			return GlyphBody
		}
	}
	return GlyphBlank
}
