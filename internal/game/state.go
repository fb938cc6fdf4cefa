package game

// Position is a cell on the board.
type Position struct {
	X, Y int
}

func (p Position) moved(d Direction) Position {
	dx, dy := d.delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// State is the whole simulation: snake body (head first), fruit,
// heading, and the terminal game-over flag. Only Advance mutates it.
type State struct {
	Snake []Position
	Fruit Position
	Dir   Direction
	Over  bool
	W, H  int
}

// NewState builds the starting state: a length-1 snake at the board
// center, moving right, with the fruit on a random interior cell.
func NewState(w, h int, r *Rand) *State {
	s := &State{
		Snake: []Position{{X: w / 2, Y: h / 2}},
		Dir:   DirRight,
		W:     w,
		H:     h,
	}
	s.Fruit = s.interiorCell(r)
	return s
}

// interiorCell picks a uniformly random cell strictly inside the
// border ring: [1, W-2] x [1, H-2]. It does not avoid the snake body;
// the fruit may land under a segment and is then drawn over it.
func (s *State) interiorCell(r *Rand) Position {
	return Position{
		X: 1 + r.Intn(s.W-2),
		Y: 1 + r.Intn(s.H-2),
	}
}

// Head returns the first body segment.
func (s *State) Head() Position {
	return s.Snake[0]
}

// Advance runs one simulation tick. input is the direction decoded
// from the keyboard this tick, or DirNone. The steps run in a fixed
// order: apply input, grow a new head, check walls, check self, then
// either eat the fruit (keep the tail) or pop the tail.
//
// Input is applied unconditionally. There is no guard against
// reversing into the neck: with a body of length >= 2 a reversal puts
// the new head on the second segment and ends the game on this tick.
func (s *State) Advance(input Direction, r *Rand) {
	if input != DirNone {
		s.Dir = input
	}

	head := s.Head().moved(s.Dir)
	s.Snake = append(s.Snake, Position{})
	copy(s.Snake[1:], s.Snake)
	s.Snake[0] = head

	// Border ring is fatal. The tick still runs to completion so the
	// fruit/tail bookkeeping matches the pre-collision rules.
	if head.X <= 0 || head.X >= s.W-1 || head.Y <= 0 || head.Y >= s.H-1 {
		s.Over = true
	}

	for _, seg := range s.Snake[1:] {
		if seg == head {
			s.Over = true
			break
		}
	}

	if head == s.Fruit {
		// Eaten: relocate the fruit and keep the tail (net growth 1).
		s.Fruit = s.interiorCell(r)
	} else {
		s.Snake = s.Snake[:len(s.Snake)-1]
	}
}
