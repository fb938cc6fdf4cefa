package game

import "testing"

func TestNewStateCentersSnake(t *testing.T) {
	s := NewState(BoardWidth, BoardHeight, NewRand(1))
	if len(s.Snake) != 1 {
		t.Fatalf("initial length = %d, want 1", len(s.Snake))
	}
	if s.Head() != (Position{X: 10, Y: 10}) {
		t.Errorf("initial head = %v, want (10,10)", s.Head())
	}
	if s.Dir != DirRight {
		t.Errorf("initial direction = %v, want right", s.Dir)
	}
	if s.Over {
		t.Error("new game should not be over")
	}
}

func TestNewStateFruitIsInterior(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		s := NewState(BoardWidth, BoardHeight, NewRand(seed))
		f := s.Fruit
		if f.X < 1 || f.X > s.W-2 || f.Y < 1 || f.Y > s.H-2 {
			t.Fatalf("seed %d: fruit %v is outside the interior", seed, f)
		}
	}
}

func TestAdvanceMovesHeadOneCell(t *testing.T) {
	cases := []struct {
		dir  Direction
		want Position
	}{
		{DirLeft, Position{9, 10}},
		{DirRight, Position{11, 10}},
		{DirUp, Position{10, 9}},
		{DirDown, Position{10, 11}},
	}
	for _, tc := range cases {
		s := NewState(BoardWidth, BoardHeight, NewRand(1))
		s.Fruit = Position{1, 1} // keep the move away from the fruit
		s.Advance(tc.dir, NewRand(2))
		if s.Head() != tc.want {
			t.Errorf("%v: head = %v, want %v", tc.dir, s.Head(), tc.want)
		}
		if s.Over {
			t.Errorf("%v: interior move should not end the game", tc.dir)
		}
	}
}

func TestAdvanceWithoutInputKeepsDirection(t *testing.T) {
	s := NewState(BoardWidth, BoardHeight, NewRand(1))
	s.Fruit = Position{1, 1}
	s.Advance(DirNone, NewRand(2))
	if s.Head() != (Position{X: 11, Y: 10}) {
		t.Errorf("head = %v, want (11,10)", s.Head())
	}
	if s.Dir != DirRight {
		t.Errorf("direction changed to %v without input", s.Dir)
	}
	if len(s.Snake) != 1 {
		t.Errorf("length = %d, want 1 (tail popped)", len(s.Snake))
	}
}

func TestAdvanceLengthInvariantWithoutFruit(t *testing.T) {
	s := &State{
		Snake: []Position{{5, 5}, {4, 5}, {3, 5}},
		Fruit: Position{1, 1},
		Dir:   DirRight,
		W:     BoardWidth,
		H:     BoardHeight,
	}
	s.Advance(DirNone, NewRand(7))
	if len(s.Snake) != 3 {
		t.Errorf("length = %d, want 3", len(s.Snake))
	}
	want := []Position{{6, 5}, {5, 5}, {4, 5}}
	for i, p := range want {
		if s.Snake[i] != p {
			t.Errorf("segment %d = %v, want %v", i, s.Snake[i], p)
		}
	}
}

func TestAdvanceEatingGrowsByOne(t *testing.T) {
	s := NewState(BoardWidth, BoardHeight, NewRand(1))
	s.Fruit = Position{11, 10}
	s.Advance(DirNone, NewRand(3))
	if len(s.Snake) != 2 {
		t.Fatalf("length = %d after eating, want 2", len(s.Snake))
	}
	if s.Head() != (Position{X: 11, Y: 10}) {
		t.Errorf("head = %v, want the fruit cell (11,10)", s.Head())
	}
	if s.Over {
		t.Error("eating should not end the game")
	}
}

func TestFruitRelocatesToInterior(t *testing.T) {
	for seed := uint64(1); seed <= 200; seed++ {
		s := NewState(BoardWidth, BoardHeight, NewRand(1))
		s.Fruit = Position{11, 10}
		s.Advance(DirNone, NewRand(seed))
		f := s.Fruit
		if f.X < 1 || f.X > s.W-2 || f.Y < 1 || f.Y > s.H-2 {
			t.Fatalf("seed %d: relocated fruit %v is outside the interior", seed, f)
		}
	}
}

func TestWallCollisionEachWall(t *testing.T) {
	cases := []struct {
		name string
		head Position
		dir  Direction
	}{
		{"left", Position{1, 10}, DirLeft},
		{"right", Position{18, 10}, DirRight},
		{"top", Position{10, 1}, DirUp},
		{"bottom", Position{10, 18}, DirDown},
	}
	for _, tc := range cases {
		s := &State{
			Snake: []Position{tc.head},
			Fruit: Position{5, 5},
			Dir:   tc.dir,
			W:     BoardWidth,
			H:     BoardHeight,
		}
		s.Advance(DirNone, NewRand(1))
		if !s.Over {
			t.Errorf("%s wall: game not over after hitting the border", tc.name)
		}
	}
}

func TestSelfCollision(t *testing.T) {
	// Head at (5,5) with the body hooked so moving down lands on a
	// segment at index >= 1.
	s := &State{
		Snake: []Position{{5, 5}, {4, 5}, {4, 6}, {5, 6}, {6, 6}},
		Fruit: Position{1, 1},
		Dir:   DirDown,
		W:     BoardWidth,
		H:     BoardHeight,
	}
	s.Advance(DirNone, NewRand(1))
	if !s.Over {
		t.Error("game not over after moving onto own body")
	}
}

func TestReversalIntoNeckIsFatal(t *testing.T) {
	// No reversal guard: turning straight back puts the head on the
	// second segment and ends the game on the same tick.
	s := &State{
		Snake: []Position{{5, 5}, {4, 5}, {3, 5}},
		Fruit: Position{1, 1},
		Dir:   DirRight,
		W:     BoardWidth,
		H:     BoardHeight,
	}
	s.Advance(DirLeft, NewRand(1))
	if s.Head() != (Position{X: 4, Y: 5}) {
		t.Fatalf("head = %v, want (4,5)", s.Head())
	}
	if !s.Over {
		t.Error("reversal into the neck should be a self-collision")
	}
}

func TestRunToRightWall(t *testing.T) {
	s := NewState(BoardWidth, BoardHeight, NewRand(1))
	s.Fruit = Position{1, 1}
	r := NewRand(2)

	ticks := 0
	for !s.Over {
		s.Advance(DirNone, r)
		ticks++
		if ticks > 100 {
			t.Fatal("snake never reached the wall")
		}
	}
	// From x=10, x=19 is the border: 9 moves.
	if ticks != 9 {
		t.Errorf("game over after %d ticks, want 9", ticks)
	}
	if s.Head() != (Position{X: 19, Y: 10}) {
		t.Errorf("final head = %v, want (19,10)", s.Head())
	}
}
