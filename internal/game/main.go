package game

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake/internal/terminal"
)

// clearScreen homes the cursor and clears the display before each
// frame. Display-layer concern; the frame itself is plain text.
const clearScreen = "\033[H\033[2J"

// Run drives the whole game: terminal setup, the fixed-tick loop, and
// teardown. It returns once the game is over or input is interrupted,
// with the terminal restored on every exit path.
func Run() error {
	tty, err := terminal.EnterRaw(os.Stdin)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	defer tty.Restore()

	// Raw mode survives an outside kill unless we restore explicitly.
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM)
	go func() {
		<-sigc
		tty.Restore()
		os.Exit(1)
	}()
	defer signal.Stop(sigc)

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	bus := NewEventBus()
	bus.Subscribe(EventFruitEaten, func(Event) { PlaySound(SoundEat) })
	bus.Subscribe(EventGameOver, func(Event) { PlaySound(SoundGameOver) })

	r := NewRand(uint64(time.Now().UnixNano()))
	state := NewState(BoardWidth, BoardHeight, r)

	keys := terminal.NewPoller(os.Stdin)
	out := bufio.NewWriter(os.Stdout)

	for !state.Over {
		out.WriteString(clearScreen)
		out.WriteString(Render(state))
		if err := out.Flush(); err != nil {
			return fmt.Errorf("write frame: %w", err)
		}

		key := keys.Poll()
		if key == terminal.KeyInterrupt {
			return nil
		}

		prevLen := len(state.Snake)
		state.Advance(directionFor(key), r)
		if len(state.Snake) > prevLen {
			bus.Emit(Event{Type: EventFruitEaten, Pos: state.Head()})
		}
		if state.Over {
			bus.Emit(Event{Type: EventGameOver, Pos: state.Head()})
		}

		time.Sleep(TickInterval)
	}

	tty.Restore()
	fmt.Println("Game Over!")
	return nil
}
