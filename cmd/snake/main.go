package main

import (
	"fmt"
	"os"

	"snake/internal/game"
)

func main() {
	if err := game.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
