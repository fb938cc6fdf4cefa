// Package terminal wraps the OS-level terminal plumbing the game
// needs: raw-mode toggling and non-blocking keyboard polling. The
// game core never touches termios or stdin directly.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// Raw holds the saved terminal state for one raw-mode session. It is
// an explicit resource: acquire with EnterRaw, release with Restore.
type Raw struct {
	fd    int
	saved *term.State
}

// EnterRaw switches f into raw mode (no line buffering, no echo, no
// signal keys) and returns a handle that restores the previous state.
func EnterRaw(f *os.File) (*Raw, error) {
	fd := int(f.Fd())
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &Raw{fd: fd, saved: saved}, nil
}

// Restore puts the terminal back into its saved state. Safe to call
// more than once; only the first call does anything.
func (r *Raw) Restore() error {
	if r == nil || r.saved == nil {
		return nil
	}
	saved := r.saved
	r.saved = nil
	return term.Restore(r.fd, saved)
}
