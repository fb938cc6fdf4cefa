package terminal

import "os"

// Key is one logical key press after escape-sequence decoding.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyInterrupt // Ctrl+C (raw mode disables ISIG, so it arrives as a byte)
)

// Poller turns the blocking stdin read into a non-blocking poll. A
// background goroutine owns the read and pushes decoded keys into a
// small buffer; Poll never waits. Keys pressed faster than the game
// loop drains them are dropped, which is fine for direction input.
type Poller struct {
	keys chan Key
}

func NewPoller(f *os.File) *Poller {
	p := &Poller{keys: make(chan Key, 8)}
	go p.readLoop(f)
	return p
}

// Poll returns the next pending key, or KeyNone immediately when there
// is none. A closed stdin reads as KeyInterrupt so the game ends.
func (p *Poller) Poll() Key {
	select {
	case k, ok := <-p.keys:
		if !ok {
			return KeyInterrupt
		}
		return k
	default:
		return KeyNone
	}
}

func (p *Poller) readLoop(f *os.File) {
	buf := make([]byte, 16)
	var pending []byte
	for {
		n, err := f.Read(buf)
		if err != nil {
			close(p.keys)
			return
		}
		pending = append(pending, buf[:n]...)
		for {
			k, rest, ok := decodeKey(pending)
			if !ok {
				break
			}
			pending = rest
			if k == KeyNone {
				continue
			}
			select {
			case p.keys <- k:
			default:
			}
		}
	}
}

// decodeKey consumes one logical key from the front of b and returns
// the remainder. ok=false means b is a prefix of a longer sequence and
// more bytes are needed. Recognized: the four arrow keys (ESC [ A-D)
// and Ctrl+C; every other byte is consumed as KeyNone.
func decodeKey(b []byte) (k Key, rest []byte, ok bool) {
	if len(b) == 0 {
		return KeyNone, b, false
	}
	switch b[0] {
	case 0x03:
		return KeyInterrupt, b[1:], true
	case 0x1b:
		if len(b) < 2 {
			return KeyNone, b, false
		}
		if b[1] != '[' {
			// Lone escape: drop it, re-decode from the next byte.
			return KeyNone, b[1:], true
		}
		if len(b) < 3 {
			return KeyNone, b, false
		}
		switch b[2] {
		case 'A':
			k = KeyUp
		case 'B':
			k = KeyDown
		case 'C':
			k = KeyRight
		case 'D':
			k = KeyLeft
		default:
			k = KeyNone
		}
		return k, b[3:], true
	default:
		return KeyNone, b[1:], true
	}
}
