package game

import (
	"io"
	"math"
	"time"

	"github.com/hajimehoshi/oto/v2"
)

const (
	sampleRate   = 44100
	channelCount = 2
	bitDepth     = 0 // 32-bit float (oto.FormatFloat32LE)

	sfxVolume = 0.8
)

// SoundKind identifies the game's sound effects.
type SoundKind int

const (
	SoundEat SoundKind = iota
	SoundGameOver
)

// AudioSystem holds the oto context. Sounds are synthesized on demand
// and played on throwaway players; there is no asset loading.
type AudioSystem struct {
	ctx   *oto.Context
	ready chan struct{}
}

var globalAudio *AudioSystem

// InitAudio initializes the audio system. The game runs fine without
// sound; callers treat an error here as non-fatal.
func InitAudio() error {
	ctx, ready, err := oto.NewContext(sampleRate, channelCount, bitDepth)
	if err != nil {
		return err
	}
	globalAudio = &AudioSystem{ctx: ctx, ready: ready}
	return nil
}

// PlaySound plays a procedurally generated sound effect. No-op when
// audio is uninitialized or the context is not ready yet.
func PlaySound(kind SoundKind) {
	if globalAudio == nil {
		return
	}
	select {
	case <-globalAudio.ready:
	default:
		return
	}
	samples := generateSound(kind)
	if len(samples) == 0 {
		return
	}
	go func() {
		player := globalAudio.ctx.NewPlayer(&soundReader{data: samples})
		player.SetVolume(sfxVolume)
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}

func generateSound(kind SoundKind) []byte {
	switch kind {
	case SoundEat:
		return genEat()
	case SoundGameOver:
		return genGameOver()
	}
	return nil
}

// genEat is a short upward chirp.
func genEat() []byte {
	n := int(0.08 * sampleRate)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.02, 0.4, 0.0, 0.15)
		freq := 520 + 640*p
		s := fm(t, freq, 2.0, 2.8*env) * env * 0.45
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genGameOver is three falling notes, each slightly detuned downward
// as it decays.
func genGameOver() []byte {
	dur := 0.7
	n := int(dur * sampleRate)
	notes := []struct{ freq, onset float64 }{
		{293.66, 0.00}, // D4
		{220.00, 0.16}, // A3
		{174.61, 0.32}, // F3
	}
	mix := make([]float64, n)
	for _, note := range notes {
		start := int(note.onset * sampleRate)
		for i := start; i < n; i++ {
			t := float64(i) / sampleRate
			np := float64(i-start) / float64(n-start)
			env := adsr(np, 0.01, 0.3, 0.25, 0.4)
			freq := note.freq * (1 - np*0.02)
			s := fm(t, freq, 2.0, 1.8*env) * env * 0.3
			s += math.Sin(2*math.Pi*freq*0.5*t) * env * 0.08
			mix[i] += s
		}
	}
	buf := makeBuf(n)
	for i, s := range mix {
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// ---- Synthesis helpers ---------------------------------------------------

func makeBuf(n int) []byte { return make([]byte, n*8) }

func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/x
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}
