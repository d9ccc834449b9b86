package app

import (
	"bytes"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

// decoders by file extension, tried in this order
var decoders = []struct {
	ext    string
	decode func(io.Reader) (io.Reader, error)
}{
	{".wav", func(r io.Reader) (io.Reader, error) { return wav.DecodeWithoutResampling(r) }},
	{".ogg", func(r io.Reader) (io.Reader, error) { return vorbis.DecodeWithoutResampling(r) }},
	{".mp3", func(r io.Reader) (io.Reader, error) { return mp3.DecodeWithoutResampling(r) }},
}

// Sounds plays the shot and hit cues. A zero Sounds is silent.
type Sounds struct {
	ctx  *audio.Context
	shot *audio.Player
	hit  *audio.Player
}

// LoadSounds loads <dir>/shoot.* and <dir>/hit.*, falling back to short
// beeps when a file is missing.
func LoadSounds(dir string, mute bool) *Sounds {
	if mute {
		return &Sounds{}
	}
	s := &Sounds{ctx: audio.NewContext(sampleRate)}

	if p, err := loadSound(s.ctx, filepath.Join(dir, "shoot")); err == nil {
		s.shot = p
	} else {
		slog.Info("no shot sound; using beep", "err", err)
		s.shot = newBeep(s.ctx, 950, 0.07)
	}
	if p, err := loadSound(s.ctx, filepath.Join(dir, "hit")); err == nil {
		s.hit = p
	} else {
		slog.Info("no hit sound; using beep", "err", err)
		s.hit = newBeep(s.ctx, 240, 0.12)
	}
	return s
}

func loadSound(ctx *audio.Context, base string) (*audio.Player, error) {
	var lastErr error
	for _, d := range decoders {
		b, err := os.ReadFile(base + d.ext)
		if err != nil {
			lastErr = err
			continue
		}
		stream, err := d.decode(bytes.NewReader(b))
		if err != nil {
			return nil, err
		}
		return audio.NewPlayer(ctx, stream)
	}
	return nil, lastErr
}

// beepPCM synthesizes a sine tone as 16-bit little-endian stereo.
func beepPCM(freq, durSec float64) []byte {
	n := int(sampleRate * durSec)
	pcm := make([]byte, n*4)
	amp := 0.35
	for i := 0; i < n; i++ {
		v := math.Sin(2 * math.Pi * freq * float64(i) / sampleRate)
		// fade out to avoid a click at the end
		v *= 1 - float64(i)/float64(n)
		smp := int16(v * amp * 32767)
		lo, hi := byte(smp), byte(smp>>8)
		pcm[4*i], pcm[4*i+1] = lo, hi
		pcm[4*i+2], pcm[4*i+3] = lo, hi
	}
	return pcm
}

func newBeep(ctx *audio.Context, freq, durSec float64) *audio.Player {
	return audio.NewPlayerFromBytes(ctx, beepPCM(freq, durSec))
}

func (s *Sounds) play(p *audio.Player) {
	if p == nil {
		return
	}
	_ = p.Rewind()
	p.Play()
}

// Shot implements game.Effects.
func (s *Sounds) Shot() { s.play(s.shot) }

// Hit implements game.Effects.
func (s *Sounds) Hit() { s.play(s.hit) }
