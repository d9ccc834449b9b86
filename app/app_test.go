package app

import (
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"shooter/game"
)

func TestFlipScale(t *testing.T) {
	tests := []struct {
		p        float64
		sx       float64
		incoming bool
	}{
		{0, 1, false},
		{0.25, math.Cos(math.Pi / 4), false},
		{0.5, 0, true},
		{0.75, math.Cos(math.Pi / 4), true},
		{1, 1, true},
		{2, 1, true},
		{-1, 1, false},
	}
	for _, tt := range tests {
		sx, incoming := flipScale(tt.p)
		if math.Abs(sx-tt.sx) > 1e-9 || incoming != tt.incoming {
			t.Errorf("flipScale(%v) = (%v, %v), want (%v, %v)", tt.p, sx, incoming, tt.sx, tt.incoming)
		}
	}
}

func TestBeepPCM(t *testing.T) {
	pcm := beepPCM(440, 0.1)
	if got, want := len(pcm), int(sampleRate*0.1)*4; got != want {
		t.Fatalf("len = %d, want %d", got, want)
	}
	// left and right carry the same sample
	for i := 0; i < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("frame %d: channels differ", i/4)
		}
	}
}

func TestResultMessage(t *testing.T) {
	if got := resultMessage(game.OutcomeWon); got != "You Won!" {
		t.Errorf("won message = %q", got)
	}
	if got := resultMessage(game.OutcomeLost); got != "You Lose :[" {
		t.Errorf("lost message = %q", got)
	}
}

func TestResultsScreen_FiresOnce(t *testing.T) {
	n := 0
	r := &resultsScreen{delay: 3 * time.Second, done: func() { n++ }}

	r.Update(2 * time.Second)
	if n != 0 {
		t.Fatalf("done fired after 2s")
	}
	r.Update(time.Second)
	r.Update(time.Second)
	if n != 1 {
		t.Errorf("done fired %d times, want 1", n)
	}
}

func TestSprites_SizeFallback(t *testing.T) {
	s := &Sprites{images: map[string]*ebiten.Image{}, fallback: game.DefaultSprites()}
	if got, want := s.Size(game.SpriteStar), game.DefaultSprites()[game.SpriteStar]; got != want {
		t.Errorf("Size(Star) = %v, want %v", got, want)
	}
	var _ game.Sprites = s
	var _ game.Effects = &Sounds{}
	var _ game.Transitioner = &App{}
}

func TestSounds_ZeroIsSilent(t *testing.T) {
	s := &Sounds{}
	s.Shot()
	s.Hit()
}
