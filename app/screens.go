package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"shooter/game"
)

var (
	colorBackground = color.RGBA{255, 255, 255, 255}
	colorText       = color.RGBA{0, 0, 0, 255}
)

// screen is what the app shows between transitions.
type screen interface {
	Update(dt time.Duration)
	Draw(dst *ebiten.Image)
	Close()
}

// playScreen runs one session.
type playScreen struct {
	scene   *game.Scene
	sprites *Sprites
}

func (p *playScreen) Update(dt time.Duration) {
	for _, pt := range releases() {
		p.scene.Launch(pt)
	}
	p.scene.Update(dt)
}

func (p *playScreen) Draw(dst *ebiten.Image) {
	dst.Fill(colorBackground)
	for _, e := range p.scene.Entities() {
		p.sprites.Draw(dst, e)
	}
	st := p.scene.State()
	text.Draw(dst, fmt.Sprintf("Destroyed: %d/%d", st.Destroyed, st.Threshold+1), basicfont.Face7x13, 8, 18, colorText)
}

func (p *playScreen) Close() { p.scene.Close() }

// resultsScreen shows the outcome, then asks for a new session.
type resultsScreen struct {
	outcome game.Outcome
	size    game.Size
	elapsed time.Duration
	delay   time.Duration
	done    func()
}

func resultMessage(o game.Outcome) string {
	if o == game.OutcomeWon {
		return "You Won!"
	}
	return "You Lose :["
}

func (r *resultsScreen) Update(dt time.Duration) {
	if r.done == nil {
		return
	}
	r.elapsed += dt
	if r.elapsed >= r.delay {
		done := r.done
		r.done = nil
		done()
	}
}

func (r *resultsScreen) Draw(dst *ebiten.Image) {
	dst.Fill(colorBackground)
	msg := resultMessage(r.outcome)
	b := text.BoundString(basicfont.Face7x13, msg)
	x := int(r.size.W)/2 - b.Dx()/2
	y := int(r.size.H)/2 + b.Dy()/2
	text.Draw(dst, msg, basicfont.Face7x13, x, y, colorText)
}

func (r *resultsScreen) Close() {}
