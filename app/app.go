package app

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"shooter/game"
)

// App is the ebiten host: it owns the window-facing side (sprites, input,
// sound, scene changes) and drives the current session once per tick.
type App struct {
	cfg     game.Config
	sprites *Sprites
	sounds  *Sounds
	rnd     *game.Random

	current screen
	flip    *flip
}

func New(cfg game.Config) *App {
	a := &App{
		cfg:     cfg,
		sprites: LoadSprites(cfg.AssetDir),
		sounds:  LoadSounds(cfg.AssetDir, cfg.Mute),
		rnd:     game.NewRandom(cfg.Seed),
	}
	a.current = a.newPlay()
	return a
}

func (a *App) newPlay() *playScreen {
	scene := game.NewScene(game.Options{
		Config:       a.cfg,
		Sprites:      a.sprites,
		Transitioner: a,
		Effects:      a.sounds,
		Random:       a.rnd,
	})
	return &playScreen{scene: scene, sprites: a.sprites}
}

// RequestTransition implements game.Transitioner. Requests that arrive
// while a flip is running are dropped.
func (a *App) RequestTransition(req game.TransitionRequest) {
	slog.Info("presenting results", "outcome", req.Outcome)
	a.present(&resultsScreen{
		outcome: req.Outcome,
		size:    req.Size,
		delay:   a.cfg.ResultsDelay.Duration,
		done:    func() { a.present(a.newPlay()) },
	})
}

func (a *App) present(next screen) {
	if a.flip != nil {
		slog.Debug("transition already in flight; ignoring")
		next.Close()
		return
	}
	a.flip = newFlip(a.current, next, a.cfg.TransitionDuration.Duration, int(a.cfg.Width), int(a.cfg.Height))
}

func (a *App) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())
	if a.flip != nil {
		if a.flip.advance(dt) {
			a.current.Close()
			a.current = a.flip.to
			a.flip = nil
		}
		return nil
	}
	a.current.Update(dt)
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.flip != nil {
		a.flip.Draw(screen)
		return
	}
	a.current.Draw(screen)
}

func (a *App) Layout(_, _ int) (int, int) { return int(a.cfg.Width), int(a.cfg.Height) }
