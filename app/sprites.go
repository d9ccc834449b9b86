package app

import (
	"image/color"
	_ "image/jpeg" // let ebiten load .jpg sprites
	_ "image/png"  // let ebiten load .png sprites
	"log/slog"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"shooter/game"
)

var spriteNames = []string{
	game.SpriteShooter,
	game.SpritePoly,
	game.SpriteSquare,
	game.SpriteTri,
	game.SpriteStar,
}

// placeholder colours when an image is missing
var spriteColors = map[string]color.RGBA{
	game.SpriteShooter: {40, 40, 60, 255},
	game.SpritePoly:    {60, 140, 220, 255},
	game.SpriteSquare:  {220, 60, 60, 255},
	game.SpriteTri:     {60, 180, 90, 255},
	game.SpriteStar:    {240, 200, 40, 255},
}

// Sprites holds the loaded artwork and answers size queries for the scene.
type Sprites struct {
	images   map[string]*ebiten.Image
	fallback game.StaticSprites
}

// LoadSprites tries <dir>/<Name>.png then .jpg for every sprite; missing
// ones are drawn as flat shapes.
func LoadSprites(dir string) *Sprites {
	s := &Sprites{
		images:   make(map[string]*ebiten.Image),
		fallback: game.DefaultSprites(),
	}
	for _, name := range spriteNames {
		for _, ext := range []string{".png", ".jpg"} {
			path := filepath.Join(dir, name+ext)
			if img, _, err := ebitenutil.NewImageFromFile(path); err == nil {
				s.images[name] = img
				break
			}
		}
		if s.images[name] == nil {
			slog.Info("no sprite image found; using placeholder", "sprite", name, "dir", dir)
		}
	}
	return s
}

// Size implements game.Sprites.
func (s *Sprites) Size(name string) game.Size {
	if img, ok := s.images[name]; ok {
		b := img.Bounds()
		return game.Size{W: float64(b.Dx()), H: float64(b.Dy())}
	}
	return s.fallback.Size(name)
}

func (s *Sprites) Draw(dst *ebiten.Image, e *game.Entity) {
	tl := e.TopLeft()
	if img, ok := s.images[e.Name]; ok {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(tl.X, tl.Y)
		dst.DrawImage(img, op)
		return
	}

	col := spriteColors[e.Name]
	x, y := float32(tl.X), float32(tl.Y)
	w, h := float32(e.Size.W), float32(e.Size.H)
	switch e.Name {
	case game.SpritePoly, game.SpriteStar:
		vector.DrawFilledCircle(dst, x+w/2, y+h/2, min(w, h)/2, col, true)
	case game.SpriteTri:
		vector.StrokeLine(dst, x, y+h, x+w/2, y, 3, col, true)
		vector.StrokeLine(dst, x+w/2, y, x+w, y+h, 3, col, true)
		vector.StrokeLine(dst, x+w, y+h, x, y+h, 3, col, true)
	default:
		vector.DrawFilledRect(dst, x, y, w, h, col, false)
	}
}
