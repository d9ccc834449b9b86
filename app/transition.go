package app

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// flip swaps two screens with a horizontal flip: the old screen folds to a
// vertical line, then the new one unfolds from it.
type flip struct {
	from, to screen
	elapsed  time.Duration
	duration time.Duration
	buf      *ebiten.Image
}

func newFlip(from, to screen, d time.Duration, w, h int) *flip {
	return &flip{
		from:     from,
		to:       to,
		duration: d,
		buf:      ebiten.NewImage(w, h),
	}
}

// flipScale returns the horizontal scale at progress p in [0,1] and whether
// the incoming screen is the one showing.
func flipScale(p float64) (float64, bool) {
	p = math.Max(0, math.Min(1, p))
	sx := math.Abs(math.Cos(p * math.Pi))
	return sx, p >= 0.5
}

// advance reports whether the flip has finished.
func (f *flip) advance(dt time.Duration) bool {
	f.elapsed += dt
	return f.elapsed >= f.duration
}

func (f *flip) progress() float64 {
	if f.duration <= 0 {
		return 1
	}
	return float64(f.elapsed) / float64(f.duration)
}

func (f *flip) Draw(dst *ebiten.Image) {
	sx, incoming := flipScale(f.progress())
	src := f.from
	if incoming {
		src = f.to
	}
	f.buf.Clear()
	src.Draw(f.buf)

	w := float64(f.buf.Bounds().Dx())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, 0)
	op.GeoM.Scale(sx, 1)
	op.GeoM.Translate(w/2, 0)
	dst.Fill(colorText)
	dst.DrawImage(f.buf, op)
}
