package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"shooter/game"
)

// releases returns the points where a click or touch ended this tick.
func releases() []game.Point {
	var pts []game.Point
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		pts = append(pts, game.Point{X: float64(x), Y: float64(y)})
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		pts = append(pts, game.Point{X: float64(x), Y: float64(y)})
	}
	return pts
}
