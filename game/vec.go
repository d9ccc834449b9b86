package game

import "math"

// Point is a 2D position or offset in scene coordinates.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) Div(s float64) Point   { return Point{p.X / s, p.Y / s} }

// Length returns sqrt(x²+y²).
func (p Point) Length() float64 { return math.Sqrt(p.X*p.X + p.Y*p.Y) }

// Normalized returns p scaled to unit length.
// p must not be the zero vector.
func (p Point) Normalized() Point { return p.Div(p.Length()) }

// Lerp returns the point t of the way from p to q (t in [0,1]).
func (p Point) Lerp(q Point, t float64) Point {
	return p.Add(q.Sub(p).Scale(t))
}

// Size is a width/height pair read from a sprite.
type Size struct {
	W, H float64
}

func (s Size) Half() Point { return Point{s.W / 2, s.H / 2} }
