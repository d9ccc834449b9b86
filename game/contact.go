package game

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"
)

// shapes are offset by this much so the whole flight path of a bullet
// stays inside the resolv space
const spaceMargin = 1024

// resolv grid cell size
const cellSize = 32

// one resolv tag per category bit
var categoryTags = map[Category]resolv.Tags{
	CategoryTarget: resolv.NewTag("target"),
	CategoryBullet: resolv.NewTag("bullet"),
}

// Contact is a contact-begin between two entities.
type Contact struct {
	A, B *Entity
}

type contactPair struct {
	lo, hi EntityID
}

func pairOf(a, b *Entity) contactPair {
	if a.ID < b.ID {
		return contactPair{a.ID, b.ID}
	}
	return contactPair{b.ID, a.ID}
}

// ContactDetector reports overlaps between registered entities whose
// category and contact masks match. It only reports the frame an overlap
// begins; there is no collision response.
type ContactDetector struct {
	space    *resolv.Space
	shapes   map[*Entity]resolv.IShape
	owners   map[resolv.IShape]*Entity
	touching map[contactPair]bool
}

func NewContactDetector(size Size) *ContactDetector {
	w := int(math.Ceil(size.W)) + 2*spaceMargin
	h := int(math.Ceil(size.H)) + 2*spaceMargin
	return &ContactDetector{
		space:    resolv.NewSpace(w, h, cellSize, cellSize),
		shapes:   make(map[*Entity]resolv.IShape),
		owners:   make(map[resolv.IShape]*Entity),
		touching: make(map[contactPair]bool),
	}
}

// Add registers e's bounding box. Entities with no category are ignored.
func (d *ContactDetector) Add(e *Entity) {
	if e.Category == CategoryNone {
		return
	}
	if _, ok := d.shapes[e]; ok {
		return
	}
	tl := e.TopLeft()
	sh := resolv.NewRectangleFromTopLeft(tl.X+spaceMargin, tl.Y+spaceMargin, e.Size.W, e.Size.H)
	for c, tag := range categoryTags {
		if e.Category&c != 0 {
			sh.Tags().Set(tag)
		}
	}
	d.space.Add(sh)
	d.shapes[e] = sh
	d.owners[sh] = e
	e.prev = e.Pos
}

// Remove unregisters e. Removing an unknown entity is a no-op.
func (d *ContactDetector) Remove(e *Entity) {
	sh, ok := d.shapes[e]
	if !ok {
		return
	}
	d.space.Remove(sh)
	delete(d.shapes, e)
	delete(d.owners, sh)
}

// Len is the number of registered shapes.
func (d *ContactDetector) Len() int { return len(d.shapes) }

func (d *ContactDetector) place(e *Entity, p Point) {
	tl := p.Sub(e.Size.Half())
	d.shapes[e].SetPosition(tl.X+spaceMargin, tl.Y+spaceMargin)
}

// sweep returns the positions a body is tested at this frame. Precise
// bodies are sub-stepped from their previous position so that no step is
// longer than half their smallest side.
func sweep(e *Entity) []Point {
	if !e.Precise {
		return []Point{e.Pos}
	}
	step := math.Min(e.Size.W, e.Size.H) / 2
	dist := e.Pos.Sub(e.prev).Length()
	if step <= 0 || dist <= step {
		return []Point{e.Pos}
	}
	n := int(math.Ceil(dist / step))
	pts := make([]Point, 0, n)
	for i := 1; i <= n; i++ {
		pts = append(pts, e.prev.Lerp(e.Pos, float64(i)/float64(n)))
	}
	return pts
}

// Step syncs every shape to its entity and returns the contacts that began
// since the last Step, ordered by entity id.
func (d *ContactDetector) Step() []Contact {
	order := make([]*Entity, 0, len(d.shapes))
	for e := range d.shapes {
		if !e.Active {
			continue
		}
		order = append(order, e)
		d.place(e, e.Pos)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].ID < order[j].ID })

	now := make(map[contactPair]bool)
	var began []Contact
	for _, e := range order {
		if e.ContactMask == CategoryNone {
			continue
		}
		sh := d.shapes[e]
		for _, p := range sweep(e) {
			d.place(e, p)
			for c, tag := range categoryTags {
				if e.ContactMask&c == 0 {
					continue
				}
				sh.IntersectionTest(resolv.IntersectionTestSettings{
					TestAgainst: sh.SelectTouchingCells(0).FilterShapes().ByTags(tag),
					OnIntersect: func(set resolv.IntersectionSet) bool {
						other, ok := d.owners[set.OtherShape]
						if !ok || other == e || !other.Active || !Contacts(e, other) {
							return true
						}
						key := pairOf(e, other)
						if now[key] {
							return true
						}
						now[key] = true
						if !d.touching[key] {
							began = append(began, Contact{A: e, B: other})
						}
						return true
					},
				})
			}
		}
		d.place(e, e.Pos)
	}

	for _, e := range order {
		e.prev = e.Pos
	}
	d.touching = now
	return began
}
