package game

// Category is the bitmask an entity registers with contact detection.
type Category uint32

const (
	CategoryNone   Category = 0
	CategoryAll    Category = ^Category(0)
	CategoryTarget Category = 0b1
	CategoryBullet Category = 0b10
)

// Kind tags what an entity is; dispatch uses it instead of bit order.
type Kind int

const (
	KindShooter Kind = iota
	KindTarget
	KindBullet
)

func (k Kind) String() string {
	switch k {
	case KindShooter:
		return "shooter"
	case KindTarget:
		return "target"
	case KindBullet:
		return "bullet"
	}
	return "unknown"
}

// sprite names the host knows how to draw
const (
	SpriteShooter = "Shooter"
	SpritePoly    = "Poly"
	SpriteSquare  = "Square"
	SpriteTri     = "Tri"
	SpriteStar    = "Star"
)

// TargetSprites are the shape variants a target is drawn from.
var TargetSprites = []string{SpritePoly, SpriteSquare, SpriteTri}

// EntityID identifies an entity within one scene.
type EntityID uint64

// Entity is a shooter, target or projectile living in a Scene.
type Entity struct {
	ID   EntityID
	Kind Kind
	Name string // sprite name

	// Pos is the centre of the entity.
	Pos  Point
	Size Size

	Category      Category
	ContactMask   Category // categories that produce contact events
	CollisionMask Category // categories that produce impulse response; always None here

	// Precise bodies are swept between frames so fast movers don't tunnel.
	Precise bool

	Active bool

	prev Point // position at the end of the previous frame
}

// Contacts reports whether a and b should produce a contact event.
func Contacts(a, b *Entity) bool {
	return a.ContactMask&b.Category != 0 || b.ContactMask&a.Category != 0
}

// TopLeft returns the corner of the entity's bounding box.
func (e *Entity) TopLeft() Point { return e.Pos.Sub(e.Size.Half()) }
