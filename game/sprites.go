package game

// Sprites reports the size of a sprite by name. The host backs it with
// loaded images; StaticSprites is used when an image is missing and in tests.
type Sprites interface {
	Size(name string) Size
}

// StaticSprites is a fixed name → size table.
type StaticSprites map[string]Size

// DefaultSprites is used for any sprite without an image.
func DefaultSprites() StaticSprites {
	return StaticSprites{
		SpriteShooter: {W: 48, H: 48},
		SpritePoly:    {W: 40, H: 40},
		SpriteSquare:  {W: 36, H: 36},
		SpriteTri:     {W: 40, H: 34},
		SpriteStar:    {W: 20, H: 20},
	}
}

func (s StaticSprites) Size(name string) Size {
	if sz, ok := s[name]; ok {
		return sz
	}
	return Size{W: 32, H: 32}
}
