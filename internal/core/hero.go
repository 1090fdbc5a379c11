package core

// Hero movement and appearance.
const (
	HeroSpeed = 2  // Units moved per update tick
	HeroSize  = 20 // Width and height of the hero rectangle
)

// Hero is the single movable entity. Its position is not clamped and may
// leave the visible area.
type Hero struct {
	X, Y int
}

// Step advances the hero by one tick. Only the first held key in the order
// left, right, up, down applies; keys never combine into diagonal movement.
func (h *Hero) Step(keys *KeyState) {
	switch {
	case keys.IsPressed(KeyLeft):
		h.X -= HeroSpeed
	case keys.IsPressed(KeyRight):
		h.X += HeroSpeed
	case keys.IsPressed(KeyUp):
		h.Y -= HeroSpeed
	case keys.IsPressed(KeyDown):
		h.Y += HeroSpeed
	}
}

// Bounds returns the rectangle the hero occupies.
func (h Hero) Bounds() Rect {
	return NewRect(h.X, h.Y, HeroSize, HeroSize)
}
