package component

// Transform is an entity's placement in screen space: pixels, +Y down,
// X/Y at the centre of the body collider.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
	// Yaw is the rotation about the vertical axis in degrees, 0 or 180.
	Yaw float64
}

// Mirrored reports whether the sprite is turned around.
func (t Transform) Mirrored() bool {
	return t.Yaw == 180 || t.Yaw == -180
}

var TransformComponent = NewComponent[Transform]()
