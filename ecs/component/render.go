package component

import "image/color"

// Render describes how the debug renderer draws an entity. Entities with a
// PhysicsBody are drawn at their collider; others use Width and Height with
// the transform at the top-left corner.
type Render struct {
	Fill   color.Color
	Layer  int
	Width  float64
	Height float64
}

var RenderComponent = NewComponent[Render]()
