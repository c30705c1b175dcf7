package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Sizes are in pixels. Actors carry a body box and a narrower feet box
// at the bottom of the body.
type PhysicsBody struct {
	Body      *cp.Body
	Shape     *cp.Shape
	FeetShape *cp.Shape

	Width      float64
	Height     float64
	FeetWidth  float64
	FeetHeight float64
	Mass       float64
	Friction   float64
	Static     bool
	// AlignTopLeft places static boxes by their top-left corner.
	AlignTopLeft bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
