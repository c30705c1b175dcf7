package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
)

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeActorFeet
	collisionTypeSolid
)

// actorCategory keeps actors out of every ground mask.
const actorCategory uint = 1 << 31

// PhysicsSystem owns the Chipmunk2D space. It integrates actor velocities,
// keeps transforms in sync and answers box casts for the motion probes.
// The space runs in screen pixels with +Y down; motion space is in units
// with +Y up.
type PhysicsSystem struct {
	space    *cp.Space
	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body      *cp.Body
	mainShape *cp.Shape
	feetShape *cp.Shape
	shapes    []*cp.Shape
	static    bool
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{
		space:    newSpace(),
		entities: make(map[ecs.Entity]*bodyInfo),
	}
}

func newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	return space
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Update steps the space by the world's fixed step.
func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.Sync(w)
	if dt := w.Clock().Fixed; dt > 0 {
		ps.space.Step(dt)
	}
	ps.syncTransforms(w)
}

// Sync creates bodies for new physics entities and drops bodies whose
// entities are gone.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.cleanupEntities(w)

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		if _, ok := ps.entities[e]; ok {
			continue
		}
		bodyComp, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		layer, _ := ecs.Get(w, e, component.CollisionLayerComponent)

		info := ps.createBodyInfo(transform, bodyComp, layer)
		ps.entities[e] = info
		bodyComp.Body = info.body
		bodyComp.Shape = info.mainShape
		bodyComp.FeetShape = info.feetShape
		if err := ecs.Add(w, e, component.PhysicsBodyComponent, bodyComp); err != nil {
			panic("physics system: update body: " + err.Error())
		}
	}
}

func (ps *PhysicsSystem) createBodyInfo(transform component.Transform, bodyComp component.PhysicsBody, layer component.CollisionLayer) *bodyInfo {
	width := bodyComp.Width
	height := bodyComp.Height
	if width <= 0 || height <= 0 {
		width = common.TileSize
		height = common.TileSize
	}

	centerX, centerY := transform.X, transform.Y
	if bodyComp.AlignTopLeft {
		centerX += width / 2
		centerY += height / 2
	}

	category := uint(layer.Category)
	if category == 0 {
		category = 1
	}
	mask := uint(layer.Mask)
	if mask == 0 {
		mask = cp.ALL_CATEGORIES
	}

	if bodyComp.Static {
		bb := cp.BB{L: centerX - width/2, B: centerY - height/2, R: centerX + width/2, T: centerY + height/2}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(bodyComp.Friction)
		shape.SetElasticity(0)
		shape.SetCollisionType(collisionTypeSolid)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, category, mask))
		ps.space.AddShape(shape)
		return &bodyInfo{body: ps.space.StaticBody, mainShape: shape, shapes: []*cp.Shape{shape}, static: true}
	}

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	// actors never rotate
	body := cp.NewBody(mass, cp.INFINITY)
	body.SetPosition(cp.Vector{X: centerX, Y: centerY})
	ps.space.AddBody(body)

	filter := cp.NewShapeFilter(cp.NO_GROUP, actorCategory, mask&^actorCategory)
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeActor)
	shape.SetFilter(filter)
	ps.space.AddShape(shape)
	info := &bodyInfo{body: body, mainShape: shape, shapes: []*cp.Shape{shape}}

	if fw, fh := bodyComp.FeetWidth, bodyComp.FeetHeight; fw > 0 && fh > 0 {
		feet := cp.NewBox2(body, cp.BB{L: -fw / 2, B: height/2 - fh, R: fw / 2, T: height / 2}, 0)
		feet.SetSensor(true)
		feet.SetCollisionType(collisionTypeActorFeet)
		feet.SetFilter(filter)
		ps.space.AddShape(feet)
		info.feetShape = feet
		info.shapes = append(info.shapes, feet)
	}
	return info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		if err := ecs.Add(w, e, component.TransformComponent, transform); err != nil {
			panic("physics system: update transform: " + err.Error())
		}
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.entities {
		if w.IsAlive(e) && ecs.Has(w, e, component.PhysicsBodyComponent) {
			continue
		}
		for _, shape := range info.shapes {
			ps.space.RemoveShape(shape)
		}
		if !info.static && info.body != nil {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.entities, e)
	}
}

// SetVelocity writes a motion-space velocity to the entity's body.
func (ps *PhysicsSystem) SetVelocity(e ecs.Entity, v motion.Vec2) bool {
	info, ok := ps.entities[e]
	if !ok || info.static {
		return false
	}
	info.body.SetVelocity(v.X*common.PixelsPerUnit, -v.Y*common.PixelsPerUnit)
	return true
}

// Colliders returns the entity's feet and body boxes in motion space.
func (ps *PhysicsSystem) Colliders(w *ecs.World, e ecs.Entity) (motion.Colliders, bool) {
	info, ok := ps.entities[e]
	if !ok || info.static {
		return motion.Colliders{}, false
	}
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok {
		return motion.Colliders{}, false
	}

	pos := info.body.Position()
	body := motion.BoundsFromCenter(ToMotion(pos.X, pos.Y), motion.Vec2{
		X: bodyComp.Width / common.PixelsPerUnit,
		Y: bodyComp.Height / common.PixelsPerUnit,
	})

	feet := body
	if bodyComp.FeetWidth > 0 && bodyComp.FeetHeight > 0 {
		feetY := pos.Y + bodyComp.Height/2 - bodyComp.FeetHeight/2
		feet = motion.BoundsFromCenter(ToMotion(pos.X, feetY), motion.Vec2{
			X: bodyComp.FeetWidth / common.PixelsPerUnit,
			Y: bodyComp.FeetHeight / common.PixelsPerUnit,
		})
	}
	return motion.Colliders{Feet: feet, Body: body}, true
}

// BoxCast reports whether the swept box touches static geometry in mask.
func (ps *PhysicsSystem) BoxCast(origin, size, dir motion.Vec2, distance float64, mask uint32) bool {
	if ps == nil || mask == 0 {
		return false
	}
	sweep := motion.SweepBounds(origin, size, dir, distance)
	minX, minY := ToScreen(motion.Vec2{X: sweep.Min.X, Y: sweep.Max.Y})
	maxX, maxY := ToScreen(motion.Vec2{X: sweep.Max.X, Y: sweep.Min.Y})
	bb := cp.BB{L: minX, B: minY, R: maxX, T: maxY}

	hit := false
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
	ps.space.BBQuery(bb, filter, func(shape *cp.Shape, _ interface{}) {
		if shape.Sensor() || shape.Body().GetType() != cp.BODY_STATIC {
			return
		}
		hit = true
	}, nil)
	return hit
}

// ToMotion converts a screen position in pixels to motion space.
func ToMotion(x, y float64) motion.Vec2 {
	return motion.Vec2{X: x / common.PixelsPerUnit, Y: -y / common.PixelsPerUnit}
}

// ToScreen converts a motion-space position to screen pixels.
func ToScreen(v motion.Vec2) (x, y float64) {
	return v.X * common.PixelsPerUnit, -v.Y * common.PixelsPerUnit
}
