package system

import (
	"math"
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
)

const (
	testActorWidth  = 28
	testActorHeight = 56
	testFeetWidth   = 24
	testFeetHeight  = 8

	// floorTop is the pixel row of the test floor's upper edge.
	floorTop = 320
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T], v T) {
	t.Helper()
	if err := ecs.Add(w, e, h, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

// addSolid adds a static box by its top-left corner in pixels.
func addSolid(t *testing.T, w *ecs.World, x, y, width, height float64, category uint32) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.TransformComponent, component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Width:        width,
		Height:       height,
		Static:       true,
		AlignTopLeft: true,
	})
	mustAdd(t, w, e, component.CollisionLayerComponent, component.CollisionLayer{Category: category})
	mustAdd(t, w, e, component.SolidTagComponent, component.SolidTag{})
	return e
}

// addFloor adds a 20 tile wide floor whose top edge is floorTop.
func addFloor(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	return addSolid(t, w, 0, floorTop, 20*common.TileSize, common.TileSize, 1)
}

// addActor adds a motion actor whose feet rest at feetY, centred on x.
func addActor(t *testing.T, w *ecs.World, params motion.Parameters, authority motion.Authority, x, feetY float64) ecs.Entity {
	t.Helper()
	e := w.CreateEntity()
	mustAdd(t, w, e, component.TransformComponent, component.Transform{X: x, Y: feetY - testActorHeight/2, ScaleX: 1, ScaleY: 1})
	mustAdd(t, w, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Width:      testActorWidth,
		Height:     testActorHeight,
		FeetWidth:  testFeetWidth,
		FeetHeight: testFeetHeight,
		Mass:       1,
	})
	mustAdd(t, w, e, component.CollisionLayerComponent, component.CollisionLayer{Mask: 1})
	mustAdd(t, w, e, component.InputComponent, component.Input{})
	mustAdd(t, w, e, component.MotionComponent, component.Motion{
		Controller: motion.NewController(params, authority),
		Profile:    "player.yaml",
	})
	return e
}

type testSim struct {
	w       *ecs.World
	sched   *ecs.Scheduler
	physics *PhysicsSystem
	events  *EventLogSystem
	device  DeviceState
}

func newTestSim() *testSim {
	sim := &testSim{w: ecs.NewWorld()}
	var held bool
	sample := func() DeviceState {
		dev := sim.device
		dev.JumpPressed = dev.Jump && !held
		dev.JumpReleased = !dev.Jump && held
		held = dev.Jump
		return dev
	}
	p := NewPipeline(NewInputSystem(sample), nil)
	sim.sched = p.Scheduler
	sim.physics = p.Physics
	sim.events = p.Events
	return sim
}

func (s *testSim) frames(n int) {
	for i := 0; i < n; i++ {
		s.sched.Advance(s.w, common.FixedStep)
	}
}

func (s *testSim) state(t *testing.T, e ecs.Entity) motion.State {
	t.Helper()
	m, ok := ecs.Get(s.w, e, component.MotionComponent)
	if !ok || m.Controller == nil {
		t.Fatalf("entity %s has no motion controller", e)
	}
	return m.Controller.State()
}

func (s *testSim) transform(t *testing.T, e ecs.Entity) component.Transform {
	t.Helper()
	tr, ok := ecs.Get(s.w, e, component.TransformComponent)
	if !ok {
		t.Fatalf("entity %s has no transform", e)
	}
	return tr
}
