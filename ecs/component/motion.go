package component

import "github.com/milk9111/platformer/motion"

// Motion binds an actor to its motion controller. Output and Prev are
// rewritten by the motion systems every physics step.
type Motion struct {
	Controller *motion.Controller
	Output     motion.Output
	Prev       motion.State
	// Profile names the tuning prefab the parameters came from.
	Profile string
}

var MotionComponent = NewComponent[Motion]()

// Authority says whether this process owns the actor's simulation.
type Authority struct {
	Owner bool
}

var AuthorityComponent = NewComponent[Authority]()

// ProbeDebug holds the probe outlines of the last physics step, in motion
// space.
type ProbeDebug struct {
	Rays []motion.DebugRay
}

var ProbeDebugComponent = NewComponent[ProbeDebug]()
