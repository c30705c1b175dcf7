package component

import "github.com/milk9111/platformer/motion"

// Input stores the latched input state for an actor. Edges are valid for the
// frame that produced them.
type Input struct {
	MoveX        float64
	MoveY        float64
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
	Run          bool
}

// Latch records a jump button level, as scripts report it, and derives this
// frame's edges from the previous level.
func (in *Input) Latch(jumpHeld bool) {
	in.JumpPressed = jumpHeld && !in.Jump
	in.JumpReleased = !jumpHeld && in.Jump
	in.Jump = jumpHeld
}

// Motion converts the input into the motion controller's form.
func (in Input) Motion() motion.Input {
	return motion.Input{
		Move:         motion.Vec2{X: in.MoveX, Y: in.MoveY},
		JumpPressed:  in.JumpPressed,
		JumpReleased: in.JumpReleased,
		RunHeld:      in.Run,
	}
}

var InputComponent = NewComponent[Input]()
