package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// DeviceState is one sample of the local input devices. The jump edges are
// valid for the tick that sampled them.
type DeviceState struct {
	MoveX        float64
	MoveY        float64
	Jump         bool
	JumpPressed  bool
	JumpReleased bool
	Run          bool
}

// InputSystem feeds the local devices into the player's Input.
type InputSystem struct {
	sample func() DeviceState
}

// NewInputSystem reads the devices through sample once per frame.
func NewInputSystem(sample func() DeviceState) *InputSystem {
	return &InputSystem{sample: sample}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || i.sample == nil || w == nil {
		return
	}
	dev := i.sample()

	ecs.ForEach2(w, component.InputComponent, component.PlayerTagComponent, func(e ecs.Entity, input component.Input, _ component.PlayerTag) {
		input.MoveX = dev.MoveX
		input.MoveY = dev.MoveY
		input.Run = dev.Run
		input.Jump = dev.Jump
		input.JumpPressed = dev.JumpPressed
		input.JumpReleased = dev.JumpReleased
		if err := ecs.Add(w, e, component.InputComponent, input); err != nil {
			panic("input system: update input: " + err.Error())
		}
	})
}
