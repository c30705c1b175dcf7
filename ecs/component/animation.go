package component

// AnimationDef is one named clip. The renderer only needs the frame index.
type AnimationDef struct {
	Name       string
	FrameCount int
	FPS        float64
	Loop       bool
}

type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer float64
	Playing    bool
}

// Play switches to the named animation, restarting it only on change.
func (a *Animation) Play(name string) bool {
	if a.Current == name && a.Playing {
		return false
	}
	if _, ok := a.Defs[name]; !ok {
		return false
	}
	a.Current = name
	a.Frame = 0
	a.FrameTimer = 0
	a.Playing = true
	return true
}

var AnimationComponent = NewComponent[Animation]()
