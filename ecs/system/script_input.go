package system

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/prefabs"
)

const scriptDispatch = `
update(__engine, __state)
`

type scriptRuntime struct {
	path      string
	compiled  *tengo.Compiled
	stateData *tengo.Map
	failed    bool
}

// scriptCommands collects what a script asked for during one update.
type scriptCommands struct {
	moveX float64
	jump  bool
	run   bool
}

// ScriptInputSystem fills the Input of scripted actors by running their
// tengo update function once per frame.
type ScriptInputSystem struct {
	cache map[ecs.Entity]*scriptRuntime
}

func NewScriptInputSystem() *ScriptInputSystem {
	return &ScriptInputSystem{cache: make(map[ecs.Entity]*scriptRuntime)}
}

func (s *ScriptInputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for e := range s.cache {
		if !w.IsAlive(e) || !ecs.Has(w, e, component.ScriptInputComponent) {
			delete(s.cache, e)
		}
	}

	clock := w.Clock()
	ecs.ForEach2(w, component.ScriptInputComponent, component.InputComponent, func(e ecs.Entity, si component.ScriptInput, in component.Input) {
		rt, err := s.runtime(e, si.Path)
		if err != nil {
			return
		}

		cmd := scriptCommands{moveX: in.MoveX, jump: in.Jump, run: in.Run}
		engine := buildScriptEngine(w, e, si.Frame, clock.Frame, &cmd)
		if err := rt.run(engine); err != nil {
			logger.L().Error("script update failed", "entity", e, "script", si.Path, "err", err)
			rt.failed = true
			return
		}

		in.MoveX = cmd.moveX
		in.MoveY = 0
		in.Run = cmd.run
		in.Latch(cmd.jump)
		si.Frame++

		if err := ecs.Add(w, e, component.InputComponent, in); err != nil {
			panic("script input system: update input: " + err.Error())
		}
		if err := ecs.Add(w, e, component.ScriptInputComponent, si); err != nil {
			panic("script input system: update script: " + err.Error())
		}
	})
}

// Reload drops every cached runtime compiled from the named script so the
// next update recompiles it. Script state starts over.
func (s *ScriptInputSystem) Reload(name string) int {
	if s == nil {
		return 0
	}
	want := scriptKey(name)
	n := 0
	for e, rt := range s.cache {
		if rt == nil || scriptKey(rt.path) == want {
			delete(s.cache, e)
			n++
		}
	}
	return n
}

func scriptKey(name string) string {
	return path.Base(filepath.ToSlash(name))
}

func (s *ScriptInputSystem) runtime(e ecs.Entity, name string) (*scriptRuntime, error) {
	if rt, ok := s.cache[e]; ok && rt != nil && rt.path == name {
		if rt.failed {
			return nil, fmt.Errorf("script %s failed earlier", name)
		}
		return rt, nil
	}

	rt, err := compileScript(name)
	if err != nil {
		logger.L().Error("script compile failed", "entity", e, "script", name, "err", err)
		// cache the failure so a broken script is reported once
		s.cache[e] = &scriptRuntime{path: name, failed: true}
		return nil, err
	}
	s.cache[e] = rt
	return rt, nil
}

func compileScript(name string) (*scriptRuntime, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("empty script path")
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + scriptDispatch))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return &scriptRuntime{
		path:      name,
		compiled:  compiled,
		stateData: &tengo.Map{Value: map[string]tengo.Object{}},
	}, nil
}

func (rt *scriptRuntime) run(engine *tengo.ImmutableMap) error {
	if rt == nil || rt.compiled == nil {
		return fmt.Errorf("nil script runtime")
	}
	if err := rt.compiled.Set("__engine", engine); err != nil {
		return err
	}
	if err := rt.compiled.Set("__state", rt.stateData); err != nil {
		return err
	}
	return rt.compiled.Run()
}

func buildScriptEngine(w *ecs.World, e ecs.Entity, frame int, dt float64, cmd *scriptCommands) *tengo.ImmutableMap {
	values := map[string]tengo.Object{
		"frame": &tengo.Int{Value: int64(frame)},
		"dt":    &tengo.Float{Value: dt},
	}

	if transform, ok := ecs.Get(w, e, component.TransformComponent); ok {
		pos := ToMotion(transform.X, transform.Y)
		values["x"] = &tengo.Float{Value: pos.X}
		values["y"] = &tengo.Float{Value: pos.Y}
	}

	if m, ok := ecs.Get(w, e, component.MotionComponent); ok && m.Controller != nil {
		state := m.Controller.State()
		values["vx"] = &tengo.Float{Value: state.MoveVelocity.X}
		values["vy"] = &tengo.Float{Value: state.VerticalVelocity}
		values["grounded"] = boolObject(state.Grounded)
		values["phase"] = &tengo.String{Value: state.Phase.String()}
		values["facing_right"] = boolObject(state.FacingRight)
		values["jumps_used"] = &tengo.Int{Value: int64(state.JumpsUsed)}
	}

	values["move"] = &tengo.UserFunction{Name: "move", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) < 1 {
			return tengo.FalseValue, nil
		}
		x, ok := tengo.ToFloat64(args[0])
		if !ok {
			return tengo.FalseValue, nil
		}
		cmd.moveX = clampAxis(x)
		return tengo.TrueValue, nil
	}}

	values["jump"] = &tengo.UserFunction{Name: "jump", Value: func(args ...tengo.Object) (tengo.Object, error) {
		cmd.jump = len(args) == 0 || !args[0].IsFalsy()
		return tengo.TrueValue, nil
	}}

	values["run"] = &tengo.UserFunction{Name: "run", Value: func(args ...tengo.Object) (tengo.Object, error) {
		cmd.run = len(args) == 0 || !args[0].IsFalsy()
		return tengo.TrueValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func clampAxis(x float64) float64 {
	switch {
	case x > 1:
		return 1
	case x < -1:
		return -1
	}
	return x
}
