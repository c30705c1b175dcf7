package system

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/motion"
)

type fakePoller struct {
	paths []string
	errs  []error
}

func (p *fakePoller) Poll() ([]string, []error) {
	paths, errs := p.paths, p.errs
	p.paths, p.errs = nil, nil
	return paths, errs
}

func TestTuningSystemReloadsProfile(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		wantWalk float64
	}{
		{"valid", "tuning:\n  max_walk_speed: 3\n", 3},
		{"invalid_keeps_running_values", "tuning:\n  max_walk_speed: -1\n", motion.DefaultParameters().MaxWalkSpeed},
		{"malformed_keeps_running_values", "tuning: [\n", motion.DefaultParameters().MaxWalkSpeed},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := usePrefabDir(t)
			path := filepath.Join(dir, "player.yaml")
			writeFile(t, path, c.body)

			w := ecs.NewWorld()
			player := addActor(t, w, motion.DefaultParameters(), nil, 0, 0)
			other := addActor(t, w, motion.DefaultParameters(), nil, 0, 0)
			m, _ := ecs.Get(w, other, component.MotionComponent)
			m.Profile = "bot.yaml"
			mustAdd(t, w, other, component.MotionComponent, m)

			poller := &fakePoller{paths: []string{path}, errs: []error{errors.New("watch hiccup")}}
			NewTuningSystem(poller, nil).Update(w)

			pm, _ := ecs.Get(w, player, component.MotionComponent)
			if got := pm.Controller.Parameters().MaxWalkSpeed; got != c.wantWalk {
				t.Fatalf("player walk speed = %v, want %v", got, c.wantWalk)
			}
			om, _ := ecs.Get(w, other, component.MotionComponent)
			if got := om.Controller.Parameters().MaxWalkSpeed; got != motion.DefaultParameters().MaxWalkSpeed {
				t.Fatalf("actor on another profile changed to %v", got)
			}
		})
	}
}

func TestTuningSystemKeepsState(t *testing.T) {
	dir := usePrefabDir(t)
	writeFile(t, filepath.Join(dir, "player.yaml"), "tuning:\n  number_of_jumps_allowed: 3\n")

	sim := newTestSim()
	addFloor(t, sim.w)
	e := addActor(t, sim.w, motion.DefaultParameters(), nil, 320, floorTop)
	mustAdd(t, sim.w, e, component.PlayerTagComponent, component.PlayerTag{})
	sim.device.Jump = true
	sim.frames(3)
	before := sim.state(t, e)

	tuning := NewTuningSystem(&fakePoller{}, nil)
	if n := tuning.ReloadAll(sim.w); n != 1 {
		t.Fatalf("expected 1 actor reloaded, got %d", n)
	}
	m, _ := ecs.Get(sim.w, e, component.MotionComponent)
	if got := m.Controller.Parameters().NumberOfJumpsAllowed; got != 3 {
		t.Fatalf("expected 3 jumps allowed, got %d", got)
	}
	if after := m.Controller.State(); after != before {
		t.Fatalf("reload changed motion state:\n%+v\n%+v", before, after)
	}
}

func TestTuningSystemReloadsScripts(t *testing.T) {
	dir := usePrefabDir(t)
	path := filepath.Join(dir, "scripts", "swap.tengo")
	writeFile(t, path, `update := func(engine, state) { engine.move(1) }`)

	w := ecs.NewWorld()
	e := addScripted(t, w, "swap.tengo")
	scripts := NewScriptInputSystem()
	scripts.Update(w)

	writeFile(t, path, `update := func(engine, state) { engine.move(-1) }`)
	poller := &fakePoller{paths: []string{path}}
	NewTuningSystem(poller, scripts).Update(w)
	scripts.Update(w)

	if in, _ := ecs.Get(w, e, component.InputComponent); in.MoveX != -1 {
		t.Fatalf("expected the edited script to run, got MoveX %v", in.MoveX)
	}
}
