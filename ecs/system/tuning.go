package system

import (
	"path/filepath"
	"strings"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/prefabs"
)

// Poller hands out file changes without blocking.
type Poller interface {
	Poll() ([]string, []error)
}

// TuningSystem applies edited tuning prefabs and scripts between frames.
// A prefab that fails to load or validate is logged and the running
// parameters stay as they are.
type TuningSystem struct {
	poller  Poller
	scripts *ScriptInputSystem
}

func NewTuningSystem(poller Poller, scripts *ScriptInputSystem) *TuningSystem {
	return &TuningSystem{poller: poller, scripts: scripts}
}

func (s *TuningSystem) Update(w *ecs.World) {
	if s == nil || s.poller == nil || w == nil {
		return
	}
	paths, errs := s.poller.Poll()
	for _, err := range errs {
		logger.L().Warn("tuning watcher error", "err", err)
	}
	for _, path := range paths {
		name := filepath.Base(path)
		switch strings.ToLower(filepath.Ext(name)) {
		case ".yaml", ".yml":
			s.Reload(w, name)
		case ".tengo":
			if n := s.scripts.Reload(name); n > 0 {
				logger.L().Info("script reloaded", "script", name, "actors", n)
			}
		}
	}
}

// Reload re-reads the named prefab and applies its tuning to every actor
// using that profile. It returns how many actors were updated.
func (s *TuningSystem) Reload(w *ecs.World, name string) int {
	spec, err := prefabs.LoadActorSpec(name)
	if err != nil {
		logger.L().Error("tuning reload rejected", "prefab", name, "err", err)
		return 0
	}
	params := spec.Tuning.ToParameters()

	n := 0
	ecs.ForEach(w, component.MotionComponent, func(e ecs.Entity, m component.Motion) {
		if m.Controller == nil || m.Profile != name {
			return
		}
		m.Controller.SetParameters(params)
		n++
	})
	if n > 0 {
		logger.L().Info("tuning reloaded", "prefab", name, "actors", n)
	}
	return n
}

// ReloadAll re-reads every profile in use.
func (s *TuningSystem) ReloadAll(w *ecs.World) int {
	seen := make(map[string]bool)
	n := 0
	ecs.ForEach(w, component.MotionComponent, func(_ ecs.Entity, m component.Motion) {
		if m.Profile == "" || seen[m.Profile] {
			return
		}
		seen[m.Profile] = true
		n += s.Reload(w, m.Profile)
	})
	return n
}
