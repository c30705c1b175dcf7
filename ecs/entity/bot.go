package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

const defaultBotPrefab = "bot.yaml"

// NewBotAt spawns a script driven actor. An empty prefab means bot.yaml and
// an empty script means the prefab's own.
func NewBotAt(w *ecs.World, prefab, script string, tx, ty int) (ecs.Entity, error) {
	if prefab == "" {
		prefab = defaultBotPrefab
	}
	spec, err := prefabs.LoadActorSpec(prefab)
	if err != nil {
		return 0, fmt.Errorf("bot: %w", err)
	}
	if script == "" {
		script = spec.Script
	}
	if script == "" {
		return 0, fmt.Errorf("bot: %s names no script", prefab)
	}

	e, err := NewActor(w, spec, prefab, tx, ty, true)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.BotTagComponent, component.BotTag{}); err != nil {
		return 0, fmt.Errorf("bot: %w", err)
	}
	if err := ecs.Add(w, e, component.ScriptInputComponent, component.ScriptInput{Path: script}); err != nil {
		return 0, fmt.Errorf("bot: %w", err)
	}
	return e, nil
}
