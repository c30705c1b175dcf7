package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
	"golang.org/x/image/colornames"
)

// PlayerPrefab is the tuning profile of the local player.
var PlayerPrefab = "player.yaml"

func NewPlayerAt(w *ecs.World, tx, ty int) (ecs.Entity, error) {
	spec, err := prefabs.LoadActorSpec(PlayerPrefab)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	e, err := NewActor(w, spec, PlayerPrefab, tx, ty, true)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PlayerTagComponent, component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	if err := ecs.Add(w, e, component.ProbeDebugComponent, component.ProbeDebug{}); err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	return e, nil
}

// NewReplicaAt spawns a copy of the player that this process does not
// simulate. Its controller stays idle and its body keeps whatever velocity
// it is given from outside.
func NewReplicaAt(w *ecs.World, tx, ty int) (ecs.Entity, error) {
	spec, err := prefabs.LoadActorSpec(PlayerPrefab)
	if err != nil {
		return 0, fmt.Errorf("replica: %w", err)
	}
	spec.Render.Fill.Color = faded(spec.Render.Fill.Or(colornames.Lightsteelblue))
	spec.Render.Layer--
	e, err := NewActor(w, spec, PlayerPrefab, tx, ty, false)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ReplicaTagComponent, component.ReplicaTag{}); err != nil {
		return 0, fmt.Errorf("replica: %w", err)
	}
	return e, nil
}
