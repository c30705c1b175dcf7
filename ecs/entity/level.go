package entity

import (
	"fmt"
	"strings"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"golang.org/x/image/colornames"
)

// LoadLevelToWorld adds the level bounds, one static box per merged block of
// physics tiles, decor blocks, and the level's spawns.
func LoadLevelToWorld(world *ecs.World, lvl *levels.Level) error {
	if world == nil || lvl == nil {
		return fmt.Errorf("entity: nil world or level")
	}

	boundsEntity := world.CreateEntity()
	if err := ecs.Add(world, boundsEntity, component.LevelBoundsComponent, component.LevelBounds{
		Width:  float64(lvl.Width) * common.TileSize,
		Height: float64(lvl.Height) * common.TileSize,
	}); err != nil {
		return err
	}

	for layerIdx := range lvl.Layers {
		meta := lvl.Meta(layerIdx)
		fill, ok := colornames.Map[strings.ToLower(meta.Color)]
		if !ok {
			fill = colornames.Dimgray
		}
		for _, rect := range lvl.MergedRects(layerIdx) {
			if err := addBlock(world, rect, meta.Physics, lvl.Category(layerIdx), component.Render{Fill: fill, Layer: layerIdx}); err != nil {
				return fmt.Errorf("entity: level %s layer %d: %w", lvl.Name, layerIdx, err)
			}
		}
	}

	for _, ent := range lvl.Entities {
		var err error
		switch strings.ToLower(ent.Type) {
		case "player":
			_, err = NewPlayerAt(world, ent.X, ent.Y)
		case "replica":
			_, err = NewReplicaAt(world, ent.X, ent.Y)
		case "bot":
			_, err = NewBotAt(world, ent.Prop("prefab", ""), ent.Prop("script", ""), ent.X, ent.Y)
		default:
			// Unknown entity type; ignore for now.
		}
		if err != nil {
			return fmt.Errorf("entity: level %s spawn %s at %d,%d: %w", lvl.Name, ent.Type, ent.X, ent.Y, err)
		}
	}
	return nil
}

func addBlock(world *ecs.World, rect levels.Rect, solid bool, category uint32, render component.Render) error {
	x := float64(rect.X) * common.TileSize
	y := float64(rect.Y) * common.TileSize
	width := float64(rect.W) * common.TileSize
	height := float64(rect.H) * common.TileSize

	e := world.CreateEntity()
	if err := ecs.Add(world, e, component.TransformComponent, component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return err
	}
	render.Width, render.Height = width, height
	if err := ecs.Add(world, e, component.RenderComponent, render); err != nil {
		return err
	}
	if !solid {
		return nil
	}

	if err := ecs.Add(world, e, component.PhysicsBodyComponent, component.PhysicsBody{
		Width:        width,
		Height:       height,
		Static:       true,
		AlignTopLeft: true,
	}); err != nil {
		return err
	}
	if err := ecs.Add(world, e, component.CollisionLayerComponent, component.CollisionLayer{Category: category}); err != nil {
		return err
	}
	return ecs.Add(world, e, component.SolidTagComponent, component.SolidTag{})
}
