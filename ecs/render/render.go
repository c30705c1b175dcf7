package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"golang.org/x/image/colornames"
)

const eyeSize = 6

// RenderSystem draws every entity with a Render component as a filled box.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	entities := w.Query(component.TransformComponent.Kind(), component.RenderComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		ri, _ := ecs.Get(w, entities[i], component.RenderComponent)
		rj, _ := ecs.Get(w, entities[j], component.RenderComponent)
		if ri.Layer != rj.Layer {
			return ri.Layer < rj.Layer
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		rc, _ := ecs.Get(w, e, component.RenderComponent)

		x, y := t.X, t.Y
		width, height := rc.Width, rc.Height
		if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent); ok {
			width, height = body.Width, body.Height
			if !body.AlignTopLeft {
				x -= width / 2
				y -= height / 2
			}
		}
		if width <= 0 || height <= 0 {
			continue
		}
		fill := rc.Fill
		if fill == nil {
			fill = colornames.White
		}
		vector.FillRect(screen, float32(x), float32(y), float32(width), float32(height), fill, false)

		if !ecs.Has(w, e, component.MotionComponent) {
			continue
		}
		vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, colornames.Black, false)

		// the eye marks facing and bobs with the run cycle
		eyeX := x + width - eyeSize - 3
		if t.Mirrored() {
			eyeX = x + 3
		}
		eyeY := y + 8
		if anim, ok := ecs.Get(w, e, component.AnimationComponent); ok && anim.Frame%2 == 1 {
			eyeY += 2
		}
		vector.FillRect(screen, float32(eyeX), float32(eyeY), eyeSize, eyeSize, eyeColor(rc.Fill), false)
	}
}

func eyeColor(fill color.Color) color.Color {
	if fill == nil {
		return colornames.Black
	}
	r, g, b, _ := fill.RGBA()
	if (r+g+b)/3 > 0x8000 {
		return colornames.Black
	}
	return colornames.White
}
