package levels

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidLevel = errors.New("levels: invalid level")

// Level is a tile map. Layers are row-major with row 0 at the top; a cell
// value above zero is a filled tile.
type Level struct {
	Name      string      `json:"name,omitempty"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	Layers    [][]int     `json:"layers"`
	LayerMeta []LayerMeta `json:"layer_meta,omitempty"`
	Entities  []Entity    `json:"entities,omitempty"`
}

type LayerMeta struct {
	Name    string `json:"name,omitempty"`
	Physics bool   `json:"physics"`
	// Category is the collision category of the layer's tiles. Zero means 1.
	Category uint32 `json:"category,omitempty"`
	// Color is an SVG colour name used by the debug renderer.
	Color string `json:"color,omitempty"`
}

// Entity is a spawn point in tile coordinates.
type Entity struct {
	Type  string         `json:"type"`
	X     int            `json:"x"`
	Y     int            `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

// Prop returns a string property, or fallback.
func (e Entity) Prop(key, fallback string) string {
	if v, ok := e.Props[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

// Rect is an axis aligned block of tiles.
type Rect struct {
	X, Y int
	W, H int
}

// Parse decodes and validates a level.
func Parse(name string, data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(name, ".json")
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("levels: validate %s: %w", name, err)
	}
	return &lvl, nil
}

func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidLevel, l.Width, l.Height)
	}
	var errs []error
	for i, layer := range l.Layers {
		if len(layer) != l.Width*l.Height {
			errs = append(errs, fmt.Errorf("%w: layer %d has %d cells, want %d", ErrInvalidLevel, i, len(layer), l.Width*l.Height))
		}
	}
	if len(l.LayerMeta) > len(l.Layers) {
		errs = append(errs, fmt.Errorf("%w: %d layer_meta entries for %d layers", ErrInvalidLevel, len(l.LayerMeta), len(l.Layers)))
	}
	for i, ent := range l.Entities {
		if ent.Type == "" {
			errs = append(errs, fmt.Errorf("%w: entity %d has no type", ErrInvalidLevel, i))
		}
		if ent.X < 0 || ent.X >= l.Width || ent.Y < 0 || ent.Y >= l.Height {
			errs = append(errs, fmt.Errorf("%w: entity %d (%s) at %d,%d is outside the level", ErrInvalidLevel, i, ent.Type, ent.X, ent.Y))
		}
	}
	return errors.Join(errs...)
}

// Meta returns the metadata for layer i, or the zero value.
func (l *Level) Meta(i int) LayerMeta {
	if i < 0 || i >= len(l.LayerMeta) {
		return LayerMeta{}
	}
	return l.LayerMeta[i]
}

// Category returns the collision category bits of layer i.
func (l *Level) Category(i int) uint32 {
	if c := l.Meta(i).Category; c != 0 {
		return c
	}
	return 1
}

// Solid reports whether the tile at x, y on layer i is filled.
func (l *Level) Solid(i, x, y int) bool {
	if i < 0 || i >= len(l.Layers) || x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return false
	}
	return l.Layers[i][y*l.Width+x] > 0
}

// MergedRects covers the filled tiles of layer i with as few rectangles as
// a greedy row-first scan finds.
func (l *Level) MergedRects(i int) []Rect {
	if i < 0 || i >= len(l.Layers) {
		return nil
	}
	width, height := l.Width, l.Height
	visited := make([]bool, width*height)
	open := func(x, y int) bool {
		return !visited[y*width+x] && l.Solid(i, x, y)
	}

	var out []Rect
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !open(x, y) {
				continue
			}

			w := 0
			for x2 := x; x2 < width && open(x2, y); x2++ {
				w++
			}

			h := 1
			for y2 := y + 1; y2 < height; y2++ {
				rowOK := true
				for x2 := x; x2 < x+w; x2++ {
					if !open(x2, y2) {
						rowOK = false
						break
					}
				}
				if !rowOK {
					break
				}
				h++
			}

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					visited[yy*width+xx] = true
				}
			}
			out = append(out, Rect{X: x, Y: y, W: w, H: h})
		}
	}
	return out
}

// EntitiesOfType returns the spawns whose type matches, case-insensitively.
func (l *Level) EntitiesOfType(kind string) []Entity {
	var out []Entity
	for _, ent := range l.Entities {
		if strings.EqualFold(ent.Type, kind) {
			out = append(out, ent)
		}
	}
	return out
}
