package motion

import "github.com/milk9111/platformer/common"

// Vec2 is a 2D vector in motion space: +X is right, +Y is up.
type Vec2 struct {
	X float64
	Y float64
}

var (
	Up   = Vec2{X: 0, Y: 1}
	Down = Vec2{X: 0, Y: -1}
)

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Lerp moves v toward target by t, with t clamped to [0, 1].
func (v Vec2) Lerp(target Vec2, t float64) Vec2 {
	t = common.Clamp01(t)
	return Vec2{
		X: common.Lerp(v.X, target.X, t),
		Y: common.Lerp(v.Y, target.Y, t),
	}
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Bounds is an axis aligned box in motion space.
type Bounds struct {
	Min Vec2
	Max Vec2
}

// BoundsFromCenter builds a box of the given size around c.
func BoundsFromCenter(c, size Vec2) Bounds {
	return Bounds{
		Min: Vec2{X: c.X - size.X/2, Y: c.Y - size.Y/2},
		Max: Vec2{X: c.X + size.X/2, Y: c.Y + size.Y/2},
	}
}

func (b Bounds) Center() Vec2 {
	return Vec2{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

func (b Bounds) Size() Vec2 {
	return Vec2{X: b.Max.X - b.Min.X, Y: b.Max.Y - b.Min.Y}
}

// SweepBounds returns the region covered by a box of size centred at origin
// as it moves distance along dir.
func SweepBounds(origin, size, dir Vec2, distance float64) Bounds {
	start := BoundsFromCenter(origin, size)
	end := BoundsFromCenter(origin.Add(dir.Scale(distance)), size)
	return Bounds{
		Min: Vec2{X: min(start.Min.X, end.Min.X), Y: min(start.Min.Y, end.Min.Y)},
		Max: Vec2{X: max(start.Max.X, end.Max.X), Y: max(start.Max.Y, end.Max.Y)},
	}
}
