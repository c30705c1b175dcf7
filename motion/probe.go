package motion

// Prober answers box-cast queries against static world geometry. A box of
// size centred at origin is swept distance along dir; the result reports
// whether any shape in the mask was touched.
type Prober interface {
	BoxCast(origin, size, dir Vec2, distance float64, mask uint32) bool
}

// ProberFunc adapts a function to Prober.
type ProberFunc func(origin, size, dir Vec2, distance float64, mask uint32) bool

func (f ProberFunc) BoxCast(origin, size, dir Vec2, distance float64, mask uint32) bool {
	if f == nil {
		return false
	}
	return f(origin, size, dir, distance, mask)
}

// Colliders are the actor's collider bounds for the current step.
type Colliders struct {
	Feet Bounds
	Body Bounds
}

type ProbeKind uint8

const (
	ProbeGround ProbeKind = iota
	ProbeHead
)

// DebugRay is one edge of a probe visualisation.
type DebugRay struct {
	Probe ProbeKind
	From  Vec2
	To    Vec2
	Hit   bool
}

func (c *Controller) collisionChecks(col Colliders, prober Prober) []DebugRay {
	var rays []DebugRay
	s := &c.state
	p := &c.params

	groundOrigin := Vec2{X: col.Feet.Center().X, Y: col.Feet.Min.Y}
	groundSize := Vec2{X: col.Feet.Size().X, Y: p.GroundDetectionRayLength}
	s.Grounded = boxCast(prober, groundOrigin, groundSize, Down, p.GroundDetectionRayLength, p.GroundLayer)
	if p.DebugShowIsGroundedBox {
		rays = append(rays, probeRays(ProbeGround, groundOrigin, groundSize, Down, p.GroundDetectionRayLength, s.Grounded)...)
	}

	headOrigin := Vec2{X: col.Feet.Center().X, Y: col.Body.Max.Y}
	headSize := Vec2{X: col.Feet.Size().X * p.HeadWidth, Y: p.HeadDetectionRayLength}
	s.BumpedHead = boxCast(prober, headOrigin, headSize, Up, p.HeadDetectionRayLength, p.GroundLayer)
	if p.DebugShowHeadBumpBox {
		rays = append(rays, probeRays(ProbeHead, headOrigin, headSize, Up, p.HeadDetectionRayLength, s.BumpedHead)...)
	}

	return rays
}

func boxCast(prober Prober, origin, size, dir Vec2, distance float64, mask uint32) bool {
	if prober == nil {
		return false
	}
	return prober.BoxCast(origin, size, dir, distance, mask)
}

// probeRays outlines a probe: both side edges along the sweep and the far edge.
func probeRays(kind ProbeKind, origin, size, dir Vec2, distance float64, hit bool) []DebugRay {
	left := Vec2{X: origin.X - size.X/2, Y: origin.Y}
	right := Vec2{X: origin.X + size.X/2, Y: origin.Y}
	sweep := dir.Scale(distance)
	return []DebugRay{
		{Probe: kind, From: left, To: left.Add(sweep), Hit: hit},
		{Probe: kind, From: right, To: right.Add(sweep), Hit: hit},
		{Probe: kind, From: left.Add(sweep), To: right.Add(sweep), Hit: hit},
	}
}
