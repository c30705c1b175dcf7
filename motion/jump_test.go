package motion

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestGroundedJump(t *testing.T) {
	p := DefaultParameters()
	a := newTestActor(p, 0)
	a.settle(t)

	a.c.Frame(testDT, Input{JumpPressed: true})
	s := a.c.State()
	if s.VerticalVelocity != p.InitialJumpVelocity {
		t.Fatalf("expected vertical velocity %v, got %v", p.InitialJumpVelocity, s.VerticalVelocity)
	}
	if !s.IsJumping() || s.JumpsUsed != 1 {
		t.Fatalf("expected a jump with one credit used, got phase=%v jumps=%d", s.Phase, s.JumpsUsed)
	}
	if s.JumpBufferTimer != 0 {
		t.Fatalf("jump should consume the buffer, got %v", s.JumpBufferTimer)
	}

	out := a.step(Input{})
	if out.Velocity.Y <= 0 {
		t.Fatalf("expected upward velocity after the first step, got %v", out.Velocity.Y)
	}
}

func TestLandingResetsJumpState(t *testing.T) {
	cases := []struct {
		name      string
		releaseAt int
		maxCycles int
		ceilingAt float64
	}{
		{name: "full_jump", releaseAt: -1, maxCycles: 200},
		{name: "jump_cut", releaseAt: 3, maxCycles: 200},
		{name: "head_bump", releaseAt: -1, maxCycles: 200, ceilingAt: 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParameters()
			a := newTestActor(p, 0)
			a.world.ceiling = tc.ceilingAt
			a.settle(t)

			a.cycle(Input{JumpPressed: true})
			airborne := false
			landed := false
			for i := 0; i < tc.maxCycles; i++ {
				in := Input{}
				if i == tc.releaseAt {
					in.JumpReleased = true
				}
				a.c.Frame(testDT, in)
				s := a.c.State()
				if s.Grounded && s.VerticalVelocity <= 0 && (s.IsJumping() || s.IsFalling()) {
					t.Fatalf("cycle %d: grounded with non-positive velocity but still airborne: %+v", i, s)
				}
				if !s.Grounded {
					airborne = true
				}
				if airborne && s.Grounded && s.Phase == PhaseGrounded {
					if s.JumpsUsed != 0 || s.FastFallTime != 0 || s.PastApexThreshold {
						t.Fatalf("landing did not reset jump state: %+v", s)
					}
					if s.VerticalVelocity != p.WorldGravity {
						t.Fatalf("expected resting velocity %v, got %v", p.WorldGravity, s.VerticalVelocity)
					}
					landed = true
					break
				}
				a.step(in)
			}
			if !landed {
				t.Fatalf("actor never landed")
			}
		})
	}
}

func TestJumpCreditsAreBounded(t *testing.T) {
	cases := []struct {
		name    string
		allowed int
		every   int
	}{
		{"single_mash", 1, 2},
		{"double_mash", 2, 3},
		{"triple_spaced", 3, 7},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParameters()
			p.NumberOfJumpsAllowed = tc.allowed
			a := newTestActor(p, 0)
			a.settle(t)

			peak := 0
			for i := 0; i < 400; i++ {
				in := Input{JumpPressed: i%tc.every == 0, JumpReleased: i%tc.every == 1}
				a.cycle(in)
				s := a.c.State()
				if s.JumpsUsed > tc.allowed {
					t.Fatalf("cycle %d: %d jumps used, %d allowed", i, s.JumpsUsed, tc.allowed)
				}
				peak = max(peak, s.JumpsUsed)
			}
			if peak != tc.allowed {
				t.Fatalf("expected mashing to reach %d jumps, peaked at %d", tc.allowed, peak)
			}
		})
	}
}

// walkOff leaves the actor airborne without a jump by removing the floor.
func walkOff(t *testing.T, a *testActor) {
	t.Helper()
	a.settle(t)
	a.world.noFloor = true
	a.cycle(Input{})
	if s := a.c.State(); s.Grounded || s.Phase != PhaseFalling {
		t.Fatalf("expected free fall, got grounded=%v phase=%v", s.Grounded, s.Phase)
	}
}

func TestCoyoteJump(t *testing.T) {
	p := DefaultParameters()
	a := newTestActor(p, 0)
	walkOff(t, a)

	a.cycle(Input{})
	a.c.Frame(testDT, Input{JumpPressed: true})
	s := a.c.State()
	if !s.IsJumping() || s.JumpsUsed != 1 {
		t.Fatalf("expected a coyote jump using one credit, got phase=%v jumps=%d", s.Phase, s.JumpsUsed)
	}
	if s.VerticalVelocity != p.InitialJumpVelocity {
		t.Fatalf("expected full jump velocity, got %v", s.VerticalVelocity)
	}
}

func TestCoyoteExpired(t *testing.T) {
	cases := []struct {
		name     string
		allowed  int
		wantJump bool
		wantUsed int
	}{
		{name: "single_jump_denied", allowed: 1, wantJump: false, wantUsed: 0},
		{name: "air_jump_costs_two", allowed: 2, wantJump: true, wantUsed: 2},
		{name: "air_jump_leaves_one", allowed: 3, wantJump: true, wantUsed: 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParameters()
			p.NumberOfJumpsAllowed = tc.allowed
			a := newTestActor(p, 0)
			walkOff(t, a)

			steps := int(p.JumpCoyoteTime/testDT) + 3
			for i := 0; i < steps; i++ {
				a.cycle(Input{})
			}
			if s := a.c.State(); s.CoyoteTimer > 0 {
				t.Fatalf("coyote timer should have lapsed, got %v", s.CoyoteTimer)
			}

			a.c.Frame(testDT, Input{JumpPressed: true})
			s := a.c.State()
			if s.IsJumping() != tc.wantJump || s.JumpsUsed != tc.wantUsed {
				t.Fatalf("expected jumping=%v used=%d, got jumping=%v used=%d", tc.wantJump, tc.wantUsed, s.IsJumping(), s.JumpsUsed)
			}
			if !tc.wantJump {
				for i := 0; i < 20; i++ {
					a.cycle(Input{})
					if a.c.State().IsJumping() {
						t.Fatalf("buffered press must not fire without ground")
					}
				}
			}
		})
	}
}

func TestJumpBuffer(t *testing.T) {
	t.Run("fires_on_landing", func(t *testing.T) {
		p := DefaultParameters()
		p.NumberOfJumpsAllowed = 1
		a := newTestActor(p, 5)

		pressed := false
		for i := 0; i < 200; i++ {
			in := Input{}
			if !pressed && a.pos.Y < 1 {
				in.JumpPressed = true
				pressed = true
				if a.c.State().IsJumping() {
					t.Fatalf("press in the air must not jump with a single credit")
				}
			}
			a.cycle(in)
			if s := a.c.State(); s.IsJumping() {
				if s.JumpsUsed != 1 {
					t.Fatalf("expected one credit used, got %d", s.JumpsUsed)
				}
				return
			}
		}
		t.Fatalf("buffered jump never fired")
	})

	t.Run("expires_before_landing", func(t *testing.T) {
		p := DefaultParameters()
		p.NumberOfJumpsAllowed = 1
		a := newTestActor(p, 5)

		for i := 0; i < 200; i++ {
			a.cycle(Input{JumpPressed: i == 2})
			if a.c.State().IsJumping() {
				t.Fatalf("cycle %d: expired buffer still produced a jump", i)
			}
		}
		s := a.c.State()
		if s.Phase != PhaseGrounded || s.JumpsUsed != 0 {
			t.Fatalf("expected a plain landing, got phase=%v jumps=%d", s.Phase, s.JumpsUsed)
		}
	})
}

func TestTapDuringBufferCutsJump(t *testing.T) {
	p := DefaultParameters()
	a := newTestActor(p, 0)
	a.settle(t)

	a.c.Frame(testDT, Input{JumpPressed: true, JumpReleased: true})
	s := a.c.State()
	if !s.IsFastFalling() || s.JumpsUsed != 1 {
		t.Fatalf("expected a cut jump, got phase=%v jumps=%d", s.Phase, s.JumpsUsed)
	}
	if s.FastFallReleaseSpeed != p.InitialJumpVelocity {
		t.Fatalf("expected release speed %v, got %v", p.InitialJumpVelocity, s.FastFallReleaseSpeed)
	}
}

func TestJumpCut(t *testing.T) {
	p := DefaultParameters()
	a := newTestActor(p, 0)
	a.settle(t)

	a.cycle(Input{JumpPressed: true})
	a.cycle(Input{})
	a.cycle(Input{})

	a.c.Frame(testDT, Input{JumpReleased: true})
	s := a.c.State()
	if !s.IsFastFalling() {
		t.Fatalf("release while rising should start a fast fall, got %v", s.Phase)
	}
	release := s.FastFallReleaseSpeed
	if release <= 0 || release != s.VerticalVelocity {
		t.Fatalf("release speed should capture the rising velocity, got %v (vv=%v)", release, s.VerticalVelocity)
	}

	first := a.step(Input{})
	if !near(first.Velocity.Y, release) {
		t.Fatalf("first cut step should hold the release speed, got %v want %v", first.Velocity.Y, release)
	}
	second := a.cycle(Input{})
	want := release * (1 - testDT/p.TimeForUpwardsCancel)
	if !near(second.Velocity.Y, want) {
		t.Fatalf("second cut step should blend toward zero, got %v want %v", second.Velocity.Y, want)
	}
	third := a.cycle(Input{})
	if third.Velocity.Y >= second.Velocity.Y {
		t.Fatalf("after the cancel window the cut should accelerate downward, got %v then %v", second.Velocity.Y, third.Velocity.Y)
	}
}

func TestReleaseCarriesFastFallTime(t *testing.T) {
	p := DefaultParameters()
	a := newTestActor(p, 0)
	a.settle(t)

	a.cycle(Input{JumpPressed: true})
	a.cycle(Input{JumpReleased: true})
	for i := 0; i < 3; i++ {
		a.cycle(Input{})
	}
	carried := a.c.State().FastFallTime
	if carried <= 0 {
		t.Fatalf("expected fast fall time to accumulate, got %v", carried)
	}

	// An air jump stops the cut but keeps the accumulated time until landing.
	a.c.Frame(testDT, Input{JumpPressed: true})
	s := a.c.State()
	if s.IsFastFalling() || s.JumpsUsed != 2 {
		t.Fatalf("expected an air jump, got phase=%v jumps=%d", s.Phase, s.JumpsUsed)
	}
	if s.FastFallTime != carried {
		t.Fatalf("fast fall time should carry over, got %v want %v", s.FastFallTime, carried)
	}
}

func TestHeadBump(t *testing.T) {
	p := DefaultParameters()
	a := newTestActor(p, 0)
	a.world.ceiling = 3
	a.settle(t)

	a.cycle(Input{JumpPressed: true})
	for i := 0; i < 50; i++ {
		out := a.cycle(Input{})
		s := a.c.State()
		if !s.BumpedHead {
			continue
		}
		if s.Phase != PhaseFastFalling {
			t.Fatalf("head bump should start a fast fall, got %v", s.Phase)
		}
		if out.Velocity.Y > 0 {
			t.Fatalf("head bump should stop the rise, got %v", out.Velocity.Y)
		}
		return
	}
	t.Fatalf("head never touched the ceiling")
}

func TestHeadBumpDuringCarriedCut(t *testing.T) {
	p := DefaultParameters()
	a := newTestActor(p, 0)
	a.settle(t)

	a.cycle(Input{JumpPressed: true})
	a.cycle(Input{JumpReleased: true})
	if s := a.c.State(); s.FastFallTime >= p.TimeForUpwardsCancel || s.FastFallReleaseSpeed <= 0 {
		t.Fatalf("expected a fresh cut, got time=%v release=%v", s.FastFallTime, s.FastFallReleaseSpeed)
	}

	// Air jump straight into a ceiling while the cut timer is still running.
	a.world.ceiling = a.pos.Y + testBodyHeight + 0.01
	out := a.cycle(Input{JumpPressed: true})
	s := a.c.State()
	if s.JumpsUsed != 2 || !s.BumpedHead {
		t.Fatalf("expected an air jump into the ceiling, got jumps=%d bumped=%v", s.JumpsUsed, s.BumpedHead)
	}
	for i := 0; i < 10; i++ {
		if out.Velocity.Y > 0 {
			t.Fatalf("cycle %d: rising after a head bump at %v", i, out.Velocity.Y)
		}
		out = a.cycle(Input{})
	}
}

func TestHeadBumpAfterEarlierCut(t *testing.T) {
	p := DefaultParameters()
	a := newTestActor(p, 0)
	a.settle(t)

	a.cycle(Input{JumpPressed: true})
	a.cycle(Input{})
	a.cycle(Input{JumpReleased: true})
	if s := a.c.State(); s.FastFallReleaseSpeed <= 0 {
		t.Fatalf("cut should record a release speed, got %v", s.FastFallReleaseSpeed)
	}
	for i := 0; i < 300 && !a.c.State().Grounded; i++ {
		a.cycle(Input{})
	}
	a.settle(t)

	a.world.ceiling = 3
	a.cycle(Input{JumpPressed: true})
	bumped := false
	for i := 0; i < 60; i++ {
		out := a.cycle(Input{})
		if a.c.State().BumpedHead {
			bumped = true
		}
		if bumped && out.Velocity.Y > 0 {
			t.Fatalf("cycle %d: rising after a head bump at %v", i, out.Velocity.Y)
		}
	}
	if !bumped {
		t.Fatalf("head never touched the ceiling")
	}
}

func TestApexHang(t *testing.T) {
	p := DefaultParameters()
	p.Gravity = -10
	p.InitialJumpVelocity = 10
	p.ApexThreshold = 0.9
	p.ApexHangTime = 0.05
	p.MaxFallSpeed = 50
	a := newTestActor(p, 0)
	a.settle(t)

	a.cycle(Input{JumpPressed: true})
	var trace []float64
	var phases []Phase
	for i := 0; i < 80; i++ {
		out := a.cycle(Input{})
		trace = append(trace, out.Velocity.Y)
		phases = append(phases, a.c.State().Phase)
	}

	start := -1
	for i, v := range trace {
		if v == 0 {
			start = i
			break
		}
	}
	if start < 0 {
		t.Fatalf("velocity never held at zero: %v", trace)
	}
	for i := start; i < start+2; i++ {
		if trace[i] != 0 || phases[i] != PhaseApexHang {
			t.Fatalf("step %d: expected apex hang at zero velocity, got %v (%v)", i, trace[i], phases[i])
		}
	}
	if trace[start+2] != apexReleaseVelocity {
		t.Fatalf("expected hang release at %v, got %v", apexReleaseVelocity, trace[start+2])
	}
	if phases[start+2] != PhaseDescending {
		t.Fatalf("expected descending after the hang, got %v", phases[start+2])
	}
	if trace[start+3] >= apexReleaseVelocity {
		t.Fatalf("expected descent to accelerate after the hang, got %v", trace[start+3])
	}
	for i := 0; i < start; i++ {
		if trace[i] <= 0 {
			t.Fatalf("step %d: expected rising velocity before the hang, got %v", i, trace[i])
		}
	}
}

func TestVelocityIsClamped(t *testing.T) {
	p := DefaultParameters()
	p.InitialJumpVelocity = 80
	p.NumberOfJumpsAllowed = 3
	a := newTestActor(p, 0)
	a.world.ceiling = 12
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 3000; i++ {
		in := Input{
			Move:         Vec2{X: float64(rng.IntN(3) - 1)},
			JumpPressed:  rng.IntN(5) == 0,
			JumpReleased: rng.IntN(5) == 0,
			RunHeld:      rng.IntN(2) == 0,
		}
		if i%500 == 250 {
			a.world.noFloor = !a.world.noFloor
			if !a.world.noFloor && a.pos.Y < 0 {
				a.pos.Y = 0
			}
		}
		out := a.cycle(in)
		if out.Velocity.Y > MaxRiseSpeed || out.Velocity.Y < -p.MaxFallSpeed {
			t.Fatalf("cycle %d: vertical velocity %v outside [%v, %v]", i, out.Velocity.Y, -p.MaxFallSpeed, MaxRiseSpeed)
		}
		if math.IsNaN(out.Velocity.X) || math.IsNaN(out.Velocity.Y) {
			t.Fatalf("cycle %d: NaN velocity", i)
		}
		if s := a.c.State(); s.JumpsUsed > p.NumberOfJumpsAllowed {
			t.Fatalf("cycle %d: %d jumps used", i, s.JumpsUsed)
		}
	}
}

func TestJumpPhysics(t *testing.T) {
	g, v0 := JumpPhysics(6.5, 1.054, 0.35)
	h := 6.5 * 1.054
	if !near(g, -2*h/(0.35*0.35)) {
		t.Fatalf("unexpected gravity %v", g)
	}
	if !near(v0, -g*0.35) {
		t.Fatalf("unexpected initial velocity %v", v0)
	}
}
