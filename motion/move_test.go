package motion

import (
	"math"
	"testing"
)

func TestTurnCheck(t *testing.T) {
	cases := []struct {
		name      string
		start     bool
		input     float64
		wantFlip  float64
		wantRight bool
	}{
		{"right_to_left", true, -1, -180, false},
		{"left_to_right", false, 1, 180, true},
		{"keep_right", true, 1, 0, true},
		{"keep_left", false, -0.5, 0, false},
		{"no_input", true, 0, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestActor(DefaultParameters(), 0)
			a.c.state.FacingRight = tc.start

			out := a.cycle(Input{Move: Vec2{X: tc.input}})
			if out.Flip != tc.wantFlip || out.FacingRight != tc.wantRight {
				t.Fatalf("expected flip=%v right=%v, got flip=%v right=%v", tc.wantFlip, tc.wantRight, out.Flip, out.FacingRight)
			}
			again := a.cycle(Input{Move: Vec2{X: tc.input}})
			if again.Flip != 0 {
				t.Fatalf("holding the same direction must not flip again, got %v", again.Flip)
			}
		})
	}
}

func TestIdleThreshold(t *testing.T) {
	p := DefaultParameters()
	a := newTestActor(p, 0)
	a.settle(t)

	for i := 0; i < 30; i++ {
		out := a.cycle(Input{Move: Vec2{X: 1}})
		if out.Locomotion != LocomotionRun {
			t.Fatalf("expected run while moving, got %v", out.Locomotion)
		}
	}

	sawIdle := false
	for i := 0; i < 100; i++ {
		out := a.cycle(Input{})
		speed := math.Abs(out.Velocity.X)
		switch {
		case speed <= p.IdleThreshold && out.Locomotion != LocomotionIdle:
			t.Fatalf("cycle %d: speed %v at or under threshold but still %v", i, speed, out.Locomotion)
		case speed > p.IdleThreshold && out.Locomotion != LocomotionRun:
			t.Fatalf("cycle %d: speed %v over threshold but %v", i, speed, out.Locomotion)
		}
		if out.Locomotion == LocomotionIdle {
			sawIdle = true
		}
	}
	if !sawIdle {
		t.Fatalf("never returned to idle")
	}
}

func TestRunSpeed(t *testing.T) {
	cases := []struct {
		name string
		run  bool
		want float64
	}{
		{"walk", false, DefaultParameters().MaxWalkSpeed},
		{"run", true, DefaultParameters().MaxRunSpeed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := newTestActor(DefaultParameters(), 0)
			var out Output
			for i := 0; i < 500; i++ {
				out = a.cycle(Input{Move: Vec2{X: 1}, RunHeld: tc.run})
				if out.Velocity.X > tc.want {
					t.Fatalf("cycle %d: overshot target speed %v with %v", i, tc.want, out.Velocity.X)
				}
			}
			if math.Abs(out.Velocity.X-tc.want) > 1e-3 {
				t.Fatalf("expected to converge to %v, got %v", tc.want, out.Velocity.X)
			}
		})
	}
}

func TestDecelerationDecays(t *testing.T) {
	cases := []struct {
		name  string
		decel float64
	}{
		{"ground_default", DefaultParameters().GroundDeceleration},
		{"slow", 1},
		{"instant", 1 / testDT},
		{"overshooting_factor", 5 / testDT},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultParameters()
			p.GroundDeceleration = tc.decel
			a := newTestActor(p, 0)
			a.settle(t)
			for i := 0; i < 60; i++ {
				a.cycle(Input{Move: Vec2{X: 1}, RunHeld: true})
			}

			prev := a.c.State().MoveVelocity.X
			if prev <= 0 {
				t.Fatalf("expected positive speed before braking, got %v", prev)
			}
			for i := 0; i < 2000; i++ {
				out := a.cycle(Input{})
				if out.Velocity.X < 0 || out.Velocity.X > prev {
					t.Fatalf("cycle %d: speed must decay monotonically toward zero, %v then %v", i, prev, out.Velocity.X)
				}
				prev = out.Velocity.X
			}
			if prev > 1e-6 {
				t.Fatalf("speed did not decay to zero, got %v", prev)
			}
			if tc.decel*testDT >= 1 && prev != 0 {
				t.Fatalf("full deceleration factor should stop in one step, got %v", prev)
			}
		})
	}
}

func TestAirUsesAirTuning(t *testing.T) {
	p := DefaultParameters()
	p.AirAcceleration = 0
	a := newTestActor(p, 10)

	out := a.cycle(Input{Move: Vec2{X: 1}})
	if out.Velocity.X != 0 {
		t.Fatalf("zero air acceleration should not move the actor, got %v", out.Velocity.X)
	}
	if out.Locomotion != LocomotionRun {
		t.Fatalf("input in the air still selects run, got %v", out.Locomotion)
	}
}
