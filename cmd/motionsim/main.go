// Command motionsim runs a level headless for a number of frames with the
// player driven by a script, and prints the player's motion trace.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/prefabs"
)

type config struct {
	level   string
	tuning  string
	script  string
	frames  int
	dt      float64
	format  string
	prefabs string
}

// sample is one line of the trace, in motion units.
type sample struct {
	Frame     int     `json:"frame"`
	Steps     int     `json:"steps"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	VX        float64 `json:"vx"`
	VY        float64 `json:"vy"`
	Phase     string  `json:"phase"`
	Grounded  bool    `json:"grounded"`
	JumpsUsed int     `json:"jumps_used"`
	Facing    string  `json:"facing"`
}

func main() {
	var cfg config
	flag.StringVar(&cfg.level, "level", "test_room.json", "level file on disk or in the embedded levels")
	flag.StringVar(&cfg.tuning, "tuning", "", "tuning document applied to the player")
	flag.StringVar(&cfg.script, "script", "hopper.tengo", "tengo script that drives the player")
	flag.IntVar(&cfg.frames, "frames", 600, "frames to simulate")
	flag.Float64Var(&cfg.dt, "dt", 1.0/60.0, "frame delta in seconds")
	flag.StringVar(&cfg.format, "format", "text", "trace format: text or json")
	flag.StringVar(&cfg.prefabs, "prefabs", prefabs.Dir, "prefab directory overriding the embedded prefabs")
	logLevel := flag.String("log-level", "warn", "debug, info, warn or error")
	flag.Parse()

	log := logger.Init(logger.Config{Level: *logLevel, Format: "text", Output: os.Stderr})
	if err := run(cfg, os.Stdout); err != nil {
		log.Error("motionsim failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg config, out io.Writer) error {
	if cfg.frames < 0 || cfg.dt <= 0 {
		return fmt.Errorf("frames must be non-negative and dt positive")
	}
	prefabs.Dir = cfg.prefabs

	lvl, err := levels.Load(cfg.level)
	if err != nil {
		return err
	}
	w := ecs.NewWorld()
	pipeline := system.NewPipeline(nil, nil)
	if err := entity.LoadLevelToWorld(w, lvl); err != nil {
		return err
	}

	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return fmt.Errorf("level %s has no player", lvl.Name)
	}
	if err := ecs.Add(w, player, component.ScriptInputComponent, component.ScriptInput{Path: cfg.script}); err != nil {
		return err
	}
	if cfg.tuning != "" {
		data, err := os.ReadFile(cfg.tuning)
		if err != nil {
			return err
		}
		params, err := prefabs.ParseTuning(data)
		if err != nil {
			return err
		}
		m, _ := ecs.Get(w, player, component.MotionComponent)
		m.Controller.SetParameters(params)
	}

	trace := newTraceWriter(cfg.format, out)
	for frame := 0; frame < cfg.frames; frame++ {
		steps := pipeline.Advance(w, cfg.dt)
		if err := trace.write(sampleOf(w, player, frame, steps)); err != nil {
			return err
		}
	}

	for _, kind := range []ecs.MotionEventKind{ecs.MotionEventJumped, ecs.MotionEventLanded, ecs.MotionEventHeadBump, ecs.MotionEventTurned} {
		logger.L().Info("motion events", "kind", string(kind), "count", pipeline.Events.Count(kind))
	}
	return nil
}

func sampleOf(w *ecs.World, e ecs.Entity, frame, steps int) sample {
	s := sample{Frame: frame, Steps: steps}
	if t, ok := ecs.Get(w, e, component.TransformComponent); ok {
		pos := system.ToMotion(t.X, t.Y)
		s.X, s.Y = pos.X, pos.Y
	}
	if m, ok := ecs.Get(w, e, component.MotionComponent); ok && m.Controller != nil {
		st := m.Controller.State()
		s.VX = st.MoveVelocity.X
		s.VY = st.VerticalVelocity
		s.Phase = st.Phase.String()
		s.Grounded = st.Grounded
		s.JumpsUsed = st.JumpsUsed
		s.Facing = "left"
		if st.FacingRight {
			s.Facing = "right"
		}
	}
	return s
}

type traceWriter struct {
	out io.Writer
	enc *json.Encoder
}

func newTraceWriter(format string, out io.Writer) *traceWriter {
	tw := &traceWriter{out: out}
	if format == "json" {
		tw.enc = json.NewEncoder(out)
	}
	return tw
}

func (tw *traceWriter) write(s sample) error {
	if tw.enc != nil {
		return tw.enc.Encode(s)
	}
	_, err := fmt.Fprintf(tw.out, "%5d %d x=%8.3f y=%8.3f vx=%7.3f vy=%8.3f %-12s grounded=%-5v jumps=%d %s\n",
		s.Frame, s.Steps, s.X, s.Y, s.VX, s.VY, s.Phase, s.Grounded, s.JumpsUsed, s.Facing)
	return err
}
