package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/device"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/render"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/logger"
	"github.com/milk9111/platformer/prefabs"
)

var backgroundColor = color.NRGBA{R: 0x10, G: 0x12, B: 0x1a, A: 0xff}

type Options struct {
	Level  string
	Tuning string
	Debug  bool
	Watch  bool
}

type Game struct {
	world    *ecs.World
	pipeline *system.Pipeline
	renderer *render.RenderSystem
	watcher  *prefabs.Watcher

	debug   bool
	paused  bool
	pauseUI *ebitenui.UI
}

func NewGame(opts Options) (*Game, error) {
	lvl, err := levels.Load(opts.Level)
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:    ecs.NewWorld(),
		renderer: render.NewRenderSystem(),
		debug:    opts.Debug,
	}

	var poller system.Poller
	if opts.Watch {
		w, err := newPrefabWatcher()
		if err != nil {
			logger.L().Warn("hot reload disabled", "err", err)
		} else {
			g.watcher = w
			poller = w
		}
	}
	g.pipeline = system.NewPipeline(system.NewInputSystem(device.Sample), poller)

	if err := entity.LoadLevelToWorld(g.world, lvl); err != nil {
		g.Close()
		return nil, err
	}
	if opts.Tuning != "" {
		if err := applyTuningFile(g.world, opts.Tuning); err != nil {
			g.Close()
			return nil, err
		}
	}

	g.pauseUI = NewPauseUI(g)
	logger.L().Info("level loaded", "level", lvl.Name, "entities", len(g.world.Entities()))
	return g, nil
}

// newPrefabWatcher watches the prefab directory and its scripts, when they
// exist on disk.
func newPrefabWatcher() (*prefabs.Watcher, error) {
	var dirs []string
	for _, dir := range []string{prefabs.Dir, filepath.Join(prefabs.Dir, "scripts")} {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			dirs = append(dirs, dir)
		}
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no prefab directory at %s", prefabs.Dir)
	}
	return prefabs.NewWatcher(dirs...)
}

// applyTuningFile replaces the player's parameters with a tuning document.
func applyTuningFile(w *ecs.World, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read tuning: %w", err)
	}
	params, err := prefabs.ParseTuning(data)
	if err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return errors.New("tuning: level has no player")
	}
	m, ok := ecs.Get(w, player, component.MotionComponent)
	if !ok || m.Controller == nil {
		return errors.New("tuning: player has no motion controller")
	}
	m.Controller.SetParameters(params)
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			logger.L().Warn("close watcher", "err", err)
		}
		g.watcher = nil
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	dt := min(1/float64(ebiten.TPS()), common.MaxFrameDelta)
	g.pipeline.Advance(g.world, dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.renderer.Draw(g.world, screen)

	if g.debug {
		render.DrawPhysicsDebug(g.pipeline.Physics.Space(), screen)
		render.DrawProbeDebug(g.world, screen)
		render.DrawMotionStateDebug(g.world, screen)
	}

	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
