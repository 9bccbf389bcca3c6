package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/tile-survivor/config"
	"github.com/lixenwraith/tile-survivor/engine"
	"github.com/lixenwraith/tile-survivor/event"
	"github.com/lixenwraith/tile-survivor/render"
	"github.com/lixenwraith/tile-survivor/status"
	"github.com/lixenwraith/tile-survivor/system"
	"github.com/lixenwraith/tile-survivor/vmath"
)

// keyHoldFrames keeps a direction pressed between terminal key repeats, which carry no release events
const keyHoldFrames = 8

// inputState accumulates key presses between frames
type inputState struct {
	move       vmath.Vec3
	holdX      int
	holdY      int
	facing     float64
	useAbility bool
}

// press records a direction on one axis, leaving the other axis held
func (in *inputState) press(dx, dy float64) {
	if dx != 0 {
		in.move.X = dx
		in.holdX = keyHoldFrames
	}
	if dy != 0 {
		in.move.Y = dy
		in.holdY = keyHoldFrames
	}
}

// frame returns this frame's intent and ages held keys
func (in *inputState) frame() (vmath.Vec3, float64, bool) {
	if in.holdX == 0 {
		in.move.X = 0
	}
	if in.holdY == 0 {
		in.move.Y = 0
	}
	move := in.move
	if !vmath.V3IsZero(move) {
		in.facing = math.Atan2(move.Y, move.X)
	}
	ability := in.useAbility

	in.holdX = max(in.holdX-1, 0)
	in.holdY = max(in.holdY-1, 0)
	in.useAbility = false
	return move, in.facing, ability
}

// game owns the simulation and drives one fixed step per frame
type game struct {
	ctx    *engine.Context
	router *engine.Router
	host   *render.TerminalHost
	dt     float64
	input  inputState
	seed   uint64
}

func newGame(cfg config.Config, screen tcell.Screen, sounds render.SoundPlayer, logger *logrus.Logger) (*game, error) {
	host := render.NewTerminalHost(screen, sounds)
	ctx := engine.NewContext(engine.NewWorld(), engine.NewFastRand(cfg.Seed), host,
		logger.WithField("component", "sim"), status.NewRegistry())

	router := engine.NewRouter(cfg.MaxEventsPerDrain)
	system.Register(router, ctx, system.Options{MapGenHalfWidth: cfg.MapGenHalfWidth})

	traced, err := cfg.TraceEventTypes()
	if err != nil {
		return nil, err
	}
	router.Trace(traced...)

	ctx.Log.WithFields(logrus.Fields{
		"seed":          cfg.Seed,
		"tick":          cfg.TickInterval(),
		"tick_pipeline": router.Pipeline(event.EventTick),
	}).Info("simulation ready")

	g := &game{
		ctx:    ctx,
		router: router,
		host:   host,
		dt:     cfg.TickInterval().Seconds(),
		seed:   cfg.Seed,
	}
	g.restart()
	return g, nil
}

// restart clears the world and drains the resulting spawns
func (g *game) restart() {
	g.ctx.Log.Info("restart")
	g.ctx.PushEvent(event.EventRestart, nil)
	g.router.Drain(g.ctx)
}

// handleKey applies a key press; returns false when the player asked to quit
func (g *game) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		g.input.press(0, -1)
	case tcell.KeyDown:
		g.input.press(0, 1)
	case tcell.KeyLeft:
		g.input.press(-1, 0)
	case tcell.KeyRight:
		g.input.press(1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'w', 'W':
			g.input.press(0, -1)
		case 's', 'S':
			g.input.press(0, 1)
		case 'a', 'A':
			g.input.press(-1, 0)
		case 'd', 'D':
			g.input.press(1, 0)
		case ' ':
			g.input.useAbility = true
		case 'r', 'R':
			g.restart()
		}
	}
	return true
}

// step advances one frame: input and Tick drained, then PostTick drained, then presentation
func (g *game) step() {
	g.ctx.World.AdvanceFrame()

	var input *event.PlayerInputPayload
	move, facing, ability := g.input.frame()
	if player := g.ctx.World.Player; g.ctx.World.Entities.Contains(player) {
		input = &event.PlayerInputPayload{
			Player:     player,
			MoveDir:    move,
			Facing:     facing,
			UseAbility: ability,
		}
	}
	system.Frame(g.router, g.ctx, input, g.dt)

	camera := vmath.Vec3{}
	if _, body, ok := g.ctx.World.PlayerBody(); ok {
		camera = body.Pos
	}
	g.host.Present(camera, g.statusLine())
}

func (g *game) statusLine() string {
	alive := g.ctx.Status.Bools.Get(status.KeyPlayerAlive).Load()
	hint := "wasd/arrows move  space attack  r restart  q quit"
	if !alive {
		hint = "you died  r restart  q quit"
	}
	return fmt.Sprintf(" seed %d | %s | %s", g.seed, g.ctx.Status.Summary(), hint)
}
