// Package breakout implements a brick-breaking game on the shared
// 10x20 grid: launch the ball from the paddle, clear three stages of
// bricks, and don't let the ball past the bottom row.
package breakout

import (
	"fmt"

	"github.com/gfcarvalho/brickgame/internal/config"
	"github.com/gfcarvalho/brickgame/internal/core"
	"github.com/gfcarvalho/brickgame/internal/engine"
	"github.com/gfcarvalho/brickgame/internal/registry"
)

// ballSpawn is where the ball rests on the paddle at stage start.
var ballSpawn = core.Position{Col: 4, Row: 18}

// Game implements the Breakout game.
type Game struct {
	engine.Base

	cfg config.BreakoutConfig
	rtc core.RuntimeConfig

	level  int
	bricks map[core.Position]core.Entity
	total  int // Bricks at stage start

	ball       *core.Cell
	velC, velR int
	// attached keeps the ball riding the paddle until launch.
	attached bool
	// dragging is the paddle-catch toggle: the ball freezes on paddle
	// contact for one step, then the next contact releases it into the
	// reflection check.
	dragging   bool
	ballFrozen bool

	paddle []*core.Cell // Ordered left to right
}

// Package-level config path override, set by the CLI before Reset.
var configPath string

// SetConfigPath sets the config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Breakout game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "breakout" }

// Title returns the display name.
func (g *Game) Title() string { return "Breakout" }

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg, _ = config.LoadBreakout(configPath)
	g.rtc = cfg
	g.Init(cfg, core.KindBrick, core.KindBall, core.KindPaddle)

	g.level = 1
	g.buildStage()
}

// buildStage lays out the current level's bricks and respawns the
// ball and paddle in their starting spots.
func (g *Game) buildStage() {
	bricks := g.Group(core.KindBrick)
	bricks.Clear()
	g.bricks = make(map[core.Position]core.Entity)
	for _, pos := range levelLayout(g.level) {
		c := core.NewCell(pos)
		g.bricks[pos] = c
		bricks.Add(c)
	}
	g.total = len(g.bricks)

	balls := g.Group(core.KindBall)
	balls.Clear()
	g.ball = core.NewCell(ballSpawn)
	balls.Add(g.ball)
	g.velC, g.velR = 0, 0
	g.attached = true
	g.dragging = false
	g.ballFrozen = false

	paddles := g.Group(core.KindPaddle)
	paddles.Clear()
	width := g.cfg.Paddle.Width
	if width <= 0 || width > core.GridWidth {
		width = 3
	}
	first := (core.GridWidth - width) / 2
	g.paddle = g.paddle[:0]
	for i := 0; i < width; i++ {
		c := core.NewCell(core.Position{Col: first + i, Row: core.GridHeight - 1})
		g.paddle = append(g.paddle, c)
		paddles.Add(c)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && !g.Running() {
		g.rtc.Seed = g.Rand().Int63()
		g.Reset(g.rtc)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.TogglePause()
	}
	if !g.Active() {
		return core.StepResult{State: g.State()}
	}

	g.AdvanceClock()

	boost := in.Has(core.ActionAccelerate)
	speed := g.cfg.Physics.BallSpeed
	if boost {
		speed *= g.cfg.Physics.BoostRatio
	}

	if g.Clock().Every(speed) {
		g.checkHit()
		g.manageLevels()
		if !g.Running() {
			return core.StepResult{State: g.State()}
		}

		g.borderReflect()

		// A border reflection can put the ball straight into a brick.
		g.checkHit()
		g.manageLevels()
		if !g.Running() {
			return core.StepResult{State: g.State()}
		}

		g.checkPaddleDrag()
		g.checkPaddleReflect()
		g.borderReflect()
		g.movePaddle(in, boost)
		g.moveBall()
	}

	if g.ball.Position().Row > core.GridHeight-1 {
		g.EndDefeat()
	}

	return core.StepResult{State: g.State()}
}

// removeBrick destroys one brick and scores it.
func (g *Game) removeBrick(pos core.Position) {
	e, ok := g.bricks[pos]
	if !ok {
		return
	}
	delete(g.bricks, pos)
	g.Group(core.KindBrick).Remove(e)
	g.AddScore(levelPoints(g.level))
}

// checkHit resolves ball-brick collisions one step ahead of the ball.
// A corner hit breaks both flanking bricks (and the vertex brick when
// present) and reverses both axes; a single-axis hit breaks one brick
// and reverses that axis; a lone vertex hit reverses both.
func (g *Game) checkHit() {
	a, b := g.velC, g.velR
	pos := g.ball.Position()
	horiz := pos.Add(a, 0)
	vert := pos.Add(0, b)
	vertex := pos.Add(a, b)

	_, hitH := g.bricks[horiz]
	_, hitV := g.bricks[vert]

	switch {
	case hitH && hitV:
		g.velC, g.velR = -a, -b
		g.removeBrick(horiz)
		g.removeBrick(vert)
		g.removeBrick(vertex)
	case hitH:
		g.velC = -a
		g.removeBrick(horiz)
	case hitV:
		g.velR = -b
		g.removeBrick(vert)
	default:
		if _, hitX := g.bricks[vertex]; hitX {
			g.velC, g.velR = -a, -b
			g.removeBrick(vertex)
		}
	}
}

// manageLevels advances to the next stage once every brick is gone,
// paying the stage bonus. Clearing the last stage wins the game.
func (g *Game) manageLevels() {
	if len(g.bricks) > 0 {
		return
	}
	g.level++
	g.AddScore(levelBonus(g.level))
	if g.level > stageCount {
		g.EndVictory()
		return
	}
	g.buildStage()
}

// borderReflect bounces the ball off the side and top walls.
func (g *Game) borderReflect() {
	pos := g.ball.Position()
	if (pos.Col == 0 && g.velC == -1) || (pos.Col == core.GridWidth-1 && g.velC == 1) {
		g.velC = -g.velC
	}
	if pos.Row == 0 && g.velR == -1 {
		g.velR = 1
	}
}

// paddleAt reports whether a paddle cell sits at the position.
func (g *Game) paddleAt(pos core.Position) bool {
	for _, c := range g.paddle {
		if c.Position() == pos {
			return true
		}
	}
	return false
}

// checkPaddleDrag freezes the ball for the step it touches the paddle
// from above; the toggle releases it on the following contact so the
// reflection check can fire. A caught ball rides along with the
// paddle, so losing contact also clears the toggle.
func (g *Game) checkPaddleDrag() {
	if g.attached {
		return
	}
	next := g.ball.Position().Add(0, g.velR)
	if g.paddleAt(next) {
		g.ballFrozen = true
		g.dragging = !g.dragging
	} else {
		g.ballFrozen = false
		g.dragging = false
	}
}

// checkPaddleReflect bounces the ball up off the paddle. The outer
// paddle cells also steer it: the left corner sends it left, the
// right corner sends it right.
func (g *Game) checkPaddleReflect() {
	if g.attached || g.dragging {
		return
	}
	pos := g.ball.Position()
	below := pos.Add(0, g.velR)
	diag := pos.Add(g.velC, g.velR)
	if !g.paddleAt(below) && !g.paddleAt(diag) {
		return
	}
	g.velR = -1
	left := g.paddle[0].Position()
	right := g.paddle[len(g.paddle)-1].Position()
	switch {
	case below == left || diag == left:
		g.velC = -1
	case below == right || diag == right:
		g.velC = 1
	}
}

// movePaddle shifts the paddle from this frame's input, carrying an
// attached or caught ball with it, and launches the ball up-right when
// the accelerate press arrives on an untouched stage.
func (g *Game) movePaddle(in core.InputFrame, boost bool) {
	var a int
	switch {
	case in.Has(core.ActionLeft):
		a = -1
	case in.Has(core.ActionRight):
		a = 1
	}
	if a != 0 {
		first := g.paddle[0].Position().Col
		if 0 <= first+a && first+a <= core.GridWidth-len(g.paddle) {
			for _, c := range g.paddle {
				c.SetPosition(c.Position().Add(a, 0))
			}
			if g.attached || g.ballFrozen {
				g.ball.SetPosition(g.ball.Position().Add(a, 0))
			}
		}
	}

	if boost && g.attached && len(g.bricks) == g.total {
		g.attached = false
		g.velC, g.velR = 1, -1
	}
}

// moveBall applies the ball's velocity unless it is riding or caught
// by the paddle.
func (g *Game) moveBall() {
	if g.attached || g.ballFrozen {
		return
	}
	g.ball.SetPosition(g.ball.Position().Add(g.velC, g.velR))
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	bd := engine.NewBoard(dst)
	bd.DrawFrame(dst, g.Title(), g.State(), fmt.Sprintf("Stage: %d/%d", core.Min(g.level, stageCount), stageCount))
	bd.PlotGroup(dst, g.Group(core.KindBrick))
	bd.PlotGroup(dst, g.Group(core.KindPaddle))
	bd.PlotGroup(dst, g.Group(core.KindBall))
	bd.DrawStateOverlays(dst, g.State())
}
