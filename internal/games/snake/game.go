// Package snake implements the classic snake game on the shared 10x20
// grid: steer the body onto the blinking food, grow, and fill the
// whole playfield to win.
package snake

import (
	"fmt"

	"github.com/gfcarvalho/brickgame/internal/config"
	"github.com/gfcarvalho/brickgame/internal/core"
	"github.com/gfcarvalho/brickgame/internal/engine"
	"github.com/gfcarvalho/brickgame/internal/registry"
)

// victoryLength is the body size that fills the entire grid.
const victoryLength = core.GridWidth * core.GridHeight

// Game implements the Snake game.
type Game struct {
	engine.Base

	cfg config.SnakeConfig
	rtc core.RuntimeConfig

	body *core.Group
	food *core.BlinkingCell

	dir core.Direction
	// dirLocked allows only one direction change per movement step, so
	// two quick presses cannot fold the head back into the neck.
	dirLocked bool
	growing   bool
}

// Package-level config path override, set by the CLI before Reset.
var configPath string

// SetConfigPath sets the config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Snake game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "snake" }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg, _ = config.LoadSnake(configPath)
	g.rtc = cfg
	g.Init(cfg, core.KindBody, core.KindFood)

	g.dir = core.DirDown
	g.dirLocked = false
	g.growing = false

	// The body spawns head-first in the upper half, pointing down.
	g.body = g.Group(core.KindBody)
	for _, pos := range []core.Position{{Col: 4, Row: 5}, {Col: 4, Row: 4}, {Col: 4, Row: 3}} {
		g.body.Add(core.NewCell(pos))
	}

	g.food = core.NewBlinkingCell(g.randomFreeCell())
	g.Group(core.KindFood).Add(g.food)
}

// randomFreeCell draws grid positions until one misses the body.
func (g *Game) randomFreeCell() core.Position {
	for {
		pos := core.Position{
			Col: g.Rand().Intn(core.GridWidth),
			Row: g.Rand().Intn(core.GridHeight),
		}
		if !g.body.Occupies(pos) {
			return pos
		}
	}
}

// head returns the leading body segment.
func (g *Game) head() core.Entity { return g.body.At(0) }

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
	g.UpdateEntities(0) // Drives the food's blink; nothing self-moves.
	g.steer(in)
	g.checkEat()

	speed := g.cfg.Movement.Speed
	if in.Has(core.ActionAccelerate) {
		speed *= g.cfg.Movement.BoostRatio
	}
	if g.Clock().Every(speed) {
		g.updateScore()
		g.move()
		g.dirLocked = false
	}

	return core.StepResult{State: g.State()}
}

// steer applies at most one direction change per movement step,
// rejecting reversals that would drive the head into the neck.
func (g *Game) steer(in core.InputFrame) {
	if g.dirLocked {
		return
	}
	var want core.Direction
	switch {
	case in.Has(core.ActionUp):
		want = core.DirUp
	case in.Has(core.ActionDown):
		want = core.DirDown
	case in.Has(core.ActionLeft):
		want = core.DirLeft
	case in.Has(core.ActionRight):
		want = core.DirRight
	default:
		return
	}
	if !want.Opposite(g.dir) {
		g.dir = want
		g.dirLocked = true
	}
}

// checkEat marks the body to grow and respawns the food when the head
// reaches it. Runs every tick so a fast head never phases through.
func (g *Game) checkEat() {
	if g.head().Position() == g.food.Position() {
		g.growing = true
		g.food.SetPosition(g.randomFreeCell())
	}
}

// updateScore awards points on growth, scaled by how long the body
// already is. Longer snakes earn more per meal.
func (g *Game) updateScore() {
	if !g.growing {
		return
	}
	n := g.body.Len()
	switch {
	case n > 3 && n <= 25:
		g.AddScore(15)
	case n > 25 && n <= 50:
		g.AddScore(45)
	case n > 50 && n <= 100:
		g.AddScore(100)
	case n > 100 && n < victoryLength:
		g.AddScore(250)
	}
}

// move advances the body one step: a new head segment appears ahead,
// and the tail is dropped unless the snake is growing.
func (g *Game) move() {
	dc, dr := g.dir.Offset()
	newHead := g.head().Position().Add(dc, dr)

	g.body.Insert(core.NewCell(newHead))
	if g.growing {
		g.growing = false
	} else {
		g.body.Pop()
	}

	g.checkEnd(newHead)
}

// checkEnd resolves the round after a move: victory once the body
// fills the grid, defeat when the head leaves it or bites the body.
func (g *Game) checkEnd(head core.Position) {
	if g.body.Len() == victoryLength {
		g.EndVictory()
		return
	}
	if !head.InBounds() {
		g.EndDefeat()
		return
	}
	for _, seg := range g.body.Members()[1:] {
		if seg.Position() == head {
			g.EndDefeat()
			return
		}
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	bd := engine.NewBoard(dst)
	bd.DrawFrame(dst, g.Title(), g.State(), fmt.Sprintf("Length: %d", g.body.Len()))
	bd.PlotGroup(dst, g.Group(core.KindBody))
	bd.PlotGroup(dst, g.Group(core.KindFood))
	bd.DrawStateOverlays(dst, g.State())
}
