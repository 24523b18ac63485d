// Package asteroids implements an endless shooter on the shared 10x20
// grid: asteroids rain from the top at a growing rate, the shooter
// sweeps the bottom row firing upward, and the occasional sea-mine
// bomb drifts up to clear a chunk of the field when something falls
// into it.
package asteroids

import (
	"fmt"

	"github.com/gfcarvalho/brickgame/internal/config"
	"github.com/gfcarvalho/brickgame/internal/core"
	"github.com/gfcarvalho/brickgame/internal/engine"
	"github.com/gfcarvalho/brickgame/internal/registry"
)

const (
	// pointsPerKill is the award for each asteroid destroyed.
	pointsPerKill = 5

	// Spawn probability per column ramps from rampStart to rampCap
	// over rampSeconds of play. Anything past 0.5 is unbeatable.
	rampStart   = 0.3
	rampCap     = 0.45
	rampSeconds = 180
)

// Game implements the Asteroids game.
type Game struct {
	engine.Base

	cfg config.AsteroidsConfig
	rtc core.RuntimeConfig

	shooter *core.Cell
	bombs   *core.BombField

	// gameTicks counts only unpaused ticks so the difficulty ramp
	// never advances while the game is frozen.
	gameTicks uint64
}

// Package-level config path override, set by the CLI before Reset.
var configPath string

// SetConfigPath sets the config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Asteroids game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "asteroids" }

// Title returns the display name.
func (g *Game) Title() string { return "Asteroids" }

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg, _ = config.LoadAsteroids(configPath)
	g.rtc = cfg
	g.Init(cfg, core.KindAsteroid, core.KindBullet, core.KindShooter, core.KindBomb)
	g.gameTicks = 0

	g.shooter = core.NewCell(core.Position{Col: 4, Row: core.GridHeight - 1})
	g.Group(core.KindShooter).Add(g.shooter)

	g.bombs = core.NewBombField(g.Group(core.KindBomb))
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
	g.gameTicks++

	// Bullets fly a full row every tick; everything else keeps its
	// own cadence below. Bomb cells blink on the same call.
	g.UpdateEntities(float64(g.Clock().TPS))
	g.expireBullets()

	g.checkHit()

	if g.Clock().Every(g.cfg.Rates.FallSpeed) {
		g.moveAsteroids()
		g.spawnAsteroids()
		g.bombs.Move(core.DirUp)
		g.bombs.CheckExplosion(g.Group(core.KindAsteroid))
	}

	if g.Clock().Every(g.cfg.Rates.ShooterSpeed) {
		g.shoot()
		g.trySpawnBomb()
	}

	if g.Clock().Every(g.cfg.Rates.MoveSpeed) {
		g.moveShooter(in)
	}

	g.checkDefeat()

	return core.StepResult{State: g.State()}
}

// expireBullets drops bullets that flew past the top border.
func (g *Game) expireBullets() {
	bullets := g.Group(core.KindBullet)
	var gone []core.Entity
	for _, b := range bullets.Members() {
		if b.Position().Row < 0 {
			gone = append(gone, b)
		}
	}
	bullets.RemoveAll(gone)
}

// checkHit destroys asteroids hit by bullets and scores them. A
// bullet connects on its own cell or the one it is about to leave, so
// a fast bullet cannot tunnel through a falling asteroid.
func (g *Game) checkHit() {
	asteroids := g.Group(core.KindAsteroid)
	bullets := g.Group(core.KindBullet)
	if asteroids.Len() == 0 || bullets.Len() == 0 {
		return
	}

	var deadBullets, deadAsteroids []core.Entity
	for _, b := range bullets.Members() {
		pos := b.Position()
		var hits []core.Entity
		for _, a := range asteroids.Members() {
			ap := a.Position()
			if ap == pos || ap == pos.Add(0, 1) {
				hits = append(hits, a)
			}
		}
		if len(hits) > 0 {
			deadBullets = append(deadBullets, b)
			deadAsteroids = append(deadAsteroids, hits...)
		}
	}
	bullets.RemoveAll(deadBullets)
	asteroids.RemoveAll(deadAsteroids)
	g.AddScore(pointsPerKill * len(deadAsteroids))
}

// moveAsteroids shifts every asteroid one row down.
func (g *Game) moveAsteroids() {
	for _, a := range g.Group(core.KindAsteroid).Members() {
		a.SetPosition(a.Position().Add(0, 1))
	}
}

// spawnRate is the per-column spawn probability for the current time.
func (g *Game) spawnRate() float64 {
	rampTicks := float64(rampSeconds * g.Clock().TPS)
	t := float64(g.gameTicks)
	if t >= rampTicks {
		return rampCap
	}
	return rampStart + t*(rampCap-rampStart)/rampTicks
}

// spawnAsteroids rolls each of the ten columns against the ramping
// spawn probability and drops new asteroids on the top row.
func (g *Game) spawnAsteroids() {
	r := g.spawnRate()
	asteroids := g.Group(core.KindAsteroid)
	for col := 0; col < core.GridWidth; col++ {
		if g.Rand().Float64() < r {
			asteroids.Add(core.NewCell(core.Position{Col: col, Row: 0}))
		}
	}
}

// shoot spawns a bullet at the shooter's cell heading up.
func (g *Game) shoot() {
	b := core.NewMovingCell(g.shooter.Position(), core.DirUp)
	g.Group(core.KindBullet).Add(b)
}

// trySpawnBomb rolls the bomb spawn chance and anchors a new bomb at
// the bottom of the grid on a random column, drifting upward.
func (g *Game) trySpawnBomb() {
	if !g.cfg.Bombs.Enabled {
		return
	}
	if g.Rand().Float64() >= g.cfg.Bombs.SpawnChance {
		return
	}
	col := g.Rand().Intn(core.GridWidth - 3)
	g.bombs.Spawn(core.Position{Col: col, Row: core.GridHeight - 1})
}

// moveShooter slides the shooter from this frame's input, clamped to
// the grid.
func (g *Game) moveShooter(in core.InputFrame) {
	var a int
	switch {
	case in.Has(core.ActionLeft):
		a = -1
	case in.Has(core.ActionRight):
		a = 1
	default:
		return
	}
	pos := g.shooter.Position()
	if next := pos.Col + a; 0 <= next && next < core.GridWidth {
		g.shooter.SetPosition(core.Position{Col: next, Row: pos.Row})
	}
}

// checkDefeat ends the round when an asteroid reaches the shooter or
// falls past the bottom row. The game has no victory; it only ends.
func (g *Game) checkDefeat() {
	shooterPos := g.shooter.Position()
	for _, a := range g.Group(core.KindAsteroid).Members() {
		if a.Position() == shooterPos || a.Position().Row >= core.GridHeight {
			g.EndDefeat()
			return
		}
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	bd := engine.NewBoard(dst)
	bd.DrawFrame(dst, g.Title(), g.State(), fmt.Sprintf("Time: %ds", int(g.gameTicks)/g.Clock().TPS))
	bd.PlotGroup(dst, g.Group(core.KindAsteroid))
	bd.PlotGroup(dst, g.Group(core.KindBullet))
	bd.PlotGroup(dst, g.Group(core.KindBomb))
	bd.PlotGroup(dst, g.Group(core.KindShooter))
	bd.DrawStateOverlays(dst, g.State())
}
