// Package tetris implements falling tetrominoes on the shared 10x20
// grid, with rotation, soft and hard drops, a hold slot, and a fall
// speed that ramps over time. The game is endless; it ends when the
// fallen structure reaches past the top of the grid.
package tetris

import (
	"fmt"
	"math"

	"github.com/gfcarvalho/brickgame/internal/config"
	"github.com/gfcarvalho/brickgame/internal/core"
	"github.com/gfcarvalho/brickgame/internal/engine"
	"github.com/gfcarvalho/brickgame/internal/registry"
)

// pieceSpawn is the anchor cell for every new piece, top center.
var pieceSpawn = core.Position{Col: 4, Row: 0}

// Game implements the Tetris game.
type Game struct {
	engine.Base

	cfg config.TetrisConfig
	rtc core.RuntimeConfig

	speed float64

	shape  Shape
	rot    int
	anchor core.Position
	cells  []*core.Cell

	stored Shape
	// swapLocked allows one hold swap per spawned piece.
	swapLocked bool

	// structHeight is how far the fallen structure reaches up from
	// the bottom row; past the grid top it is the defeat trigger.
	structHeight int
}

// Package-level config path override, set by the CLI before Reset.
var configPath string

// SetConfigPath sets the config file path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Tetris game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return "tetris" }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg, _ = config.LoadTetris(configPath)
	g.rtc = cfg
	g.Init(cfg, core.KindPiece, core.KindFallen)

	g.speed = g.cfg.Fall.StartSpeed
	g.structHeight = 0
	g.stored = g.randomShape()
	g.spawn(g.randomShape())
}

func (g *Game) randomShape() Shape {
	return shapes[g.Rand().Intn(len(shapes))]
}

// spawn places a fresh piece of the given shape at the top center.
func (g *Game) spawn(sh Shape) {
	g.shape = sh
	g.rot = 0
	g.anchor = pieceSpawn
	g.swapLocked = false

	group := g.Group(core.KindPiece)
	group.Clear()
	g.cells = g.cells[:0]
	for _, pos := range cellPositions(g.shape, g.rot, g.anchor) {
		c := core.NewCell(pos)
		g.cells = append(g.cells, c)
		group.Add(c)
	}
}

// sync moves the piece's cells to the current anchor and rotation.
func (g *Game) sync() {
	for i, pos := range cellPositions(g.shape, g.rot, g.anchor) {
		g.cells[i].SetPosition(pos)
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

	if in.Has(core.ActionUp) {
		g.rotate()
	}
	if in.Has(core.ActionHoldSwap) && !g.swapLocked {
		g.swap()
	}
	if in.Has(core.ActionDrop) {
		g.hardDrop()
	}

	if g.Clock().Every(g.speed) {
		// Height is taken before the move, so a piece that lands rests
		// for one fall period; a sideways slide in that window can
		// resume the fall instead of welding.
		if g.dropHeight() == 0 {
			g.lockAndSpawn()
		} else {
			g.move(0, 1)
		}
	}

	// The fall speed ramps every 30 seconds until the cap.
	if g.speed <= g.cfg.Fall.SpeedCap {
		every := uint64(g.cfg.Fall.SpeedUpEvery * g.Clock().TPS)
		if every > 0 && g.Clock().Tick%every == 0 {
			g.speed *= math.Pow(10, 0.05)
		}
	}

	// Steering runs faster than the fall and scales with it.
	if g.Clock().Every(7 + 3*g.speed) {
		switch {
		case in.Has(core.ActionLeft):
			g.move(-1, 0)
		case in.Has(core.ActionRight):
			g.move(1, 0)
		case in.Has(core.ActionDown):
			g.move(0, 1)
		}
	}

	if g.structHeight > core.GridHeight {
		g.EndDefeat()
	}

	return core.StepResult{State: g.State()}
}

// fallenAt reports whether the fallen structure occupies the position.
func (g *Game) fallenAt(pos core.Position) bool {
	return g.Group(core.KindFallen).Occupies(pos)
}

// move shifts the piece when neither the fallen structure nor the
// borders block the destination. The top border is open so pieces can
// spawn partly above the grid.
func (g *Game) move(a, b int) {
	iMin, iMax, jMax := math.MaxInt, math.MinInt, math.MinInt
	for _, c := range g.cells {
		pos := c.Position()
		iMin = core.Min(iMin, pos.Col)
		iMax = core.Max(iMax, pos.Col)
		jMax = core.Max(jMax, pos.Row)
		if g.fallenAt(pos.Add(a, b)) {
			return
		}
	}
	if iMin+a < 0 || iMax+a >= core.GridWidth || jMax+b >= core.GridHeight {
		return
	}
	g.anchor = g.anchor.Add(a, b)
	g.sync()
}

// rotate advances to the next rotation state when the rotated cells
// stay inside the side and bottom borders and clear of the structure.
func (g *Game) rotate() {
	next := (g.rot + 1) % len(rotations[g.shape])
	for _, pos := range cellPositions(g.shape, next, g.anchor) {
		if g.fallenAt(pos) {
			return
		}
		if pos.Col < 0 || pos.Col >= core.GridWidth || pos.Row >= core.GridHeight {
			return
		}
	}
	g.rot = next
	g.sync()
}

// swap exchanges the active piece for the stored one, respawning at
// the top. Allowed once per piece.
func (g *Game) swap() {
	g.shape, g.stored = g.stored, g.shape
	g.spawn(g.shape)
	g.swapLocked = true
}

// dropHeight is the free fall distance: for each piece column, the
// gap between the piece's lowest cell and the structure (or the
// bottom row), minimized across columns.
func (g *Game) dropHeight() int {
	height := math.MaxInt
	for _, c := range g.cells {
		pos := c.Position()
		// Lowest piece cell in this column.
		j := pos.Row
		for _, o := range g.cells {
			if o.Position().Col == pos.Col && o.Position().Row > j {
				j = o.Position().Row
			}
		}
		// Nearest structure cell below it.
		gap := core.GridHeight - 1 - j
		for _, f := range g.Group(core.KindFallen).Members() {
			fp := f.Position()
			if fp.Col == pos.Col && fp.Row > j {
				gap = core.Min(gap, fp.Row-j-1)
			}
		}
		height = core.Min(height, gap)
	}
	if height == math.MaxInt {
		return 0
	}
	return height
}

// hardDrop sends the piece straight down by its free fall distance
// and locks it immediately.
func (g *Game) hardDrop() {
	h := g.dropHeight()
	g.anchor = g.anchor.Add(0, h)
	for _, c := range g.cells {
		c.SetPosition(c.Position().Add(0, h))
	}
	g.lockAndSpawn()
}

// lockAndSpawn welds the piece onto the fallen structure, clears and
// scores full lines, and spawns the next piece from the hold slot.
func (g *Game) lockAndSpawn() {
	fallen := g.Group(core.KindFallen)
	piece := g.Group(core.KindPiece)
	for _, c := range g.cells {
		fallen.Add(c)
	}
	piece.Clear()
	g.cells = g.cells[:0]

	// Height is measured before lines clear, so a risky stack pays
	// more for the same lines.
	top := core.GridHeight
	for _, f := range fallen.Members() {
		top = core.Min(top, f.Position().Row)
	}
	g.structHeight = core.GridHeight - top

	g.scoreLines(g.clearFullLines())

	next := g.stored
	g.stored = g.randomShape()
	g.spawn(next)
}

// clearFullLines removes every complete row and settles the rows
// above it one step down, returning how many rows cleared.
func (g *Game) clearFullLines() int {
	fallen := g.Group(core.KindFallen)

	var fullRows []int
	for row := 0; row < core.GridHeight; row++ {
		count := 0
		for _, f := range fallen.Members() {
			if f.Position().Row == row {
				count++
			}
		}
		if count == core.GridWidth {
			fullRows = append(fullRows, row)
		}
	}

	for _, row := range fullRows {
		var line []core.Entity
		for _, f := range fallen.Members() {
			if f.Position().Row == row {
				line = append(line, f)
			}
		}
		fallen.RemoveAll(line)
		for _, f := range fallen.Members() {
			if pos := f.Position(); pos.Row < row {
				f.SetPosition(pos.Add(0, 1))
			}
		}
	}

	return len(fullRows)
}

// scoreLines pays out for cleared lines, scaled by fall speed and the
// structure height at lock time.
func (g *Game) scoreLines(lines int) {
	var base int
	switch lines {
	case 1:
		base = 2
	case 2:
		base = 6
	case 3:
		base = 12
	case 4:
		base = 20
	default:
		return
	}
	g.AddScore(int(float64(base)+g.speed*float64(g.structHeight)) * 15)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	bd := engine.NewBoard(dst)
	bd.DrawFrame(dst, g.Title(), g.State(),
		fmt.Sprintf("Next: %c  Speed: %.1f", g.stored, g.speed))
	bd.PlotGroup(dst, g.Group(core.KindFallen))
	bd.PlotGroup(dst, g.Group(core.KindPiece))
	bd.DrawStateOverlays(dst, g.State())
}
