// Package engine provides the lifecycle state machine shared by all
// four games: score and high-score tracking, pause/run flags, the
// victory/defeat transition, and the tagged entity groups that are the
// single source of truth for everything alive on the grid. Games embed
// Base and build their per-tick rules on top of it.
package engine

import (
	"math/rand"

	"github.com/gfcarvalho/brickgame/internal/core"
)

// MaxScore caps the score before persistence, matching the eight-digit
// display of the original handhelds.
const MaxScore = 100_000_000 - 1

// Outcome is how a finished round ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

// Base carries the lifecycle state every game shares. A game is
// Running until victory or defeat flips it off; only an explicit Reset
// brings it back. Pausing freezes entity updates and game management
// without ending the round.
type Base struct {
	clock     core.Clock
	rng       *rand.Rand
	score     int
	highScore int
	paused    bool
	running   bool
	outcome   Outcome
	groups    map[core.Kind]*core.Group
}

// Init re-arms the lifecycle for a fresh round: tick zero, score zero,
// running, unpaused, with empty groups for the listed kinds. The high
// score survives across rounds; everything else starts over.
func (b *Base) Init(cfg core.RuntimeConfig, kinds ...core.Kind) {
	b.clock = core.NewClock(cfg.TickRate)
	b.rng = rand.New(rand.NewSource(cfg.Seed))
	b.score = 0
	b.paused = false
	b.running = true
	b.outcome = OutcomeNone
	b.groups = make(map[core.Kind]*core.Group, len(kinds))
	for _, k := range kinds {
		b.groups[k] = core.NewGroup()
	}
}

// Clock returns the game's tick scheduler.
func (b *Base) Clock() core.Clock { return b.clock }

// AdvanceClock moves the simulation one tick forward.
func (b *Base) AdvanceClock() { b.clock.Advance() }

// Rand returns the game's seeded RNG.
func (b *Base) Rand() *rand.Rand { return b.rng }

// Group returns the entity group for a kind, creating it on demand.
func (b *Base) Group(kind core.Kind) *core.Group {
	g, ok := b.groups[kind]
	if !ok {
		g = core.NewGroup()
		b.groups[kind] = g
	}
	return g
}

// UpdateEntities advances every entity in every group at the given
// rate. Frozen while paused; entities with no direction are no-ops.
func (b *Base) UpdateEntities(rate float64) {
	if b.paused {
		return
	}
	for _, g := range b.groups {
		for _, e := range g.Members() {
			e.Update(b.clock, rate)
		}
	}
}

// AddScore increases the score, clamping at MaxScore, and keeps the
// in-memory high score current.
func (b *Base) AddScore(points int) {
	b.score += points
	if b.score > MaxScore {
		b.score = MaxScore
	}
	if b.score > b.highScore {
		b.highScore = b.score
	}
}

// Score returns the current round's score.
func (b *Base) Score() int { return b.score }

// HighScore returns the best known score.
func (b *Base) HighScore() int { return b.highScore }

// SetHighScore seeds the high score from persisted storage. Called by
// the platform before play; a missing store seeds zero.
func (b *Base) SetHighScore(score int) {
	if score > b.highScore {
		b.highScore = score
	}
}

// Running reports whether the round is still live. False is terminal
// until Reset.
func (b *Base) Running() bool { return b.running }

// Paused reports whether the simulation is frozen.
func (b *Base) Paused() bool { return b.paused }

// TogglePause flips the pause flag while the round is live.
func (b *Base) TogglePause() {
	if b.running {
		b.paused = !b.paused
	}
}

// Active reports whether game rules should run this tick.
func (b *Base) Active() bool { return b.running && !b.paused }

// Outcome returns how the round ended, or OutcomeNone while live.
func (b *Base) Outcome() Outcome { return b.outcome }

// EndVictory tears down all entity groups and marks the round won.
func (b *Base) EndVictory() { b.end(OutcomeVictory) }

// EndDefeat tears down all entity groups and marks the round lost.
func (b *Base) EndDefeat() { b.end(OutcomeDefeat) }

func (b *Base) end(o Outcome) {
	if !b.running {
		return
	}
	for _, g := range b.groups {
		g.Clear()
	}
	b.running = false
	b.outcome = o
}

// State summarizes the lifecycle for the platform layer.
func (b *Base) State() core.GameState {
	return core.GameState{
		Score:     b.score,
		HighScore: b.highScore,
		GameOver:  !b.running,
		Victory:   b.outcome == OutcomeVictory,
		Paused:    b.paused,
	}
}
