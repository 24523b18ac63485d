package asteroids

import "github.com/gfcarvalho/brickgame/internal/core"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	GameTicks uint64
	Score     int
	Shooter   core.Position
	Asteroids int
	Bullets   int
	Bombs     int
	GameOver  bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	return Snapshot{
		Tick:      g.Clock().Tick,
		GameTicks: g.gameTicks,
		Score:     st.Score,
		Shooter:   g.shooter.Position(),
		Asteroids: g.Group(core.KindAsteroid).Len(),
		Bullets:   g.Group(core.KindBullet).Len(),
		Bombs:     g.bombs.Len(),
		GameOver:  st.GameOver,
	}
}
