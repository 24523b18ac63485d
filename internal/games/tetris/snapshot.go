package tetris

import "github.com/gfcarvalho/brickgame/internal/core"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Score        int
	Shape        Shape
	Rot          int
	Anchor       core.Position
	Stored       Shape
	Fallen       int
	StructHeight int
	Speed        float64
	GameOver     bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	return Snapshot{
		Tick:         g.Clock().Tick,
		Score:        st.Score,
		Shape:        g.shape,
		Rot:          g.rot,
		Anchor:       g.anchor,
		Stored:       g.stored,
		Fallen:       g.Group(core.KindFallen).Len(),
		StructHeight: g.structHeight,
		Speed:        g.speed,
		GameOver:     st.GameOver,
	}
}
