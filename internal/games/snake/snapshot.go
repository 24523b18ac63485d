package snake

import "github.com/gfcarvalho/brickgame/internal/core"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Score    int
	BodyLen  int
	Head     core.Position
	Dir      core.Direction
	Food     core.Position
	Growing  bool
	GameOver bool
	Victory  bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	snap := Snapshot{
		Tick:     g.Clock().Tick,
		Score:    st.Score,
		BodyLen:  g.body.Len(),
		Dir:      g.dir,
		Food:     g.food.Position(),
		Growing:  g.growing,
		GameOver: st.GameOver,
		Victory:  st.Victory,
	}
	if g.body.Len() > 0 {
		snap.Head = g.head().Position()
	}
	return snap
}
