package breakout

import "github.com/gfcarvalho/brickgame/internal/core"

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Score      int
	Level      int
	Bricks     int
	Ball       core.Position
	VelC, VelR int
	PaddleCol  int // Leftmost paddle column
	Attached   bool
	GameOver   bool
	Victory    bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	snap := Snapshot{
		Tick:     g.Clock().Tick,
		Score:    st.Score,
		Level:    g.level,
		Bricks:   len(g.bricks),
		Ball:     g.ball.Position(),
		VelC:     g.velC,
		VelR:     g.velR,
		Attached: g.attached,
		GameOver: st.GameOver,
		Victory:  st.Victory,
	}
	if len(g.paddle) > 0 {
		snap.PaddleCol = g.paddle[0].Position().Col
	}
	return snap
}
