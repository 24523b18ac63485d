package snake

import (
	"testing"

	"github.com/gfcarvalho/brickgame/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := New()
	g1.Reset(testConfig(12345))

	g2 := New()
	g2.Reset(testConfig(12345))

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i == 20 {
			input.Set(core.ActionLeft)
		}
		if i == 80 {
			input.Set(core.ActionUp)
		}
		if i == 140 {
			input.Set(core.ActionRight)
		}

		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshot mismatch:\n%+v\nvs\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestInitialLayout(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	if g.body.Len() != 3 {
		t.Fatalf("Expected body length 3, got %d", g.body.Len())
	}
	want := []core.Position{{Col: 4, Row: 5}, {Col: 4, Row: 4}, {Col: 4, Row: 3}}
	for i, pos := range want {
		if g.body.At(i).Position() != pos {
			t.Errorf("Segment %d at %+v, want %+v", i, g.body.At(i).Position(), pos)
		}
	}
	if g.dir != core.DirDown {
		t.Errorf("Expected initial direction down, got %v", g.dir)
	}
	if g.body.Occupies(g.food.Position()) {
		t.Errorf("Food spawned inside the body at %+v", g.food.Position())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	// Initial direction is down; up is a reversal and must be ignored.
	input := core.NewInputFrame()
	input.Set(core.ActionUp)
	g.Step(input)

	if g.dir == core.DirUp {
		t.Error("Should not allow immediate reversal from Down to Up")
	}

	input.Clear()
	input.Set(core.ActionLeft)
	g.Step(input)

	if g.dir != core.DirLeft {
		t.Errorf("Expected direction Left, got %v", g.dir)
	}
}

func TestOneTurnPerStep(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	// First turn is accepted, the second in the same movement window
	// is dropped.
	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)

	input.Clear()
	input.Set(core.ActionUp)
	g.Step(input)

	if g.dir != core.DirLeft {
		t.Errorf("Second turn before the next step should be dropped, direction is %v", g.dir)
	}
}

func TestMovementCadence(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))

	// At 60 TPS and 10 steps/s the body moves every 6 ticks.
	head := g.head().Position()
	input := core.NewInputFrame()
	for i := 0; i < 5; i++ {
		g.Step(input)
	}
	if g.head().Position() != head {
		t.Fatal("Body moved before the cadence tick")
	}
	g.Step(input)
	want := head.Add(0, 1)
	if g.head().Position() != want {
		t.Errorf("Head at %+v after cadence tick, want %+v", g.head().Position(), want)
	}
}

func TestGrowthAndScore(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))

	// Plant the food directly in the head's path. The meal registers
	// one tick after the head lands on it, and the body grows on the
	// following movement step.
	g.food.SetPosition(core.Position{Col: 4, Row: 6})

	input := core.NewInputFrame()
	for i := 0; i < 12; i++ {
		g.Step(input)
	}

	if g.body.Len() != 4 {
		t.Fatalf("Expected body length 4 after eating, got %d", g.body.Len())
	}
	// The length bracket starts above 3, so the first meal pays nothing.
	if got := g.State().Score; got != 0 {
		t.Errorf("Expected no points for the first meal, got %d", got)
	}

	// The second meal pays the lowest bracket.
	g.food.SetPosition(core.Position{Col: 4, Row: 8})
	for i := 0; i < 12; i++ {
		g.Step(input)
	}

	if g.body.Len() != 5 {
		t.Fatalf("Expected body length 5 after the second meal, got %d", g.body.Len())
	}
	if got := g.State().Score; got != 15 {
		t.Errorf("Expected 15 points for the second meal, got %d", got)
	}
}

func TestWallDefeat(t *testing.T) {
	g := New()
	g.Reset(testConfig(5))

	// Head starts at (4, 5) moving down; the bottom border is 15 rows
	// away. Keep food out of the path.
	g.food.SetPosition(core.Position{Col: 9, Row: 0})

	input := core.NewInputFrame()
	for i := 0; i < 16*6; i++ {
		g.Step(input)
	}

	st := g.State()
	if !st.GameOver || st.Victory {
		t.Errorf("Expected defeat at the bottom border, got %+v", st)
	}
}

func TestSelfCollisionDefeat(t *testing.T) {
	g := New()
	g.Reset(testConfig(15))

	// Lengthen the body so a tight U-turn can reach it, and keep the
	// food out of the path.
	g.body.Add(core.NewCell(core.Position{Col: 4, Row: 2}))
	g.body.Add(core.NewCell(core.Position{Col: 4, Row: 1}))
	g.food.SetPosition(core.Position{Col: 9, Row: 0})

	// Left, up, right: the head folds back into the body.
	input := core.NewInputFrame()
	for _, a := range []core.Action{core.ActionLeft, core.ActionUp, core.ActionRight} {
		input.Clear()
		input.Set(a)
		for i := 0; i < 6; i++ {
			g.Step(input)
		}
	}

	st := g.State()
	if !st.GameOver || st.Victory {
		t.Errorf("Expected defeat on self-collision, got %+v", st)
	}
}

func TestPauseFreezesMovement(t *testing.T) {
	g := New()
	g.Reset(testConfig(9))

	input := core.NewInputFrame()
	input.Set(core.ActionPause)
	g.Step(input)

	head := g.head().Position()
	input.Clear()
	for i := 0; i < 30; i++ {
		g.Step(input)
	}
	if g.head().Position() != head {
		t.Error("Body moved while paused")
	}

	input.Set(core.ActionPause)
	g.Step(input)
	if g.State().Paused {
		t.Error("Expected pause to toggle off")
	}
}

func TestRestartAfterDefeat(t *testing.T) {
	g := New()
	g.Reset(testConfig(11))
	g.AddScore(100)
	g.EndDefeat()

	input := core.NewInputFrame()
	input.Set(core.ActionRestart)
	g.Step(input)

	st := g.State()
	if st.GameOver {
		t.Error("Expected a fresh round after restart")
	}
	if st.Score != 0 {
		t.Errorf("Expected score reset, got %d", st.Score)
	}
	if st.HighScore != 100 {
		t.Errorf("Expected high score to survive restart, got %d", st.HighScore)
	}
	if g.body.Len() != 3 {
		t.Errorf("Expected body length 3 after restart, got %d", g.body.Len())
	}
}

func TestAccelerateDoublesCadence(t *testing.T) {
	g := New()
	g.Reset(testConfig(13))

	// Boosted speed 20 steps/s moves every 3 ticks at 60 TPS.
	head := g.head().Position()
	input := core.NewInputFrame()
	input.Set(core.ActionAccelerate)
	for i := 0; i < 3; i++ {
		g.Step(input)
	}
	if g.head().Position() == head {
		t.Error("Expected a movement step within 3 boosted ticks")
	}
}
