package breakout

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

func TestInitialLayout(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	if g.level != 1 {
		t.Fatalf("Expected stage 1, got %d", g.level)
	}
	// Stage 1 is a hollow box with a pillar: 10+2+2+4*6+2+2+10 = 52.
	if len(g.bricks) != 52 {
		t.Errorf("Expected 52 bricks on stage 1, got %d", len(g.bricks))
	}
	if g.ball.Position() != (core.Position{Col: 4, Row: 18}) {
		t.Errorf("Ball at %+v, want (4, 18)", g.ball.Position())
	}
	want := []core.Position{{Col: 3, Row: 19}, {Col: 4, Row: 19}, {Col: 5, Row: 19}}
	for i, pos := range want {
		if g.paddle[i].Position() != pos {
			t.Errorf("Paddle cell %d at %+v, want %+v", i, g.paddle[i].Position(), pos)
		}
	}
	if !g.attached {
		t.Error("Ball should start attached to the paddle")
	}
}

func TestStageLayoutSizes(t *testing.T) {
	for level, want := range map[int]int{1: 52, 2: 38, 3: 52} {
		if got := len(levelLayout(level)); got != want {
			t.Errorf("Stage %d has %d bricks, want %d", level, got, want)
		}
	}
	if levelLayout(4) != nil {
		t.Error("Expected no layout past the last stage")
	}
}

func TestBallRidesPaddle(t *testing.T) {
	g := New()
	g.Reset(testConfig(2))

	// Hold right: the attached ball must track the paddle.
	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	for i := 0; i < 6; i++ {
		g.Step(input)
	}

	off := g.ball.Position().Col - g.paddle[0].Position().Col
	if off != 1 {
		t.Errorf("Ball drifted off the paddle center, offset %d", off)
	}
	if g.paddle[0].Position().Col <= 3 {
		t.Error("Paddle did not move right")
	}
}

func TestPaddleClampedToGrid(t *testing.T) {
	g := New()
	g.Reset(testConfig(3))

	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	for i := 0; i < 200; i++ {
		g.Step(input)
	}
	if right := g.paddle[len(g.paddle)-1].Position().Col; right != core.GridWidth-1 {
		t.Errorf("Paddle right edge at %d, want %d", right, core.GridWidth-1)
	}

	input.Clear()
	input.Set(core.ActionLeft)
	for i := 0; i < 200; i++ {
		g.Step(input)
	}
	if left := g.paddle[0].Position().Col; left != 0 {
		t.Errorf("Paddle left edge at %d, want 0", left)
	}
}

func TestLaunch(t *testing.T) {
	g := New()
	g.Reset(testConfig(4))

	input := core.NewInputFrame()
	input.Set(core.ActionAccelerate)
	// The boosted cadence fires within two ticks at 40 steps/s.
	g.Step(input)
	g.Step(input)

	if g.attached {
		t.Fatal("Expected the ball to launch on accelerate")
	}
	if g.velC != 1 || g.velR != -1 {
		t.Errorf("Launch velocity (%d, %d), want (1, -1)", g.velC, g.velR)
	}

	input.Clear()
	for i := 0; i < 3; i++ {
		g.Step(input)
	}
	if g.ball.Position() == (core.Position{Col: 4, Row: 18}) {
		t.Error("Ball did not move after launch")
	}
}

func TestBorderReflect(t *testing.T) {
	g := New()
	g.Reset(testConfig(5))
	g.attached = false

	g.ball.SetPosition(core.Position{Col: 9, Row: 15})
	g.velC, g.velR = 1, -1
	g.borderReflect()
	if g.velC != -1 {
		t.Errorf("Expected horizontal reflection at the right wall, velC=%d", g.velC)
	}

	g.ball.SetPosition(core.Position{Col: 5, Row: 0})
	g.velC, g.velR = 1, -1
	g.borderReflect()
	if g.velR != 1 {
		t.Errorf("Expected vertical reflection at the top wall, velR=%d", g.velR)
	}
}

func TestBrickHitScoresAndReflects(t *testing.T) {
	g := New()
	g.Reset(testConfig(6))
	g.attached = false

	// Place the ball just below a stage-1 pillar brick, moving up.
	g.ball.SetPosition(core.Position{Col: 4, Row: 7})
	g.velC, g.velR = 0, -1

	before := len(g.bricks)
	g.checkHit()

	if len(g.bricks) != before-1 {
		t.Fatalf("Expected one brick destroyed, %d -> %d", before, len(g.bricks))
	}
	if g.velR != 1 {
		t.Errorf("Expected vertical bounce, velR=%d", g.velR)
	}
	if got := g.State().Score; got != 15 {
		t.Errorf("Expected 15 points on stage 1, got %d", got)
	}
}

func TestCornerHitDestroysBothAndVertex(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	g.attached = false

	// Ball inside the stage-1 box corner moving up-left: (0,1) flanks
	// horizontally, (1,0) vertically, and the vertex (0,0) exists.
	g.ball.SetPosition(core.Position{Col: 1, Row: 1})
	g.velC, g.velR = -1, -1

	before := len(g.bricks)
	g.checkHit()

	if got := before - len(g.bricks); got != 3 {
		t.Fatalf("Expected 3 bricks destroyed on a corner hit, got %d", got)
	}
	if g.velC != 1 || g.velR != 1 {
		t.Errorf("Expected full reversal, vel (%d, %d)", g.velC, g.velR)
	}
	if got := g.State().Score; got != 45 {
		t.Errorf("Expected 45 points for 3 bricks, got %d", got)
	}
}

func TestCaughtBallRidesPaddle(t *testing.T) {
	g := New()
	g.Reset(testConfig(11))
	g.attached = false
	g.ball.SetPosition(core.Position{Col: 5, Row: 18})
	g.velC, g.velR = 1, 1

	// The ball is caught on the first ball step; holding left must
	// carry it along with the paddle instead of stranding it mid-air.
	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	for i := 0; i < 6; i++ {
		g.Step(input)
	}

	if pos := g.ball.Position(); pos.Row != 18 {
		t.Fatalf("Caught ball at %+v, want row 18", pos)
	}
	if off := g.ball.Position().Col - g.paddle[len(g.paddle)-1].Position().Col; off != 0 {
		t.Errorf("Caught ball drifted off the moving paddle, offset %d", off)
	}
	if g.dragging {
		t.Error("Second paddle contact should release the drag toggle")
	}
	if g.velR != -1 {
		t.Errorf("Expected an upward release, velR=%d", g.velR)
	}

	// One more ball step: the released ball climbs away.
	for i := 0; i < 3; i++ {
		g.Step(input)
	}
	if pos := g.ball.Position(); pos.Row != 17 {
		t.Errorf("Released ball at %+v, want row 17", pos)
	}
	if !g.Running() {
		t.Error("Round ended while the ball was caught on the paddle")
	}
}

func TestPaddleReflectSteersByCell(t *testing.T) {
	g := New()
	g.Reset(testConfig(12))
	g.attached = false

	// Paddle cells sit at cols 3-5, row 19. The struck cell steers the
	// bounce: left corner sends the ball left, right corner right, the
	// center keeps its course.
	cases := []struct {
		name       string
		col        int
		velC, want int
	}{
		{"left corner", 3, 1, -1},
		{"center", 4, 0, 0},
		{"right corner", 5, -1, 1},
	}
	for _, tc := range cases {
		g.ball.SetPosition(core.Position{Col: tc.col, Row: 18})
		g.velC, g.velR = tc.velC, 1
		g.dragging = false
		g.checkPaddleReflect()

		if g.velR != -1 {
			t.Errorf("%s: expected an upward bounce, velR=%d", tc.name, g.velR)
		}
		if g.velC != tc.want {
			t.Errorf("%s: velC=%d, want %d", tc.name, g.velC, tc.want)
		}
	}
}

func TestStageClearBonusAndAdvance(t *testing.T) {
	g := New()
	g.Reset(testConfig(8))

	// Leave one brick and knock it out.
	for pos := range g.bricks {
		if pos != (core.Position{Col: 0, Row: 0}) {
			delete(g.bricks, pos)
		}
	}
	g.attached = false
	g.ball.SetPosition(core.Position{Col: 1, Row: 0})
	g.velC, g.velR = -1, 1

	scoreBefore := g.State().Score
	g.checkHit()
	g.manageLevels()

	if g.level != 2 {
		t.Fatalf("Expected stage 2, got %d", g.level)
	}
	// One brick (15) plus the stage bonus 3000+3000*(2-1).
	if got := g.State().Score - scoreBefore; got != 15+6000 {
		t.Errorf("Expected 6015 points for the clear, got %d", got)
	}
	if len(g.bricks) != 38 {
		t.Errorf("Expected 38 bricks on stage 2, got %d", len(g.bricks))
	}
	if !g.attached {
		t.Error("Ball should respawn attached on the new stage")
	}
}

func TestVictoryAfterLastStage(t *testing.T) {
	g := New()
	g.Reset(testConfig(9))
	g.level = 3
	g.buildStage()

	g.bricks = map[core.Position]core.Entity{}
	g.manageLevels()

	st := g.State()
	if !st.GameOver || !st.Victory {
		t.Errorf("Expected victory after clearing stage 3, got %+v", st)
	}
}

func TestDefeatWhenBallFalls(t *testing.T) {
	g := New()
	g.Reset(testConfig(10))
	g.attached = false
	g.ball.SetPosition(core.Position{Col: 7, Row: 19})
	g.velC, g.velR = 0, 1

	input := core.NewInputFrame()
	for i := 0; i < 6 && g.Running(); i++ {
		g.Step(input)
	}

	st := g.State()
	if !st.GameOver || st.Victory {
		t.Errorf("Expected defeat once the ball passed the bottom row, got %+v", st)
	}
}

func TestDeterminism(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig(99))
	g2 := New()
	g2.Reset(testConfig(99))

	input := core.NewInputFrame()
	for i := 0; i < 400; i++ {
		input.Clear()
		if i == 5 {
			input.Set(core.ActionAccelerate)
		}
		if i%30 == 10 {
			input.Set(core.ActionLeft)
		}
		if i%30 == 20 {
			input.Set(core.ActionRight)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("Snapshot mismatch:\n%+v\nvs\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}
