package engine

import (
	"testing"

	"github.com/gfcarvalho/brickgame/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     1,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func TestBaseInit(t *testing.T) {
	var b Base
	b.Init(testConfig(), core.KindBody, core.KindFood)

	if !b.Running() || b.Paused() {
		t.Error("A fresh round should be running and unpaused")
	}
	if b.Score() != 0 {
		t.Errorf("Score = %d after Init, expected 0", b.Score())
	}
	if b.Clock().Tick != 0 {
		t.Errorf("Clock at tick %d after Init, expected 0", b.Clock().Tick)
	}
	if b.Group(core.KindBody) == nil || b.Group(core.KindFood) == nil {
		t.Error("Declared groups should exist")
	}
}

func TestBaseAddScoreClampsAndTracksHigh(t *testing.T) {
	var b Base
	b.Init(testConfig())

	b.AddScore(100)
	if b.Score() != 100 || b.HighScore() != 100 {
		t.Errorf("Score/high = %d/%d, expected 100/100", b.Score(), b.HighScore())
	}

	b.AddScore(MaxScore)
	if b.Score() != MaxScore {
		t.Errorf("Score = %d, expected clamp at %d", b.Score(), MaxScore)
	}
}

func TestBaseHighScoreSurvivesReset(t *testing.T) {
	var b Base
	b.Init(testConfig())
	b.AddScore(500)

	b.Init(testConfig())
	if b.Score() != 0 {
		t.Errorf("Score = %d after re-Init, expected 0", b.Score())
	}
	if b.HighScore() != 500 {
		t.Errorf("HighScore = %d after re-Init, expected 500", b.HighScore())
	}
}

func TestBaseSetHighScoreOnlyRaises(t *testing.T) {
	var b Base
	b.Init(testConfig())

	b.SetHighScore(300)
	if b.HighScore() != 300 {
		t.Errorf("HighScore = %d, expected 300", b.HighScore())
	}

	// A stale lower value never overwrites a better one.
	b.SetHighScore(100)
	if b.HighScore() != 300 {
		t.Errorf("HighScore = %d after lower seed, expected 300", b.HighScore())
	}
}

func TestBaseEndClearsGroups(t *testing.T) {
	var b Base
	b.Init(testConfig(), core.KindBody)
	b.Group(core.KindBody).Add(core.NewCell(core.Position{Col: 1, Row: 1}))

	b.EndDefeat()

	if b.Running() {
		t.Error("Round should stop on defeat")
	}
	if b.Outcome() != OutcomeDefeat {
		t.Errorf("Outcome = %v, expected defeat", b.Outcome())
	}
	if b.Group(core.KindBody).Len() != 0 {
		t.Error("Ending the round should clear every group")
	}

	// A finished round cannot flip outcome.
	b.EndVictory()
	if b.Outcome() != OutcomeDefeat {
		t.Error("Outcome must not change after the round ended")
	}
}

func TestBaseVictoryState(t *testing.T) {
	var b Base
	b.Init(testConfig())
	b.AddScore(42)
	b.EndVictory()

	st := b.State()
	if !st.GameOver || !st.Victory {
		t.Errorf("State = %+v, expected a won game over", st)
	}
	if st.Score != 42 {
		t.Errorf("Score = %d carried into State, expected 42", st.Score)
	}
}

func TestBasePause(t *testing.T) {
	var b Base
	b.Init(testConfig(), core.KindBullet)

	bullet := core.NewMovingCell(core.Position{Col: 4, Row: 10}, core.DirUp)
	b.Group(core.KindBullet).Add(bullet)

	b.TogglePause()
	if b.Active() {
		t.Error("A paused round is not active")
	}

	b.AdvanceClock()
	b.UpdateEntities(float64(b.Clock().TPS))
	if bullet.Position().Row != 10 {
		t.Error("Entities must freeze while paused")
	}

	b.TogglePause()
	b.AdvanceClock()
	b.UpdateEntities(float64(b.Clock().TPS))
	if bullet.Position().Row != 9 {
		t.Error("Entities should move again after unpausing")
	}

	// Pause is inert once the round ended.
	b.EndDefeat()
	b.TogglePause()
	if b.Paused() {
		t.Error("TogglePause must be inert after game over")
	}
}
