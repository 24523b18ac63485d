package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Movement: SnakeMovement{
			Speed:      10,
			BoostRatio: 2,
		},
	}
}

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Physics: BreakoutPhysics{
			BallSpeed:  20,
			BoostRatio: 2,
		},
		Paddle: BreakoutPaddle{
			Width: 3,
		},
	}
}

// DefaultAsteroidsConfig returns the default Asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Rates: AsteroidsRates{
			FallSpeed:    2,
			ShooterSpeed: 10,
			MoveSpeed:    10,
		},
		Bombs: AsteroidsBombs{
			Enabled:     true,
			SpawnChance: 0.000333, // roughly one draw in 3000
		},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Fall: TetrisFall{
			StartSpeed:   1,
			SpeedCap:     10,
			SpeedUpEvery: 30,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	case "breakout":
		return defaultBreakoutYAML
	case "asteroids":
		return defaultAsteroidsYAML
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
