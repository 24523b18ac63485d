// Package config provides YAML-based game tuning and loading for the
// brickgame platform. Every knob has an embedded default matching the
// original handheld behavior; files only override.
package config

// SnakeConfig contains tuning for the Snake game.
type SnakeConfig struct {
	Movement SnakeMovement `yaml:"movement"`
}

// SnakeMovement defines movement parameters for Snake.
type SnakeMovement struct {
	Speed      float64 `yaml:"speed"`       // Body steps per second
	BoostRatio float64 `yaml:"boost_ratio"` // Speed multiplier while accelerating
}

// BreakoutConfig contains tuning for the Breakout game.
type BreakoutConfig struct {
	Physics BreakoutPhysics `yaml:"physics"`
	Paddle  BreakoutPaddle  `yaml:"paddle"`
}

// BreakoutPhysics defines ball parameters for Breakout.
type BreakoutPhysics struct {
	BallSpeed  float64 `yaml:"ball_speed"`  // Ball steps per second
	BoostRatio float64 `yaml:"boost_ratio"` // Speed multiplier while accelerating
}

// BreakoutPaddle defines paddle parameters for Breakout.
type BreakoutPaddle struct {
	Width int `yaml:"width"` // Contiguous paddle cells
}

// AsteroidsConfig contains tuning for the Asteroids game.
type AsteroidsConfig struct {
	Rates AsteroidsRates `yaml:"rates"`
	Bombs AsteroidsBombs `yaml:"bombs"`
}

// AsteroidsRates defines the action rates for Asteroids.
type AsteroidsRates struct {
	FallSpeed    float64 `yaml:"fall_speed"`    // Asteroid rows per second
	ShooterSpeed float64 `yaml:"shooter_speed"` // Bullets per second
	MoveSpeed    float64 `yaml:"move_speed"`    // Shooter steps per second
}

// AsteroidsBombs defines bomb spawn parameters for Asteroids.
type AsteroidsBombs struct {
	Enabled     bool    `yaml:"enabled"`
	SpawnChance float64 `yaml:"spawn_chance"` // Per-draw probability
}

// TetrisConfig contains tuning for the Tetris game.
type TetrisConfig struct {
	Fall TetrisFall `yaml:"fall"`
}

// TetrisFall defines fall-speed progression for Tetris.
type TetrisFall struct {
	StartSpeed   float64 `yaml:"start_speed"`    // Rows per second at start
	SpeedCap     float64 `yaml:"speed_cap"`      // Progression stops here
	SpeedUpEvery int     `yaml:"speed_up_every"` // Seconds between speed-ups
}
