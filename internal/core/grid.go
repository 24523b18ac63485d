// Package core provides the simulation primitives for the brickgame
// platform: the 10x20 grid, cells, bombs, the tick clock, and input
// abstractions. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Grid dimensions shared by every game. The playfield is fixed at
// 10 columns by 20 rows; entities may hold off-grid positions
// transiently (a spawning bomb, an exiting bullet).
const (
	GridWidth  = 10
	GridHeight = 20
)

// Position is a cell coordinate on the grid. Col grows rightward,
// Row grows downward.
type Position struct {
	Col, Row int
}

// InBounds reports whether the position lies inside the playfield.
func (p Position) InBounds() bool {
	return p.Col >= 0 && p.Col < GridWidth && p.Row >= 0 && p.Row < GridHeight
}

// Add returns the position shifted by the given offsets.
func (p Position) Add(dc, dr int) Position {
	return Position{Col: p.Col + dc, Row: p.Row + dr}
}

// Direction is a movement heading for grid entities.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Offset returns the unit step for the direction.
func (d Direction) Offset() (dc, dr int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite reports whether the two directions point at each other.
func (d Direction) Opposite(other Direction) bool {
	return (d == DirUp && other == DirDown) ||
		(d == DirDown && other == DirUp) ||
		(d == DirLeft && other == DirRight) ||
		(d == DirRight && other == DirLeft)
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}
