package core

// Entity is the capability interface shared by everything that lives
// in a game's tagged groups: plain cells, blinking cells, and the
// members of composite clusters such as bombs.
type Entity interface {
	Position() Position
	SetPosition(Position)
	Direction() Direction
	SetDirection(Direction)
	// Update advances the entity one direction-step when the clock
	// says an action at the given rate is due. Entities without a
	// direction never move.
	Update(clock Clock, rate float64)
	Color() Color
}

// Cell is the atomic grid-aligned unit. It owns its position, a
// rendering color, an optional heading, and the cached step vector
// derived from that heading.
type Cell struct {
	pos   Position
	color Color
	dir   Direction
	// step is recomputed whenever dir changes; a zero step means the
	// cell never moves on Update regardless of tick.
	stepC, stepR int
}

// NewCell creates a cell at the given position with the default color.
func NewCell(pos Position) *Cell {
	return NewColoredCell(pos, ColorDefault)
}

// NewColoredCell creates a cell with an explicit color.
func NewColoredCell(pos Position, color Color) *Cell {
	return &Cell{pos: pos, color: color}
}

// NewMovingCell creates a cell already heading in a direction.
func NewMovingCell(pos Position, dir Direction) *Cell {
	c := NewCell(pos)
	c.SetDirection(dir)
	return c
}

// Position returns the cell's grid coordinate.
func (c *Cell) Position() Position { return c.pos }

// SetPosition teleports the cell, used by games that compute movement
// externally (snake segments, tetris pieces, paddle steps).
func (c *Cell) SetPosition(pos Position) { c.pos = pos }

// Direction returns the cell's current heading.
func (c *Cell) Direction() Direction { return c.dir }

// SetDirection updates the heading and the cached step vector.
func (c *Cell) SetDirection(dir Direction) {
	c.dir = dir
	c.stepC, c.stepR = dir.Offset()
}

// Color returns the cell's rendering color.
func (c *Cell) Color() Color { return c.color }

// Update moves the cell one step along its heading when the clock's
// cadence for the given rate fires. A cell with no direction or a
// non-positive rate is left untouched.
func (c *Cell) Update(clock Clock, rate float64) {
	if c.dir == DirNone || rate <= 0 {
		return
	}
	if clock.Every(rate) {
		c.pos.Col += c.stepC
		c.pos.Row += c.stepR
	}
}

// BlinkingCell alternates between a primary and a shade cell twice per
// second while keeping normal movement semantics. Both halves always
// share position and direction.
type BlinkingCell struct {
	primary *Cell
	shade   *Cell
	active  bool // true when the primary half is visible
}

// NewBlinkingCell creates a blinking cell; it always spawns lit.
func NewBlinkingCell(pos Position) *BlinkingCell {
	return &BlinkingCell{
		primary: NewColoredCell(pos, ColorDefault),
		shade:   NewColoredCell(pos, ColorShade),
		active:  true,
	}
}

// Position returns the shared grid coordinate.
func (b *BlinkingCell) Position() Position { return b.primary.Position() }

// SetPosition teleports both halves so they never desynchronize.
func (b *BlinkingCell) SetPosition(pos Position) {
	b.primary.SetPosition(pos)
	b.shade.SetPosition(pos)
}

// Direction returns the shared heading.
func (b *BlinkingCell) Direction() Direction { return b.primary.Direction() }

// SetDirection propagates identically to both halves.
func (b *BlinkingCell) SetDirection(dir Direction) {
	b.primary.SetDirection(dir)
	b.shade.SetDirection(dir)
}

// Color returns the color of the currently visible half.
func (b *BlinkingCell) Color() Color {
	if b.active {
		return b.primary.Color()
	}
	return b.shade.Color()
}

// Active reports whether the primary half is currently visible.
func (b *BlinkingCell) Active() bool { return b.active }

// Update toggles the visible half on a fixed half-second cadence and
// delegates movement to both inner cells.
func (b *BlinkingCell) Update(clock Clock, rate float64) {
	if clock.Tick > 0 {
		tps := uint64(clock.TPS)
		switch clock.Tick % tps {
		case 0:
			b.active = true
		case tps / 2:
			b.active = false
		}
	}
	b.shade.Update(clock, rate)
	b.primary.Update(clock, rate)
}
