package core

// bombSpan is the side of a bomb's square footprint in cells.
const bombSpan = 4

// blastMargin is how far the explosion reaches past the footprint in
// every direction, producing an 8x8 blast zone around the 4x4 body.
const blastMargin = 2

// Bomb is a rigid 4x4 cluster of sixteen cells shaped like a sea
// mine: four blinking corners, four solid inner cells, and eight
// shade fillers. All members share one direction and move atomically.
type Bomb struct {
	members []Entity
}

// newBomb builds the cluster anchored at its top-left position.
func newBomb(pos Position) *Bomb {
	i, j := pos.Col, pos.Row
	members := []Entity{
		// Corners blink.
		NewBlinkingCell(Position{i, j}),
		NewBlinkingCell(Position{i, j + 3}),
		NewBlinkingCell(Position{i + 3, j}),
		NewBlinkingCell(Position{i + 3, j + 3}),
		// Solid center.
		NewCell(Position{i + 1, j + 1}),
		NewCell(Position{i + 1, j + 2}),
		NewCell(Position{i + 2, j + 1}),
		NewCell(Position{i + 2, j + 2}),
		// Shade fillers on the edges.
		NewColoredCell(Position{i, j + 1}, ColorShade),
		NewColoredCell(Position{i, j + 2}, ColorShade),
		NewColoredCell(Position{i + 3, j + 1}, ColorShade),
		NewColoredCell(Position{i + 3, j + 2}, ColorShade),
		NewColoredCell(Position{i + 1, j}, ColorShade),
		NewColoredCell(Position{i + 2, j}, ColorShade),
		NewColoredCell(Position{i + 1, j + 3}, ColorShade),
		NewColoredCell(Position{i + 2, j + 3}, ColorShade),
	}
	return &Bomb{members: members}
}

// Anchor returns the top-left position of the footprint.
func (b *Bomb) Anchor() Position {
	return b.members[0].Position()
}

// Members returns the sixteen cluster entities.
func (b *Bomb) Members() []Entity { return b.members }

// covers reports whether the 4x4 footprint contains the position.
func (b *Bomb) covers(pos Position) bool {
	a := b.Anchor()
	return a.Col <= pos.Col && pos.Col <= a.Col+bombSpan-1 &&
		a.Row <= pos.Row && pos.Row <= a.Row+bombSpan-1
}

// inBlast reports whether the position lies inside the 8x8 blast zone.
func (b *Bomb) inBlast(pos Position) bool {
	a := b.Anchor()
	return a.Col-blastMargin <= pos.Col && pos.Col <= a.Col+bombSpan+1 &&
		a.Row-blastMargin <= pos.Row && pos.Row <= a.Row+bombSpan+1
}

// BombField owns every live bomb of one game instance along with the
// entity group their members are drawn from. Per-instance ownership
// keeps concurrent game sessions from interfering.
type BombField struct {
	bombs []*Bomb
	group *Group
}

// NewBombField creates an empty field backed by the given group.
func NewBombField(group *Group) *BombField {
	return &BombField{group: group}
}

// Len returns the number of live bombs.
func (f *BombField) Len() int { return len(f.bombs) }

// Bombs returns the live bombs, oldest first.
func (f *BombField) Bombs() []*Bomb { return f.bombs }

// Spawn adds a bomb anchored at the position and registers its members
// with the owning group.
func (f *BombField) Spawn(pos Position) *Bomb {
	b := newBomb(pos)
	for _, m := range b.members {
		f.group.Add(m)
	}
	f.bombs = append(f.bombs, b)
	return b
}

// Move advances every bomb one step in the direction, all sixteen
// members atomically, then drops bombs that left the grid vertically.
// Because the cluster spans four rows, a bomb moving down is gone once
// its anchor reaches row GridHeight-3.
func (f *BombField) Move(dir Direction) {
	dc, dr := dir.Offset()
	for idx := len(f.bombs) - 1; idx >= 0; idx-- {
		b := f.bombs[idx]
		for _, m := range b.members {
			m.SetPosition(m.Position().Add(dc, dr))
		}
		row := b.Anchor().Row
		exited := (dir == DirUp && row < 0) ||
			(dir == DirDown && row >= GridHeight-3)
		if exited {
			f.release(idx)
		}
	}
}

// CheckExplosion detonates every bomb whose footprint intersects any
// target, removing the hit targets and the bomb itself. Detection is
// batched before any mutation so the scan never invalidates itself.
// Reports whether at least one bomb exploded.
func (f *BombField) CheckExplosion(targets *Group) bool {
	if targets == nil || targets.Len() == 0 {
		return false
	}
	var exploded []int
	for idx, b := range f.bombs {
		for _, t := range targets.Members() {
			if b.covers(t.Position()) {
				exploded = append(exploded, idx)
				break
			}
		}
	}
	for i := len(exploded) - 1; i >= 0; i-- {
		f.Explode(exploded[i], targets)
	}
	return len(exploded) > 0
}

// Explode destroys the bomb at the index together with every target
// inside its blast zone.
func (f *BombField) Explode(idx int, targets *Group) {
	b := f.bombs[idx]
	var hit []Entity
	for _, t := range targets.Members() {
		if b.inBlast(t.Position()) {
			hit = append(hit, t)
		}
	}
	targets.RemoveAll(hit)
	f.release(idx)
}

// release removes the bomb at idx and its members from the group.
func (f *BombField) release(idx int) {
	for _, m := range f.bombs[idx].members {
		f.group.Remove(m)
	}
	f.bombs = append(f.bombs[:idx], f.bombs[idx+1:]...)
}
