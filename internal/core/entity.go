package core

// Kind identifies an entity group for game logic. Rendering derives
// glyphs and colors from the entities themselves; Kind is never used
// as a presentation handle.
type Kind int

const (
	KindBody Kind = iota // snake segments
	KindFood
	KindBrick
	KindBall
	KindPaddle
	KindAsteroid
	KindBullet
	KindShooter
	KindBomb
	KindPiece
	KindFallen
)

// Group is an ordered collection of entities under one Kind. It is the
// single source of truth for what is alive: an entity outside every
// group is gone.
type Group struct {
	members []Entity
}

// NewGroup creates an empty group.
func NewGroup() *Group {
	return &Group{}
}

// Add appends an entity to the group.
func (g *Group) Add(e Entity) {
	g.members = append(g.members, e)
}

// Insert places an entity at the front of the group.
func (g *Group) Insert(e Entity) {
	g.members = append([]Entity{e}, g.members...)
}

// Remove deletes the first occurrence of the entity, preserving order.
func (g *Group) Remove(e Entity) bool {
	for i, m := range g.members {
		if m == e {
			g.members = append(g.members[:i], g.members[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAll deletes every listed entity from the group. Callers batch
// removals after a scan to avoid mutating the group mid-iteration.
func (g *Group) RemoveAll(batch []Entity) {
	for _, e := range batch {
		g.Remove(e)
	}
}

// Pop removes and returns the last entity, or nil when empty.
func (g *Group) Pop() Entity {
	if len(g.members) == 0 {
		return nil
	}
	last := g.members[len(g.members)-1]
	g.members = g.members[:len(g.members)-1]
	return last
}

// Len returns the number of live entities.
func (g *Group) Len() int { return len(g.members) }

// At returns the i-th entity.
func (g *Group) At(i int) Entity { return g.members[i] }

// Members returns the backing slice for iteration. Callers must not
// remove entities while ranging over it; collect first, remove after.
func (g *Group) Members() []Entity { return g.members }

// Occupies reports whether any member sits at the given position.
func (g *Group) Occupies(pos Position) bool {
	for _, m := range g.members {
		if m.Position() == pos {
			return true
		}
	}
	return false
}

// Clear drops every member.
func (g *Group) Clear() {
	g.members = nil
}
