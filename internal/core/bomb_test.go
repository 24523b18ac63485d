package core

import "testing"

func TestBombSpawnLayout(t *testing.T) {
	group := NewGroup()
	field := NewBombField(group)

	b := field.Spawn(Position{Col: 3, Row: 10})

	if len(b.Members()) != 16 {
		t.Fatalf("Bomb has %d members, expected 16", len(b.Members()))
	}
	if group.Len() != 16 {
		t.Errorf("Group has %d members, expected all 16 registered", group.Len())
	}
	if b.Anchor() != (Position{Col: 3, Row: 10}) {
		t.Errorf("Anchor at %+v, expected (3,10)", b.Anchor())
	}

	// Every footprint cell is occupied exactly once.
	seen := map[Position]int{}
	for _, m := range b.Members() {
		seen[m.Position()]++
	}
	for col := 3; col < 7; col++ {
		for row := 10; row < 14; row++ {
			if seen[Position{Col: col, Row: row}] != 1 {
				t.Errorf("Footprint cell (%d,%d) covered %d times", col, row, seen[Position{Col: col, Row: row}])
			}
		}
	}

	// Corners blink.
	corners := 0
	for _, m := range b.Members() {
		if _, ok := m.(*BlinkingCell); ok {
			corners++
		}
	}
	if corners != 4 {
		t.Errorf("Bomb has %d blinking cells, expected 4 corners", corners)
	}
}

func TestBombFieldMoveAtomic(t *testing.T) {
	group := NewGroup()
	field := NewBombField(group)
	b := field.Spawn(Position{Col: 2, Row: 12})

	field.Move(DirUp)

	if b.Anchor() != (Position{Col: 2, Row: 11}) {
		t.Errorf("Anchor at %+v after one step up, expected (2,11)", b.Anchor())
	}
	// The cluster stays rigid.
	for _, m := range b.Members() {
		p := m.Position()
		if p.Col < 2 || p.Col > 5 || p.Row < 11 || p.Row > 14 {
			t.Errorf("Member escaped the footprint at %+v", p)
		}
	}
}

func TestBombFieldExitTop(t *testing.T) {
	group := NewGroup()
	field := NewBombField(group)
	field.Spawn(Position{Col: 0, Row: 0})

	field.Move(DirUp)

	if field.Len() != 0 {
		t.Error("Bomb crossing the top border should be released")
	}
	if group.Len() != 0 {
		t.Errorf("Group still holds %d members after release", group.Len())
	}
}

func TestBombFieldExitBottom(t *testing.T) {
	group := NewGroup()
	field := NewBombField(group)
	// The cluster spans four rows, so an anchor at GridHeight-4 is the
	// last fully visible row going down.
	field.Spawn(Position{Col: 0, Row: GridHeight - 4})

	field.Move(DirDown)

	if field.Len() != 0 {
		t.Error("Bomb whose tail left the grid should be released")
	}
}

func TestBombCheckExplosion(t *testing.T) {
	group := NewGroup()
	field := NewBombField(group)
	field.Spawn(Position{Col: 3, Row: 10})

	targets := NewGroup()
	inFootprint := NewCell(Position{Col: 4, Row: 11})
	inBlast := NewCell(Position{Col: 1, Row: 9}) // Inside the 8x8 zone only
	outside := NewCell(Position{Col: 0, Row: 0})
	targets.Add(inFootprint)
	targets.Add(inBlast)
	targets.Add(outside)

	if !field.CheckExplosion(targets) {
		t.Fatal("A target in the footprint should detonate the bomb")
	}

	if field.Len() != 0 {
		t.Error("Exploded bomb should be gone")
	}
	if targets.Occupies(inFootprint.Position()) || targets.Occupies(inBlast.Position()) {
		t.Error("Targets inside the blast zone should be destroyed")
	}
	if !targets.Occupies(outside.Position()) {
		t.Error("Targets outside the blast zone should survive")
	}
}

func TestBombNoExplosionOutsideFootprint(t *testing.T) {
	group := NewGroup()
	field := NewBombField(group)
	field.Spawn(Position{Col: 3, Row: 10})

	targets := NewGroup()
	// In the blast margin but not the footprint: near miss, no trigger.
	targets.Add(NewCell(Position{Col: 2, Row: 9}))

	if field.CheckExplosion(targets) {
		t.Error("A target outside the 4x4 footprint must not detonate the bomb")
	}
	if field.Len() != 1 {
		t.Error("Bomb should survive a near miss")
	}
}
