package tetris

import "github.com/gfcarvalho/brickgame/internal/core"

// Shape identifies one of the seven tetrominoes.
type Shape byte

const (
	ShapeT Shape = 'T'
	ShapeJ Shape = 'J'
	ShapeL Shape = 'L'
	ShapeS Shape = 'S'
	ShapeZ Shape = 'Z'
	ShapeI Shape = 'I'
	ShapeO Shape = 'O'
)

// shapes is the draw pool for new pieces.
var shapes = [...]Shape{ShapeT, ShapeJ, ShapeL, ShapeS, ShapeZ, ShapeI, ShapeO}

type offset struct {
	dc, dr int
}

// rotations lists each shape's rotation states as cell offsets from
// the anchor, cycled in order. The anchor itself is not always one of
// the cells (the O piece hangs off it).
var rotations = map[Shape][][]offset{
	ShapeT: {
		{{-1, 0}, {0, 0}, {1, 0}, {0, -1}},
		{{-1, 0}, {0, 0}, {0, -1}, {0, 1}},
		{{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		{{0, -1}, {0, 0}, {1, 0}, {0, 1}},
	},
	ShapeJ: {
		{{-1, -1}, {-1, 0}, {0, 0}, {1, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {-1, 1}},
		{{-1, -1}, {0, -1}, {1, -1}, {1, 0}},
		{{-1, -1}, {0, -1}, {-1, 0}, {-1, 1}},
	},
	ShapeL: {
		{{-1, 0}, {0, 0}, {1, 0}, {1, -1}},
		{{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
		{{-1, 0}, {-1, -1}, {0, -1}, {1, -1}},
		{{-1, -1}, {-1, 0}, {-1, 1}, {0, 1}},
	},
	ShapeS: {
		{{-1, 0}, {0, 0}, {0, -1}, {1, -1}},
		{{0, 1}, {0, 0}, {-1, 0}, {-1, -1}},
	},
	ShapeZ: {
		{{-1, -1}, {0, -1}, {0, 0}, {1, 0}},
		{{0, -1}, {0, 0}, {-1, 0}, {-1, 1}},
	},
	ShapeI: {
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		{{0, -1}, {0, 0}, {0, 1}, {0, 2}},
	},
	ShapeO: {
		{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
}

// cellPositions resolves a shape's cells for an anchor and rotation
// state.
func cellPositions(sh Shape, rot int, anchor core.Position) []core.Position {
	offs := rotations[sh][rot]
	cells := make([]core.Position, len(offs))
	for i, o := range offs {
		cells[i] = anchor.Add(o.dc, o.dr)
	}
	return cells
}
