package breakout

import "github.com/gfcarvalho/brickgame/internal/core"

// stageCount is the number of brick layouts; clearing the last one
// wins the game.
const stageCount = 3

// sketches are the brick layouts, one row per entry listing the
// occupied columns. Stage 1 is a hollow box with a pillar, stage 2 a
// funnel, stage 3 a grate with a central channel.
var sketches = [stageCount][]struct {
	row  int
	cols []int
}{
	{
		{0, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{1, []int{0, 9}},
		{2, []int{0, 9}},
		{3, []int{0, 3, 4, 5, 6, 9}},
		{4, []int{0, 3, 4, 5, 6, 9}},
		{5, []int{0, 3, 4, 5, 6, 9}},
		{6, []int{0, 3, 4, 5, 6, 9}},
		{7, []int{0, 9}},
		{8, []int{0, 9}},
		{9, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	},
	{
		{0, []int{0, 1, 8, 9}},
		{1, []int{0, 1, 2, 7, 8, 9}},
		{2, []int{1, 2, 3, 6, 7, 8}},
		{3, []int{2, 3, 4, 5, 6, 7}},
		{4, []int{1, 2, 3, 6, 7, 8}},
		{5, []int{0, 1, 2, 7, 8, 9}},
		{6, []int{0, 1, 8, 9}},
	},
	{
		{0, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{1, []int{0, 4, 5, 9}},
		{2, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{3, []int{0, 4, 5, 9}},
		{4, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{5, []int{0, 4, 5, 9}},
		{6, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	},
}

// levelLayout returns the brick positions for a stage (1-based).
// Stages past the last return nothing.
func levelLayout(level int) []core.Position {
	if level < 1 || level > stageCount {
		return nil
	}
	var layout []core.Position
	for _, row := range sketches[level-1] {
		for _, col := range row.cols {
			layout = append(layout, core.Position{Col: col, Row: row.row})
		}
	}
	return layout
}

// levelPoints returns the value of one brick on the given stage.
func levelPoints(level int) int {
	switch level {
	case 1:
		return 15
	case 2:
		return 20
	case 3:
		return 30
	default:
		return 0
	}
}

// levelBonus is the score award for clearing a stage, growing with
// the stage just entered.
func levelBonus(nextLevel int) int {
	return 3000 + 3000*(nextLevel-1)
}
