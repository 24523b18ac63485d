package engine

import (
	"fmt"

	"github.com/gfcarvalho/brickgame/internal/core"
)

// Board maps grid coordinates onto a screen buffer. All four games
// share the same fixed 10x20 playfield drawn inside a border box below
// a two-line HUD; only the entities differ.
type Board struct {
	X, Y int // Screen position of grid cell (0, 0)
}

// blockRune is the glyph for every live grid cell. Entities are told
// apart by color, echoing the single-tone LCD of the original units.
const blockRune = '█'

// NewBoard computes the playfield placement for a screen, centering
// the grid horizontally under the HUD.
func NewBoard(dst *core.Screen) Board {
	return Board{
		X: (dst.Width() - core.GridWidth) / 2,
		Y: 3,
	}
}

// DrawFrame renders the HUD line, the separator, and the playfield
// border. Games call this first, then plot their groups.
func (bd Board) DrawFrame(dst *core.Screen, title string, st core.GameState, extra string) {
	hud := fmt.Sprintf(" %s — Score: %d  Hi: %d", title, st.Score, st.HighScore)
	if extra != "" {
		hud += "  " + extra
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')

	dst.DrawBox(core.NewRect(bd.X-1, bd.Y-1, core.GridWidth+2, core.GridHeight+2))
}

// Plot draws one entity; positions outside the grid are clipped so
// spawning bombs and exiting bullets never bleed into the HUD.
func (bd Board) Plot(dst *core.Screen, e core.Entity) {
	pos := e.Position()
	if !pos.InBounds() {
		return
	}
	dst.SetCell(bd.X+pos.Col, bd.Y+pos.Row, blockRune, e.Color())
}

// PlotGroup draws every entity in the group.
func (bd Board) PlotGroup(dst *core.Screen, g *core.Group) {
	for _, e := range g.Members() {
		bd.Plot(dst, e)
	}
}

// DrawOverlay renders a centered two-line message box over the board,
// used for the pause, victory, and defeat screens.
func (bd Board) DrawOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// DrawStateOverlays renders the standard endgame and pause overlays
// from the lifecycle state. Games with extra overlays draw their own.
func (bd Board) DrawStateOverlays(dst *core.Screen, st core.GameState) {
	switch {
	case st.GameOver && st.Victory:
		bd.DrawOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", st.Score))
	case st.GameOver:
		bd.DrawOverlay(dst, "Game Over", "Press R to restart")
	case st.Paused:
		bd.DrawOverlay(dst, "Paused", "Press P to continue")
	}
}
