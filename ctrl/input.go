package ctrl

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ldanpham95/AnimeEffects/core"
)

// ReadCursor feeds one frame of real mouse state into cursor, projecting
// the pointer through cam. Call once per Update tick, before any
// controller's UpdateCursor.
func ReadCursor(cursor *core.Cursor, cam *core.Camera) {
	mx, my := ebiten.CursorPosition()
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	cursor.Update(cam, core.Vec2{X: float64(mx), Y: float64(my)}, down)
}
