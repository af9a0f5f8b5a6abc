package ctrl

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ldanpham95/AnimeEffects/core"
)

var (
	markerIdleColor  = color.RGBA{R: 100, G: 100, B: 255, A: 255}
	markerFocusColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	markerStrokeWidth = 1.5
	markerDashLen     = 4.0
	markerDashGap     = 3.0
)

// Render draws the centroid cross-hair marker: a filled center dot and four
// dashed arms, highlighted while the pointer focuses it or a drag is
// active. The marker is screen-space overlay; its size does not change with
// camera zoom.
func (m *CentroidMode) Render(dst *ebiten.Image, cam *core.Camera) {
	clr := color.Color(markerIdleColor)
	if m.focusing || m.moving {
		clr = markerFocusColor
	}

	c := cam.WorldToScreen(m.target.WorldCentroidPos(m.project.Frame()))
	cx := float32(c.X)
	cy := float32(c.Y)

	vector.DrawFilledCircle(dst, cx, cy, transRange, clr, true)

	strokeDashedLine(dst, cx-crossRadius, cy, cx-crossSub, cy, clr)
	strokeDashedLine(dst, cx+crossSub, cy, cx+crossRadius, cy, clr)
	strokeDashedLine(dst, cx, cy-crossRadius, cx, cy-crossSub, clr)
	strokeDashedLine(dst, cx, cy+crossSub, cx, cy+crossRadius, clr)
}

// strokeDashedLine draws a dashed segment from (x0, y0) to (x1, y1).
func strokeDashedLine(dst *ebiten.Image, x0, y0, x1, y1 float32, clr color.Color) {
	dx := x1 - x0
	dy := y1 - y0
	length := float32(core.Vec2{X: float64(dx), Y: float64(dy)}.Len())
	if length <= 0 {
		return
	}
	ux := dx / length
	uy := dy / length

	for pos := float32(0); pos < length; pos += markerDashLen + markerDashGap {
		end := pos + markerDashLen
		if end > length {
			end = length
		}
		vector.StrokeLine(dst,
			x0+ux*pos, y0+uy*pos,
			x0+ux*end, y0+uy*end,
			markerStrokeWidth, clr, true)
	}
}
