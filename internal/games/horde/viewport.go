package horde

import (
	"github.com/vovakirdan/tui-horde/internal/core"
)

// viewport maps the world rectangle onto a block of screen cells.
type viewport struct {
	field          core.Rect // cells the world is drawn into
	worldW, worldH float64
}

func newViewport(field core.Rect, worldW, worldH float64) viewport {
	return viewport{field: field, worldW: worldW, worldH: worldH}
}

// toCell returns the cell covering world position p, clamped to the field.
func (v viewport) toCell(p core.Vec2) (int, int) {
	if v.field.W <= 0 || v.field.H <= 0 {
		return v.field.X, v.field.Y
	}
	cx := int(p.X / v.worldW * float64(v.field.W))
	cy := int(p.Y / v.worldH * float64(v.field.H))
	cx = core.Clamp(cx, 0, v.field.W-1)
	cy = core.Clamp(cy, 0, v.field.H-1)
	return v.field.X + cx, v.field.Y + cy
}

// toWorld returns the world position at the centre of cell (x, y). Cells
// outside the field map to the nearest edge cell.
func (v viewport) toWorld(x, y int) core.Vec2 {
	if v.field.W <= 0 || v.field.H <= 0 {
		return core.V(v.worldW/2, v.worldH/2)
	}
	cx := core.Clamp(x-v.field.X, 0, v.field.W-1)
	cy := core.Clamp(y-v.field.Y, 0, v.field.H-1)
	return core.V(
		(float64(cx)+0.5)/float64(v.field.W)*v.worldW,
		(float64(cy)+0.5)/float64(v.field.H)*v.worldH,
	)
}

// boxCells returns the cell rectangle covered by a world box.
func (v viewport) boxCells(b core.Box) core.Rect {
	x0, y0 := v.toCell(core.V(b.X, b.Y))
	x1, y1 := v.toCell(core.V(b.Right(), b.Bottom()))
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}
