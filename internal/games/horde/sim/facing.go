package sim

import (
	"math"

	"github.com/vovakirdan/tui-horde/internal/core"
)

// Facing is one of the eight discrete directions the player sprite can face.
// Values run clockwise from right, in screen space.
type Facing int

const (
	FacingRight Facing = iota
	FacingDownRight
	FacingDown
	FacingDownLeft
	FacingLeft
	FacingUpLeft
	FacingUp
	FacingUpRight
)

// NumFacings is the number of discrete facings.
const NumFacings = 8

var facingNames = [NumFacings]string{
	"right", "down-right", "down", "down-left",
	"left", "up-left", "up", "up-right",
}

var facingTextures = [NumFacings]string{
	"player_right", "player_down_right", "player_down", "player_down_left",
	"player_left", "player_up_left", "player_up", "player_up_right",
}

var facingGlyphs = [NumFacings]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// unit offsets per facing; diagonals move on both axes.
var facingOffsets = [NumFacings]core.Vec2{
	{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: -1, Y: 1},
	{X: -1, Y: 0}, {X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
}

// FacingFromAngle maps an angle in radians (0 = +x, clockwise positive on
// screen) to one of the eight facings.
//
// The angle is normalised to degrees in (-180, 180] and split into 45° bins
// centred on each direction. A boundary at an odd multiple of 22.5° belongs
// to the bin it is the inclusive lower bound of: 22.5° is down-right, -22.5°
// is right. NaN and infinities resolve to FacingRight.
func FacingFromAngle(rad float64) Facing {
	if math.IsNaN(rad) || math.IsInf(rad, 0) {
		return FacingRight
	}
	deg := math.Remainder(rad*180/math.Pi, 360) // [-180, 180]
	if deg <= -180 {
		deg += 360
	}
	bin := int(math.Floor((deg + 22.5) / 45))
	bin %= NumFacings
	if bin < 0 {
		bin += NumFacings
	}
	return Facing(bin)
}

// Valid reports whether f is one of the eight facings.
func (f Facing) Valid() bool {
	return f >= FacingRight && f <= FacingUpRight
}

// String returns the facing label, e.g. "down-left".
func (f Facing) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return facingNames[f]
}

// Texture returns the symbolic player texture name for this facing.
func (f Facing) Texture() string {
	if !f.Valid() {
		return facingTextures[FacingRight]
	}
	return facingTextures[f]
}

// Glyph returns the arrow used to draw the player in a terminal.
func (f Facing) Glyph() rune {
	if !f.Valid() {
		return facingGlyphs[FacingRight]
	}
	return facingGlyphs[f]
}

// Offset returns the per-axis unit offset of this facing. Diagonals are not
// normalised: down-right is (1, 1).
func (f Facing) Offset() core.Vec2 {
	if !f.Valid() {
		return facingOffsets[FacingRight]
	}
	return facingOffsets[f]
}
