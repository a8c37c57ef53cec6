package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// WorldToScreen shifts a centred, y-up world point into screen space, whose
// origin is the bottom-left corner of the window.
func WorldToScreen(width, height float64, p cp.Vector) cp.Vector {
	return cp.Vector{X: p.X + width/2, Y: p.Y + height/2}
}

// ScreenToWorld is the inverse of WorldToScreen.
func ScreenToWorld(width, height float64, p cp.Vector) cp.Vector {
	return cp.Vector{X: p.X - width/2, Y: p.Y - height/2}
}

// ToDrawPosition maps a world point to Ebitengine's y-down draw space.
func ToDrawPosition(width, height float64, p cp.Vector) (float64, float64) {
	return p.X + width/2, height/2 - p.Y
}

// AimAngle is the angle of target-from, counter-clockwise from +x.
// Coincident points give 0.
func AimAngle(from, target cp.Vector) float64 {
	d := target.Sub(from)
	return math.Atan2(d.Y, d.X)
}

// LookAt returns the rotation for a sprite drawn facing up, so the result is
// AimAngle minus a quarter turn. Coincident points give -π/2.
func LookAt(fromScreen, targetScreen cp.Vector) float64 {
	return AimAngle(fromScreen, targetScreen) - math.Pi/2
}

// LookAtWorld returns the rotation for a sprite drawn facing right.
func LookAtWorld(from, target cp.Vector) float64 {
	return AimAngle(from, target)
}

// Normalize returns v scaled to unit length, or the zero vector when v has no
// length. cp.Vector.Normalize yields NaN for zero input.
func Normalize(v cp.Vector) cp.Vector {
	l := v.Length()
	if l == 0 || math.IsNaN(l) {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}

// DirectionFromKeys turns four direction keys into a unit or zero vector.
// Opposite keys cancel; diagonals are normalized.
func DirectionFromKeys(up, down, left, right bool) cp.Vector {
	var dir cp.Vector
	if up {
		dir.Y++
	}
	if down {
		dir.Y--
	}
	if left {
		dir.X--
	}
	if right {
		dir.X++
	}
	return Normalize(dir)
}
