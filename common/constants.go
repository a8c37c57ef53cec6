package common

import "time"

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

const (
	PlayerSpeed = 400.0
	ShotSpeed   = 500.0
)

// FPSWindow is the number of frame deltas averaged for the HUD frame rate.
const FPSWindow = 20

// MaxFrameDelta caps the elapsed time fed to systems after a stall.
const MaxFrameDelta = 250 * time.Millisecond
