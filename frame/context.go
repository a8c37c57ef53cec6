// Package frame holds the state shared by systems within and across ticks.
package frame

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/astroblasto/input"
)

// Context is passed to every system on every tick. The game owns a single
// instance; Dt, Width, Height and Input are refreshed before each tick while
// Pointer and Shots persist.
type Context struct {
	// Dt is the elapsed time in seconds since the previous tick.
	Dt float64
	// Width and Height are the current window size in pixels.
	Width  float64
	Height float64

	Input input.Snapshot

	// Pointer is the latest cursor position in screen space (y-up, origin at
	// the bottom-left corner).
	Pointer cp.Vector
	// Shots counts projectiles fired since start.
	Shots int
}

// Tick refreshes the per-tick fields.
func (c *Context) Tick(dt, width, height float64, in input.Snapshot) {
	if c == nil {
		return
	}
	c.Dt = dt
	c.Width = width
	c.Height = height
	c.Input = in
}
