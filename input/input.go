package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
)

// Snapshot is the input sampled for one tick.
type Snapshot struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool

	// Fire is the held state of the primary button.
	Fire bool
	// Pause is true only on the tick Escape goes down.
	Pause bool

	// PointerMoves holds the cursor positions reported this tick, oldest
	// first, in screen space (y-up, origin at the bottom-left corner).
	PointerMoves []cp.Vector
}

// Source samples input once per tick.
type Source interface {
	Poll(height float64) Snapshot
}

// EbitenSource polls Ebitengine's keyboard and mouse state.
type EbitenSource struct {
	lastX, lastY int
	seen         bool
}

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

func (s *EbitenSource) Poll(height float64) Snapshot {
	snap := Snapshot{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Fire:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	// Ebitengine has no cursor event queue; a position change counts as one
	// move event.
	x, y := ebiten.CursorPosition()
	if !s.seen || x != s.lastX || y != s.lastY {
		s.seen = true
		s.lastX, s.lastY = x, y
		snap.PointerMoves = append(snap.PointerMoves, CursorToScreen(height, x, y))
	}
	return snap
}

// CursorToScreen flips Ebitengine's y-down cursor coordinates into screen space.
func CursorToScreen(height float64, x, y int) cp.Vector {
	return cp.Vector{X: float64(x), Y: height - float64(y)}
}

// Script replays a fixed list of snapshots, then repeats the zero Snapshot.
type Script struct {
	Frames []Snapshot
	next   int
}

func (s *Script) Poll(float64) Snapshot {
	if s == nil || s.next >= len(s.Frames) {
		return Snapshot{}
	}
	snap := s.Frames[s.next]
	s.next++
	return snap
}
