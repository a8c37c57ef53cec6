package system

import (
	"github.com/milk9111/astroblasto/ecs"
	"github.com/milk9111/astroblasto/frame"
)

// PointerSystem consumes the tick's pointer-move events. The last event wins;
// without events the pointer keeps its previous position.
type PointerSystem struct{}

func NewPointerSystem() *PointerSystem {
	return &PointerSystem{}
}

func (p *PointerSystem) Update(_ *ecs.World, f *frame.Context) {
	if f == nil {
		return
	}
	if n := len(f.Input.PointerMoves); n > 0 {
		f.Pointer = f.Input.PointerMoves[n-1]
	}
	f.Input.PointerMoves = nil
}
