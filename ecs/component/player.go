package component

// Player is the ship steered by the keyboard.
type Player struct {
	// Speed in world units per second.
	Speed float64
}

var PlayerComponent = NewComponent[Player]()
