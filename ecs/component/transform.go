package component

// Transform places an entity. HUD entities use screen pixels from the top
// left; everything else uses centred, y-up world units with Rotation measured
// counter-clockwise in radians.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
