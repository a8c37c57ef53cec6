package component

// ScreenSpace marks renderable entities that should be drawn in screen/UI space
// (not affected by the world-to-window transform).
type ScreenSpace struct{}

var ScreenSpaceComponent = NewComponent[ScreenSpace]()
