package component

// Wrap marks entities that reappear on the opposite edge when they leave
// the window.
type Wrap struct{}

var WrapComponent = NewComponent[Wrap]()
