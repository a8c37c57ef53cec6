package component

import "image/color"

type Text struct {
	Value string
	Color color.Color
}

var TextComponent = NewComponent[Text]()

type HUDKind string

const (
	HUDKindFPS   HUDKind = "fps"
	HUDKindShots HUDKind = "shots"
)

// HUDText marks a Text that the HUD system rewrites every tick.
type HUDText struct {
	Kind HUDKind
}

var HUDTextComponent = NewComponent[HUDText]()
