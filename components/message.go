package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MessageData is the singleton banner shown at the top of the screen.
type MessageData struct {
	Text  string
	Timer Timer
	Fade  *gween.Tween // runs over the last part of Timer
	Alpha float32
}

var Message = donburi.NewComponentType[MessageData]()
