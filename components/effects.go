package components

import "github.com/yohamta/donburi"

// FlashData tracks a hit flash. Renderers tint while the timer runs.
type FlashData struct {
	Timer Timer
}

var Flash = donburi.NewComponentType[FlashData]()

// ShakeData offsets a static object for a short time after a blocked hit.
type ShakeData struct {
	Timer     Timer
	Amplitude float64
}

var Shake = donburi.NewComponentType[ShakeData]()
