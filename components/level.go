package components

import (
	"github.com/automoto/batbounce/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Name string
	Data *leveldata.LevelData
}

var Level = donburi.NewComponentType[LevelData]()

// Space is the collision space every simulated object lives in.
var Space = donburi.NewComponentType[resolv.Space]()

// ClockData carries the fixed step for the current tick.
type ClockData struct {
	Dt      float64
	Elapsed float64
	Tick    int
}

var Clock = donburi.NewComponentType[ClockData]()
