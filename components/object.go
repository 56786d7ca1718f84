package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the object's bounds.
func (o ObjectData) Center() Vector {
	return Vector{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// SetCenter moves the object so its middle sits at c. The space cells are
// not refreshed.
func (o ObjectData) SetCenter(c Vector) {
	o.X = c.X - o.W/2
	o.Y = c.Y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
