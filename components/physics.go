package components

import (
	"math"

	"github.com/yohamta/donburi"
)

// Vector represents a 2D vector. Y points up.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector         { return Vector{v.X + o.X, v.Y + o.Y} }
func (v Vector) Sub(o Vector) Vector         { return Vector{v.X - o.X, v.Y - o.Y} }
func (v Vector) Scale(s float64) Vector      { return Vector{v.X * s, v.Y * s} }
func (v Vector) Dot(o Vector) float64        { return v.X*o.X + v.Y*o.Y }
func (v Vector) Len() float64                { return math.Hypot(v.X, v.Y) }
func (v Vector) DistanceTo(o Vector) float64 { return v.Sub(o).Len() }

// Normalized returns the unit vector, or zero for a zero vector.
func (v Vector) Normalized() Vector {
	l := v.Len()
	if l == 0 {
		return Vector{}
	}
	return Vector{v.X / l, v.Y / l}
}

// Reflect mirrors v about the surface with unit normal n.
func (v Vector) Reflect(n Vector) Vector {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Lerp moves v toward o by t, clamped to [0, 1].
func (v Vector) Lerp(o Vector, t float64) Vector {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Vector{v.X + (o.X-v.X)*t, v.Y + (o.Y-v.Y)*t}
}

// BodyData is the rigid-body binding: velocity plus gravity integration.
// Only the owning system writes Velocity directly; everything else goes
// through SetVelocity/ApplyImpulse.
type BodyData struct {
	Velocity       Vector
	GravityEnabled bool
	GravityScale   float64 // multiplier on base gravity while enabled
	Mass           float64 // zero means immovable by impulses
	Solid          bool    // blocked by solids during movement
}

// SetVelocity replaces the body's velocity.
func (b *BodyData) SetVelocity(v Vector) {
	b.Velocity = v
}

// ApplyImpulse adds an instantaneous velocity change. Bodies without mass
// ignore it.
func (b *BodyData) ApplyImpulse(dv Vector) {
	if b.Mass <= 0 {
		return
	}
	b.Velocity = b.Velocity.Add(dv)
}

// SetGravity toggles gravity integration.
func (b *BodyData) SetGravity(enabled bool) {
	b.GravityEnabled = enabled
}

var Body = donburi.NewComponentType[BodyData]()
