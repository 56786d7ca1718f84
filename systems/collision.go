package systems

import (
	"math"

	"github.com/automoto/batbounce/components"
	"github.com/automoto/batbounce/tags"
	"github.com/solarlune/resolv"
)

// contactEpsilon treats objects this close as touching.
const contactEpsilon = 1e-6

// resolveObjectHorizontalCollision moves the object by dx, stopping flush
// against the nearest solid in the way. Returns true when blocked.
func resolveObjectHorizontalCollision(probe *SpaceProbe, body *components.BodyData, object *resolv.Object, dx float64) bool {
	if dx == 0 {
		return false
	}
	r := Region{
		Min: components.Vector{Y: object.Y},
		Max: components.Vector{Y: object.Y + object.H},
	}
	if dx > 0 {
		r.Min.X, r.Max.X = object.X+object.W-contactEpsilon, object.X+object.W+dx
	} else {
		r.Min.X, r.Max.X = object.X+dx, object.X+contactEpsilon
	}

	allowed, blocked := dx, false
	for _, solid := range probe.Query(r, object, tags.ResolvSolid) {
		if dx > 0 {
			allowed, blocked = clampSweep(allowed, blocked, solid.X-(object.X+object.W), 1)
		} else {
			allowed, blocked = clampSweep(allowed, blocked, (solid.X+solid.W)-object.X, -1)
		}
	}
	if blocked {
		body.Velocity.X = 0
	}
	object.X += allowed
	return blocked
}

// resolveObjectVerticalCollision is the vertical counterpart. Landing and
// ceiling hits both zero vertical speed.
func resolveObjectVerticalCollision(probe *SpaceProbe, body *components.BodyData, object *resolv.Object, dy float64) bool {
	if dy == 0 {
		return false
	}
	r := Region{
		Min: components.Vector{X: object.X},
		Max: components.Vector{X: object.X + object.W},
	}
	if dy > 0 {
		r.Min.Y, r.Max.Y = object.Y+object.H-contactEpsilon, object.Y+object.H+dy
	} else {
		r.Min.Y, r.Max.Y = object.Y+dy, object.Y+contactEpsilon
	}

	allowed, blocked := dy, false
	for _, solid := range probe.Query(r, object, tags.ResolvSolid) {
		if dy > 0 {
			allowed, blocked = clampSweep(allowed, blocked, solid.Y-(object.Y+object.H), 1)
		} else {
			allowed, blocked = clampSweep(allowed, blocked, (solid.Y+solid.H)-object.Y, -1)
		}
	}
	if blocked {
		body.Velocity.Y = 0
	}
	object.Y += allowed
	return blocked
}

// clampSweep shortens a move along sign by a solid whose near face lies gap
// away. Solids already overlapping the mover are ignored.
func clampSweep(allowed float64, blocked bool, gap, sign float64) (float64, bool) {
	d := gap * sign
	if d < -contactEpsilon {
		return allowed, blocked
	}
	d = math.Max(d, 0)
	if d < allowed*sign {
		return d * sign, true
	}
	return allowed, blocked
}

// penetration returns the minimum translation pushing a out of b and the
// unit normal of the face of b that was hit. ok is false when they only
// touch or are apart.
func penetration(a, b *resolv.Object) (push components.Vector, normal components.Vector, ok bool) {
	left := (a.X + a.W) - b.X
	right := (b.X + b.W) - a.X
	down := (a.Y + a.H) - b.Y
	up := (b.Y + b.H) - a.Y
	if left <= 0 || right <= 0 || down <= 0 || up <= 0 {
		return components.Vector{}, components.Vector{}, false
	}
	best := left
	push, normal = components.Vector{X: -left}, components.Vector{X: -1}
	if right < best {
		best = right
		push, normal = components.Vector{X: right}, components.Vector{X: 1}
	}
	if down < best {
		best = down
		push, normal = components.Vector{Y: -down}, components.Vector{Y: -1}
	}
	if up < best {
		push, normal = components.Vector{Y: up}, components.Vector{Y: 1}
	}
	return push, normal, true
}

// touching reports overlap or contact within slop.
func touching(a, b *resolv.Object, slop float64) bool {
	return a.X <= b.X+b.W+slop && a.X+a.W >= b.X-slop &&
		a.Y <= b.Y+b.H+slop && a.Y+a.H >= b.Y-slop
}
