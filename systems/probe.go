package systems

import (
	"math"

	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Probe answers short-range environment questions. Results are never cached
// between ticks.
type Probe interface {
	IsGroundedBelow(obj *resolv.Object) bool
	IsWallAhead(obj *resolv.Object, facing float64) bool
	OverlapRegion(r Region) []*donburi.Entry
}

// Region is an axis-aligned box, or a circle when Radius is set.
type Region struct {
	Min, Max components.Vector
	Center   components.Vector
	Radius   float64
}

// RectRegion builds a box of size w*h centred on c.
func RectRegion(c components.Vector, w, h float64) Region {
	return Region{
		Min:    components.Vector{X: c.X - w/2, Y: c.Y - h/2},
		Max:    components.Vector{X: c.X + w/2, Y: c.Y + h/2},
		Center: c,
	}
}

// CircleRegion builds a circle of radius r around c.
func CircleRegion(c components.Vector, r float64) Region {
	return Region{
		Min:    components.Vector{X: c.X - r, Y: c.Y - r},
		Max:    components.Vector{X: c.X + r, Y: c.Y + r},
		Center: c,
		Radius: r,
	}
}

// Overlaps reports whether the object's bounds intersect the region. Touching
// edges do not count.
func (r Region) Overlaps(obj *resolv.Object) bool {
	if obj.X >= r.Max.X || obj.X+obj.W <= r.Min.X || obj.Y >= r.Max.Y || obj.Y+obj.H <= r.Min.Y {
		return false
	}
	if r.Radius <= 0 {
		return true
	}
	nx := math.Max(obj.X, math.Min(r.Center.X, obj.X+obj.W))
	ny := math.Max(obj.Y, math.Min(r.Center.Y, obj.Y+obj.H))
	return math.Hypot(nx-r.Center.X, ny-r.Center.Y) < r.Radius
}

// SpaceProbe implements Probe on a resolv space.
type SpaceProbe struct {
	Space   *resolv.Space
	Physics *cfg.PhysicsConfig
}

func NewSpaceProbe(space *resolv.Space) *SpaceProbe {
	return &SpaceProbe{Space: space, Physics: &cfg.Physics}
}

// IsGroundedBelow casts a thin box just under the object's feet.
func (p *SpaceProbe) IsGroundedBelow(obj *resolv.Object) bool {
	inset := obj.W * p.Physics.ProbeInset / 2
	r := Region{
		Min: components.Vector{X: obj.X + inset, Y: obj.Y - p.Physics.GroundProbeDistance},
		Max: components.Vector{X: obj.X + obj.W - inset, Y: obj.Y},
	}
	return len(p.Query(r, obj, tags.ResolvSolid)) > 0
}

// IsWallAhead casts a thin box beyond the side the object faces.
func (p *SpaceProbe) IsWallAhead(obj *resolv.Object, facing float64) bool {
	inset := obj.H * p.Physics.ProbeInset
	r := Region{
		Min: components.Vector{Y: obj.Y + inset},
		Max: components.Vector{Y: obj.Y + obj.H - inset},
	}
	if facing >= 0 {
		r.Min.X = obj.X + obj.W
		r.Max.X = obj.X + obj.W + p.Physics.WallProbeDistance
	} else {
		r.Min.X = obj.X - p.Physics.WallProbeDistance
		r.Max.X = obj.X
	}
	return len(p.Query(r, obj, tags.ResolvSolid)) > 0
}

// OverlapRegion returns every damageable entity inside r in detection order.
func (p *SpaceProbe) OverlapRegion(r Region) []*donburi.Entry {
	var out []*donburi.Entry
	for _, o := range p.Query(r, nil) {
		e, ok := o.Data.(*donburi.Entry)
		if !ok || !e.Valid() || !e.HasComponent(components.Hurtbox) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Query returns the objects overlapping r, skipping self, optionally limited
// to objects carrying any of the given tags. Cells are scanned row by row
// from the region's minimum corner, which fixes the detection order.
func (p *SpaceProbe) Query(r Region, self *resolv.Object, tagFilter ...string) []*resolv.Object {
	if p.Space == nil {
		return nil
	}
	cw, ch := float64(p.Space.CellWidth), float64(p.Space.CellHeight)
	// Objects register into cells with a one unit inset on their far edges,
	// so scan one extra cell in every direction.
	x0 := int(math.Floor(r.Min.X/cw)) - 1
	y0 := int(math.Floor(r.Min.Y/ch)) - 1
	x1 := int(math.Floor(r.Max.X/cw)) + 1
	y1 := int(math.Floor(r.Max.Y/ch)) + 1
	// Off-grid objects live in the edge cells.
	x0, y0 = clampCell(p.Space, x0, y0)
	x1, y1 = clampCell(p.Space, x1, y1)

	var out []*resolv.Object
	seen := make(map[*resolv.Object]struct{})
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			cell := p.Space.Cell(cx, cy)
			if cell == nil {
				continue
			}
			for _, o := range cell.Objects {
				if o == self {
					continue
				}
				if _, dup := seen[o]; dup {
					continue
				}
				seen[o] = struct{}{}
				if len(tagFilter) > 0 && !o.HasTags(tagFilter...) {
					continue
				}
				if r.Overlaps(o) {
					out = append(out, o)
				}
			}
		}
	}
	return out
}

// boundsRegion is the region covered by an object.
func boundsRegion(obj *resolv.Object) Region {
	return Region{
		Min:    components.Vector{X: obj.X, Y: obj.Y},
		Max:    components.Vector{X: obj.X + obj.W, Y: obj.Y + obj.H},
		Center: components.Vector{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2},
	}
}

// grow expands a region by d on every side.
func (r Region) grow(d float64) Region {
	r.Min.X -= d
	r.Min.Y -= d
	r.Max.X += d
	r.Max.Y += d
	return r
}

// AddObject adds obj to the space and files it into its cells.
func AddObject(space *resolv.Space, obj *resolv.Object) {
	space.Add(obj)
	fileSmallObject(obj)
}

// SyncObject refreshes the cells obj touches after it moved.
func SyncObject(obj *resolv.Object) {
	obj.Update()
	fileSmallObject(obj)
}

// fileSmallObject puts an object that resolv left cell-less (anything under
// one cell on an axis, or anything wholly outside the grid) into the cell
// holding its minimum corner, clamped to the grid edge. Query's one cell pad
// and its own clamping then still find it.
func fileSmallObject(obj *resolv.Object) {
	if obj.Space == nil || len(obj.TouchingCells) > 0 {
		return
	}
	cx := int(math.Floor(obj.X / float64(obj.Space.CellWidth)))
	cy := int(math.Floor(obj.Y / float64(obj.Space.CellHeight)))
	cell := obj.Space.Cell(clampCell(obj.Space, cx, cy))
	if cell == nil {
		return
	}
	cell.Objects = append(cell.Objects, obj)
	obj.TouchingCells = append(obj.TouchingCells, cell)
}

// clampCell pulls cell coordinates onto the grid.
func clampCell(space *resolv.Space, cx, cy int) (int, int) {
	return min(max(cx, 0), space.Width()-1), min(max(cy, 0), space.Height()-1)
}
