// Package leveldata provides TMX level parsing for the simulation.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
//
// All positions are world units: one tile is one unit and Y points up.
package leveldata

// LevelData holds everything the world assembler needs to build a level.
type LevelData struct {
	Name          string
	Width, Height float64 // in tiles

	Solids      []Rect
	PlayerSpawn Point // feet position
	Enemies     []EnemySpawn
	Breakables  []BreakableSpawn
	Levers      []LeverSpawn
	Hazards     []HazardSpawn
}

// Rect is an axis-aligned box anchored at its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

type Point struct {
	X, Y float64
}

// EnemySpawn places an enemy by its feet. Zero PatrolDistance means the
// type's default.
type EnemySpawn struct {
	Point
	Type           string
	PatrolDistance float64
}

// BreakableSpawn is a destructible block. WeakSide is "", "left", "right",
// "top" or "bottom".
type BreakableSpawn struct {
	Rect
	HitPoints int
	WeakSide  string
}

type LeverSpawn struct {
	Rect
	Channel    string
	Top        bool
	Repeatable bool
}

type HazardSpawn struct {
	Rect
	Damage int
}
