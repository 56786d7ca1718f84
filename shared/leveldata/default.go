package leveldata

// DefaultRoom is the built-in sandbox used when no TMX file is given: a
// walled room with a platform, a wall-jump column, spikes, a breakable
// block, a lever and two enemies.
func DefaultRoom() *LevelData {
	return &LevelData{
		Name:   "sandbox",
		Width:  48,
		Height: 18,
		Solids: []Rect{
			{X: 0, Y: 0, W: 48, H: 1},  // floor
			{X: 0, Y: 17, W: 48, H: 1}, // ceiling
			{X: 0, Y: 1, W: 1, H: 16},  // left wall
			{X: 47, Y: 1, W: 1, H: 16}, // right wall
			{X: 6, Y: 4, W: 5, H: 1},   // platform
			{X: 22, Y: 1, W: 1, H: 9},  // wall-jump column
			{X: 26, Y: 5, W: 1, H: 12},
		},
		PlayerSpawn: Point{X: 3, Y: 1},
		Enemies: []EnemySpawn{
			{Point: Point{X: 33, Y: 1}, Type: "Grunt"},
			{Point: Point{X: 41, Y: 1}, Type: "Brute", PatrolDistance: 2},
		},
		Breakables: []BreakableSpawn{
			{Rect: Rect{X: 18, Y: 1, W: 1, H: 2}, HitPoints: 3, WeakSide: "left"},
		},
		Levers: []LeverSpawn{
			{Rect: Rect{X: 45, Y: 1, W: 0.5, H: 1}, Channel: "elevator", Repeatable: true},
		},
		Hazards: []HazardSpawn{
			{Rect: Rect{X: 13, Y: 1, W: 3, H: 0.5}, Damage: 1},
		},
	}
}
