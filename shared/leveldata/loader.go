package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer and object group names read from TMX files.
const (
	SolidLayer       = "wg-tiles"
	HazardLayer      = "hazard-tiles"
	PlayerSpawnGroup = "PlayerSpawn"
	EnemyGroup       = "Enemies"
	BreakableGroup   = "Breakables"
	LeverGroup       = "Levers"
	HazardGroup      = "Hazards"
)

// LoadLevel parses a TMX file into world-unit level data. It takes an fs.FS
// so callers can pass embed.FS or os.DirFS.
func LoadLevel(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: invalid tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	conv := converter{
		tileW:  float64(levelMap.TileWidth),
		tileH:  float64(levelMap.TileHeight),
		height: float64(levelMap.Height),
	}
	data := &LevelData{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width),
		Height: float64(levelMap.Height),
	}

	hasSpawn := false
	for _, layer := range levelMap.Layers {
		switch layer.Name {
		case SolidLayer:
			data.Solids = append(data.Solids, tileRuns(levelMap, layer, conv)...)
		case HazardLayer:
			for _, r := range tileRuns(levelMap, layer, conv) {
				data.Hazards = append(data.Hazards, HazardSpawn{Rect: r, Damage: 1})
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			switch og.Name {
			case PlayerSpawnGroup:
				if !hasSpawn {
					data.PlayerSpawn = conv.point(o)
					hasSpawn = true
				}
			case EnemyGroup:
				data.Enemies = append(data.Enemies, EnemySpawn{
					Point:          conv.point(o),
					Type:           o.Properties.GetString("enemyType"),
					PatrolDistance: o.Properties.GetFloat("patrolDistance"),
				})
			case BreakableGroup:
				hp := o.Properties.GetInt("hitPoints")
				data.Breakables = append(data.Breakables, BreakableSpawn{
					Rect:      conv.rect(o),
					HitPoints: hp,
					WeakSide:  strings.ToLower(o.Properties.GetString("weakSide")),
				})
			case LeverGroup:
				data.Levers = append(data.Levers, LeverSpawn{
					Rect:       conv.rect(o),
					Channel:    o.Properties.GetString("channel"),
					Top:        o.Properties.GetBool("top"),
					Repeatable: o.Properties.GetBool("repeatable"),
				})
			case HazardGroup:
				dmg := o.Properties.GetInt("damage")
				if dmg <= 0 {
					dmg = 1
				}
				data.Hazards = append(data.Hazards, HazardSpawn{Rect: conv.rect(o), Damage: dmg})
			}
		}
	}

	if !hasSpawn {
		return nil, fmt.Errorf("load TMX %s: no %s object", tmxPath, PlayerSpawnGroup)
	}

	// Sort enemies left-to-right for a stable spawn order
	sort.SliceStable(data.Enemies, func(i, j int) bool {
		return data.Enemies[i].X < data.Enemies[j].X
	})

	return data, nil
}

// converter maps Tiled pixels (Y down) to tiles (Y up).
type converter struct {
	tileW, tileH float64
	height       float64 // map height in tiles
}

// rect converts a rectangle object. Tile objects are anchored at their
// bottom edge in Tiled, plain rectangles at their top edge.
func (c converter) rect(o *tiled.Object) Rect {
	top := o.Y
	if o.GID != 0 {
		top = o.Y - o.Height
	}
	return Rect{
		X: o.X / c.tileW,
		Y: c.height - (top+o.Height)/c.tileH,
		W: o.Width / c.tileW,
		H: o.Height / c.tileH,
	}
}

// point converts a point or rectangle object to its bottom-centre.
func (c converter) point(o *tiled.Object) Point {
	if o.Width == 0 && o.Height == 0 {
		return Point{X: o.X / c.tileW, Y: c.height - o.Y/c.tileH}
	}
	r := c.rect(o)
	return Point{X: r.X + r.W/2, Y: r.Y}
}

// tileRuns merges each row's horizontally adjacent tiles into one rect.
func tileRuns(levelMap *tiled.Map, layer *tiled.Layer, c converter) []Rect {
	var rects []Rect
	for y := 0; y < levelMap.Height; y++ {
		start := -1
		for x := 0; x <= levelMap.Width; x++ {
			filled := x < levelMap.Width && !layer.Tiles[y*levelMap.Width+x].IsNil()
			if filled && start < 0 {
				start = x
			}
			if !filled && start >= 0 {
				rects = append(rects, Rect{
					X: float64(start),
					Y: c.height - float64(y+1),
					W: float64(x - start),
					H: 1,
				})
				start = -1
			}
		}
	}
	return rects
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads
// each, and returns a map keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*LevelData, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*LevelData, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
