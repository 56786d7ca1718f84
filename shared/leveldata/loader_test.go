package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTileset = `<tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="1" columns="1">
  <image source="tiles.png" width="16" height="16"/>
 </tileset>`

const roomTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0">
 ` + testTileset + `
 <layer id="1" name="wg-tiles" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
1,1,0,1
</data>
 </layer>
 <objectgroup id="2" name="PlayerSpawn">
  <object id="1" x="24" y="32"><point/></object>
 </objectgroup>
 <objectgroup id="3" name="Enemies">
  <object id="2" x="48" y="16" width="16" height="16">
   <properties>
    <property name="enemyType" value="Brute"/>
    <property name="patrolDistance" type="float" value="2"/>
   </properties>
  </object>
  <object id="3" x="8" y="32"><point/></object>
 </objectgroup>
 <objectgroup id="4" name="Breakables">
  <object id="4" x="32" y="0" width="16" height="32">
   <properties>
    <property name="hitPoints" type="int" value="5"/>
    <property name="weakSide" value="Left"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="5" name="Levers">
  <object id="5" x="0" y="16" width="8" height="16">
   <properties>
    <property name="channel" value="lift"/>
    <property name="top" type="bool" value="true"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="6" name="Hazards">
  <object id="6" x="16" y="24" width="16" height="8"/>
 </objectgroup>
</map>
`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="16" tileheight="16" infinite="0">
 ` + testTileset + `
 <layer id="1" name="wg-tiles" width="2" height="1">
  <data encoding="csv">
1,1
</data>
 </layer>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/room.tmx":    {Data: []byte(roomTMX)},
		"levels/nospawn.tmx": {Data: []byte(noSpawnTMX)},
		"ok/room.tmx":        {Data: []byte(roomTMX)},
	}
}

func TestLoadLevel(t *testing.T) {
	level, err := LoadLevel(testFS(), "levels/room.tmx")
	require.NoError(t, err)

	assert.Equal(t, "room", level.Name)
	assert.Equal(t, 4.0, level.Width)
	assert.Equal(t, 3.0, level.Height)

	assert.Equal(t, []Rect{{X: 0, Y: 0, W: 2, H: 1}, {X: 3, Y: 0, W: 1, H: 1}}, level.Solids)
	assert.Equal(t, Point{X: 1.5, Y: 1}, level.PlayerSpawn)

	require.Len(t, level.Enemies, 2)
	assert.Equal(t, Point{X: 0.5, Y: 1}, level.Enemies[0].Point, "enemies are sorted by x")
	assert.Equal(t, EnemySpawn{Point: Point{X: 3.5, Y: 1}, Type: "Brute", PatrolDistance: 2}, level.Enemies[1])

	require.Len(t, level.Breakables, 1)
	assert.Equal(t, BreakableSpawn{Rect: Rect{X: 2, Y: 1, W: 1, H: 2}, HitPoints: 5, WeakSide: "left"}, level.Breakables[0])

	require.Len(t, level.Levers, 1)
	assert.Equal(t, LeverSpawn{Rect: Rect{X: 0, Y: 1, W: 0.5, H: 1}, Channel: "lift", Top: true}, level.Levers[0])

	require.Len(t, level.Hazards, 1)
	assert.Equal(t, HazardSpawn{Rect: Rect{X: 1, Y: 1, W: 1, H: 0.5}, Damage: 1}, level.Hazards[0])
}

func TestLoadLevelRequiresSpawn(t *testing.T) {
	_, err := LoadLevel(testFS(), "levels/nospawn.tmx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), PlayerSpawnGroup)
}

func TestLoadLevelMissingFile(t *testing.T) {
	_, err := LoadLevel(testFS(), "levels/missing.tmx")
	assert.Error(t, err)
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(testFS(), "ok")
	require.NoError(t, err)
	assert.Equal(t, []string{"room"}, names)
	assert.Contains(t, levels, "room")

	_, _, err = LoadAllLevels(testFS(), "levels")
	assert.Error(t, err, "one broken level fails the batch")

	_, _, err = LoadAllLevels(testFS(), "empty")
	assert.Error(t, err)
}

func TestDefaultRoomHasSpawnAndFloor(t *testing.T) {
	room := DefaultRoom()
	require.NotEmpty(t, room.Solids)
	floor := room.Solids[0]
	assert.Equal(t, 0.0, floor.Y)
	assert.Equal(t, floor.Y+floor.H, room.PlayerSpawn.Y)
}
