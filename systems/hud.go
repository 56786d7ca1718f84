package systems

import (
	"image/color"

	"github.com/automoto/batbounce/components"
	"github.com/automoto/batbounce/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudPip       = 10
	hudMargin    = 10
	hudGap       = 4
	hudBarWidth  = 58
	hudBarHeight = 4
)

var (
	hudLifeColor  = color.RGBA{220, 40, 40, 255}
	hudEmptyColor = color.RGBA{40, 40, 40, 255}
	hudReadyColor = color.RGBA{40, 220, 40, 255}
)

// DrawHUD renders the player's lives and throw readiness in the top-left
// corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	drawLives(playerEntry, screen)
	drawThrowMeter(playerEntry, screen)
}

func drawLives(playerEntry *donburi.Entry, screen *ebiten.Image) {
	hp := components.Health.Get(playerEntry)
	for i := 0; i < hp.Max; i++ {
		clr := hudEmptyColor
		if i < hp.Current {
			clr = hudLifeColor
		}
		x := hudMargin + i*(hudPip+hudGap)
		vector.FillRect(screen, float32(x), hudMargin, hudPip, hudPip, clr, false)
	}
}

// drawThrowMeter fills as the throw cooldown runs out; it stays empty while
// every ball slot is in use.
func drawThrowMeter(playerEntry *donburi.Entry, screen *ebiten.Image) {
	player := components.Player.Get(playerEntry)
	ratio := throwReadiness(player)

	y := float32(hudMargin + hudPip + hudGap)
	vector.FillRect(screen, hudMargin, y, hudBarWidth, hudBarHeight, hudEmptyColor, false)
	vector.FillRect(screen, hudMargin, y, hudBarWidth*float32(ratio), hudBarHeight, hudReadyColor, false)
}

func throwReadiness(player *components.PlayerData) float64 {
	if player.Combat == nil || len(player.ActiveBalls) >= player.Combat.MaxBalls {
		return 0
	}
	if player.Combat.ThrowCooldown <= 0 || !player.ThrowCooldown.Active() {
		return 1
	}
	return 1 - player.ThrowCooldown.Remaining/player.Combat.ThrowCooldown
}
