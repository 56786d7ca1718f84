package scenes

import (
	"image/color"

	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// GameOverScene is shown after defeat until the player asks to retry.
type GameOverScene struct {
	sceneChanger SceneChanger
	restart      func() interface{}
	input        components.InputData
	frames       int
}

// minGameOverFrames stops a held jump from skipping the screen.
const minGameOverFrames = 30

// NewGameOverScene creates a new game over scene. restart builds the scene
// to return to.
func NewGameOverScene(sc SceneChanger, restart func() interface{}) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, restart: restart}
}

func (gs *GameOverScene) Update() {
	systems.PollInput(&gs.input)
	gs.frames++
	if gs.frames < minGameOverFrames {
		return
	}
	if systems.GetAction(&gs.input, cfg.ActionJump).JustPressed ||
		systems.GetAction(&gs.input, cfg.ActionRestart).JustPressed {
		gs.sceneChanger.ChangeScene(gs.restart())
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	ebitenutil.DebugPrintAt(screen, "DEFEATED\npress jump to try again", cfg.C.Width/2-70, cfg.C.Height/2-10)
}
