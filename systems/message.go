package systems

import (
	"image/color"

	"github.com/automoto/batbounce/archetypes"
	"github.com/automoto/batbounce/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

const (
	messageDuration = 2.0 // seconds
	messageFadeTime = 0.5 // seconds, at the end of messageDuration
	messageTop      = 12
	messagePadding  = 4
)

var messageFace = text.NewGoXFace(basicfont.Face7x13)

// ShowMessage replaces the banner text and restarts its display timer.
func ShowMessage(ecs *ecs.ECS, s string) {
	msg := getOrCreateMessage(ecs)
	msg.Text = s
	msg.Timer.Set(messageDuration)
	msg.Fade = gween.New(1, 0, messageFadeTime, ease.InQuad)
	msg.Alpha = 1
}

// UpdateMessage counts the banner down, fading it out before it clears.
func UpdateMessage(ecs *ecs.ECS) {
	entry, ok := components.Message.First(ecs.World)
	if !ok {
		return
	}
	msg := components.Message.Get(entry)
	if !msg.Timer.Active() {
		return
	}
	dt := tickDt(ecs.World)
	if msg.Timer.Tick(dt) {
		msg.Text = ""
		msg.Alpha = 0
		return
	}
	if msg.Timer.Remaining < messageFadeTime && msg.Fade != nil {
		msg.Alpha, _ = msg.Fade.Update(float32(dt))
	}
}

// DrawMessage renders the active banner centred at the top of the screen.
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Message.First(ecs.World)
	if !ok {
		return
	}
	msg := components.Message.Get(entry)
	if msg.Text == "" {
		return
	}

	w, h := text.Measure(msg.Text, messageFace, 0)
	x := (float64(screen.Bounds().Dx()) - w) / 2

	bg := color.RGBA{0, 0, 0, uint8(160 * msg.Alpha)}
	vector.FillRect(screen,
		float32(x-messagePadding), float32(messageTop-messagePadding),
		float32(w+2*messagePadding), float32(h+2*messagePadding),
		bg, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, messageTop)
	op.ColorScale.ScaleAlpha(msg.Alpha)
	text.Draw(screen, msg.Text, messageFace, op)
}

// getOrCreateMessage returns the singleton banner, spawning it on first use.
func getOrCreateMessage(ecs *ecs.ECS) *components.MessageData {
	entry, ok := components.Message.First(ecs.World)
	if !ok {
		entry = archetypes.Message.Spawn(ecs)
	}
	return components.Message.Get(entry)
}
