package systems

import (
	"image/color"

	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// viewport maps world units (Y up) to screen pixels (Y down) around the
// camera.
type viewport struct {
	camX, camY float64
	scale      float64
	w, h       float64
}

func newViewport(ecs *ecs.ECS, screen *ebiten.Image) viewport {
	v := viewport{
		scale: cfg.C.Scale,
		w:     float64(screen.Bounds().Dx()),
		h:     float64(screen.Bounds().Dy()),
	}
	if cameraEntry, ok := components.Camera.First(ecs.World); ok {
		camera := components.Camera.Get(cameraEntry)
		v.camX, v.camY = camera.Position.X, camera.Position.Y
	}
	return v
}

// fillRect draws a world-space rectangle whose bottom-left corner is (x, y).
func (v viewport) fillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	sx := v.w/2 + (x-v.camX)*v.scale
	sy := v.h/2 - (y+h-v.camY)*v.scale
	// Viewport Culling
	if sx+w*v.scale < 0 || sx > v.w || sy+h*v.scale < 0 || sy > v.h {
		return
	}
	vector.FillRect(screen, float32(sx), float32(sy), float32(w*v.scale), float32(h*v.scale), clr, false)
}

func (v viewport) fillObject(screen *ebiten.Image, obj *resolv.Object, clr color.Color) {
	v.fillRect(screen, obj.X, obj.Y, obj.W, obj.H, clr)
}

// strokeObject outlines an object one pixel wide.
func (v viewport) strokeObject(screen *ebiten.Image, obj *resolv.Object, clr color.Color) {
	px := 1 / v.scale
	v.fillRect(screen, obj.X, obj.Y+obj.H-px, obj.W, px, clr) // Top
	v.fillRect(screen, obj.X, obj.Y, obj.W, px, clr)          // Bottom
	v.fillRect(screen, obj.X, obj.Y, px, obj.H, clr)          // Left
	v.fillRect(screen, obj.X+obj.W-px, obj.Y, px, obj.H, clr) // Right
}

// DrawLevel renders walls and hazards.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowLevel {
		return
	}
	view := newViewport(ecs, screen)
	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		view.fillObject(screen, components.Object.Get(e).Object, cfg.Gray)
	})
	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		view.fillObject(screen, components.Object.Get(e).Object, cfg.LightRed)
	})
}

// DrawActors renders the player and enemies as tinted boxes with a facing
// marker.
func DrawActors(ecs *ecs.ECS, screen *ebiten.Image) {
	view := newViewport(ecs, screen)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		obj := components.Object.Get(e).Object
		clr := enemy.TypeConfig.TintColor
		switch {
		case components.Flash.Get(e).Timer.Active():
			clr = cfg.White
		case enemy.Phase == cfg.PhaseWindup:
			clr = cfg.Orange
		case enemy.Phase == cfg.PhaseActive:
			clr = cfg.Yellow
		}
		view.fillObject(screen, obj, clr)
		drawFacing(screen, view, obj, enemy.Facing)
	})

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !components.Health.Get(e).Visible {
			return
		}
		obj := components.Object.Get(e).Object
		loco := components.Locomotion.Get(e)
		clr := cfg.Blue
		switch loco.State {
		case cfg.Dashing:
			clr = cfg.White
		case cfg.Stunned:
			clr = cfg.Red
		case cfg.WallSliding, cfg.WallJumping:
			clr = cfg.DarkGreen
		}
		view.fillObject(screen, obj, clr)
		drawFacing(screen, view, obj, loco.Facing)
	})
}

func drawFacing(screen *ebiten.Image, view viewport, obj *resolv.Object, facing float64) {
	const eye = 0.2
	x := obj.X + obj.W/2 + facing*obj.W/4 - eye/2
	view.fillRect(screen, x, obj.Y+obj.H*0.7, eye, eye, cfg.White)
}
