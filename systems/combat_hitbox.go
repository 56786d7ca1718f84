package systems

import (
	"image/color"

	"github.com/automoto/batbounce/archetypes"
	"github.com/automoto/batbounce/components"
	"github.com/automoto/batbounce/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHitbox spawns one melee swing in front of the owner along dir.
func CreateHitbox(ecs *ecs.ECS, owner *donburi.Entry, dir components.Vector) *donburi.Entry {
	c := components.Player.Get(owner).Combat
	if dir.Len() == 0 {
		dir = components.Vector{X: components.Locomotion.Get(owner).Facing}
	}
	dir = dir.Normalized()

	hitbox := archetypes.Hitbox.Spawn(ecs)

	center := components.Object.Get(owner).Center().Add(dir.Scale(c.MeleeOffset))
	hitboxObject := resolv.NewObject(center.X-c.MeleeSize/2, center.Y-c.MeleeSize/2, c.MeleeSize, c.MeleeSize, tags.ResolvHitbox)
	hitboxObject.SetShape(resolv.NewRectangle(0, 0, c.MeleeSize, c.MeleeSize))
	hitboxObject.Data = hitbox // Linked for O(1) lookup
	components.Object.SetValue(hitbox, components.ObjectData{Object: hitboxObject})

	if space := spaceOf(ecs.World); space != nil {
		AddObject(space, hitboxObject)
	}

	data := components.HitboxData{
		OwnerEntity: owner,
		Direction:   dir,
		Offset:      c.MeleeOffset,
		Size:        c.MeleeSize,
		Damage:      c.MeleeDamage,
		Impulse:     c.MeleeImpulse,
		Downward:    dir.Y < -c.DownAimThreshold,
		HitEntities: make(map[*donburi.Entry]bool),
	}
	data.LifeTime.Set(c.MeleeDuration)
	components.Hitbox.SetValue(hitbox, data)

	player := components.Player.Get(owner)
	if player.ActiveHitbox != nil && player.ActiveHitbox.Valid() {
		removeEntity(ecs.World, player.ActiveHitbox)
	}
	player.ActiveHitbox = hitbox

	return hitbox
}

// UpdateHitboxes moves every swing with its owner, applies hits and expires
// finished swings.
func UpdateHitboxes(ecs *ecs.ECS) {
	probe := probeOf(ecs.World)
	dt := tickDt(ecs.World)

	var hitboxes []*donburi.Entry
	tags.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hitboxes = append(hitboxes, e)
	})

	var toRemove []*donburi.Entry
	for _, hitboxEntry := range hitboxes {
		hitbox := components.Hitbox.Get(hitboxEntry)
		hitboxObject := components.Object.Get(hitboxEntry).Object

		owner := hitbox.OwnerEntity
		if owner == nil || !owner.Valid() {
			toRemove = append(toRemove, hitboxEntry)
			continue
		}

		updateHitboxPosition(hitbox, hitboxObject)
		checkHitboxCollisions(ecs, probe, hitbox, hitboxObject)

		if hitbox.LifeTime.Tick(dt) {
			toRemove = append(toRemove, hitboxEntry)
		}
	}

	for _, hitboxEntry := range toRemove {
		owner := components.Hitbox.Get(hitboxEntry).OwnerEntity
		if owner != nil && owner.Valid() && owner.HasComponent(components.Player) {
			player := components.Player.Get(owner)
			if player.ActiveHitbox == hitboxEntry {
				player.ActiveHitbox = nil
			}
		}
		removeEntity(ecs.World, hitboxEntry)
	}
}

func updateHitboxPosition(hitbox *components.HitboxData, hitboxObject *resolv.Object) {
	ownerCenter := components.Object.Get(hitbox.OwnerEntity).Center()
	c := ownerCenter.Add(hitbox.Direction.Scale(hitbox.Offset))
	hitboxObject.X = c.X - hitboxObject.W/2
	hitboxObject.Y = c.Y - hitboxObject.H/2
	SyncObject(hitboxObject)
}

// checkHitboxCollisions damages every damageable under the swing once and
// redirects any ball it touches.
func checkHitboxCollisions(ecs *ecs.ECS, probe *SpaceProbe, hitbox *components.HitboxData, hitboxObject *resolv.Object) {
	region := boundsRegion(hitboxObject)
	owner := hitbox.OwnerEntity
	source := components.Object.Get(owner).Center()
	connected := false

	for _, target := range probe.OverlapRegion(region) {
		if !shouldHitTarget(hitbox, target) {
			continue
		}
		hitbox.HitEntities[target] = true
		connected = true

		// Read the body first: a lethal hit removes the target.
		var body *components.BodyData
		if target.HasComponent(components.Body) {
			body = components.Body.Get(target)
		}
		components.Hurtbox.Get(target).Target.TakeDamage(components.DamageEvent{
			Amount: hitbox.Damage,
			Source: source,
			Flags:  components.FromMelee,
		})
		if body != nil && target.Valid() {
			body.ApplyImpulse(hitbox.Direction.Scale(hitbox.Impulse))
		}
	}

	for _, o := range probe.Query(region, hitboxObject, tags.ResolvBall) {
		ball, ok := o.Data.(*donburi.Entry)
		if !ok || !ball.Valid() || hitbox.HitEntities[ball] {
			continue
		}
		hitbox.HitEntities[ball] = true
		connected = true
		GetHitByBat(ecs.World, ball, hitbox.Direction)
	}

	if connected && hitbox.Downward {
		DoPogo(ecs.World, owner)
	}
}

func shouldHitTarget(hitbox *components.HitboxData, target *donburi.Entry) bool {
	// Don't hit the owner of the hitbox
	if hitbox.OwnerEntity == target {
		return false
	}
	return !hitbox.HitEntities[target]
}

func DrawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !debugEnabled() {
		return
	}
	view := newViewport(ecs, screen)
	hitboxColor := color.RGBA{255, 255, 0, 100}
	tags.Hitbox.Each(ecs.World, func(hitboxEntry *donburi.Entry) {
		view.fillObject(screen, components.Object.Get(hitboxEntry).Object, hitboxColor)
	})
}
