package systems

import (
	"testing"

	"github.com/automoto/batbounce/archetypes"
	"github.com/automoto/batbounce/components"
	cfg "github.com/automoto/batbounce/config"
	"github.com/automoto/batbounce/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// newBallWorld returns a world with a clock and, when withSpace is set, an
// empty collision space.
func newBallWorld(withSpace bool) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	clock := archetypes.Clock.Spawn(e)
	components.Clock.SetValue(clock, components.ClockData{Dt: testDt})
	if withSpace {
		space := archetypes.Space.Spawn(e)
		components.Space.Set(space, resolv.NewSpace(32, 32, 1, 1))
	}
	return e
}

func newTestBall(e *ecs.ECS, velocity components.Vector) (*donburi.Entry, *components.BallData) {
	b := CreateBall(e, nil, components.Vector{X: 10, Y: 10}, velocity)
	ball := components.Ball.Get(b)
	c := cfg.Ball
	ball.Config = &c
	return b, ball
}

func TestGetHitByBatAmplifiesPerHit(t *testing.T) {
	e := newBallWorld(false)
	b, ball := newTestBall(e, components.Vector{X: 10})
	ball.Config.DamageMultiplier = 1.5
	ball.Config.SpeedMultiplier = 1.2
	ball.Damage = 5
	ball.Bounces = 3
	ball.CanHitPlayer = true
	ball.State = cfg.BallReturning

	GetHitByBat(e.World, b, components.Vector{X: 0, Y: 1})

	assert.Equal(t, cfg.BallFlying, ball.State)
	assert.Equal(t, 7, ball.Damage, "5 * 1.5 truncates to 7")
	assert.InDelta(t, 12.0, ball.Speed, 1e-9)
	assert.Zero(t, ball.Bounces)
	assert.False(t, ball.CanHitPlayer)
	assert.False(t, ball.WasPogoHit)
	assert.InDelta(t, 12.0, components.Body.Get(b).Velocity.Y, 1e-9)

	GetHitByBat(e.World, b, components.Vector{X: 0, Y: -1})

	assert.Equal(t, 10, ball.Damage, "truncation happens on every hit, not once")
	assert.InDelta(t, 14.4, ball.Speed, 1e-9)
	assert.True(t, ball.WasPogoHit)
}

func TestGetHitByBatZeroDirectionKeepsHeading(t *testing.T) {
	e := newBallWorld(false)
	b, _ := newTestBall(e, components.Vector{X: -3, Y: 4})

	GetHitByBat(e.World, b, components.Vector{})

	v := components.Body.Get(b).Velocity
	assert.InDelta(t, -0.6*6, v.X, 1e-9)
	assert.InDelta(t, 0.8*6, v.Y, 1e-9)
}

func TestLatePickupEnablesAfterDelay(t *testing.T) {
	e := newBallWorld(false)
	_, ball := newTestBall(e, components.Vector{X: 1})

	for i := 0; i < 29; i++ {
		UpdateBalls(e)
	}
	assert.False(t, ball.CanHitPlayer)

	UpdateBalls(e)
	UpdateBalls(e)
	assert.True(t, ball.CanHitPlayer)
}

func TestLatePickupSkippedAfterBounce(t *testing.T) {
	e := newBallWorld(false)
	_, ball := newTestBall(e, components.Vector{X: 1})
	ball.Bounces = 1

	for i := 0; i < 40; i++ {
		UpdateBalls(e)
	}
	assert.False(t, ball.CanHitPlayer)
}

func TestContactWatchdogStopsStuckBall(t *testing.T) {
	e := newBallWorld(false)
	b, ball := newTestBall(e, components.Vector{X: 5})
	obj := components.Object.Get(b).Object
	wall := resolv.NewObject(obj.X+obj.W, obj.Y-1, 1, 3, tags.ResolvSolid)
	ball.Contact = wall

	for i := 0; i < 11; i++ {
		watchContact(e.World, b, ball, obj, testDt)
	}
	require.NotEqual(t, cfg.BallStopped, ball.State)

	for i := 0; i < 3; i++ {
		watchContact(e.World, b, ball, obj, testDt)
	}
	assert.Equal(t, cfg.BallStopped, ball.State)
	assert.True(t, ball.CanHitPlayer)
	assert.Equal(t, components.Vector{}, components.Body.Get(b).Velocity)
}

func TestContactWatchdogResetsWhenApart(t *testing.T) {
	e := newBallWorld(false)
	b, ball := newTestBall(e, components.Vector{X: 5})
	obj := components.Object.Get(b).Object
	ball.Contact = resolv.NewObject(obj.X+5, obj.Y, 1, 1, tags.ResolvSolid)
	ball.ContactTime = 0.1

	watchContact(e.World, b, ball, obj, testDt)

	assert.Nil(t, ball.Contact)
	assert.Zero(t, ball.ContactTime)
}

func TestBallBouncesOffSolidAndReturns(t *testing.T) {
	e := newBallWorld(true)
	space := spaceOf(e.World)
	wall := archetypes.Wall.Spawn(e)
	wallObj := resolv.NewObject(12, 5, 1, 10, tags.ResolvSolid)
	wallObj.Data = wall
	components.Object.SetValue(wall, components.ObjectData{Object: wallObj})
	AddObject(space, wallObj)

	_, ball := newTestBall(e, components.Vector{X: 15})

	for i := 0; i < 20 && ball.Bounces == 0; i++ {
		UpdateBalls(e)
	}

	require.Equal(t, 1, ball.Bounces)
	assert.Equal(t, cfg.BallReturning, ball.State)
	assert.True(t, ball.CanHitPlayer)
}

func TestBallPogoHitSeeksBelowOwnerAfterBounce(t *testing.T) {
	e := newBallWorld(false)
	b, ball := newTestBall(e, components.Vector{X: 1})
	ball.WasPogoHit = true

	onBallContact(e.World, b, ball, resolv.NewObject(0, 0, 1, 1, tags.ResolvSolid))

	assert.Equal(t, cfg.BallPogoSeeking, ball.State)
	assert.False(t, ball.WasPogoHit)
	assert.Equal(t, 1, ball.Bounces)
}

func TestSmallObjectsAreFoundByQuery(t *testing.T) {
	e := newBallWorld(true)
	space := spaceOf(e.World)
	probe := NewSpaceProbe(space)

	// Narrower than a cell and straddling a cell edge.
	obj := resolv.NewObject(3.8, 4.2, 0.5, 0.5, tags.ResolvBall)
	AddObject(space, obj)

	hits := probe.Query(RectRegion(components.Vector{X: 4.2, Y: 4.5}, 0.2, 0.2), nil)
	require.Len(t, hits, 1)
	assert.Same(t, obj, hits[0])

	obj.X, obj.Y = 7.25, 7.25
	SyncObject(obj)
	assert.Empty(t, probe.Query(RectRegion(components.Vector{X: 4.2, Y: 4.5}, 0.2, 0.2), nil))
	assert.Len(t, probe.Query(RectRegion(components.Vector{X: 7.5, Y: 7.5}, 0.1, 0.1), nil), 1)
}

func TestPogoSeekingSwitchesToReturningNearTarget(t *testing.T) {
	e := newBallWorld(false)
	owner := e.World.Entry(e.World.Create(components.Object))
	components.Object.Set(owner, &components.ObjectData{Object: resolv.NewObject(9.5, 9, 1, 2)})

	_, ball := newTestBall(e, components.Vector{X: 1})
	ball.Owner = owner
	ball.Speed = 10
	c := ball.Config
	below := components.Vector{X: 10 + c.PogoOffsetX, Y: 10 + c.PogoOffsetY}

	t.Run("outside precision keeps seeking", func(t *testing.T) {
		ball.State = cfg.BallPogoSeeking
		body := &components.BodyData{}
		far := below.Add(components.Vector{Y: -(c.PogoPrecision + 2)})

		steerBall(ball, body, far, testDt)

		assert.Equal(t, cfg.BallPogoSeeking, ball.State)
		assert.Greater(t, body.Velocity.Y, 0.0, "steers up toward the point below the owner")
	})

	t.Run("inside precision returns", func(t *testing.T) {
		ball.State = cfg.BallPogoSeeking
		body := &components.BodyData{}
		near := below.Add(components.Vector{X: c.PogoPrecision / 2})

		steerBall(ball, body, near, testDt)

		assert.Equal(t, cfg.BallReturning, ball.State)
	})
}
