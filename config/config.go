package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; everything is debug geometry.
const Default ecs.LayerID = 0

// SimConfig controls the fixed-step clock.
type SimConfig struct {
	TickRate int `yaml:"tick_rate"` // ticks per second
}

// Dt returns the fixed step in seconds.
func (s SimConfig) Dt() float64 {
	if s.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(s.TickRate)
}

// PhysicsConfig contains world-level physics values. Units are tiles and
// seconds, Y points up.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"` // base gravity applied by the integrator (negative)

	// Probe reach beyond the actor's bounds
	GroundProbeDistance float64 `yaml:"ground_probe_distance"`
	WallProbeDistance   float64 `yaml:"wall_probe_distance"`
	ProbeInset          float64 `yaml:"probe_inset"` // fraction of the actor width/height kept clear of corners

	CellSize int `yaml:"cell_size"`
}

// LocomotionConfig holds player movement tuning.
type LocomotionConfig struct {
	MoveSpeed float64 `yaml:"move_speed"`

	// Jump
	JumpHeight      float64 `yaml:"jump_height"`
	JumpVelocity    float64 `yaml:"jump_velocity"`
	UseJumpVelocity bool    `yaml:"use_jump_velocity"` // use JumpVelocity instead of deriving it from JumpHeight
	JumpCutFactor   float64 `yaml:"jump_cut_factor"`
	JumpBufferTime  float64 `yaml:"jump_buffer_time"`
	CoyoteTime      float64 `yaml:"coyote_time"`

	// Gravity shaping
	GravityMultiplier float64 `yaml:"gravity_multiplier"` // total gravity scale while airborne
	FallMultiplier    float64 `yaml:"fall_multiplier"`    // extra scale on top while descending
	MaxFallSpeed      float64 `yaml:"max_fall_speed"`     // negative floor

	// Air control
	AirControl     bool    `yaml:"air_control"`
	AirControlRate float64 `yaml:"air_control_rate"` // 1/s, exponential approach rate

	// Double jump
	DoubleJumpEnabled  bool    `yaml:"double_jump_enabled"`
	DoubleJumpVelocity float64 `yaml:"double_jump_velocity"`

	// Dash
	DashEnabled  bool    `yaml:"dash_enabled"`
	DashSpeed    float64 `yaml:"dash_speed"`
	DashDuration float64 `yaml:"dash_duration"`
	DashCooldown float64 `yaml:"dash_cooldown"`

	// Wall slide / jump
	WallSlideSpeed              float64 `yaml:"wall_slide_speed"`
	WallSlideMaxRise            float64 `yaml:"wall_slide_max_rise"` // slide engages below this vertical speed
	WallStickSpeed              float64 `yaml:"wall_stick_speed"`
	WallJumpVelocityX           float64 `yaml:"wall_jump_velocity_x"`
	WallJumpVelocityY           float64 `yaml:"wall_jump_velocity_y"`
	WallJumpDuration            float64 `yaml:"wall_jump_duration"`
	WallJumpRefreshesDoubleJump bool    `yaml:"wall_jump_refreshes_double_jump"`

	SoundCooldown float64 `yaml:"sound_cooldown"`

	// Body
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// CombatConfig holds the player's attack dispatcher tuning.
type CombatConfig struct {
	AimDeadzone float64 `yaml:"aim_deadzone"`

	// Melee
	MeleeDamage   int     `yaml:"melee_damage"`
	MeleeDuration float64 `yaml:"melee_duration"`
	MeleeOffset   float64 `yaml:"melee_offset"`
	MeleeSize     float64 `yaml:"melee_size"`
	MeleeImpulse  float64 `yaml:"melee_impulse"`
	MeleeCooldown float64 `yaml:"melee_cooldown"`

	// Ranged
	ThrowCooldown    float64 `yaml:"throw_cooldown"`
	ThrowSpeed       float64 `yaml:"throw_speed"`
	ThrowLaunchX     float64 `yaml:"throw_launch_x"` // launch point relative to the actor centre, mirrored by facing
	ThrowLaunchY     float64 `yaml:"throw_launch_y"`
	MaxBalls         int     `yaml:"max_balls"`
	DownAimThreshold float64 `yaml:"down_aim_threshold"` // aim.y below -threshold counts as downward
	PogoMaxAimX      float64 `yaml:"pogo_max_aim_x"`     // throw pogo needs |aim.x| below this

	// Pogo
	PogoVelocity   float64 `yaml:"pogo_velocity"`
	PogoRefractory float64 `yaml:"pogo_refractory"`
}

// BallConfig holds projectile tuning.
type BallConfig struct {
	Size              float64 `yaml:"size"`
	Damage            int     `yaml:"damage"`
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`
	DamageMultiplier  float64 `yaml:"damage_multiplier"` // result truncated to int on every hit
	HomingSensitivity float64 `yaml:"homing_sensitivity"`
	PogoOffsetX       float64 `yaml:"pogo_offset_x"`
	PogoOffsetY       float64 `yaml:"pogo_offset_y"`
	PogoPrecision     float64 `yaml:"pogo_precision"`
	MaxContactTime    float64 `yaml:"max_contact_time"`
	LatePickupTime    float64 `yaml:"late_pickup_time"`
	RedirectDownY     float64 `yaml:"redirect_down_y"` // re-hit direction.y below -value arms pogo seeking
	ContactSlop       float64 `yaml:"contact_slop"`
}

// HealthConfig covers an actor's damage response.
type HealthConfig struct {
	MaxLives           int     `yaml:"max_lives"`
	StunTime           float64 `yaml:"stun_time"`
	InvulnerableTime   float64 `yaml:"invulnerable_time"`
	FlickerInterval    float64 `yaml:"flicker_interval"`
	KnockbackForce     float64 `yaml:"knockback_force"`
	HorizontalRatio    float64 `yaml:"horizontal_ratio"`
	VerticalRatio      float64 `yaml:"vertical_ratio"`
	HazardRespawnDelay float64 `yaml:"hazard_respawn_delay"`
	HazardControlDelay float64 `yaml:"hazard_control_delay"`
	SafePositionLag    float64 `yaml:"safe_position_lag"`
	SafeSampleInterval float64 `yaml:"safe_sample_interval"`
}

// EnemyTypeConfig contains configuration for a ground enemy type.
type EnemyTypeConfig struct {
	Name           string  `yaml:"name"`
	Health         int     `yaml:"health"`
	PatrolSpeed    float64 `yaml:"patrol_speed"`
	ChaseSpeed     float64 `yaml:"chase_speed"`
	PatrolDistance float64 `yaml:"patrol_distance"`
	DetectionRange float64 `yaml:"detection_range"`
	AttackRange    float64 `yaml:"attack_range"`

	// Attack sequence
	AttackWindup   float64 `yaml:"attack_windup"`
	AttackActive   float64 `yaml:"attack_active"`
	AttackRecovery float64 `yaml:"attack_recovery"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	AttackRadius   float64 `yaml:"attack_radius"`
	AttackReach    float64 `yaml:"attack_reach"` // centre of the attack circle ahead of the body
	AttackDamage   int     `yaml:"attack_damage"`
	BodyDamage     int     `yaml:"body_damage"`

	// Hit reaction
	KnockbackForce  float64 `yaml:"knockback_force"`
	HorizontalRatio float64 `yaml:"horizontal_ratio"`
	VerticalRatio   float64 `yaml:"vertical_ratio"`
	HitStun         float64 `yaml:"hit_stun"`
	FlashTime       float64 `yaml:"flash_time"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	TintColor color.RGBA `yaml:"-"`
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	Types map[string]EnemyTypeConfig `yaml:"-"` // decoded per type so overrides merge with defaults

	HysteresisMultiplier float64 `yaml:"hysteresis_multiplier"` // chase exits beyond detection * this
	DefaultType          string  `yaml:"default_type"`
}

// BreakableConfig holds destructible block tuning.
type BreakableConfig struct {
	HitPoints int     `yaml:"hit_points"`
	ShakeTime float64 `yaml:"shake_time"`
}

// LeverConfig holds switch tuning.
type LeverConfig struct {
	FlashTime float64 `yaml:"flash_time"` // repeatable levers ignore hits while flashing
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
}

// Config is the host window configuration.
type Config struct {
	Width  int
	Height int
	Scale  float64 // screen pixels per world unit
}

type DebugConfig struct {
	Enabled    bool // outline every object in the collision space
	ShowProbes bool
	ShowLevel  bool
}

// CameraConfig controls how the sandbox view follows the player.
type CameraConfig struct {
	FollowSmoothing         float64 `yaml:"follow_smoothing"`
	LookAheadDistanceX      float64 `yaml:"look_ahead_distance_x"`
	LookAheadSmoothing      float64 `yaml:"look_ahead_smoothing"`
	LookAheadSpeedThreshold float64 `yaml:"look_ahead_speed_threshold"`
}

var C *Config
var Sim SimConfig
var Physics PhysicsConfig
var Locomotion LocomotionConfig
var Combat CombatConfig
var Ball BallConfig
var PlayerHealth HealthConfig
var Enemy EnemyConfig
var Breakable BreakableConfig
var Lever LeverConfig
var Debug DebugConfig
var Camera CameraConfig

var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue      = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple    = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Gray      = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	DarkGreen = color.RGBA{R: 30, G: 120, B: 60, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Scale:  16,
	}

	Sim = SimConfig{TickRate: 60}

	Physics = PhysicsConfig{
		Gravity:             -9.81,
		GroundProbeDistance: 0.05,
		WallProbeDistance:   0.05,
		ProbeInset:          0.1,
		CellSize:            1,
	}

	Locomotion = LocomotionConfig{
		MoveSpeed: 8,

		JumpHeight:      4,
		JumpVelocity:    12,
		UseJumpVelocity: false,
		JumpCutFactor:   0.3,
		JumpBufferTime:  0.2,
		CoyoteTime:      0.1,

		GravityMultiplier: 3,
		FallMultiplier:    2,
		MaxFallSpeed:      -20,

		AirControl:     true,
		AirControlRate: 4.2, // ~8% per 20ms step

		DoubleJumpEnabled:  true,
		DoubleJumpVelocity: 12,

		DashEnabled:  true,
		DashSpeed:    20,
		DashDuration: 0.2,
		DashCooldown: 0.5,

		WallSlideSpeed:              2,
		WallSlideMaxRise:            0.1,
		WallStickSpeed:              0.5,
		WallJumpVelocityX:           12,
		WallJumpVelocityY:           14,
		WallJumpDuration:            0.2,
		WallJumpRefreshesDoubleJump: true,

		SoundCooldown: 0.05,

		Width:  0.8,
		Height: 1.8,
	}

	Combat = CombatConfig{
		AimDeadzone: 0.1,

		MeleeDamage:   10,
		MeleeDuration: 0.2,
		MeleeOffset:   1.2,
		MeleeSize:     1.2,
		MeleeImpulse:  2,
		MeleeCooldown: 0.25,

		ThrowCooldown:    1.0,
		ThrowSpeed:       15,
		ThrowLaunchX:     0.6,
		ThrowLaunchY:     0.3,
		MaxBalls:         1,
		DownAimThreshold: 0.1,
		PogoMaxAimX:      0.1,

		PogoVelocity:   15,
		PogoRefractory: 0.1,
	}

	Ball = BallConfig{
		Size:              0.5,
		Damage:            10,
		SpeedMultiplier:   1.2,
		DamageMultiplier:  2,
		HomingSensitivity: 5,
		PogoOffsetX:       0,
		PogoOffsetY:       -2,
		PogoPrecision:     1,
		MaxContactTime:    0.2,
		LatePickupTime:    0.5,
		RedirectDownY:     0.1,
		ContactSlop:       0.01,
	}

	PlayerHealth = HealthConfig{
		MaxLives:           3,
		StunTime:           0.6,
		InvulnerableTime:   2.0,
		FlickerInterval:    0.1,
		KnockbackForce:     12,
		HorizontalRatio:    1.0,
		VerticalRatio:      1.5,
		HazardRespawnDelay: 0.5,
		HazardControlDelay: 0.1,
		SafePositionLag:    10,
		SafeSampleInterval: 0.25,
	}

	Enemy = EnemyConfig{
		HysteresisMultiplier: 1.5,
		DefaultType:          "Grunt",
		Types: map[string]EnemyTypeConfig{
			"Grunt": {
				Name:           "Grunt",
				Health:         50,
				PatrolSpeed:    3,
				ChaseSpeed:     5,
				PatrolDistance: 4,
				DetectionRange: 6,
				AttackRange:    1.5,

				AttackWindup:   0.5,
				AttackActive:   0.15,
				AttackRecovery: 1.35,
				AttackCooldown: 1.5,
				AttackRadius:   0.8,
				AttackReach:    0.8,
				AttackDamage:   2,
				BodyDamage:     1,

				KnockbackForce:  12,
				HorizontalRatio: 3.0,
				VerticalRatio:   0.4,
				HitStun:         0.3,
				FlashTime:       0.2,

				Width:  0.9,
				Height: 1.4,

				TintColor: Red,
			},
			"Brute": {
				Name:           "Brute",
				Health:         100,
				PatrolSpeed:    2,
				ChaseSpeed:     3.5,
				PatrolDistance: 3,
				DetectionRange: 5,
				AttackRange:    2,

				AttackWindup:   0.8,
				AttackActive:   0.2,
				AttackRecovery: 1.8,
				AttackCooldown: 2.0,
				AttackRadius:   1.1,
				AttackReach:    1.0,
				AttackDamage:   2,
				BodyDamage:     1,

				KnockbackForce:  8,
				HorizontalRatio: 1.5,
				VerticalRatio:   0.3,
				HitStun:         0.2,
				FlashTime:       0.2,

				Width:  1.4,
				Height: 1.9,

				TintColor: Purple,
			},
		},
	}

	Breakable = BreakableConfig{
		HitPoints: 3,
		ShakeTime: 0.15,
	}

	Lever = LeverConfig{
		FlashTime: 0.5,
		Width:     0.5,
		Height:    1,
	}

	Debug = DebugConfig{
		Enabled:    false,
		ShowProbes: false,
		ShowLevel:  true,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.15,
		LookAheadDistanceX:      3,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.5,
	}
}

// EnemyType returns the named enemy type, falling back to the default type.
func EnemyType(name string) *EnemyTypeConfig {
	if t, ok := Enemy.Types[name]; ok {
		return &t
	}
	t := Enemy.Types[Enemy.DefaultType]
	return &t
}
