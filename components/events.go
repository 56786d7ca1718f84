package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DefeatedEvent is published once when the player runs out of lives.
type DefeatedEvent struct{}

var Defeated = events.NewEventType[DefeatedEvent]()

// FeedbackKind names a fire-and-forget presentation hook.
type FeedbackKind int

const (
	FeedbackJump FeedbackKind = iota
	FeedbackLand
	FeedbackDash
	FeedbackSwing
	FeedbackThrow
	FeedbackPogo
	FeedbackBallBounce
	FeedbackBallRedirect
	FeedbackBallCaught
	FeedbackBallStopped
	FeedbackPlayerHurt
	FeedbackFlicker
	FeedbackHitFlash
	FeedbackEnemyWindup
	FeedbackEnemyDefeated
	FeedbackBlocked
	FeedbackBreakableDamaged
	FeedbackBroken
	FeedbackLever
)

// FeedbackEvent notifies renderers and audio. Nothing in the simulation
// waits on it.
type FeedbackEvent struct {
	Kind     FeedbackKind
	Entity   donburi.Entity
	Position Vector
	Visible  bool // flicker state
}

var Feedback = events.NewEventType[FeedbackEvent]()

// LeverActivatedEvent is consumed by platforms and elevators.
type LeverActivatedEvent struct {
	Channel string
	Top     bool
}

var LeverActivated = events.NewEventType[LeverActivatedEvent]()
