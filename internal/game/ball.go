package game

import (
	"math"

	"github.com/diegok/duelpong/internal/protocol"
)

// maxRedraws bounds how often reset redraws a zero direction
const maxRedraws = 16

type Ball struct {
	X, Y     float64
	DX, DY   float64 // Direction; scaled by BallSpeed every frame
	settings Settings
	rng      RandomSource
}

// NewBall creates a centered ball with a random direction
func NewBall(s Settings, rng RandomSource) *Ball {
	b := &Ball{settings: s, rng: rng}
	b.reset()
	return b
}

// Advance runs one frame of ball physics against both paddles.
// A miss scores for the opposite paddle and resets the ball before it moves.
func (b *Ball) Advance(left, right *Paddle) {
	b.bounceWalls()

	scored := b.checkLeftZone(left, right)
	if !scored {
		b.checkRightZone(left, right)
	}

	b.Move()
}

// Move integrates position by direction and speed
func (b *Ball) Move() {
	b.X += b.DX * b.settings.BallSpeed
	b.Y += b.DY * b.settings.BallSpeed
}

func (b *Ball) Radius() float64 {
	return b.settings.BallRadius()
}

// bounceWalls points DY away from the top or bottom edge when the ball touches it.
// A ball already travelling away is left alone so it cannot stick to the wall.
func (b *Ball) bounceWalls() {
	r := b.Radius()
	if b.Y < r {
		b.DY = math.Abs(b.DY)
	}
	if b.Y > b.settings.FieldHeight-r {
		b.DY = -math.Abs(b.DY)
	}
}

// checkLeftZone returns the ball off the left paddle or scores for the right one.
// Returns true if a point was scored. The zone is checked whatever the ball's
// heading, so a ball still inside it after a return is flipped again on overlap.
func (b *Ball) checkLeftZone(left, right *Paddle) bool {
	if b.X >= b.settings.LeftZoneEdge() {
		return false
	}
	if left.ContainsY(b.Y) {
		b.DX = -b.DX
		return false
	}
	right.Score++
	b.reset()
	return true
}

// checkRightZone mirrors checkLeftZone for the right paddle
func (b *Ball) checkRightZone(left, right *Paddle) bool {
	if b.X <= b.settings.RightZoneEdge() {
		return false
	}
	if right.ContainsY(b.Y) {
		b.DX = -b.DX
		return false
	}
	left.Score++
	b.reset()
	return true
}

// reset recenters the ball and draws a fresh direction in [0,1) per axis.
// A zero vector would freeze the ball, so it is redrawn.
func (b *Ball) reset() {
	b.X = b.settings.CenterX()
	b.Y = b.settings.CenterY()

	for i := 0; i < maxRedraws; i++ {
		b.DX = b.rng.Float64()
		b.DY = b.rng.Float64()
		if b.DX != 0 || b.DY != 0 {
			return
		}
	}
}

func (b *Ball) State() protocol.BallState {
	return protocol.BallState{X: b.X, Y: b.Y, DX: b.DX, DY: b.DY}
}
