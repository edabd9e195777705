package game

import (
	"time"

	"github.com/diegok/duelpong/internal/protocol"
)

// sides is the order paddles are moved in each frame
var sides = []protocol.Side{protocol.SideLeft, protocol.SideRight}

// GameState owns both paddles and the ball for one continuous match
type GameState struct {
	Settings Settings
	Left     *Paddle
	Right    *Paddle
	Ball     *Ball
	Tick     int
	Elapsed  time.Duration // Duration of the last frame as reported by the host
}

// NewGameState creates a match with centered paddles and a served ball
func NewGameState(s Settings, rng RandomSource) *GameState {
	return &GameState{
		Settings: s,
		Left:     NewPaddle(protocol.SideLeft, s),
		Right:    NewPaddle(protocol.SideRight, s),
		Ball:     NewBall(s, rng),
	}
}

// GetPaddle returns the paddle for the given side
func (gs *GameState) GetPaddle(side protocol.Side) *Paddle {
	if side == protocol.SideRight {
		return gs.Right
	}
	return gs.Left
}

// Update runs one frame: paddles move first (left, then right), then the ball.
// Elapsed is recorded only; movement is per frame.
func (gs *GameState) Update(elapsed time.Duration, in protocol.InputState) {
	gs.Tick++
	gs.Elapsed = elapsed

	for _, side := range sides {
		gs.GetPaddle(side).Move(in.For(side).Direction())
	}

	gs.Ball.Advance(gs.Left, gs.Right)
}

// Snapshot returns a copy of everything the host needs to draw the frame
func (gs *GameState) Snapshot() protocol.Snapshot {
	return protocol.Snapshot{
		Tick:        gs.Tick,
		Elapsed:     gs.Elapsed,
		Ball:        gs.Ball.State(),
		BallRadius:  gs.Ball.Radius(),
		Left:        gs.Left.State(),
		Right:       gs.Right.State(),
		FieldWidth:  gs.Settings.FieldWidth,
		FieldHeight: gs.Settings.FieldHeight,
	}
}
