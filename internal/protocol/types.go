package protocol

import "time"

// Direction represents paddle movement direction
type Direction int

const (
	DirNone Direction = 0
	DirUp   Direction = 1
	DirDown Direction = 2
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "none"
}

// Side identifies which paddle a command or score belongs to
type Side int

const (
	SideLeft  Side = 0
	SideRight Side = 1
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Command is the set of directional keys currently held by one player
type Command struct {
	Up   bool
	Down bool
}

// Direction resolves the command to a single movement.
// Up wins when both are held.
func (c Command) Direction() Direction {
	if c.Up {
		return DirUp
	}
	if c.Down {
		return DirDown
	}
	return DirNone
}

// InputState is the per-frame command snapshot handed to the game
type InputState struct {
	Left  Command
	Right Command
}

// For returns the command for the given side
func (in InputState) For(side Side) Command {
	if side == SideRight {
		return in.Right
	}
	return in.Left
}

// BallState represents the ball's position and direction
type BallState struct {
	X  float64
	Y  float64
	DX float64
	DY float64
}

// PaddleState represents a paddle's state
type PaddleState struct {
	Side   Side
	X      float64
	Y      float64
	Width  float64
	Height float64
	Score  int
}

// Snapshot is the read-only view of the game after an update
type Snapshot struct {
	Tick        int
	Elapsed     time.Duration
	Ball        BallState
	BallRadius  float64
	Left        PaddleState
	Right       PaddleState
	FieldWidth  float64
	FieldHeight float64
}
