package ui

import "github.com/diegok/duelpong/internal/protocol"

// HoldFrames is how long a key press counts as held (~133ms at 60fps).
// Terminals report presses and auto-repeat, never releases.
const HoldFrames = 8

// InputLatch turns discrete key presses into held-key state
type InputLatch struct {
	holdFrames int

	// Frames left per side, left then right
	up   [2]int
	down [2]int
}

func NewInputLatch(holdFrames int) *InputLatch {
	if holdFrames < 1 {
		holdFrames = 1
	}
	return &InputLatch{holdFrames: holdFrames}
}

// Press marks a direction held for the given side and releases the opposite one
func (l *InputLatch) Press(side protocol.Side, dir protocol.Direction) {
	i := sideIndex(side)
	switch dir {
	case protocol.DirUp:
		l.up[i] = l.holdFrames
		l.down[i] = 0
	case protocol.DirDown:
		l.down[i] = l.holdFrames
		l.up[i] = 0
	}
}

// Snapshot returns the commands currently held
func (l *InputLatch) Snapshot() protocol.InputState {
	return protocol.InputState{
		Left:  l.command(protocol.SideLeft),
		Right: l.command(protocol.SideRight),
	}
}

// Tick ages every held key by one frame
func (l *InputLatch) Tick() {
	for i := range l.up {
		if l.up[i] > 0 {
			l.up[i]--
		}
		if l.down[i] > 0 {
			l.down[i]--
		}
	}
}

// Release drops all held keys
func (l *InputLatch) Release() {
	l.up = [2]int{}
	l.down = [2]int{}
}

func (l *InputLatch) command(side protocol.Side) protocol.Command {
	i := sideIndex(side)
	return protocol.Command{Up: l.up[i] > 0, Down: l.down[i] > 0}
}

func sideIndex(side protocol.Side) int {
	if side == protocol.SideRight {
		return 1
	}
	return 0
}
