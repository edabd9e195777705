package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duelpong/internal/protocol"
)

// KeyToCommand maps a key event to a player and direction.
// Left player uses W/S, right player uses the arrow keys.
func KeyToCommand(key tcell.Key, r rune) (protocol.Side, protocol.Direction, bool) {
	switch key {
	case tcell.KeyUp:
		return protocol.SideRight, protocol.DirUp, true
	case tcell.KeyDown:
		return protocol.SideRight, protocol.DirDown, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return protocol.SideLeft, protocol.DirUp, true
		case 's', 'S':
			return protocol.SideLeft, protocol.DirDown, true
		}
	}
	return protocol.SideLeft, protocol.DirNone, false
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}
