package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duelpong/internal/protocol"
)

// SideColors holds the left and right player colors
var SideColors = [2]tcell.Color{
	tcell.ColorRed,
	tcell.ColorBlue,
}

type Screen struct {
	screen tcell.Screen
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func InitScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	s.EnableFocus()
	return NewScreen(s), nil
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) Sync() {
	s.screen.Sync()
}

func (s *Screen) Fini() {
	s.screen.Fini()
}

func (s *Screen) SetCell(x, y int, style tcell.Style, r rune) {
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (s *Screen) FillRect(x, y, w, h int, style tcell.Style, r rune) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.screen.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

// DrawDashedLine draws every other cell of a vertical line
func (s *Screen) DrawDashedLine(x, y1, y2 int, style tcell.Style, r rune) {
	for y := y1; y <= y2; y += 2 {
		s.screen.SetContent(x, y, r, nil, style)
	}
}

func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

func GetSideStyle(side protocol.Side) tcell.Style {
	return tcell.StyleDefault.Foreground(GetSideColor(side))
}

func GetSideColor(side protocol.Side) tcell.Color {
	if side == protocol.SideRight {
		return SideColors[1]
	}
	return SideColors[0]
}
