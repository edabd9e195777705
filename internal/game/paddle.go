package game

import "github.com/diegok/duelpong/internal/protocol"

type Paddle struct {
	Side     protocol.Side
	X        float64 // Left edge (fixed)
	Y        float64 // Top edge
	Score    int
	settings Settings
}

// NewPaddle places a paddle on its side of the field, vertically centered
func NewPaddle(side protocol.Side, s Settings) *Paddle {
	x := s.Buffer
	if side == protocol.SideRight {
		x = s.FieldWidth - s.PaddleWidth - s.Buffer
	}
	return &Paddle{
		Side:     side,
		X:        x,
		Y:        (s.FieldHeight - s.PaddleHeight) / 2,
		settings: s,
	}
}

// Move shifts the paddle one step and clamps it to the field
func (p *Paddle) Move(dir protocol.Direction) {
	switch dir {
	case protocol.DirUp:
		p.Y -= p.settings.PaddleSpeed
	case protocol.DirDown:
		p.Y += p.settings.PaddleSpeed
	default:
		return
	}

	if p.Y < p.settings.PaddleMinY() {
		p.Y = p.settings.PaddleMinY()
	}
	if maxY := p.settings.PaddleMaxY(); p.Y > maxY {
		p.Y = maxY
	}
}

func (p *Paddle) ContainsY(y float64) bool {
	return y >= p.TopY() && y <= p.BottomY()
}

func (p *Paddle) TopY() float64 {
	return p.Y
}

func (p *Paddle) BottomY() float64 {
	return p.Y + p.settings.PaddleHeight
}

func (p *Paddle) State() protocol.PaddleState {
	return protocol.PaddleState{
		Side:   p.Side,
		X:      p.X,
		Y:      p.Y,
		Width:  p.settings.PaddleWidth,
		Height: p.settings.PaddleHeight,
		Score:  p.Score,
	}
}
