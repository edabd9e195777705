package game

import (
	"errors"
	"fmt"
)

// Geometry and speed constants. Speeds are in field units per frame.
const (
	PaddleWidth  = 20.0
	PaddleHeight = 100.0
	Buffer       = 10.0 // Gap between field edge and paddle, also widens the paddle zones
	PaddleSpeed  = 8.0
	BallDiameter = 20.0
	BallSpeed    = 5.0

	DefaultFieldWidth  = 800
	DefaultFieldHeight = 600
)

// Settings is the immutable geometry of a match. Build it once with
// NewSettings and hand it to the constructors by value.
type Settings struct {
	FieldWidth   float64
	FieldHeight  float64
	PaddleWidth  float64
	PaddleHeight float64
	Buffer       float64
	PaddleSpeed  float64
	BallDiameter float64
	BallSpeed    float64
}

// NewSettings returns the standard settings for a field of the given size
func NewSettings(width, height float64) Settings {
	return Settings{
		FieldWidth:   width,
		FieldHeight:  height,
		PaddleWidth:  PaddleWidth,
		PaddleHeight: PaddleHeight,
		Buffer:       Buffer,
		PaddleSpeed:  PaddleSpeed,
		BallDiameter: BallDiameter,
		BallSpeed:    BallSpeed,
	}
}

// Validate reports geometry the game cannot be played on
func (s Settings) Validate() error {
	if s.FieldWidth <= 0 || s.FieldHeight <= 0 {
		return fmt.Errorf("field must have positive size, got %gx%g", s.FieldWidth, s.FieldHeight)
	}
	if s.PaddleMaxY() < s.PaddleMinY() {
		return fmt.Errorf("field height %g too small for paddle height %g, need at least %g",
			s.FieldHeight, s.PaddleHeight, s.PaddleHeight+3*s.Buffer)
	}
	if s.LeftZoneEdge() >= s.RightZoneEdge() {
		return fmt.Errorf("field width %g too small, paddle zones overlap", s.FieldWidth)
	}
	if s.FieldHeight <= s.BallDiameter {
		return errors.New("field height must exceed the ball diameter")
	}
	return nil
}

// PaddleMinY is the topmost allowed paddle position
func (s Settings) PaddleMinY() float64 {
	return s.Buffer
}

// PaddleMaxY is the bottommost allowed paddle position
func (s Settings) PaddleMaxY() float64 {
	return s.FieldHeight - (s.PaddleHeight + 2*s.Buffer)
}

// LeftZoneEdge is the x below which the ball is checked against the left paddle
func (s Settings) LeftZoneEdge() float64 {
	return s.PaddleWidth + s.Buffer
}

// RightZoneEdge is the x above which the ball is checked against the right paddle
func (s Settings) RightZoneEdge() float64 {
	return s.FieldWidth - s.PaddleWidth - s.Buffer
}

func (s Settings) BallRadius() float64 {
	return s.BallDiameter / 2
}

func (s Settings) CenterX() float64 {
	return s.FieldWidth / 2
}

func (s Settings) CenterY() float64 {
	return s.FieldHeight / 2
}
