package game

import (
	"testing"

	"github.com/diegok/duelpong/internal/protocol"
)

// seqSource replays a fixed sequence of values, wrapping around
type seqSource struct {
	vals []float64
	next int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.next%len(s.vals)]
	s.next++
	return v
}

func newTestBall(vals ...float64) (*Ball, *Paddle, *Paddle) {
	s := testSettings()
	return NewBall(s, &seqSource{vals: vals}),
		NewPaddle(protocol.SideLeft, s),
		NewPaddle(protocol.SideRight, s)
}

func TestNewBall(t *testing.T) {
	ball, _, _ := newTestBall(0.3, 0.7)

	if ball.X != 400.0 || ball.Y != 300.0 {
		t.Errorf("expected ball at (400, 300), got (%f, %f)", ball.X, ball.Y)
	}
	if ball.DX != 0.3 || ball.DY != 0.7 {
		t.Errorf("expected direction (0.3, 0.7), got (%f, %f)", ball.DX, ball.DY)
	}
	if ball.Radius() != 10.0 {
		t.Errorf("expected radius 10, got %f", ball.Radius())
	}
}

func TestBall_Move(t *testing.T) {
	ball, _, _ := newTestBall(0.5)
	ball.X, ball.Y = 100.0, 200.0
	ball.DX, ball.DY = 1.0, -0.5

	ball.Move()

	if ball.X != 105.0 {
		t.Errorf("expected X=105, got %f", ball.X)
	}
	if ball.Y != 197.5 {
		t.Errorf("expected Y=197.5, got %f", ball.Y)
	}
}

func TestBall_Advance_BouncesOffLeftPaddle(t *testing.T) {
	ball, left, right := newTestBall(0.5)
	ball.X, ball.Y = 15.0, 300.0
	ball.DX, ball.DY = -1.0, 0.0
	left.Y = 250.0

	ball.Advance(left, right)

	if ball.DX != 1.0 {
		t.Errorf("expected DX=1 after bounce, got %f", ball.DX)
	}
	if ball.DY != 0.0 {
		t.Errorf("expected DY unchanged, got %f", ball.DY)
	}
	if ball.X != 15.0+BallSpeed || ball.Y != 300.0 {
		t.Errorf("expected ball at (%f, 300), got (%f, %f)", 15.0+BallSpeed, ball.X, ball.Y)
	}
	if left.Score != 0 || right.Score != 0 {
		t.Errorf("expected no score change, got %d-%d", left.Score, right.Score)
	}
}

func TestBall_Advance_BounceKeepsVertical(t *testing.T) {
	ball, left, right := newTestBall(0.5)
	ball.X, ball.Y = 15.0, 300.0
	ball.DX, ball.DY = -0.5, 0.4
	left.Y = 250.0

	ball.Advance(left, right)

	if ball.DX != 0.5 {
		t.Errorf("expected DX=0.5, got %f", ball.DX)
	}
	if ball.DY != 0.4 {
		t.Errorf("expected DY=0.4 (unchanged), got %f", ball.DY)
	}
}

func TestBall_Advance_BouncesOffRightPaddle(t *testing.T) {
	ball, left, right := newTestBall(0.5)
	ball.X, ball.Y = 785.0, 300.0
	ball.DX, ball.DY = 1.0, 0.0
	right.Y = 250.0

	ball.Advance(left, right)

	if ball.DX != -1.0 {
		t.Errorf("expected DX=-1 after bounce, got %f", ball.DX)
	}
	if ball.X != 785.0-BallSpeed {
		t.Errorf("expected X=%f, got %f", 785.0-BallSpeed, ball.X)
	}
	if left.Score != 0 || right.Score != 0 {
		t.Errorf("expected no score change, got %d-%d", left.Score, right.Score)
	}
}

func TestBall_Advance_LeftMissScoresRight(t *testing.T) {
	ball, left, right := newTestBall(0.5, 0.25)
	ball.X, ball.Y = 15.0, 300.0
	ball.DX, ball.DY = -1.0, 0.0
	left.Y = 0.0 // Spans 0..100, well above the ball

	ball.Advance(left, right)

	if right.Score != 1 {
		t.Errorf("expected right score 1, got %d", right.Score)
	}
	if left.Score != 0 {
		t.Errorf("expected left score 0, got %d", left.Score)
	}
	if ball.DX != 0.5 || ball.DY != 0.25 {
		t.Errorf("expected redrawn direction (0.5, 0.25), got (%f, %f)", ball.DX, ball.DY)
	}
	// Reset happens before integration, so the ball moves one step from center
	wantX := 400.0 + 0.5*BallSpeed
	wantY := 300.0 + 0.25*BallSpeed
	if ball.X != wantX || ball.Y != wantY {
		t.Errorf("expected ball at (%f, %f), got (%f, %f)", wantX, wantY, ball.X, ball.Y)
	}
}

func TestBall_Advance_RightMissScoresLeft(t *testing.T) {
	ball, left, right := newTestBall(0.5, 0.25)
	ball.X, ball.Y = 785.0, 50.0
	ball.DX, ball.DY = 1.0, 0.0
	right.Y = 480.0

	ball.Advance(left, right)

	if left.Score != 1 {
		t.Errorf("expected left score 1, got %d", left.Score)
	}
	if right.Score != 0 {
		t.Errorf("expected right score 0, got %d", right.Score)
	}
	if ball.X != 400.0+0.5*BallSpeed {
		t.Errorf("expected ball reset to center, got X=%f", ball.X)
	}
}

func TestBall_Advance_ZoneFlipsBallLeavingPaddle(t *testing.T) {
	// Returned last frame but still inside the left zone
	ball, left, right := newTestBall(0.5)
	ball.X, ball.Y = 20.0, 300.0
	ball.DX, ball.DY = 1.0, 0.0
	left.Y = 250.0

	ball.Advance(left, right)

	if ball.DX != -1.0 {
		t.Errorf("expected DX=-1 on overlap, got %f", ball.DX)
	}
	if ball.X != 20.0-BallSpeed {
		t.Errorf("expected X=%f, got %f", 20.0-BallSpeed, ball.X)
	}
	if left.Score != 0 || right.Score != 0 {
		t.Errorf("expected no score change, got %d-%d", left.Score, right.Score)
	}
}

func TestBall_Advance_ZoneScoresBallLeavingPaddle(t *testing.T) {
	ball, left, right := newTestBall(0.5, 0.25)
	ball.X, ball.Y = 20.0, 300.0
	ball.DX, ball.DY = 1.0, 0.0
	left.Y = 10.0 // Spans 10..110, paddle moved away after the return

	ball.Advance(left, right)

	if right.Score != 1 {
		t.Errorf("expected right score 1, got %d", right.Score)
	}
	if left.Score != 0 {
		t.Errorf("expected left score 0, got %d", left.Score)
	}
	if ball.X != 400.0+0.5*BallSpeed || ball.Y != 300.0+0.25*BallSpeed {
		t.Errorf("expected ball one step from center, got (%f, %f)", ball.X, ball.Y)
	}
}

func TestBall_Advance_WallAndPaddleSameFrame(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		y      float64
		dx     float64
		dy     float64
		paddle float64
		wantDX float64
		wantDY float64
	}{
		{"top left corner", 15.0, 5.0, -1.0, -0.5, 0.0, 1.0, 0.5},
		{"bottom right corner", 785.0, 595.0, 1.0, 0.5, 500.0, -1.0, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball, left, right := newTestBall(0.5)
			ball.X, ball.Y = tt.x, tt.y
			ball.DX, ball.DY = tt.dx, tt.dy
			left.Y, right.Y = tt.paddle, tt.paddle

			ball.Advance(left, right)

			if ball.DX != tt.wantDX {
				t.Errorf("expected DX=%f, got %f", tt.wantDX, ball.DX)
			}
			// Only the wall touches DY; the paddle bounce leaves it alone
			if ball.DY != tt.wantDY {
				t.Errorf("expected DY=%f, got %f", tt.wantDY, ball.DY)
			}
			wantX := tt.x + tt.wantDX*BallSpeed
			wantY := tt.y + tt.wantDY*BallSpeed
			if ball.X != wantX || ball.Y != wantY {
				t.Errorf("expected ball at (%f, %f), got (%f, %f)", wantX, wantY, ball.X, ball.Y)
			}
			if left.Score != 0 || right.Score != 0 {
				t.Errorf("expected no score change, got %d-%d", left.Score, right.Score)
			}
		})
	}
}

func TestBall_Advance_WallReflection(t *testing.T) {
	tests := []struct {
		name   string
		y      float64
		dy     float64
		wantDY float64
	}{
		{"inside top edge moving up", 5.0, -1.0, 1.0},
		{"inside top edge moving down", 5.0, 1.0, 1.0},
		{"exactly at top boundary", 10.0, -1.0, -1.0},
		{"just outside top boundary", 11.0, -1.0, -1.0},
		{"inside bottom edge moving down", 595.0, 1.0, -1.0},
		{"inside bottom edge moving up", 595.0, -1.0, -1.0},
		{"exactly at bottom boundary", 590.0, 1.0, 1.0},
		{"mid field", 300.0, -0.5, -0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball, left, right := newTestBall(0.5)
			ball.X, ball.Y = 400.0, tt.y
			ball.DX, ball.DY = 0.5, tt.dy

			ball.Advance(left, right)

			if ball.DY != tt.wantDY {
				t.Errorf("expected DY=%f, got %f", tt.wantDY, ball.DY)
			}
		})
	}
}

func TestBall_Advance_WallReflectionDoesNotRefire(t *testing.T) {
	ball, left, right := newTestBall(0.5)
	ball.X, ball.Y = 400.0, 2.0
	ball.DX, ball.DY = 0.5, -0.2

	ball.Advance(left, right)
	if ball.DY != 0.2 {
		t.Fatalf("expected DY=0.2 after first advance, got %f", ball.DY)
	}
	if ball.Y >= ball.Radius() {
		t.Fatalf("test needs the ball still near the edge, got Y=%f", ball.Y)
	}

	ball.Advance(left, right)
	if ball.DY != 0.2 {
		t.Errorf("expected DY to stay 0.2 while leaving the edge, got %f", ball.DY)
	}
}

func TestBall_Reset_RedrawsZeroDirection(t *testing.T) {
	ball, _, _ := newTestBall(0, 0, 0.4, 0.6)

	if ball.DX != 0.4 || ball.DY != 0.6 {
		t.Errorf("expected zero vector to be redrawn as (0.4, 0.6), got (%f, %f)", ball.DX, ball.DY)
	}
}

func TestBall_Reset_AcceptsSingleZeroComponent(t *testing.T) {
	ball, _, _ := newTestBall(0, 0.6)

	if ball.DX != 0 || ball.DY != 0.6 {
		t.Errorf("expected direction (0, 0.6), got (%f, %f)", ball.DX, ball.DY)
	}
}

func TestBall_Advance_NarrowFieldScoresOnce(t *testing.T) {
	// Both zones overlap on a 50-wide field
	s := NewSettings(50, 600)
	ball := NewBall(s, &seqSource{vals: []float64{0.5, 0.5}})
	left := NewPaddle(protocol.SideLeft, s)
	right := NewPaddle(protocol.SideRight, s)
	ball.X, ball.Y = 25.0, 50.0
	ball.DX, ball.DY = 0.0, 0.5
	left.Y, right.Y = 400.0, 400.0

	ball.Advance(left, right)

	if right.Score != 1 {
		t.Errorf("expected left zone to score for right first, got right=%d", right.Score)
	}
	if left.Score != 0 {
		t.Errorf("expected only one scoring event, got left=%d", left.Score)
	}
}

func TestBall_State(t *testing.T) {
	ball, _, _ := newTestBall(0.5)
	ball.X, ball.Y, ball.DX, ball.DY = 1, 2, 3, 4

	got := ball.State()
	want := protocol.BallState{X: 1, Y: 2, DX: 3, DY: 4}
	if got != want {
		t.Errorf("State() = %+v, want %+v", got, want)
	}
}
