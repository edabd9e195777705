package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duelpong/internal/protocol"
)

const (
	BallChar    = '\u2B24' // ⬤
	PaddleChar  = '\u2588' // █
	DividerChar = '|'

	MinScreenWidth  = 40
	MinScreenHeight = 12
)

// viewport maps field units to terminal cells.
// Row 0 holds the scoreboard and the last row the status bar.
type viewport struct {
	scaleX  float64
	scaleY  float64
	width   int
	courtH  int
	courtY0 int
}

func newViewport(screenW, screenH int, fieldW, fieldH float64) viewport {
	courtH := screenH - 2
	return viewport{
		scaleX:  float64(screenW) / fieldW,
		scaleY:  float64(courtH) / fieldH,
		width:   screenW,
		courtH:  courtH,
		courtY0: 1,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	return int(x * v.scaleX), int(y*v.scaleY) + v.courtY0
}

// span converts a field length to a cell count, never less than one
func span(length, scale float64) int {
	n := int(length*scale + 0.5)
	if n < 1 {
		n = 1
	}
	return n
}

func (v viewport) inCourt(x, y int) bool {
	return x >= 0 && x < v.width && y >= v.courtY0 && y < v.courtY0+v.courtH
}

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// RenderGame displays the game screen
func (r *Renderer) RenderGame(state protocol.Snapshot) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	if screenW < MinScreenWidth || screenH < MinScreenHeight {
		r.renderTooSmall(screenW, screenH)
		return
	}

	vp := newViewport(screenW, screenH, state.FieldWidth, state.FieldHeight)

	// Court background
	courtStyle := tcell.StyleDefault.Background(tcell.ColorBlack)
	r.screen.FillRect(0, vp.courtY0, screenW, vp.courtH, courtStyle, ' ')

	// Center divider
	lineStyle := courtStyle.Foreground(tcell.ColorDarkGray)
	r.screen.DrawDashedLine(screenW/2, vp.courtY0, vp.courtY0+vp.courtH-1, lineStyle, DividerChar)

	r.renderScoreboard(state, screenW)

	r.renderPaddle(vp, state.Left)
	r.renderPaddle(vp, state.Right)

	// Ball
	ballX, ballY := vp.cell(state.Ball.X, state.Ball.Y)
	if vp.inCourt(ballX, ballY) {
		r.screen.SetCell(ballX, ballY, courtStyle.Foreground(tcell.ColorWhite), BallChar)
	}

	r.renderStatusBar(state, screenW, screenH-1)

	r.screen.Show()
}

func (r *Renderer) renderPaddle(vp viewport, p protocol.PaddleState) {
	style := GetSideStyle(p.Side).Background(tcell.ColorBlack)
	x0, y0 := vp.cell(p.X, p.Y)
	w := span(p.Width, vp.scaleX)
	h := span(p.Height, vp.scaleY)

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if vp.inCourt(x0+dx, y0+dy) {
				r.screen.SetCell(x0+dx, y0+dy, style, PaddleChar)
			}
		}
	}
}

// renderScoreboard draws the score line at top center
func (r *Renderer) renderScoreboard(state protocol.Snapshot, screenW int) {
	// Format: [ LEFT  3 - 2  RIGHT ]
	leftLabel := "LEFT"
	rightLabel := "RIGHT"
	scores := fmt.Sprintf(" %d - %d ", state.Left.Score, state.Right.Score)

	text := "[ " + leftLabel + scores + rightLabel + " ]"
	x := (screenW - len(text)) / 2

	base := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite).Bold(true)
	r.screen.DrawText(x, 0, "[ ", base)
	x += 2
	r.screen.DrawText(x, 0, leftLabel, base.Foreground(GetSideColor(protocol.SideLeft)))
	x += len(leftLabel)
	r.screen.DrawText(x, 0, scores, base)
	x += len(scores)
	r.screen.DrawText(x, 0, rightLabel, base.Foreground(GetSideColor(protocol.SideRight)))
	x += len(rightLabel)
	r.screen.DrawText(x, 0, " ]", base)
}

func (r *Renderer) renderStatusBar(state protocol.Snapshot, screenW, y int) {
	style := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, y, screenW, 1, style, ' ')

	text := fmt.Sprintf(" Frame: %d | dt: %dms | Left W/S  Right Up/Down | q to quit",
		state.Tick, state.Elapsed.Milliseconds())
	r.screen.DrawText(0, y, text, style)
}

func (r *Renderer) renderTooSmall(screenW, screenH int) {
	msg := fmt.Sprintf("Terminal too small (%dx%d), need %dx%d", screenW, screenH, MinScreenWidth, MinScreenHeight)
	x := (screenW - len(msg)) / 2
	if x < 0 {
		x = 0
	}
	r.screen.DrawText(x, screenH/2, msg, tcell.StyleDefault.Foreground(tcell.ColorYellow))
	r.screen.Show()
}
