package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"grid-snake/game"
	"grid-snake/game/types"
)

const (
	borderPadding = 10 // gap between the board and the window edge
	lineThickness = 2
	scoreFontSize = 20
	lossFontSize  = 30
	lossText      = "Game Over. Press [enter] to play again."
)

type Renderer struct {
	screenWidth  float32
	screenHeight float32
	layout       boardLayout
	gridSize     int
}

// boardLayout is the pixel geometry of the board for one window size.
type boardLayout struct {
	gameSize float32
	offsetX  float32
	offsetY  float32
	cellSize float32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = float32(rl.GetScreenWidth())
	r.screenHeight = float32(rl.GetScreenHeight())
	r.gridSize = 0
}

// computeLayout centres a square board in the window.
func computeLayout(width, height float32, gridSize int) boardLayout {
	gameSize := width
	if height < gameSize {
		gameSize = height
	}
	offsetX := (width-gameSize)/2 + borderPadding
	offsetY := (height-gameSize)/2 + borderPadding
	return boardLayout{
		gameSize: gameSize,
		offsetX:  offsetX,
		offsetY:  offsetY,
		cellSize: (height - offsetY*2) / float32(gridSize),
	}
}

// Draw renders either the board or the loss screen for the session.
func (r *Renderer) Draw(s *game.Session) {
	st := s.State()
	if size := st.Grid().Size; size != r.gridSize {
		r.layout = computeLayout(r.screenWidth, r.screenHeight, size)
		r.gridSize = size
	}

	rl.BeginDrawing()
	if st.GameOver() {
		r.drawLoss(s.Stats())
	} else {
		r.drawGame(st, s.Stats())
	}
	rl.EndDrawing()
}

func (r *Renderer) drawGame(st *game.State, stats *game.GameStats) {
	l := r.layout
	rl.ClearBackground(rl.LightGray)

	rl.DrawRectangleV(
		rl.NewVector2(l.offsetX, l.offsetY),
		rl.NewVector2(l.gameSize-2*borderPadding, l.gameSize-2*borderPadding),
		rl.White)

	for i := 1; i < r.gridSize; i++ {
		step := l.cellSize * float32(i)
		rl.DrawLineEx(
			rl.NewVector2(l.offsetX, l.offsetY+step),
			rl.NewVector2(r.screenWidth-l.offsetX, l.offsetY+step),
			lineThickness, rl.LightGray)
		rl.DrawLineEx(
			rl.NewVector2(l.offsetX+step, l.offsetY),
			rl.NewVector2(l.offsetX+step, r.screenHeight-l.offsetY),
			lineThickness, rl.LightGray)
	}

	r.drawCell(st.Head(), rl.DarkGreen)
	for _, p := range st.Body() {
		r.drawCell(p, rl.Lime)
	}
	r.drawCell(st.Target(), rl.Gold)

	rl.DrawText(fmt.Sprintf("Score %d", st.Score()), 20, 20, scoreFontSize, rl.DarkGray)
	if best := stats.GetMaxScore(); best > 0 {
		rl.DrawText(fmt.Sprintf("Best %d", best), 20, 20+scoreFontSize+4, scoreFontSize, rl.Gray)
	}
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	l := r.layout
	rl.DrawRectangleV(
		rl.NewVector2(l.offsetX+float32(p.X)*l.cellSize, l.offsetY+float32(p.Y)*l.cellSize),
		rl.NewVector2(l.cellSize, l.cellSize),
		color)
}

func (r *Renderer) drawLoss(stats *game.GameStats) {
	rl.ClearBackground(rl.White)

	textWidth := rl.MeasureText(lossText, lossFontSize)
	rl.DrawText(lossText,
		int32(r.screenWidth/2)-textWidth/2,
		int32(r.screenHeight/2)-lossFontSize/2,
		lossFontSize, rl.DarkGray)

	if last, ok := stats.LastRound(); ok {
		summary := fmt.Sprintf("Score %d  Best %d  Median %.0f  (%s)",
			last.Score, stats.GetMaxScore(), stats.GetMedianScore(), last.Cause)
		width := rl.MeasureText(summary, scoreFontSize)
		rl.DrawText(summary,
			int32(r.screenWidth/2)-width/2,
			int32(r.screenHeight/2)+lossFontSize,
			scoreFontSize, rl.Gray)
	}
}
