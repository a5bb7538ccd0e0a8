package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"grid-snake/game"
	"grid-snake/game/types"
)

// Each grid cell is two terminal columns wide so the board looks square.
const cellWidth = 2

const lossText = "Game Over. Press [enter] to play again."

var (
	styleBackground = tcell.StyleDefault.Background(tcell.ColorLightGray).Foreground(tcell.ColorDarkGray)
	styleBoard      = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorLightGray)
	styleHead       = tcell.StyleDefault.Background(tcell.ColorDarkGreen)
	styleBody       = tcell.StyleDefault.Background(tcell.ColorLime)
	styleTarget     = tcell.StyleDefault.Background(tcell.ColorGold)
	styleText       = tcell.StyleDefault.Background(tcell.ColorLightGray).Foreground(tcell.ColorBlack)
	styleLoss       = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorDarkGray)
)

type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// boardOrigin returns the top-left screen cell of the board, centred below
// the one-line HUD.
func boardOrigin(screenW, screenH, gridSize int) (int, int) {
	x := (screenW - gridSize*cellWidth) / 2
	y := 1 + (screenH-1-gridSize)/2
	if x < 0 {
		x = 0
	}
	if y < 1 {
		y = 1
	}
	return x, y
}

func (r *Renderer) Draw(s *game.Session) {
	r.screen.Clear()
	if s.State().GameOver() {
		r.drawLoss(s.Stats())
	} else {
		r.drawGame(s.State(), s.Stats())
	}
	r.screen.Show()
}

func (r *Renderer) drawGame(st *game.State, stats *game.GameStats) {
	w, h := r.screen.Size()
	r.fill(0, 0, w, h, styleBackground)

	size := st.Grid().Size
	ox, oy := boardOrigin(w, h, size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			ch := ' '
			if (x+y)%2 == 1 {
				ch = '·'
			}
			r.drawCell(ox, oy, types.Point{X: x, Y: y}, ch, styleBoard)
		}
	}

	for _, p := range st.Body() {
		r.drawCell(ox, oy, p, ' ', styleBody)
	}
	r.drawCell(ox, oy, st.Head(), ' ', styleHead)
	r.drawCell(ox, oy, st.Target(), ' ', styleTarget)

	hud := fmt.Sprintf("Score %d", st.Score())
	if best := stats.GetMaxScore(); best > 0 {
		hud += fmt.Sprintf("   Best %d", best)
	}
	r.text(1, 0, hud, styleText)
}

func (r *Renderer) drawCell(ox, oy int, p types.Point, ch rune, style tcell.Style) {
	x := ox + p.X*cellWidth
	y := oy + p.Y
	for i := 0; i < cellWidth; i++ {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawLoss(stats *game.GameStats) {
	w, h := r.screen.Size()
	r.fill(0, 0, w, h, styleLoss)
	r.text((w-len(lossText))/2, h/2, lossText, styleLoss)

	if last, ok := stats.LastRound(); ok {
		summary := fmt.Sprintf("Score %d  Best %d  Median %.0f  (%s)",
			last.Score, stats.GetMaxScore(), stats.GetMedianScore(), last.Cause)
		r.text((w-len(summary))/2, h/2+2, summary, styleLoss)
	}
}

func (r *Renderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	if x < 0 {
		x = 0
	}
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
