package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var hudFace font.Face = basicfont.Face7x13

// drawGateValue renders a gate's current displayed value centred on
// its bar.
func (a *App) drawGateValue(screen *ebiten.Image, g *Gate, sy float32, alpha float64) {
	label := fmt.Sprintf("%+d", g.Displayed())
	w := font.MeasureString(hudFace, label).Ceil()
	col := color.RGBA{R: 255, G: 255, B: 255, A: uint8(255 * alpha)}
	text.Draw(screen, label, hudFace, ScreenWidth/2-w/2, int(sy)+4, col)
}

// drawHUD renders score, squad size, level, and the boost indicator.
func (a *App) drawHUD(screen *ebiten.Image) {
	s := a.session
	lines := []string{
		fmt.Sprintf("SCORE %d", s.Score()),
		fmt.Sprintf("SQUAD %d/%d", s.Size(), s.Squad().Capacity()),
		fmt.Sprintf("LEVEL %d", s.Level()),
	}
	if s.BoostActive() {
		lines = append(lines, "RAPID FIRE")
	}
	y := 24
	for _, l := range lines {
		text.Draw(screen, l, hudFace, 16, y, color.White)
		y += 18
	}
}

// drawGameOver dims the field and shows the restart prompt.
func (a *App) drawGameOver(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, ScreenWidth, ScreenHeight,
		color.RGBA{A: 140}, false)

	msg := fmt.Sprintf("DEFEAT — score %d", a.session.Score())
	hint := "press R to run again"
	w := font.MeasureString(hudFace, msg).Ceil()
	text.Draw(screen, msg, hudFace, ScreenWidth/2-w/2, ScreenHeight/2-10, color.White)
	w = font.MeasureString(hudFace, hint).Ceil()
	text.Draw(screen, hint, hudFace, ScreenWidth/2-w/2, ScreenHeight/2+14,
		color.RGBA{R: 200, G: 200, B: 200, A: 255})
}
