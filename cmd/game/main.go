package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"squad-rush/internal/game"
)

func main() {
	app, err := game.NewApp(game.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}
	ebiten.SetWindowTitle("Squad Rush")
	ebiten.SetWindowSize(game.ScreenWidth/2, game.ScreenHeight/2)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
