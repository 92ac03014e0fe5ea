package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// keyboardSteerRate is how fast arrow keys slide the steer target,
// world units per second.
const keyboardSteerRate = 14.0

// Update implements ebiten.Game: read input, drive the session one
// frame, track the camera.
func (a *App) Update() error {
	a.readSteering()
	a.handleHotkeys()

	a.session.SetSteerTarget(a.steerX)
	a.session.AdvanceFrame(fixedDelta)

	// Camera eases toward the squad centre plus lookahead.
	_, cz := a.session.Center()
	target := cz - cameraAheadZ
	a.camZ = lerp(a.camZ, target, 0.12)
	return nil
}

// readSteering derives the lateral steer target: the mouse cursor's
// world x when the cursor is inside the window, arrow keys otherwise.
func (a *App) readSteering() {
	mx, my := ebiten.CursorPosition()
	if mx >= 0 && mx < ScreenWidth && my >= 0 && my < ScreenHeight &&
		(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || a.mouseActive(mx, my)) {
		a.steerX = (float64(mx) - ScreenWidth/2) / pixelsPerUnit
		return
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		a.steerX -= keyboardSteerRate * fixedDelta
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		a.steerX += keyboardSteerRate * fixedDelta
	}
	limit := a.cfg.CorridorHalfWidth - a.cfg.SteerMargin
	a.steerX = clamp(a.steerX, -limit, limit)
}

// mouseActive reports whether the cursor moved recently enough to own
// steering. Held simple: any in-window position steers while no arrow
// key is down.
func (a *App) mouseActive(_, _ int) bool {
	return !ebiten.IsKeyPressed(ebiten.KeyArrowLeft) &&
		!ebiten.IsKeyPressed(ebiten.KeyArrowRight) &&
		!ebiten.IsKeyPressed(ebiten.KeyA) &&
		!ebiten.IsKeyPressed(ebiten.KeyD)
}

// handleHotkeys: R restarts after a defeat, F1 copies a debug report.
// Edge-triggered so a held key fires once.
func (a *App) handleHotkeys() {
	r := ebiten.IsKeyPressed(ebiten.KeyR)
	if r && !a.prevKeyR && a.session.GameOver() {
		if err := a.startSession(); err != nil {
			log.Printf("restart failed: %v", err)
		}
	}
	a.prevKeyR = r

	f1 := ebiten.IsKeyPressed(ebiten.KeyF1)
	if f1 && !a.prevKeyF1 {
		if err := a.session.CopyDebugReport(); err != nil {
			log.Printf("debug report copy failed: %v", err)
		}
	}
	a.prevKeyF1 = f1
}
