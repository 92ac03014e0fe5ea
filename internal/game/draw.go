package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen layout and world-to-screen mapping. The corridor is drawn
// top-down: lateral x maps to screen x, forward travel (negative z)
// scrolls up the screen. The camera tracks the squad centre with a
// fixed forward offset so upcoming content is visible.
const (
	ScreenWidth  = 960
	ScreenHeight = 1280

	pixelsPerUnit = 40.0
	cameraAheadZ  = 10.0 // world units of lookahead kept above the squad
)

// bandColors maps the four fire colour bands to render colours.
var bandColors = [bandCount]color.RGBA{
	BandLone:  {R: 250, G: 250, B: 120, A: 255}, // yellow
	BandSmall: {R: 120, G: 220, B: 255, A: 255}, // cyan
	BandMid:   {R: 170, G: 140, B: 255, A: 255}, // violet
	BandLarge: {R: 255, G: 150, B: 80, A: 255},  // orange
}

var (
	groundColor   = color.RGBA{R: 38, G: 42, B: 52, A: 255}
	laneColor     = color.RGBA{R: 48, G: 54, B: 66, A: 255}
	edgeColor     = color.RGBA{R: 90, G: 100, B: 120, A: 255}
	memberColor   = color.RGBA{R: 235, G: 240, B: 250, A: 255}
	obstacleColor = color.RGBA{R: 190, G: 95, B: 70, A: 255}
	pickupColor   = color.RGBA{R: 255, G: 215, B: 90, A: 255}
	gatePlus      = color.RGBA{R: 70, G: 190, B: 110, A: 200}
	gateMinus     = color.RGBA{R: 210, G: 70, B: 80, A: 200}
)

// App is the ebiten driver: it owns the session, camera, input state,
// and audio, and rebuilds the session on restart.
type App struct {
	cfg     Config
	session *Session
	sound   *SoundManager

	camZ      float64 // world z at the vertical centre of the screen
	steerX    float64
	prevKeyR  bool
	prevKeyF1 bool
}

// NewApp builds the driver and its first session.
func NewApp(cfg Config) (*App, error) {
	a := &App{
		cfg:   cfg,
		sound: NewSoundManager(),
	}
	// Audio is best-effort; a headless box just plays nothing.
	_ = a.sound.Init()
	if err := a.startSession(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *App) startSession() error {
	s, err := NewSession(a.cfg)
	if err != nil {
		return err
	}
	a.session = s
	a.sound.AttachTo(s.Bus)
	a.steerX = 0
	_, a.camZ = s.Center()
	return nil
}

// Layout implements ebiten.Game.
func (a *App) Layout(int, int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// worldToScreen maps a world position to pixels under the current camera.
func (a *App) worldToScreen(x, z float64) (float32, float32) {
	sx := ScreenWidth/2 + x*pixelsPerUnit
	sy := ScreenHeight/2 + (z-a.camZ)*pixelsPerUnit
	return float32(sx), float32(sy)
}

// Draw implements ebiten.Game: corridor, gates, obstacles, pickups,
// squad, projectiles, HUD.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(groundColor)
	s := a.session

	// Corridor lane and edges.
	lx, _ := a.worldToScreen(-a.cfg.CorridorHalfWidth, 0)
	rx, _ := a.worldToScreen(a.cfg.CorridorHalfWidth, 0)
	vector.FillRect(screen, lx, 0, rx-lx, ScreenHeight, laneColor, false)
	vector.StrokeLine(screen, lx, 0, lx, ScreenHeight, 3, edgeColor, false)
	vector.StrokeLine(screen, rx, 0, rx, ScreenHeight, 3, edgeColor, false)

	a.drawGates(screen)
	a.drawObstacles(screen)
	a.drawPickups(screen)
	a.drawSquad(screen)
	a.drawProjectiles(screen)
	a.drawHUD(screen)

	if s.GameOver() {
		a.drawGameOver(screen)
	}
}

func (a *App) drawGates(screen *ebiten.Image) {
	for _, g := range a.session.GateList() {
		// Collected gates fade out and rise as their exit animation runs.
		rise := g.ExitProgress() * 1.5
		_, sy := a.worldToScreen(0, g.Z-rise)
		if sy < -40 || sy > ScreenHeight+40 {
			continue
		}
		col := gatePlus
		if g.Displayed() < 0 {
			col = gateMinus
		}
		alpha := 1.0 - g.ExitProgress()
		col.A = uint8(float64(col.A) * alpha)

		lx, _ := a.worldToScreen(-a.cfg.CorridorHalfWidth, 0)
		rx, _ := a.worldToScreen(a.cfg.CorridorHalfWidth, 0)
		vector.FillRect(screen, lx, sy-14, rx-lx, 28, col, false)
		a.drawGateValue(screen, g, sy, alpha)
	}
}

func (a *App) drawObstacles(screen *ebiten.Image) {
	for _, o := range a.session.ObstacleList() {
		sx, sy := a.worldToScreen(o.X, o.Z)
		if sy < -40 || sy > ScreenHeight+40 {
			continue
		}
		if o.Destroyed() {
			// Brief white flash while the eviction timer runs.
			vector.FillCircle(screen, sx, sy, float32(o.Radius*pixelsPerUnit*1.3),
				color.RGBA{R: 255, G: 255, B: 230, A: 160}, false)
			continue
		}
		// Darken with damage taken.
		hp := o.HPFraction()
		col := obstacleColor
		col.R = uint8(float64(col.R) * (0.45 + 0.55*hp))
		col.G = uint8(float64(col.G) * (0.45 + 0.55*hp))
		col.B = uint8(float64(col.B) * (0.45 + 0.55*hp))
		vector.FillCircle(screen, sx, sy, float32(o.Radius*pixelsPerUnit), col, false)
		// HP arc.
		vector.StrokeCircle(screen, sx, sy, float32(o.Radius*pixelsPerUnit)+2, 2,
			color.RGBA{R: 255, G: 255, B: 255, A: uint8(70 + 150*hp)}, false)
	}
}

func (a *App) drawPickups(screen *ebiten.Image) {
	for _, p := range a.session.PickupList() {
		sx, sy := a.worldToScreen(p.X, p.Z)
		if sy < -40 || sy > ScreenHeight+40 {
			continue
		}
		vector.FillRect(screen, sx-8, sy-8, 16, 16, pickupColor, false)
	}
}

func (a *App) drawSquad(screen *ebiten.Image) {
	for i := range a.session.Squad().Members() {
		m := &a.session.Squad().Members()[i]
		sx, sy := a.worldToScreen(m.x, m.z)
		// Bob with the per-member phase so the crowd doesn't march in lockstep.
		bob := float32(math.Sin(float64(a.session.Tick())/8.0+m.phase)) * 2
		vector.FillCircle(screen, sx, sy+bob, 7, memberColor, false)
		// Facing tick.
		fx := sx + float32(math.Sin(m.facing))*10
		fy := sy + bob - float32(math.Cos(m.facing))*10
		vector.StrokeLine(screen, sx, sy+bob, fx, fy, 2, edgeColor, false)
	}
}

func (a *App) drawProjectiles(screen *ebiten.Image) {
	life := a.session.Pool().Lifetime()
	for _, p := range a.session.Pool().Active() {
		sx, sy := a.worldToScreen(p.X, p.Z)
		col := bandColors[p.Band]
		col.A = uint8(255 * p.Alpha(life))
		vector.FillCircle(screen, sx, sy, 4, col, false)
	}
}
