//go:build ebiten

package app

import (
	"image"
	"image/color"

	"cannon/internal/game"
	"cannon/internal/surface"
	"cannon/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts the cannon game to the ebiten.Game interface. It owns the
// drawing surface: the loop goroutine renders into the buffer and Draw
// presents the posted frames on the UI thread.
type Game struct {
	game   *game.Game
	buffer *surface.Buffer
	dialog *ui.Dialog
	hud    *ui.HUD

	frame   *ebiten.Image
	w, h    int
	created bool
	paused  bool
	closed  bool
}

// New constructs the ebiten adapter. dialog must be the one passed to g.
func New(g *game.Game, dialog *ui.Dialog, showHUD bool) *Game {
	return &Game{
		game:   g,
		buffer: surface.NewBuffer(true),
		dialog: dialog,
		hud:    ui.NewHUD(g, hudWidth, showHUD),
	}
}

// Update handles per-frame input and lifecycle.
func (a *Game) Update() error {
	if ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.destroy()
		return ebiten.Termination
	}
	a.dialog.Update(a.game)
	a.hud.Update()
	if a.dialog.Visible() {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.game.NewGame()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
		if a.paused {
			a.game.StopGame()
		} else {
			a.game.Resume()
		}
	}
	return nil
}

// Draw presents the latest frame posted by the loop, then the overlays.
func (a *Game) Draw(screen *ebiten.Image) {
	a.buffer.Present(func(img *image.RGBA) {
		b := img.Bounds()
		if a.frame == nil || a.frame.Bounds().Dx() != b.Dx() || a.frame.Bounds().Dy() != b.Dy() {
			a.frame = ebiten.NewImage(b.Dx(), b.Dy())
		}
		a.frame.WritePixels(img.Pix)
	})
	if a.frame != nil {
		screen.DrawImage(a.frame, nil)
	} else {
		screen.Fill(color.Black)
	}
	a.dialog.Draw(screen)
	a.hud.Draw(screen)
}

// Layout reports the window size as the logical screen and forwards size
// changes to the game. The first call also creates the surface.
func (a *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if a.closed || outsideWidth <= 0 || outsideHeight <= 0 {
		return max(outsideWidth, 1), max(outsideHeight, 1)
	}
	if outsideWidth != a.w || outsideHeight != a.h {
		a.resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (a *Game) resize(w, h int) {
	if err := a.buffer.Resize(w, h); err != nil {
		return
	}
	a.w, a.h = w, h
	if err := a.game.SurfaceChanged(w, h); err != nil {
		return
	}
	if !a.created {
		a.created = true
		a.game.SurfaceCreated(a.buffer)
	}
}

// destroy closes the buffer first so a worker waiting for a present wakes
// up, then joins it.
func (a *Game) destroy() {
	if a.closed {
		return
	}
	a.closed = true
	a.buffer.Close()
	a.game.SurfaceDestroyed()
	a.game.ReleaseResources()
}
