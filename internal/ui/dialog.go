//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"cannon/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// DialogHost is notified when the dialog appears and when it is acknowledged.
type DialogHost interface {
	DialogShown()
	DialogDismissed()
}

// Dialog is the modal game-over panel. ShowGameOver may be called from any
// goroutine; the panel is only shown from Update on the UI thread.
type Dialog struct {
	queue   resultQueue
	current *game.Result
	button  image.Rectangle
}

const resetLabel = "Reset Game"

// NewDialog constructs a hidden dialog.
func NewDialog() *Dialog {
	return &Dialog{queue: newResultQueue()}
}

// ShowGameOver queues r for presentation.
func (d *Dialog) ShowGameOver(r game.Result) {
	d.queue.post(r)
}

// Visible reports whether the panel is on screen.
func (d *Dialog) Visible() bool { return d.current != nil }

// Update shows a queued result or handles the reset action.
func (d *Dialog) Update(host DialogHost) {
	if d.current == nil {
		if r, ok := d.queue.take(); ok {
			d.current = &r
			host.DialogShown()
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) || d.buttonClicked() {
		d.current = nil
		host.DialogDismissed()
	}
}

func (d *Dialog) buttonClicked() bool {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y).In(d.button)
}

// Draw paints the panel centred on screen.
func (d *Dialog) Draw(screen *ebiten.Image) {
	if d.current == nil {
		return
	}
	face := basicfont.Face7x13
	const (
		panelW  = 260
		panelH  = 110
		padding = 14
		lineH   = 18
	)
	b := screen.Bounds()
	x := (b.Dx() - panelW) / 2
	y := (b.Dy() - panelH) / 2

	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{A: 120}, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), panelW, panelH, color.RGBA{R: 32, G: 32, B: 40, A: 240}, false)
	vector.StrokeRect(screen, float32(x), float32(y), panelW, panelH, 1, color.RGBA{R: 200, G: 200, B: 210, A: 255}, false)

	text.Draw(screen, d.current.Title, face, x+padding, y+padding+lineH/2, color.White)
	text.Draw(screen, d.current.Message(), face, x+padding, y+padding+lineH*2, color.RGBA{R: 210, G: 210, B: 210, A: 255})

	bw := len(resetLabel)*7 + 2*padding
	bh := lineH + 8
	d.button = image.Rect(x+panelW-padding-bw, y+panelH-padding-bh, x+panelW-padding, y+panelH-padding)
	vector.DrawFilledRect(screen, float32(d.button.Min.X), float32(d.button.Min.Y), float32(bw), float32(bh), color.RGBA{R: 70, G: 110, B: 190, A: 255}, false)
	text.Draw(screen, resetLabel, face, d.button.Min.X+padding, d.button.Max.Y-9, color.White)
}
