//go:build ebiten

package ui

import (
	"image/color"

	"cannon/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel in the top-right corner. H toggles it.
type HUD struct {
	source  core.ParameterProvider
	width   int
	visible bool
	lines   []string
}

// NewHUD constructs a HUD for the provided source and panel width.
func NewHUD(source core.ParameterProvider, width int, visible bool) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{source: source, width: width, visible: visible}
}

// Update handles the toggle key and refreshes the cached rows.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	if !h.visible || h.source == nil {
		return
	}
	h.lines = hudLines(h.source.Parameters())
}

// Draw paints the panel anchored to the right edge of the screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || !h.visible || h.width <= 0 || len(h.lines) == 0 {
		return
	}
	const (
		lineH   = 15
		padding = 8
	)
	b := screen.Bounds()
	x := b.Dx() - h.width
	height := len(h.lines)*lineH + 2*padding
	vector.DrawFilledRect(screen, float32(x), 0, float32(h.width), float32(height), color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)
	for i, line := range h.lines {
		text.Draw(screen, line, basicfont.Face7x13, x+padding, padding+(i+1)*lineH-3, color.RGBA{R: 220, G: 220, B: 220, A: 255})
	}
}
