package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"sync"

	"cannon/internal/core"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas is the drawing target handed to the render step.
type Canvas interface {
	Size() core.Size
	Clear(col color.Color)
	// DrawText draws s with its baseline at (x, y).
	DrawText(s string, x, y, size float64, col color.Color)
	DrawLine(x1, y1, x2, y2, width float64, col color.Color) error
}

var loadFontSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// RasterCanvas renders into a CPU pixmap using gogpu/gg.
type RasterCanvas struct {
	dc    *gg.Context
	fonts *text.FontSource
	faces map[float64]text.Face
}

// NewRasterCanvas allocates a w*h canvas.
func NewRasterCanvas(w, h int) (*RasterCanvas, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("render: invalid canvas size %dx%d", w, h)
	}
	fonts, err := loadFontSource()
	if err != nil {
		return nil, fmt.Errorf("render: load font: %w", err)
	}
	return &RasterCanvas{
		dc:    gg.NewContext(w, h),
		fonts: fonts,
		faces: make(map[float64]text.Face),
	}, nil
}

// Size returns the canvas dimensions.
func (c *RasterCanvas) Size() core.Size {
	return core.Size{W: c.dc.Width(), H: c.dc.Height()}
}

// Resize reallocates the pixmap when the dimensions change.
func (c *RasterCanvas) Resize(w, h int) error {
	return c.dc.Resize(w, h)
}

// Clear fills the whole canvas with col.
func (c *RasterCanvas) Clear(col color.Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

// DrawText draws s using the bundled Go Regular face at the given pixel size.
func (c *RasterCanvas) DrawText(s string, x, y, size float64, col color.Color) {
	if size <= 0 {
		return
	}
	face, ok := c.faces[size]
	if !ok {
		face = c.fonts.Face(size)
		c.faces[size] = face
	}
	c.dc.SetFont(face)
	c.dc.SetColor(col)
	c.dc.DrawString(s, x, y)
}

// DrawLine strokes a straight segment.
func (c *RasterCanvas) DrawLine(x1, y1, x2, y2, width float64, col color.Color) error {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	return c.dc.Stroke()
}

// Image returns a copy of the current pixels.
func (c *RasterCanvas) Image() *image.RGBA {
	img := c.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// EncodePNG writes the current pixels as PNG.
func (c *RasterCanvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// Close releases the drawing context.
func (c *RasterCanvas) Close() error {
	return c.dc.Close()
}
