package game

import (
	"errors"
	"fmt"

	"cannon/internal/core"
)

// ErrInvalidSize is returned for surfaces with a non-positive dimension.
var ErrInvalidSize = errors.New("game: invalid surface size")

// Geometry holds the layout derived from the surface size. It is recomputed
// only when the size actually changes.
type Geometry struct {
	Size core.Size

	LineWidth       int
	TargetDistance  int // from the left edge
	TargetBeginning int // top of the target
	TargetEnd       int // bottom of the target
	InitialSpeed    int // pixels per second

	TextSize           int
	ReflectionTextSize int
}

// NewGeometry derives the layout for a w*h surface.
func NewGeometry(w, h int) (Geometry, error) {
	if w <= 0 || h <= 0 {
		return Geometry{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return Geometry{
		Size:               core.Size{W: w, H: h},
		LineWidth:          w / 32,
		TargetDistance:     w * 7 / 8,
		TargetBeginning:    h / 8,
		TargetEnd:          h * 5 / 32,
		InitialSpeed:       h / 2,
		TextSize:           w / 20,
		ReflectionTextSize: w / 30,
	}, nil
}

// StartLine returns the target at its starting position.
func (g Geometry) StartLine() core.Line {
	x := float64(g.TargetDistance)
	return core.Line{
		Start: core.Point{X: x, Y: float64(g.TargetBeginning)},
		End:   core.Point{X: x, Y: float64(g.TargetEnd)},
	}
}
