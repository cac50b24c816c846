package render

import (
	"fmt"
	"image/color"
	"strconv"

	"cannon/internal/core"
)

// Colors used for each frame element.
var (
	BackgroundColor = color.RGBA{R: 136, G: 136, B: 136, A: 255}
	TimeColor       = color.RGBA{R: 255, A: 255}
	ReflectionColor = color.RGBA{R: 255, G: 255, A: 255}
	TargetColor     = color.RGBA{B: 255, A: 255}
)

// Label positions in surface pixels.
const (
	labelX           = 30
	timeLabelY       = 50
	reflectionLabelY = 90
)

// Frame is everything the render step needs to draw one frame.
type Frame struct {
	TimeLeft    float64
	Reflections int
	Target      core.Line

	LineWidth          float64
	TextSize           float64
	ReflectionTextSize float64
}

// TimeLabel formats the remaining time the way it is shown on screen.
func TimeLabel(timeLeft float64) string {
	return fmt.Sprintf("Time remaining: %.1f seconds", timeLeft)
}

// Draw clears the canvas and paints the labels and target.
func Draw(c Canvas, f Frame) error {
	c.Clear(BackgroundColor)
	c.DrawText(TimeLabel(f.TimeLeft), labelX, timeLabelY, f.TextSize, TimeColor)
	c.DrawText(strconv.Itoa(f.Reflections), labelX, reflectionLabelY, f.ReflectionTextSize, ReflectionColor)
	t := f.Target
	if err := c.DrawLine(t.Start.X, t.Start.Y, t.End.X, t.End.Y, f.LineWidth, TargetColor); err != nil {
		return fmt.Errorf("render: draw target: %w", err)
	}
	return nil
}
