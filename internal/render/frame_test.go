package render

import (
	"image/color"
	"testing"

	"cannon/internal/core"
)

type call struct {
	op   string
	text string
	args []float64
	col  color.Color
}

type recordingCanvas struct {
	calls []call
}

func (c *recordingCanvas) Size() core.Size { return core.Size{W: 320, H: 480} }

func (c *recordingCanvas) Clear(col color.Color) {
	c.calls = append(c.calls, call{op: "clear", col: col})
}

func (c *recordingCanvas) DrawText(s string, x, y, size float64, col color.Color) {
	c.calls = append(c.calls, call{op: "text", text: s, args: []float64{x, y, size}, col: col})
}

func (c *recordingCanvas) DrawLine(x1, y1, x2, y2, width float64, col color.Color) error {
	c.calls = append(c.calls, call{op: "line", args: []float64{x1, y1, x2, y2, width}, col: col})
	return nil
}

func testFrame() Frame {
	return Frame{
		TimeLeft:    7.25,
		Reflections: 4,
		Target: core.Line{
			Start: core.Point{X: 280, Y: 60},
			End:   core.Point{X: 280, Y: 75},
		},
		LineWidth:          10,
		TextSize:           16,
		ReflectionTextSize: 10,
	}
}

func TestDrawOrderAndContent(t *testing.T) {
	c := &recordingCanvas{}
	if err := Draw(c, testFrame()); err != nil {
		t.Fatal(err)
	}
	if len(c.calls) != 4 {
		t.Fatalf("got %d draw calls, want 4: %+v", len(c.calls), c.calls)
	}
	if c.calls[0].op != "clear" || c.calls[0].col != BackgroundColor {
		t.Fatalf("first call must clear the background, got %+v", c.calls[0])
	}
	timeLabel := c.calls[1]
	if timeLabel.text != "Time remaining: 7.2 seconds" && timeLabel.text != "Time remaining: 7.3 seconds" {
		t.Fatalf("time label = %q", timeLabel.text)
	}
	if timeLabel.args[0] != 30 || timeLabel.args[1] != 50 || timeLabel.args[2] != 16 || timeLabel.col != TimeColor {
		t.Fatalf("time label placement %+v", timeLabel)
	}
	refl := c.calls[2]
	if refl.text != "4" || refl.args[1] != 90 || refl.args[2] != 10 || refl.col != ReflectionColor {
		t.Fatalf("reflection label %+v", refl)
	}
	line := c.calls[3]
	want := []float64{280, 60, 280, 75, 10}
	for i := range want {
		if line.args[i] != want[i] {
			t.Fatalf("line args = %v, want %v", line.args, want)
		}
	}
	if line.col != TargetColor {
		t.Fatalf("line color = %v", line.col)
	}
}

func TestTimeLabelPrecision(t *testing.T) {
	if got := TimeLabel(0); got != "Time remaining: 0.0 seconds" {
		t.Fatalf("TimeLabel(0) = %q", got)
	}
	if got := TimeLabel(10); got != "Time remaining: 10.0 seconds" {
		t.Fatalf("TimeLabel(10) = %q", got)
	}
}

func TestRasterCanvasRendersFrame(t *testing.T) {
	c, err := NewRasterCanvas(320, 480)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	if err := Draw(c, testFrame()); err != nil {
		t.Fatal(err)
	}
	img := c.Image()
	if b := img.Bounds(); b.Dx() != 320 || b.Dy() != 480 {
		t.Fatalf("image bounds %v", b)
	}
	bg := img.RGBAAt(300, 470)
	if !near(bg.R, 136) || !near(bg.G, 136) || !near(bg.B, 136) {
		t.Fatalf("background pixel = %+v", bg)
	}
	target := img.RGBAAt(280, 68)
	if target.B < 200 || target.R > 60 || target.G > 60 {
		t.Fatalf("target pixel = %+v, want blue", target)
	}
}

func TestRasterCanvasRejectsEmptySize(t *testing.T) {
	if _, err := NewRasterCanvas(0, 10); err == nil {
		t.Fatal("expected an error for a zero width")
	}
}

func near(got, want uint8) bool {
	d := int(got) - int(want)
	return d >= -1 && d <= 1
}
