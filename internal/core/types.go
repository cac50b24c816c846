package core

import "math"

// Size describes the dimensions of the drawing surface in pixels.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Point is a position in surface coordinates. Y grows downwards.
type Point struct {
	X float64
	Y float64
}

// Vec is a 2D velocity in pixels per second.
type Vec struct {
	X float64
	Y float64
}

// Len returns the magnitude of the vector.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Scale returns v multiplied by s.
func (v Vec) Scale(s float64) Vec { return Vec{X: v.X * s, Y: v.Y * s} }

// Line is a segment between two endpoints.
type Line struct {
	Start Point
	End   Point
}

// Translate moves both endpoints by the same offset.
func (l *Line) Translate(dx, dy float64) {
	l.Start.X += dx
	l.Start.Y += dy
	l.End.X += dx
	l.End.Y += dy
}

// MinX returns the smaller x coordinate of the two endpoints.
func (l Line) MinX() float64 { return math.Min(l.Start.X, l.End.X) }

// MaxX returns the larger x coordinate of the two endpoints.
func (l Line) MaxX() float64 { return math.Max(l.Start.X, l.End.X) }

// MinY returns the smaller y coordinate of the two endpoints.
func (l Line) MinY() float64 { return math.Min(l.Start.Y, l.End.Y) }

// MaxY returns the larger y coordinate of the two endpoints.
func (l Line) MaxY() float64 { return math.Max(l.Start.Y, l.End.Y) }
