package game

import (
	"math"

	"cannon/internal/core"
)

// Session is the state of one play-through. It is owned by the game loop and
// only read or written while holding the game lock.
type Session struct {
	Target   core.Line
	Velocity core.Vec

	TimeLeft     float64 // seconds
	ShotsFired   int
	TotalElapsed float64 // seconds
	Reflections  int
	GameOver     bool
}

// Reset starts a new play-through. The target heads in direction angle
// (radians) at the geometry's initial speed.
func (s *Session) Reset(g Geometry, angle, startingTime float64) {
	speed := float64(g.InitialSpeed)
	*s = Session{
		Target:   g.StartLine(),
		Velocity: core.Vec{X: speed * math.Sin(angle), Y: speed * math.Cos(angle)},
		TimeLeft: startingTime,
	}
}

// Update advances the target by elapsedMS milliseconds, reflects it off the
// edges of screen and runs the countdown. It reports true exactly once, on
// the update that ends the session.
//
// Each axis is tested on its own, so a corner hit counts as two reflections.
func (s *Session) Update(elapsedMS float64, screen core.Size, reflectionCap int) bool {
	if s.GameOver {
		return false
	}
	if elapsedMS < 0 {
		elapsedMS = 0
	}
	interval := elapsedMS / 1000.0

	s.Target.Translate(interval*s.Velocity.X, interval*s.Velocity.Y)

	if s.Target.MinY() < 0 || s.Target.MaxY() > float64(screen.H) {
		s.Velocity.Y = -s.Velocity.Y
		s.Reflections++
	}
	if s.Target.MinX() < 0 || s.Target.MaxX() > float64(screen.W) {
		s.Velocity.X = -s.Velocity.X
		s.Reflections++
	}

	s.TimeLeft -= interval
	if s.TimeLeft <= 0 || s.Reflections >= reflectionCap {
		s.TimeLeft = 0
		s.GameOver = true
		return true
	}
	return false
}
