// Package game implements the cannon target game: the session rules, the
// background loop that advances and renders them, and the lifecycle hooks the
// surface owner calls.
package game

import (
	"fmt"
	"strconv"
	"sync"

	"cannon/internal/audio"
	"cannon/internal/core"
	"cannon/internal/render"
	pcore "cannon/pkg/core"
)

// LoseTitle is the title of the game-over dialog.
const LoseTitle = "You lost!"

// Surface is the drawing target owned by the UI. LockCanvas blocks until
// exclusive access is available; on error nothing is held.
type Surface interface {
	LockCanvas() (render.Canvas, error)
	UnlockCanvasAndPost(render.Canvas)
}

// interrupter is implemented by surfaces whose LockCanvas can wait on the UI
// thread, which would otherwise deadlock a join issued from that thread.
type interrupter interface {
	Interrupt()
}

// Dialog presents the end of a session. ShowGameOver is called from the loop
// goroutine; implementations must hand the result to the UI thread and
// return without calling back into the Game.
type Dialog interface {
	ShowGameOver(Result)
}

// DialogFunc adapts a function to the Dialog interface.
type DialogFunc func(Result)

// ShowGameOver calls f(r).
func (f DialogFunc) ShowGameOver(r Result) { f(r) }

// Result summarises a finished session.
type Result struct {
	Title        string
	ShotsFired   int
	TotalElapsed float64
}

// Message formats the result body.
func (r Result) Message() string {
	return fmt.Sprintf("Shots fired: %d, Total time: %.1f", r.ShotsFired, r.TotalElapsed)
}

// Option customises a Game.
type Option func(*Game)

// WithClock replaces the wall clock used to time loop iterations.
func WithClock(c core.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithDialog sets the game-over presenter.
func WithDialog(d Dialog) Option {
	return func(g *Game) { g.dialog = d }
}

// WithSounds sets the sound effect player.
func WithSounds(p audio.Player) Option {
	return func(g *Game) { g.sounds = p }
}

// Game ties the session state to the loop worker and the UI collaborators.
// A single mutex guards the session so a frame is never read half-updated.
type Game struct {
	cfg    Config
	loop   *Loop
	rng    *pcore.RNG
	clock  core.Clock
	dialog Dialog
	sounds audio.Player

	mu          sync.Mutex
	geom        Geometry
	sized       bool
	session     Session
	surface     Surface
	dialogShown bool
}

// New constructs a Game. Nothing runs until a surface is created.
func New(cfg Config, opts ...Option) *Game {
	def := DefaultConfig()
	if cfg.StartingTime <= 0 {
		cfg.StartingTime = def.StartingTime
	}
	if cfg.ReflectionCap <= 0 {
		cfg.ReflectionCap = def.ReflectionCap
	}
	g := &Game{
		cfg:    cfg,
		loop:   NewLoop(),
		rng:    pcore.NewRNG(cfg.Seed),
		clock:  core.SystemClock{},
		sounds: audio.Silent{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the rules the game was built with.
func (g *Game) Config() Config { return g.cfg }

// Loop exposes the worker state machine.
func (g *Game) Loop() *Loop { return g.loop }

// SurfaceCreated starts the loop on s unless the game-over dialog is up.
func (g *Game) SurfaceCreated(s Surface) {
	g.mu.Lock()
	g.surface = s
	blocked := g.dialogShown || g.session.GameOver
	g.mu.Unlock()
	logger().Info("surface created", "blocked", blocked)
	if !blocked {
		g.start()
	}
}

// SurfaceChanged recomputes the geometry and starts a new session when the
// size actually changed.
func (g *Game) SurfaceChanged(w, h int) error {
	geom, err := NewGeometry(w, h)
	if err != nil {
		return err
	}
	g.mu.Lock()
	if g.sized && g.geom.Size == geom.Size {
		g.mu.Unlock()
		return nil
	}
	g.geom = geom
	g.sized = true
	g.mu.Unlock()
	logger().Info("surface changed", "width", w, "height", h)
	g.NewGame()
	return nil
}

// SurfaceDestroyed stops the loop and blocks until the worker has exited.
func (g *Game) SurfaceDestroyed() {
	g.stop()
	g.mu.Lock()
	g.surface = nil
	g.mu.Unlock()
	logger().Info("surface destroyed")
}

// NewGame resets the session. If the previous session had ended, a new
// worker is started.
func (g *Game) NewGame() {
	g.mu.Lock()
	wasOver := g.session.GameOver
	g.session.Reset(g.geom, g.rng.Angle(), g.cfg.StartingTime)
	v := g.session.Velocity
	g.mu.Unlock()
	logger().Info("new game", "vx", v.X, "vy", v.Y, "restart", wasOver)
	if wasOver {
		g.start()
	}
}

// StopGame stops the loop and waits for it.
func (g *Game) StopGame() {
	g.stop()
}

// Resume restarts the loop for a session still in progress.
func (g *Game) Resume() {
	g.mu.Lock()
	ok := !g.session.GameOver && !g.dialogShown
	g.mu.Unlock()
	if ok {
		g.start()
	}
}

// DialogShown records that the game-over dialog is on screen.
func (g *Game) DialogShown() {
	g.mu.Lock()
	g.dialogShown = true
	g.mu.Unlock()
}

// DialogDismissed handles the dialog's reset action.
func (g *Game) DialogDismissed() {
	g.mu.Lock()
	g.dialogShown = false
	g.mu.Unlock()
	g.NewGame()
}

// PlaySound plays a sound effect by id.
func (g *Game) PlaySound(id audio.SoundID) {
	g.sounds.Play(id)
}

// ReleaseResources closes the sound player.
func (g *Game) ReleaseResources() error {
	return g.sounds.Close()
}

// State returns a copy of the current session.
func (g *Game) State() Session {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session
}

// Geometry returns the current layout.
func (g *Game) Geometry() Geometry {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.geom
}

func (g *Game) stop() {
	g.loop.RequestStop()
	g.mu.Lock()
	s := g.surface
	g.mu.Unlock()
	if w, ok := s.(interrupter); ok && g.loop.State() == Running {
		w.Interrupt()
	}
	g.loop.Wait()
	logger().Info("loop stopped")
}

func (g *Game) start() {
	g.mu.Lock()
	s := g.surface
	g.mu.Unlock()
	if s == nil {
		return
	}
	timer := core.NewFrameTimer(g.clock)
	if g.loop.Start(func() bool { return g.step(s, timer) }) {
		logger().Info("loop started", "run", g.loop.Runs())
	}
}

// step runs one loop iteration. It returns false once the session is lost.
func (g *Game) step(s Surface, timer *core.FrameTimer) bool {
	canvas, err := s.LockCanvas()
	if err != nil {
		logger().Debug("frame skipped", "err", err)
		canvas = nil
	}

	g.mu.Lock()
	elapsed := timer.Tick()
	g.session.TotalElapsed += elapsed / 1000.0
	lost := g.session.Update(elapsed, g.geom.Size, g.cfg.ReflectionCap)
	var result Result
	reflections := g.session.Reflections
	if lost {
		result = Result{Title: LoseTitle, ShotsFired: g.session.ShotsFired, TotalElapsed: g.session.TotalElapsed}
		g.loop.RequestStop()
	}
	if canvas != nil {
		if err := render.Draw(canvas, g.frameLocked()); err != nil {
			logger().Warn("render failed", "err", err)
		}
	}
	g.mu.Unlock()

	if canvas != nil {
		s.UnlockCanvasAndPost(canvas)
	}
	if lost {
		logger().Info("game over", "reflections", reflections, "elapsed", result.TotalElapsed)
		if g.dialog != nil {
			g.dialog.ShowGameOver(result)
		}
		return false
	}
	return true
}

func (g *Game) frameLocked() render.Frame {
	return render.Frame{
		TimeLeft:           g.session.TimeLeft,
		Reflections:        g.session.Reflections,
		Target:             g.session.Target,
		LineWidth:          float64(g.geom.LineWidth),
		TextSize:           float64(g.geom.TextSize),
		ReflectionTextSize: float64(g.geom.ReflectionTextSize),
	}
}

// Parameters reports the layout and session values for the HUD.
func (g *Game) Parameters() core.ParameterSnapshot {
	g.mu.Lock()
	geom, s := g.geom, g.session
	g.mu.Unlock()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Screen",
			Params: []core.Parameter{
				intParam("width", "Width", geom.Size.W),
				intParam("height", "Height", geom.Size.H),
				intParam("line_width", "Line width", geom.LineWidth),
				intParam("target_distance", "Target distance", geom.TargetDistance),
				intParam("target_beginning", "Target beginning", geom.TargetBeginning),
				intParam("target_end", "Target end", geom.TargetEnd),
				intParam("initial_speed", "Initial speed", geom.InitialSpeed),
			},
		},
		{
			Name: "Session",
			Params: []core.Parameter{
				floatParam("time_left", "Time left", s.TimeLeft),
				floatParam("total_elapsed", "Elapsed", s.TotalElapsed),
				intParam("shots_fired", "Shots fired", s.ShotsFired),
				intParam("reflections", "Reflections", s.Reflections),
				floatParam("velocity_x", "Velocity X", s.Velocity.X),
				floatParam("velocity_y", "Velocity Y", s.Velocity.Y),
				{Key: "game_over", Label: "Game over", Value: strconv.FormatBool(s.GameOver)},
			},
		},
		{
			Name: "Loop",
			Params: []core.Parameter{
				{Key: "state", Label: "State", Value: g.loop.State().String()},
				intParam("runs", "Workers started", g.loop.Runs()),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Value: strconv.Itoa(v)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Value: strconv.FormatFloat(v, 'f', 2, 64)}
}
