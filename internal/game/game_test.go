package game

import (
	"errors"
	"image/color"
	"sync"
	"testing"
	"time"

	"cannon/internal/audio"
	"cannon/internal/core"
	"cannon/internal/render"
)

type fakeCanvas struct {
	mu    sync.Mutex
	draws int
}

func (c *fakeCanvas) Size() core.Size { return core.Size{W: 320, H: 480} }

func (c *fakeCanvas) Clear(color.Color) {
	c.mu.Lock()
	c.draws++
	c.mu.Unlock()
}

func (c *fakeCanvas) DrawText(string, float64, float64, float64, color.Color) {}

func (c *fakeCanvas) DrawLine(float64, float64, float64, float64, float64, color.Color) error {
	return nil
}

func (c *fakeCanvas) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draws
}

type fakeSurface struct {
	mu     sync.Mutex
	canvas *fakeCanvas
	fail   bool
	locks  int
	posts  int
}

func newFakeSurface() *fakeSurface { return &fakeSurface{canvas: &fakeCanvas{}} }

func (s *fakeSurface) LockCanvas() (render.Canvas, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locks++
	if s.fail {
		return nil, errors.New("surface unavailable")
	}
	return s.canvas, nil
}

func (s *fakeSurface) UnlockCanvasAndPost(render.Canvas) {
	s.mu.Lock()
	s.posts++
	s.mu.Unlock()
}

func (s *fakeSurface) stats() (locks, posts int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locks, s.posts
}

type dialogRecorder struct {
	results chan Result
}

func newDialogRecorder() *dialogRecorder {
	return &dialogRecorder{results: make(chan Result, 8)}
}

func (d *dialogRecorder) ShowGameOver(r Result) { d.results <- r }

func (d *dialogRecorder) wait(t *testing.T) Result {
	t.Helper()
	select {
	case r := <-d.results:
		return r
	case <-time.After(10 * time.Second):
		t.Fatal("game over dialog never requested")
		return Result{}
	}
}

func newTestGame(t *testing.T, cfg Config, dialog Dialog) *Game {
	t.Helper()
	g := New(cfg, WithClock(core.NewStepClock(16*time.Millisecond)), WithDialog(dialog))
	if err := g.SurfaceChanged(320, 480); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSessionEndsWithSingleLossDialog(t *testing.T) {
	dialog := newDialogRecorder()
	g := newTestGame(t, DefaultConfig(), dialog)
	s := newFakeSurface()
	g.SurfaceCreated(s)

	r := dialog.wait(t)
	g.Loop().Wait()

	if r.Title != LoseTitle {
		t.Fatalf("title = %q", r.Title)
	}
	state := g.State()
	if !state.GameOver || state.TimeLeft != 0 {
		t.Fatalf("unexpected final state %+v", state)
	}
	if state.Reflections < g.Config().ReflectionCap && r.TotalElapsed < g.Config().StartingTime-0.02 {
		t.Fatalf("session ended early: %+v after %.2fs", state, r.TotalElapsed)
	}
	if r.TotalElapsed != state.TotalElapsed || r.ShotsFired != 0 {
		t.Fatalf("result %+v does not match state %+v", r, state)
	}
	if g.Loop().State() != Stopped {
		t.Fatalf("loop state = %s", g.Loop().State())
	}
	select {
	case extra := <-dialog.results:
		t.Fatalf("second dialog requested: %+v", extra)
	case <-time.After(20 * time.Millisecond):
	}
	if s.canvas.count() == 0 {
		t.Fatal("no frames were rendered")
	}
	locks, posts := s.stats()
	if locks != posts {
		t.Fatalf("locks=%d posts=%d, every acquired canvas must be posted", locks, posts)
	}
}

func TestDialogDismissRestartsLoop(t *testing.T) {
	dialog := newDialogRecorder()
	cfg := DefaultConfig()
	cfg.StartingTime = 0.1
	g := newTestGame(t, cfg, dialog)
	g.SurfaceCreated(newFakeSurface())

	dialog.wait(t)
	g.DialogShown()
	g.DialogDismissed()

	dialog.wait(t)
	g.Loop().Wait()
	if g.Loop().Runs() != 2 {
		t.Fatalf("runs = %d, want 2", g.Loop().Runs())
	}
}

func TestSurfaceCreatedWhileDialogShownDoesNotStart(t *testing.T) {
	g := newTestGame(t, DefaultConfig(), newDialogRecorder())
	g.DialogShown()
	g.SurfaceCreated(newFakeSurface())
	if g.Loop().State() != Stopped || g.Loop().Runs() != 0 {
		t.Fatal("loop must not start while the dialog is displayed")
	}
}

func TestSurfaceDestroyedJoinsWorker(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingTime = 1e9
	cfg.ReflectionCap = 1 << 30
	g := newTestGame(t, cfg, newDialogRecorder())
	s := newFakeSurface()
	g.SurfaceCreated(s)
	for s.canvas.count() < 5 {
		time.Sleep(time.Millisecond)
	}
	g.SurfaceDestroyed()
	if g.Loop().State() != Stopped {
		t.Fatal("SurfaceDestroyed returned before the worker exited")
	}
	locks, _ := s.stats()
	time.Sleep(5 * time.Millisecond)
	if after, _ := s.stats(); after != locks {
		t.Fatal("worker touched the surface after SurfaceDestroyed")
	}
}

func TestUnavailableSurfaceSkipsRenderingOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingTime = 1e9
	cfg.ReflectionCap = 1 << 30
	g := newTestGame(t, cfg, newDialogRecorder())
	s := newFakeSurface()
	s.fail = true
	g.SurfaceCreated(s)
	for {
		if locks, _ := s.stats(); locks >= 20 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	g.StopGame()

	if s.canvas.count() != 0 {
		t.Fatal("rendered without a canvas")
	}
	if _, posts := s.stats(); posts != 0 {
		t.Fatalf("posted %d frames without a canvas", posts)
	}
	if g.State().TotalElapsed <= 0 {
		t.Fatal("session must keep advancing while the surface is unavailable")
	}
}

func TestPauseAndResume(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StartingTime = 1e9
	cfg.ReflectionCap = 1 << 30
	g := newTestGame(t, cfg, newDialogRecorder())
	g.SurfaceCreated(newFakeSurface())
	g.StopGame()
	elapsed := g.State().TotalElapsed
	time.Sleep(5 * time.Millisecond)
	if g.State().TotalElapsed != elapsed {
		t.Fatal("session advanced while paused")
	}
	g.Resume()
	if g.Loop().State() != Running {
		t.Fatal("Resume should restart the worker")
	}
	g.StopGame()
}

func TestSameSizeDoesNotReset(t *testing.T) {
	g := New(DefaultConfig())
	if err := g.SurfaceChanged(320, 480); err != nil {
		t.Fatal(err)
	}
	before := g.State()
	if err := g.SurfaceChanged(320, 480); err != nil {
		t.Fatal(err)
	}
	if g.State() != before {
		t.Fatal("an unchanged size must not start a new session")
	}
	if err := g.SurfaceChanged(0, 480); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
}

type recordingPlayer struct {
	played []audio.SoundID
	closed bool
}

func (p *recordingPlayer) Play(id audio.SoundID) { p.played = append(p.played, id) }
func (p *recordingPlayer) Close() error {
	p.closed = true
	return nil
}

func TestSoundsAndParameters(t *testing.T) {
	p := &recordingPlayer{}
	g := New(DefaultConfig(), WithSounds(p))
	if err := g.SurfaceChanged(320, 480); err != nil {
		t.Fatal(err)
	}
	g.PlaySound(audio.CannonFire)
	if len(p.played) != 1 || p.played[0] != audio.CannonFire {
		t.Fatalf("played = %v", p.played)
	}
	if err := g.ReleaseResources(); err != nil || !p.closed {
		t.Fatalf("ReleaseResources: err=%v closed=%v", err, p.closed)
	}

	params := g.Parameters()
	if v, ok := params.Lookup("initial_speed"); !ok || v.Value != "240" {
		t.Fatalf("initial_speed = %+v, %v", v, ok)
	}
	if v, ok := params.Lookup("time_left"); !ok || v.Value != "10.00" {
		t.Fatalf("time_left = %+v, %v", v, ok)
	}
	if v, ok := params.Lookup("state"); !ok || v.Value != "stopped" {
		t.Fatalf("state = %+v, %v", v, ok)
	}
}

func TestResultMessage(t *testing.T) {
	r := Result{Title: LoseTitle, ShotsFired: 3, TotalElapsed: 9.96}
	if got, want := r.Message(), "Shots fired: 3, Total time: 10.0"; got != want {
		t.Fatalf("Message() = %q, want %q", got, want)
	}
}
