package game

import "sync"

// LoopState is the state of the game loop worker.
type LoopState int

const (
	Stopped LoopState = iota
	Running
)

func (s LoopState) String() string {
	switch s {
	case Running:
		return "running"
	default:
		return "stopped"
	}
}

// Loop runs a step function on a single background goroutine until asked to
// stop. Stopping is cooperative: the flag is checked before every step and
// Wait blocks until the goroutine has returned.
type Loop struct {
	mu       sync.Mutex
	cond     *sync.Cond
	state    LoopState
	stopping bool
	runs     int
}

// NewLoop returns a stopped loop.
func NewLoop() *Loop {
	l := &Loop{}
	l.cond = sync.NewCond(&l.mu)
	return l
}

// State returns the current state.
func (l *Loop) State() LoopState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Runs returns how many workers have been started.
func (l *Loop) Runs() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.runs
}

// Start launches a worker that calls step until a stop is requested or step
// returns false. If a previous worker has been asked to stop but has not
// exited yet, Start waits for it. Start reports false when a worker is
// already running.
//
// Start must not be called from inside step.
func (l *Loop) Start(step func() bool) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for l.state == Running && l.stopping {
		l.cond.Wait()
	}
	if l.state == Running {
		return false
	}
	l.state = Running
	l.stopping = false
	l.runs++
	go l.run(step)
	return true
}

func (l *Loop) run(step func() bool) {
	defer func() {
		l.mu.Lock()
		l.state = Stopped
		l.stopping = false
		l.cond.Broadcast()
		l.mu.Unlock()
	}()
	for l.active() {
		if !step() {
			return
		}
	}
}

func (l *Loop) active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return !l.stopping
}

// RequestStop asks the worker to exit before its next step. It does not
// wait.
func (l *Loop) RequestStop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == Running {
		l.stopping = true
	}
}

// Wait blocks until no worker is running.
func (l *Loop) Wait() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for l.state == Running {
		l.cond.Wait()
	}
}

// Stop requests a stop and waits for the worker to exit. It must not be
// called from inside step.
func (l *Loop) Stop() {
	l.RequestStop()
	l.Wait()
}
