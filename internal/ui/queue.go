package ui

import (
	"fmt"

	"cannon/internal/core"
	"cannon/internal/game"
)

// resultQueue hands game-over results from the loop goroutine to the UI
// thread. Posting never blocks; if a result is already waiting, the new one
// is dropped.
type resultQueue struct {
	ch chan game.Result
}

func newResultQueue() resultQueue {
	return resultQueue{ch: make(chan game.Result, 1)}
}

func (q resultQueue) post(r game.Result) bool {
	select {
	case q.ch <- r:
		return true
	default:
		return false
	}
}

func (q resultQueue) take() (game.Result, bool) {
	select {
	case r := <-q.ch:
		return r, true
	default:
		return game.Result{}, false
	}
}

// hudLines flattens a snapshot into display rows.
func hudLines(s core.ParameterSnapshot) []string {
	var lines []string
	for i, group := range s.Groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, group.Name)
		for _, p := range group.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}
