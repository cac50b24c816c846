// Package surface provides the drawing surface the game loop renders into.
package surface

import (
	"errors"
	"fmt"
	"image"
	"io"
	"sync"

	"cannon/internal/core"
	"cannon/internal/render"
)

var (
	// ErrClosed is returned once the surface has been destroyed.
	ErrClosed = errors.New("surface: closed")
	// ErrNoSize is returned before the surface has been given a size.
	ErrNoSize = errors.New("surface: size not set")
	// ErrInterrupted is returned to callers woken by Interrupt.
	ErrInterrupted = errors.New("surface: lock interrupted")
)

// Buffer is a CPU framebuffer with lock/post semantics. One party at a time
// holds the canvas; posted frames are handed to the presenter through
// Present.
//
// In paced mode a new canvas is only handed out after the previously posted
// frame was presented, which ties the producer to the display refresh.
type Buffer struct {
	mu   sync.Mutex
	cond *sync.Cond

	paced       bool
	locked      bool
	pending     bool
	closed      bool
	interrupted bool

	canvas *render.RasterCanvas
	frame  *image.RGBA
	posted uint64
}

// NewBuffer returns an unsized surface.
func NewBuffer(paced bool) *Buffer {
	b := &Buffer{paced: paced}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Resize allocates or reallocates the canvas. It waits for any drawer to
// post first. The previously posted frame is dropped.
func (b *Buffer) Resize(w, h int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.locked && !b.closed {
		b.cond.Wait()
	}
	if b.closed {
		return ErrClosed
	}
	if b.canvas == nil {
		c, err := render.NewRasterCanvas(w, h)
		if err != nil {
			return err
		}
		b.canvas = c
	} else if err := b.canvas.Resize(w, h); err != nil {
		return fmt.Errorf("surface: resize: %w", err)
	}
	b.frame = nil
	b.pending = false
	b.cond.Broadcast()
	return nil
}

// Size returns the current canvas size, or the zero Size when unsized.
func (b *Buffer) Size() core.Size {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.canvas == nil {
		return core.Size{}
	}
	return b.canvas.Size()
}

// LockCanvas blocks until the canvas is free and hands it out. On error no
// access is held and UnlockCanvasAndPost must not be called.
func (b *Buffer) LockCanvas() (render.Canvas, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for !b.closed && !b.interrupted && (b.locked || (b.paced && b.pending)) {
		b.cond.Wait()
	}
	if b.closed {
		return nil, ErrClosed
	}
	if b.interrupted {
		b.interrupted = false
		return nil, ErrInterrupted
	}
	if b.canvas == nil {
		return nil, ErrNoSize
	}
	b.locked = true
	return b.canvas, nil
}

// Interrupt makes the next LockCanvas call, or the one currently blocked,
// return ErrInterrupted instead of waiting.
func (b *Buffer) Interrupt() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.interrupted = true
	b.cond.Broadcast()
}

// UnlockCanvasAndPost publishes what was drawn and releases the canvas.
func (b *Buffer) UnlockCanvasAndPost(c render.Canvas) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.locked {
		return
	}
	b.locked = false
	if rc, ok := c.(*render.RasterCanvas); ok && rc == b.canvas {
		b.frame = rc.Image()
		b.posted++
		b.pending = true
	}
	b.cond.Broadcast()
}

// Present passes the latest posted frame to fn and marks it consumed. fn is
// not called when nothing was posted since the last Present. It reports
// whether fn ran.
func (b *Buffer) Present(fn func(*image.RGBA)) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.pending || b.frame == nil {
		return false
	}
	fn(b.frame)
	b.pending = false
	b.cond.Broadcast()
	return true
}

// Frame returns the latest posted frame, or nil.
func (b *Buffer) Frame() *image.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frame
}

// Posted returns the number of frames posted so far.
func (b *Buffer) Posted() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.posted
}

// WritePNG encodes the canvas contents once no drawer holds it.
func (b *Buffer) WritePNG(w io.Writer) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.locked && !b.closed {
		b.cond.Wait()
	}
	if b.canvas == nil {
		return ErrNoSize
	}
	return b.canvas.EncodePNG(w)
}

// Close destroys the surface and wakes every blocked caller.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	b.cond.Broadcast()
	if b.canvas != nil && !b.locked {
		return b.canvas.Close()
	}
	return nil
}
