//go:build !ebiten

package ui

import "cannon/internal/game"

// DialogHost is notified when the dialog appears and when it is acknowledged.
type DialogHost interface {
	DialogShown()
	DialogDismissed()
}

// Dialog accepts results but never presents them in headless builds.
type Dialog struct{}

// NewDialog constructs a stub dialog.
func NewDialog() *Dialog { return &Dialog{} }

// ShowGameOver is a no-op in headless builds.
func (d *Dialog) ShowGameOver(game.Result) {}

// Visible is always false in headless builds.
func (d *Dialog) Visible() bool { return false }

// Update is a no-op in headless builds.
func (d *Dialog) Update(DialogHost) {}

// Draw is a no-op placeholder.
func (d *Dialog) Draw(any) {}
