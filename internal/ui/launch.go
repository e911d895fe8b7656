package ui

import "portscribe/internal/pipeline"

// UI wraps the interactive review of a planned run
type UI struct {
	changes []*pipeline.Change
}

// New returns a new instance of UI
func New(changes []*pipeline.Change) *UI {
	return &UI{changes: changes}
}

// Launch displays the planned changes and blocks until the user
// approves or quits. It reports whether the changes were approved.
func (u *UI) Launch() (bool, error) {
	return newApp(u.changes).run()
}
