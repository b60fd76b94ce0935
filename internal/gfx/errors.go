package gfx

import "fmt"

// InitError reports a failure to bring up the subsystem or one of its
// resources (window, renderer, icon). Msg is the backend's diagnostic text.
type InitError struct {
	Op  string // "init", "window", "renderer" or "icon"
	Msg string
}

func (e *InitError) Error() string {
	return fmt.Sprintf("gfx: %s: %s", e.Op, e.Msg)
}

// initError wraps err as an InitError for op.
func initError(op string, err error) *InitError {
	return &InitError{Op: op, Msg: err.Error()}
}
