package triplog

import (
	"fmt"

	"github.com/lvillar/triplog/canvas"
)

// Sentinel errors re-exported from the canvas package for callers that only
// import the top-level API.
var (
	// ErrFontNotFound reports a fallback font path that does not exist.
	// Fatal: rendering never starts.
	ErrFontNotFound = canvas.ErrFontNotFound

	// ErrImageUnreadable reports an image that cannot be decoded during
	// placement. During pairing classification the same condition
	// degrades to sequential single placement instead.
	ErrImageUnreadable = canvas.ErrImageUnreadable
)

// RenderError wraps a failure in a specific rendering operation. It
// includes the operation name for context.
type RenderError struct {
	Op  string // operation name, e.g. "RenderStep", "Output"
	Err error  // underlying error
}

func (e *RenderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("triplog.%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("triplog.%s: unknown error", e.Op)
}

func (e *RenderError) Unwrap() error { return e.Err }
