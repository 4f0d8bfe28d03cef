package display

import "fmt"

// ErrorKind classifies window setup failures.
type ErrorKind int

const (
	// ErrWindowCreation means the native windowing layer refused to
	// create the window.
	ErrWindowCreation ErrorKind = iota

	// ErrFont is a font-subsystem failure surfaced during window setup.
	ErrFont
)

// Error unifies window-creation and font failures so callers that
// create a window and initialize fonts in one step handle both with a
// single error path. Both kinds are fatal to the creation attempt.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrWindowCreation:
		return fmt.Sprintf("error creating window: %v", e.Err)
	case ErrFont:
		return e.Err.Error()
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewWindowCreationError wraps a native window construction failure.
func NewWindowCreationError(err error) *Error {
	return &Error{Kind: ErrWindowCreation, Err: err}
}

// NewFontError wraps a font-subsystem failure raised alongside window
// setup.
func NewFontError(err error) *Error {
	return &Error{Kind: ErrFont, Err: err}
}
