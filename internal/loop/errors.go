package loop

import "fmt"

// TerminalError reports a failed terminal operation.
type TerminalError struct {
	Op  string
	Err error
}

func (e *TerminalError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("terminal %s: %v", e.Op, e.Err)
}

func (e *TerminalError) Unwrap() error { return e.Err }

func wrapTerminalErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &TerminalError{Op: op, Err: err}
}
