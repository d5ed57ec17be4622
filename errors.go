package barasa

import (
	"errors"
	"fmt"
)

// ErrMalformedLine is wrapped by every LineError.
var ErrMalformedLine = errors.New("malformed line")

// FileError records a failure to open, create or write a resource file.
// errors.Is(err, fs.ErrNotExist) reports a missing input.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// LineError reports a line whose tab-separated field count is wrong.
type LineError struct {
	Path string
	Line int // 1-based
	Got  int
	Want int
}

func (e *LineError) Error() string {
	name := e.Path
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%d: %v: got %d fields, want %d", name, e.Line, ErrMalformedLine, e.Got, e.Want)
}

func (e *LineError) Unwrap() error { return ErrMalformedLine }
