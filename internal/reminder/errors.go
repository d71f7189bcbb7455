package reminder

import (
	"errors"
	"fmt"
)

// Line-level failures. The texts match what the grammar has always reported:
// ErrKeyword covers every keyword, not only REM, and ErrMissingHour is also
// returned when the minute is absent.
var (
	ErrKeyword       = errors.New("expecting REM at beginning of line")
	ErrMissingDate   = errors.New("expecting date, found end of line")
	ErrInvalidMonth  = errors.New("invalid month")
	ErrMissingNumber = errors.New("expecting day of month, found end of line")
	ErrMissingTime   = errors.New("expecting time, found end of line")
	ErrMissingHour   = errors.New("expecting hour, found end of line")
)

// ErrInvalidUTF8 is the stream-level failure for lines that are not valid UTF-8.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// LineError describes why a single line produced no entry.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
