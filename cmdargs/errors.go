package cmdargs

import (
	"errors"
	"fmt"
)

var ErrMissingValue = errors.New("missing required value")

// MissingValueError is returned by Cursor.EnforceNextValue if the flag isn't followed by a value
type MissingValueError struct {
	Flag Token
	// Found is the flag token that was met instead of the value. Valid if HasFound is true
	Found    Token
	HasFound bool
}

func (e *MissingValueError) Error() string {
	if e.HasFound {
		return fmt.Sprintf("argument %s requires a value, got %s", e.Flag, e.Found)
	}
	return fmt.Sprintf("argument %s requires a value", e.Flag)
}

func (e *MissingValueError) Is(target error) bool {
	return target == ErrMissingValue
}
