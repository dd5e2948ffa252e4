package check

import "fmt"

// SourceError is returned when the lines of a source could not be obtained.
type SourceError struct {
	Source string
	Op     string
	Err    error
}

// NewSourceError creates a new source error
func NewSourceError(source, op string, err error) error {
	return &SourceError{source, op, err}
}

func (err *SourceError) Error() string {
	return fmt.Sprintf("Could not %s %s: %v", err.Op, err.Source, err.Err)
}

func (err *SourceError) Unwrap() error {
	return err.Err
}
