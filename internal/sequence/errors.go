package sequence

import "fmt"

// SequenceError is implemented by every error this package returns.
type SequenceError interface {
	error
	IsSequenceError()
}

// InvalidWidthError is returned when a window width is not positive.
type InvalidWidthError struct {
	Width int
}

func (e *InvalidWidthError) Error() string {
	return fmt.Sprintf("window width must be positive, got %d", e.Width)
}

func (e *InvalidWidthError) IsSequenceError() {}

// NotFoundError is returned when no record carries the requested value.
type NotFoundError struct {
	Value string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no record with sequence %q", e.Value)
}

func (e *NotFoundError) IsSequenceError() {}
