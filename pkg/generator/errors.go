package generator

import "fmt"

// InputError reports a generation precondition violated before any records
// are produced. These are fatal: falling back would silently break
// referential integrity of the dataset.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid generation input: %s", e.Reason)
}

func inputErrorf(format string, args ...any) *InputError {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}
