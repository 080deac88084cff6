package models

// ValidationError tags client input that failed required-field checks.
// Handlers map it to a 400 response carrying the detail message.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string { return e.Detail }
