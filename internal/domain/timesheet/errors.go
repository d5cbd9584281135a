package timesheet

import "fmt"

// FieldErrors marks incomplete or invalid form fields per weekday, so the
// registration form can highlight exactly those inputs.
type FieldErrors map[string]map[string]bool

func (f FieldErrors) mark(day, field string) {
	if f[day] == nil {
		f[day] = map[string]bool{}
	}
	f[day][field] = true
}

// ValidationError reports a rejected submission. Fields is nil when the
// problem is not tied to a specific weekday input.
type ValidationError struct {
	Message string
	Fields  FieldErrors
}

func (e *ValidationError) Error() string {
	return e.Message
}

// PersistenceError reports that the durable medium could not be read or
// written. The cause stays server-side; clients only see an opaque failure.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("timesheet store %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
