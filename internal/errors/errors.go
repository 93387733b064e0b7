package appErrors

import "fmt"

// ErrMissingField is a sentinel error for a required request field that was
// absent or empty. Handlers map it to HTTP 400.
type ErrMissingField struct {
    Field string
}

func (e *ErrMissingField) Error() string {
    return fmt.Sprintf("%s is required", e.Field)
}

// Helper constructor
func NewMissingField(field string) error {
    return &ErrMissingField{Field: field}
}
