package itemgen

import "fmt"

// Validator checks a generated item before it is persisted.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages, e.g. "structural".
	Name() string

	// Validate returns nil if the item passes the check.
	Validate(item *Item, input GenerateInput) *ValidationError
}

// ValidationError describes why a generated item was rejected.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool // whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
