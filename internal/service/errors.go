package service

import (
	"errors"
	"fmt"

	"github.com/abcall/user-management-gateway/internal/validators"
)

var (
	// ErrNoIdentity is returned by IdentityService.Extract for every
	// decode failure. The gateway does not distinguish between missing,
	// malformed, and expired credentials.
	ErrNoIdentity = errors.New("no identity")

	// ErrDecodeDownstreamResponse indicates a successful downstream status
	// whose body could not be decoded into the expected shape.
	ErrDecodeDownstreamResponse = errors.New("error decoding downstream response")
)

// ValidationError carries the full list of violated field rules for one
// request. It always resolves locally: no downstream call is made.
type ValidationError struct {
	Fields []validators.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// NewValidationError wraps a non-empty field error list.
func NewValidationError(fields []validators.FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}
