package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized covers every authentication failure: missing header,
// malformed header, unknown token and expired token alike.
var ErrUnauthorized = errors.New("not authenticated")

// ErrConflict indicates that a uniqueness constraint rejected the write.
var ErrConflict = errors.New("resource already exists")

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrUpstream indicates that an external provider failed or returned a non-success status.
var ErrUpstream = errors.New("upstream provider error")

// UpstreamError tags a provider failure as ErrUpstream while keeping the
// provider's own message.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstream
}
