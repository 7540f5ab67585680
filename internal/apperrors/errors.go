package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrBusy indicates that a single-flight operation already has a request outstanding.
var ErrBusy = errors.New("operation already in progress")

// ErrCorruptState indicates that a persisted blob could not be deserialized.
// Callers fall back to default data rather than failing startup.
var ErrCorruptState = errors.New("persisted state is corrupt")
