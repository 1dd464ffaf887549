package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidRange indicates a date range whose start falls after its end.
var ErrInvalidRange = errors.New("invalid date range")

// ErrNoActiveMembers indicates that bulk fee generation found no active members.
var ErrNoActiveMembers = errors.New("no active members found")

// ErrForbidden indicates that the caller lacks the role required for an action.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")
