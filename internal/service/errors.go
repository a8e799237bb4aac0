package service

import "errors"

// Error taxonomy surfaced to controllers. Wrong token and expired token are
// deliberately indistinguishable to callers.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrTokenInvalid   = errors.New("invalid or expired token")
	ErrWrongClassroom = errors.New("respondent does not belong to this survey's classroom")
)
