package service

import "errors"

// Business-rule failures surfaced to the request boundary. Handlers
// translate these to HTTP statuses; nothing here is retried or fatal.
var (
	ErrNotFound           = errors.New("record not found")
	ErrForbidden          = errors.New("operation not permitted")
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateRequest   = errors.New("friend request already exists for the target user")
	ErrReciprocalPending  = errors.New("the user already sent a request to you")
	ErrNoDeviceToken      = errors.New("the target user has no device token")
	ErrNotFriends         = errors.New("the user is not your friend")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
