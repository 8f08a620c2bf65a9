package statshub

import "errors"

var (
	ErrTargetNotFound  = errors.New("target not found")
	ErrTargetExists    = errors.New("target already exists")
	ErrHubClosed       = errors.New("hub is closed")
	ErrSessionClosed   = errors.New("session is closed")
	ErrSendQueueFull   = errors.New("session send queue is full")
	ErrTooManySessions = errors.New("too many sessions")
	ErrInvalidAction   = errors.New("invalid command action")
)
