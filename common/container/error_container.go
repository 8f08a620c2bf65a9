package container

import "errors"

var (
	ErrContainerFull    = errors.New("container is full")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInsufficientData = errors.New("insufficient data")
	ErrEmptyContainer   = errors.New("container is empty")
)
