package domain

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidTask        = errors.New("invalid task")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidColumn      = errors.New("invalid column")
	ErrInvalidObservation = errors.New("invalid observed order")
	ErrDuplicateTask      = errors.New("duplicate task id")
	ErrBrokenInvariant    = errors.New("board invariant violated")
	ErrCorruptBoard       = errors.New("corrupt board state")
	ErrStateNotFound      = errors.New("board state not found")
)
