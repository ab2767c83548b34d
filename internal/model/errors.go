package model

import "errors"

// Common errors used across the application.
// Rejected placements and slot selections are not errors: the engine
// reports those by returning the input state unchanged.
var (
	ErrGameNotFound = errors.New("game not found")
	ErrInvalidSlot  = errors.New("slot index out of range")
)
