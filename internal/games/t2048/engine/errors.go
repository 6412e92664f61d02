package engine

import "errors"

// Contract violations. These indicate a caller bug, never a legal game action.
var (
	ErrInvalidSize  = errors.New("engine: grid size must be positive")
	ErrOutOfBounds  = errors.New("engine: cell out of bounds")
	ErrCellOccupied = errors.New("engine: cell occupied")
)
