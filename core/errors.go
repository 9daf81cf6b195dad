package core

import "errors"

// Sentinel errors raised by the engine's programming-error surface.
// Recoverable outcomes (a move that doesn't fit, a spawn that collides)
// are signalled by boolean returns with the state left unchanged; these
// errors are reserved for misuse of the API itself.
var (
	// ErrInvalidDimensions is returned when a Board is constructed with a
	// width or height outside [constant.MinBoardDim, constant.MaxBoard*].
	ErrInvalidDimensions = errors.New("core: invalid board dimensions")

	// ErrMissingRotationSystem is returned when a Piece or GameState
	// operation requires a bound RotationSystem and none is set.
	ErrMissingRotationSystem = errors.New("core: missing rotation system")

	// ErrWallKickOnNonRotation is returned at Move construction when a
	// non-negative wall-kick index is attached to a translation or drop.
	ErrWallKickOnNonRotation = errors.New("core: wall-kick index on non-rotation move")

	// ErrWallKickIndexOutOfRange is returned when a wall-kick table is
	// indexed past its length.
	ErrWallKickIndexOutOfRange = errors.New("core: wall-kick index out of range")

	// ErrInvalidPieceType is returned when a PieceType outside the
	// seven-letter set is used as a lookup key.
	ErrInvalidPieceType = errors.New("core: invalid piece type")
)
