// Package constant holds compile-time tunables for the engine: board size
// limits, rotation-system table shapes, and search defaults. Nothing here
// is loaded at runtime; it exists so the limits are named once instead of
// scattered as magic numbers.
package constant

// Board Dimension Limits
const (
	// MinBoardDim is the smallest width or height a Board will accept.
	MinBoardDim = 4

	// MaxBoardWidth is the largest width a Board will accept. Chosen so a
	// single row fits in one machine word on 32-bit and 64-bit platforms.
	MaxBoardWidth = 32

	// MaxBoardHeight is the largest height a Board will accept.
	MaxBoardHeight = 40
)

// Spawn Geometry
const (
	// SpawnRowCap bounds the spawn y-coordinate: spawn y = min(SpawnRowCap, H-1).
	SpawnRowCap = 21
)
