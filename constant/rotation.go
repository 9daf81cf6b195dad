package constant

// Rotation System Table Shapes
const (
	// MaxWallKickTests bounds the number of offsets a WallKickData table
	// may hold. SRS needs 5; the cap leaves room for other rotation
	// systems without changing the lookup API.
	MaxWallKickTests = 16

	// ShapeGridSize is the side length of the square occupancy mask every
	// piece shape is expressed in, regardless of the piece's own bounding
	// box.
	ShapeGridSize = 4
)
