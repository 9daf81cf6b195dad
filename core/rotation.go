package core

// Rotation is one of the four quarter-turn orientations a piece may hold.
// Arithmetic is modulo 4: clockwise adds 1, counter-clockwise adds 3,
// 180 degrees adds 2.
type Rotation uint8

const (
	R0 Rotation = iota
	R90
	R180
	R270

	rotationCount = 4
)

// Clockwise returns the rotation one quarter-turn clockwise from r.
func (r Rotation) Clockwise() Rotation {
	return Rotation((uint8(r) + 1) % rotationCount)
}

// CounterClockwise returns the rotation one quarter-turn counter-clockwise from r.
func (r Rotation) CounterClockwise() Rotation {
	return Rotation((uint8(r) + 3) % rotationCount)
}

// Opposite returns the rotation 180 degrees from r.
func (r Rotation) Opposite() Rotation {
	return Rotation((uint8(r) + 2) % rotationCount)
}

func (r Rotation) String() string {
	switch r {
	case R0:
		return "R0"
	case R90:
		return "R90"
	case R180:
		return "R180"
	case R270:
		return "R270"
	default:
		return "Rinvalid"
	}
}
