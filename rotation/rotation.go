// Package rotation defines the RotationSystem abstraction: shape tables,
// wall-kick tables, and spawn geometry, plus a concrete Super Rotation
// System (SRS) implementation and a name registry for looking systems up
// by name the way the teacher's registry package looks up systems,
// renderers, and services by name.
package rotation

import (
	"github.com/lixenwraith/tetris-engine/constant"
	"github.com/lixenwraith/tetris-engine/core"
)

// Shape is a constant.ShapeGridSize x constant.ShapeGridSize occupancy
// mask for one (type, rotation) pair. Bit (y*4+x) set means cell (x, y)
// is filled, with (0, 0) the bottom-left of the 4x4 grid.
type Shape uint16

// Filled reports whether local cell (x, y) is set in the shape.
func (s Shape) Filled(x, y int) bool {
	if x < 0 || x >= constant.ShapeGridSize || y < 0 || y >= constant.ShapeGridSize {
		return false
	}
	return s&(1<<uint(y*constant.ShapeGridSize+x)) != 0
}

// WallKickData is an ordered list of up to constant.MaxWallKickTests
// offsets, attempted in table order by the caller.
type WallKickData struct {
	offsets []core.Offset
}

// NewWallKickData builds a WallKickData from the given offsets in order.
func NewWallKickData(offsets ...core.Offset) WallKickData {
	return WallKickData{offsets: offsets}
}

// Len returns the number of offsets in the table.
func (w WallKickData) Len() int { return len(w.offsets) }

// At returns the offset at index i. Returns core.ErrWallKickIndexOutOfRange
// when i is outside [0, Len()).
func (w WallKickData) At(i int) (core.Offset, error) {
	if i < 0 || i >= len(w.offsets) {
		return core.Offset{}, core.ErrWallKickIndexOutOfRange
	}
	return w.offsets[i], nil
}

// System is the polymorphic capability set every rotation system must
// provide: shape lookup, wall-kick tables for each rotation direction,
// spawn geometry, and whether it supports a dedicated 180-degree kick
// table.
type System interface {
	Name() string
	Shape(t core.PieceType, r core.Rotation) (Shape, error)
	ClockwiseWallKicks(t core.PieceType, from core.Rotation) (WallKickData, error)
	CounterClockwiseWallKicks(t core.PieceType, from core.Rotation) (WallKickData, error)
	Rotate180WallKicks(t core.PieceType, from core.Rotation) (WallKickData, error)
	InitialState(t core.PieceType, boardWidth, boardHeight int) (core.PieceState, error)
	Supports180() bool
	Clone() System
}
