package rotation

import (
	"github.com/lixenwraith/tetris-engine/constant"
	"github.com/lixenwraith/tetris-engine/core"
)

// SRS is the Super Rotation System described at
// https://harddrop.com/wiki/SRS: seven shape tables, JLSTZ share one pair
// of kick tables, I has its own pair, O has a single identity kick, and
// 180-degree rotation has no standard kick table beyond identity.
type SRS struct{}

// NewSRS constructs an SRS rotation system. Its tables are immutable
// package-level data, so every SRS value behaves identically; NewSRS
// exists for symmetry with other RotationSystem constructors and so the
// registry has a Factory to call.
func NewSRS() *SRS { return &SRS{} }

func (s *SRS) Name() string { return "SRS" }

func (s *SRS) Supports180() bool { return false }

func (s *SRS) Clone() System { return &SRS{} }

func (s *SRS) Shape(t core.PieceType, r core.Rotation) (Shape, error) {
	if !t.Valid() {
		return 0, core.ErrInvalidPieceType
	}
	return srsShapes[t][r], nil
}

func (s *SRS) ClockwiseWallKicks(t core.PieceType, from core.Rotation) (WallKickData, error) {
	if !t.Valid() {
		return WallKickData{}, core.ErrInvalidPieceType
	}
	return kickTableFor(t, srsJLSTZClockwise, srsIClockwise, srsOKick)[from], nil
}

func (s *SRS) CounterClockwiseWallKicks(t core.PieceType, from core.Rotation) (WallKickData, error) {
	if !t.Valid() {
		return WallKickData{}, core.ErrInvalidPieceType
	}
	return kickTableFor(t, srsJLSTZCounterClockwise, srsICounterClockwise, srsOKick)[from], nil
}

// Rotate180WallKicks always returns the identity offset: SRS defines no
// standard 180-degree kick table.
func (s *SRS) Rotate180WallKicks(t core.PieceType, from core.Rotation) (WallKickData, error) {
	if !t.Valid() {
		return WallKickData{}, core.ErrInvalidPieceType
	}
	return srsIdentityKick, nil
}

// InitialState returns the spawn placement: x = (W-4)/2, y = min(21, H-1),
// rotation R0.
func (s *SRS) InitialState(t core.PieceType, boardWidth, boardHeight int) (core.PieceState, error) {
	if !t.Valid() {
		return core.PieceState{}, core.ErrInvalidPieceType
	}
	y := constant.SpawnRowCap
	if boardHeight-1 < y {
		y = boardHeight - 1
	}
	return core.PieceState{
		Type:     t,
		Position: core.Position{X: (boardWidth - 4) / 2, Y: y},
		Rotation: core.R0,
	}, nil
}

func kickTableFor(t core.PieceType, jlstz, i [4]WallKickData, o WallKickData) [4]WallKickData {
	switch t {
	case core.I:
		return i
	case core.O:
		return [4]WallKickData{o, o, o, o}
	default:
		return jlstz
	}
}

// --- Shape tables ---
//
// Each shape is built from four row strings, row index 0 first, each
// char-per-column left to right. Row 0 is the bottom of the 4x4 grid
// (y=0), matching the T-piece spawn geometry worked through in the spec:
// a single stem cell at the bottom row and the flat three-cell bar one
// row above it.

func shapeFromRows(rows [4]string) Shape {
	var s Shape
	for y, row := range rows {
		for x := 0; x < constant.ShapeGridSize && x < len(row); x++ {
			if row[x] == '#' {
				s |= 1 << uint(y*constant.ShapeGridSize+x)
			}
		}
	}
	return s
}

var srsShapes = map[core.PieceType][4]Shape{
	core.I: {
		core.R0:   shapeFromRows([4]string{"....", "####", "....", "...."}),
		core.R90:  shapeFromRows([4]string{"..#.", "..#.", "..#.", "..#."}),
		core.R180: shapeFromRows([4]string{"....", "....", "####", "...."}),
		core.R270: shapeFromRows([4]string{".#..", ".#..", ".#..", ".#.."}),
	},
	core.J: {
		core.R0:   shapeFromRows([4]string{"#...", "###.", "....", "...."}),
		core.R90:  shapeFromRows([4]string{".##.", ".#..", ".#..", "...."}),
		core.R180: shapeFromRows([4]string{"....", "###.", "..#.", "...."}),
		core.R270: shapeFromRows([4]string{".#..", ".#..", "##..", "...."}),
	},
	core.L: {
		core.R0:   shapeFromRows([4]string{"..#.", "###.", "....", "...."}),
		core.R90:  shapeFromRows([4]string{".#..", ".#..", ".##.", "...."}),
		core.R180: shapeFromRows([4]string{"....", "###.", "#...", "...."}),
		core.R270: shapeFromRows([4]string{"##..", ".#..", ".#..", "...."}),
	},
	core.O: {
		core.R0:   shapeFromRows([4]string{".##.", ".##.", "....", "...."}),
		core.R90:  shapeFromRows([4]string{".##.", ".##.", "....", "...."}),
		core.R180: shapeFromRows([4]string{".##.", ".##.", "....", "...."}),
		core.R270: shapeFromRows([4]string{".##.", ".##.", "....", "...."}),
	},
	core.S: {
		core.R0:   shapeFromRows([4]string{".##.", "##..", "....", "...."}),
		core.R90:  shapeFromRows([4]string{".#..", ".##.", "..#.", "...."}),
		core.R180: shapeFromRows([4]string{"....", ".##.", "##..", "...."}),
		core.R270: shapeFromRows([4]string{"#...", "##..", ".#..", "...."}),
	},
	core.T: {
		core.R0:   shapeFromRows([4]string{".#..", "###.", "....", "...."}),
		core.R90:  shapeFromRows([4]string{".#..", ".##.", ".#..", "...."}),
		core.R180: shapeFromRows([4]string{"....", "###.", ".#..", "...."}),
		core.R270: shapeFromRows([4]string{".#..", "##..", ".#..", "...."}),
	},
	core.Z: {
		core.R0:   shapeFromRows([4]string{"##..", ".##.", "....", "...."}),
		core.R90:  shapeFromRows([4]string{"..#.", ".##.", ".#..", "...."}),
		core.R180: shapeFromRows([4]string{"....", "##..", ".##.", "...."}),
		core.R270: shapeFromRows([4]string{".#..", "##..", "#...", "...."}),
	},
}

// --- Wall-kick tables ---
//
// Indexed by fromRotation (R0..R270). The conventional SRS values, per
// https://harddrop.com/wiki/SRS.

func off(dx, dy int) core.Offset { return core.Offset{DX: dx, DY: dy} }

var srsIdentityKick = NewWallKickData(off(0, 0))

var srsOKick = NewWallKickData(off(0, 0))

var srsJLSTZClockwise = [4]WallKickData{
	core.R0:   NewWallKickData(off(0, 0), off(-1, 0), off(-1, 1), off(0, -2), off(-1, -2)),
	core.R90:  NewWallKickData(off(0, 0), off(1, 0), off(1, -1), off(0, 2), off(1, 2)),
	core.R180: NewWallKickData(off(0, 0), off(1, 0), off(1, 1), off(0, -2), off(1, -2)),
	core.R270: NewWallKickData(off(0, 0), off(-1, 0), off(-1, -1), off(0, 2), off(-1, 2)),
}

var srsJLSTZCounterClockwise = [4]WallKickData{
	core.R0:   NewWallKickData(off(0, 0), off(1, 0), off(1, 1), off(0, -2), off(1, -2)),
	core.R90:  NewWallKickData(off(0, 0), off(1, 0), off(1, -1), off(0, 2), off(1, 2)),
	core.R180: NewWallKickData(off(0, 0), off(-1, 0), off(-1, 1), off(0, -2), off(-1, -2)),
	core.R270: NewWallKickData(off(0, 0), off(-1, 0), off(-1, -1), off(0, 2), off(-1, 2)),
}

var srsIClockwise = [4]WallKickData{
	core.R0:   NewWallKickData(off(0, 0), off(-2, 0), off(1, 0), off(-2, -1), off(1, 2)),
	core.R90:  NewWallKickData(off(0, 0), off(-1, 0), off(2, 0), off(-1, 2), off(2, -1)),
	core.R180: NewWallKickData(off(0, 0), off(2, 0), off(-1, 0), off(2, 1), off(-1, -2)),
	core.R270: NewWallKickData(off(0, 0), off(1, 0), off(-2, 0), off(1, -2), off(-2, 1)),
}

var srsICounterClockwise = [4]WallKickData{
	core.R0:   NewWallKickData(off(0, 0), off(-1, 0), off(2, 0), off(-1, 2), off(2, -1)),
	core.R90:  NewWallKickData(off(0, 0), off(2, 0), off(-1, 0), off(2, 1), off(-1, -2)),
	core.R180: NewWallKickData(off(0, 0), off(1, 0), off(-2, 0), off(1, -2), off(-2, 1)),
	core.R270: NewWallKickData(off(0, 0), off(-2, 0), off(1, 0), off(-2, -1), off(1, 2)),
}
