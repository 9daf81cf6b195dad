package search

import (
	"github.com/lixenwraith/tetris-engine/core"
	"github.com/lixenwraith/tetris-engine/piece"
)

// T-spin classification, per spec: 0 none, 1 regular, 2 mini.
const (
	TSpinNone = iota
	TSpinRegular
	TSpinMini
)

// LandingPosition is one result of the placement search: a resting piece,
// the move path that reaches it from the search root, its T-spin class,
// and the lines it would clear if locked.
type LandingPosition struct {
	Piece           *piece.Piece
	Path            []core.Move
	TSpinClass      int
	LinesCleared    int
	HasLinesCleared bool
	Valid           bool
}
