package search

import "github.com/lixenwraith/tetris-engine/core"

// node is one entry in the search tree's arena: a contiguous slice of
// nodes referenced by integer index rather than heap pointers, so the
// whole tree is freed in one step when the slice goes out of scope.
type node struct {
	state    core.PieceState
	parent   int // -1 for the root
	lastMove core.Move
	depth    int
}

// stateMove pairs a candidate successor state with the Move that
// produces it, including any wall-kick index the move carries.
type stateMove struct {
	move  core.Move
	state core.PieceState
}
