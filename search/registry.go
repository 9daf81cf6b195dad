package search

import (
	"github.com/lixenwraith/tetris-engine/core"
	"github.com/lixenwraith/tetris-engine/gamestate"
	"github.com/lixenwraith/tetris-engine/piece"
	"github.com/lixenwraith/tetris-engine/registry"
)

// Algorithm is a configurable placement-search strategy, selected by name
// from Registry the way a rotation.System is selected from rotation.Registry.
type Algorithm interface {
	Name() string
	FindLandingPositions(gs *gamestate.GameState, p *piece.Piece, maxDepth int) ([]LandingPosition, error)
	FindPath(gs *gamestate.GameState, start, target *piece.Piece) ([]core.Move, error)
	CanPlacePiece(gs *gamestate.GameState, p *piece.Piece) bool
	Clone() Algorithm
}

// Registry is the process-wide name -> Algorithm factory table, written
// once at init and read thereafter.
var Registry = registry.New[Algorithm]()

func init() {
	Registry.Register("PathSearch", func() Algorithm { return NewPathSearch() })
	Registry.Register("TSpinSearch", func() Algorithm { return NewTSpinSearch() })
}

// Lookup fetches a fresh Algorithm instance by exact, case-sensitive name.
func Lookup(name string) (Algorithm, bool) {
	return Registry.Get(name)
}
