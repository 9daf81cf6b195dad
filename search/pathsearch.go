package search

import (
	"github.com/lixenwraith/tetris-engine/core"
	"github.com/lixenwraith/tetris-engine/gamestate"
	"github.com/lixenwraith/tetris-engine/piece"
)

// PathSearch is the plain BFS placement search: every reachable landing
// position, with its move path and (for T pieces) its T-spin class.
type PathSearch struct {
	config Config
}

// NewPathSearch returns a PathSearch using DefaultConfig.
func NewPathSearch() *PathSearch {
	return &PathSearch{config: DefaultConfig()}
}

func (s *PathSearch) Name() string { return "PathSearch" }

// Config returns the active search configuration.
func (s *PathSearch) Config() Config { return s.config }

// SetConfig replaces the active search configuration.
func (s *PathSearch) SetConfig(cfg Config) { s.config = cfg }

// FindLandingPositions enumerates every position p can reach and rest at
// from gs's current board, up to maxDepth moves (0 = unbounded).
func (s *PathSearch) FindLandingPositions(gs *gamestate.GameState, p *piece.Piece, maxDepth int) ([]LandingPosition, error) {
	return findLandingPositions(gs, p, maxDepth, s.config)
}

// FindPath returns the shortest move path from start to target's exact
// PieceState, or a nil path if target is unreachable under this
// algorithm's move alphabet.
func (s *PathSearch) FindPath(gs *gamestate.GameState, start, target *piece.Piece) ([]core.Move, error) {
	return findPath(gs, start, target, s.config)
}

// CanPlacePiece reports whether p fits on gs's board without collision.
func (s *PathSearch) CanPlacePiece(gs *gamestate.GameState, p *piece.Piece) bool {
	return gs.CanPlace(p)
}

// Clone returns an independent PathSearch with the same configuration.
func (s *PathSearch) Clone() Algorithm {
	return &PathSearch{config: s.config}
}
