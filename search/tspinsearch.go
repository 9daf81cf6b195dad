package search

import (
	"sort"

	"github.com/lixenwraith/tetris-engine/core"
	"github.com/lixenwraith/tetris-engine/gamestate"
	"github.com/lixenwraith/tetris-engine/piece"
)

// TSpinSearch is the BFS placement search tuned for T-spin-aware bots: on
// top of PathSearch's move alphabet it can restrict results to T-spins,
// fold Mini into None, and move T-spins to the front of the result list.
type TSpinSearch struct {
	config TSpinConfig
}

// NewTSpinSearch returns a TSpinSearch using DefaultTSpinConfig.
func NewTSpinSearch() *TSpinSearch {
	return &TSpinSearch{config: DefaultTSpinConfig()}
}

func (s *TSpinSearch) Name() string { return "TSpinSearch" }

// Config returns the active search configuration.
func (s *TSpinSearch) Config() TSpinConfig { return s.config }

// SetConfig replaces the active search configuration.
func (s *TSpinSearch) SetConfig(cfg TSpinConfig) { s.config = cfg }

func (s *TSpinSearch) FindLandingPositions(gs *gamestate.GameState, p *piece.Piece, maxDepth int) ([]LandingPosition, error) {
	landings, err := findLandingPositions(gs, p, maxDepth, s.config.Config)
	if err != nil {
		return nil, err
	}
	return applyTSpinPostProcessing(landings, s.config), nil
}

// applyTSpinPostProcessing folds Mini into None when minis are disabled,
// then (in order) filters down to T-spin-only landings and reorders
// T-spins to the front, per cfg. Pure function of its inputs so the three
// knobs can be exercised without re-running the BFS.
func applyTSpinPostProcessing(landings []LandingPosition, cfg TSpinConfig) []LandingPosition {
	if !cfg.AllowMiniTSpins {
		for i := range landings {
			if landings[i].TSpinClass == TSpinMini {
				landings[i].TSpinClass = TSpinNone
			}
		}
	}

	if cfg.RequireLastRotation {
		filtered := landings[:0]
		for _, l := range landings {
			if l.TSpinClass != TSpinNone {
				filtered = append(filtered, l)
			}
		}
		landings = filtered
	}

	if cfg.PrioritizeTSpins {
		sort.SliceStable(landings, func(i, j int) bool {
			return tSpinRank(landings[i].TSpinClass) < tSpinRank(landings[j].TSpinClass)
		})
	}

	return landings
}

// tSpinRank orders Regular before Mini before None, for PrioritizeTSpins.
func tSpinRank(class int) int {
	switch class {
	case TSpinRegular:
		return 0
	case TSpinMini:
		return 1
	default:
		return 2
	}
}

func (s *TSpinSearch) FindPath(gs *gamestate.GameState, start, target *piece.Piece) ([]core.Move, error) {
	return findPath(gs, start, target, s.config.Config)
}

func (s *TSpinSearch) CanPlacePiece(gs *gamestate.GameState, p *piece.Piece) bool {
	return gs.CanPlace(p)
}

// Clone returns an independent TSpinSearch with the same configuration.
func (s *TSpinSearch) Clone() Algorithm {
	return &TSpinSearch{config: s.config}
}
