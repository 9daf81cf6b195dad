package search

import (
	"github.com/lixenwraith/tetris-engine/board"
	"github.com/lixenwraith/tetris-engine/core"
	"github.com/lixenwraith/tetris-engine/gamestate"
	"github.com/lixenwraith/tetris-engine/piece"
	"github.com/lixenwraith/tetris-engine/rotation"
)

// moveAlphabet builds the move set a BFS step expands, per cfg. Left,
// Right, and both rotation directions are always present.
func moveAlphabet(cfg Config) []core.MoveType {
	moves := []core.MoveType{core.Left, core.Right, core.RotateClockwise, core.RotateCounterClockwise}
	if cfg.AllowSoftDrop {
		moves = append(moves, core.Down)
	}
	if cfg.AllowHardDrop {
		moves = append(moves, core.HardDrop)
	}
	if cfg.AllowRotate180 {
		moves = append(moves, core.Rotate180)
	}
	return moves
}

// stepState applies a pure (kick-free) non-rotation move to state.
func stepState(state core.PieceState, m core.MoveType) (core.PieceState, bool) {
	switch m {
	case core.Left:
		state.Position = state.Position.Add(-1, 0)
	case core.Right:
		state.Position = state.Position.Add(1, 0)
	case core.Down:
		state.Position = state.Position.Add(0, -1)
	default:
		return state, false
	}
	return state, true
}

// dropDistance finds the largest d such that p translated by (0, -d)
// still fits, by linear descent. p is mutated as scratch space; discard
// it after the call. Mirrors gamestate's own hard-drop algorithm, which
// is unexported and so cannot be reused directly from this package.
func dropDistance(gs *gamestate.GameState, p *piece.Piece) int {
	state := p.State()
	d := 0
	for {
		next := state
		next.Position = next.Position.Add(0, -1)
		if err := p.SetState(next); err != nil {
			break
		}
		if !gs.CanPlace(p) {
			break
		}
		state = next
		d++
	}
	return d
}

// rotationTargetRotation returns the rotation m produces from from.
func rotationTargetRotation(from core.Rotation, m core.MoveType) core.Rotation {
	switch m {
	case core.RotateClockwise:
		return from.Clockwise()
	case core.RotateCounterClockwise:
		return from.CounterClockwise()
	default:
		return from.Opposite()
	}
}

// rotationWallKicks fetches the wall-kick table m would consult from
// fromType/fromRotation.
func rotationWallKicks(system rotation.System, fromType core.PieceType, fromRotation core.Rotation, m core.MoveType) (rotation.WallKickData, error) {
	switch m {
	case core.RotateClockwise:
		return system.ClockwiseWallKicks(fromType, fromRotation)
	case core.RotateCounterClockwise:
		return system.CounterClockwiseWallKicks(fromType, fromRotation)
	default:
		return system.Rotate180WallKicks(fromType, fromRotation)
	}
}

// rotationSuccessors expands one rotation move into its candidate next
// states. With kicks disallowed (the spec.md §4.6 default) this is the
// single pure rotation. With kicks allowed, it is one successor per
// wall-kick table entry, each annotated with the kick index tried.
func rotationSuccessors(system rotation.System, state core.PieceState, m core.MoveType, allowKicks bool) []stateMove {
	to := rotationTargetRotation(state.Rotation, m)

	if !allowKicks {
		next := state
		next.Rotation = to
		move, _ := core.NewMove(m)
		return []stateMove{{move: move, state: next}}
	}

	kicks, err := rotationWallKicks(system, state.Type, state.Rotation, m)
	if err != nil {
		return nil
	}
	out := make([]stateMove, 0, kicks.Len())
	for i := 0; i < kicks.Len(); i++ {
		offset, err := kicks.At(i)
		if err != nil {
			continue
		}
		next := state
		next.Rotation = to
		next.Position = next.Position.Offset(offset)
		move, err := core.NewRotationMove(m, i)
		if err != nil {
			continue
		}
		out = append(out, stateMove{move: move, state: next})
	}
	return out
}

// successors expands move type m from (p, state) into every candidate
// next state the search should consider enqueuing.
func successors(gs *gamestate.GameState, system rotation.System, p *piece.Piece, state core.PieceState, m core.MoveType, cfg Config) []stateMove {
	if m.IsRotation() {
		return rotationSuccessors(system, state, m, cfg.AllowKickedRotations)
	}
	if m == core.HardDrop {
		dropped := p.Clone()
		d := dropDistance(gs, dropped)
		next := state
		next.Position = next.Position.Add(0, -d)
		move, _ := core.NewMove(m)
		return []stateMove{{move: move, state: next}}
	}
	next, ok := stepState(state, m)
	if !ok {
		return nil
	}
	move, _ := core.NewMove(m)
	return []stateMove{{move: move, state: next}}
}

// isLanding reports whether p translated by (0, -1) fails to fit.
func isLanding(gs *gamestate.GameState, p *piece.Piece) bool {
	dropped := p.Clone()
	next := dropped.State()
	next.Position = next.Position.Add(0, -1)
	if err := dropped.SetState(next); err != nil {
		return true
	}
	return !gs.CanPlace(dropped)
}

// countClearableLines reports how many rows p would complete if locked,
// without mutating the live board.
func countClearableLines(b *board.Board, p *piece.Piece) int {
	clone := b.Clone()
	for _, c := range p.GetAbsoluteFilledCells() {
		clone.FillCell(c.X, c.Y)
	}
	return clone.ClearFilledRows()
}

// reconstructPath walks parent pointers from idx back to the root,
// collecting each link's move, then reverses to produce the forward
// path. The root itself contributes no move.
func reconstructPath(nodes []node, idx int) []core.Move {
	var reversed []core.Move
	for i := idx; nodes[i].parent != -1; i = nodes[i].parent {
		reversed = append(reversed, nodes[i].lastMove)
	}
	path := make([]core.Move, len(reversed))
	for i, m := range reversed {
		path[len(reversed)-1-i] = m
	}
	return path
}

// classifyTSpin applies the four-corner test. Only meaningful for T
// pieces reached by rotation; callers outside this package should not
// call it for other piece types.
func classifyTSpin(b *board.Board, p *piece.Piece, path []core.Move) int {
	if len(path) == 0 || !path[len(path)-1].Type.IsRotation() {
		return TSpinNone
	}

	occupied := func(x, y int) bool {
		if x < 0 || x >= b.Width() || y < 0 || y >= b.Height() {
			return true
		}
		return b.IsFilled(x, y)
	}

	px, py := p.Position().X, p.Position().Y
	a := occupied(px-1, py+1)
	bCorner := occupied(px+1, py+1)
	c := occupied(px-1, py-1)
	d := occupied(px+1, py-1)

	k := 0
	for _, occ := range [4]bool{a, bCorner, c, d} {
		if occ {
			k++
		}
	}
	if k >= 3 {
		return TSpinRegular
	}
	if k != 2 {
		return TSpinNone
	}

	var front1, front2 bool
	switch p.Rotation() {
	case core.R0:
		front1, front2 = a, bCorner
	case core.R90:
		front1, front2 = bCorner, d
	case core.R180:
		front1, front2 = c, d
	case core.R270:
		front1, front2 = a, c
	}
	if front1 && front2 {
		return TSpinMini
	}
	return TSpinNone
}

func buildLanding(gs *gamestate.GameState, p *piece.Piece, nodes []node, idx int) LandingPosition {
	path := reconstructPath(nodes, idx)
	lines := countClearableLines(gs.Board(), p)
	landing := LandingPosition{
		Piece:           p,
		Path:            path,
		TSpinClass:      TSpinNone,
		LinesCleared:    lines,
		HasLinesCleared: lines > 0,
		Valid:           true,
	}
	if p.Type() == core.T {
		landing.TSpinClass = classifyTSpin(gs.Board(), p, path)
	}
	return landing
}

// expand enqueues every unvisited, board-fitting successor of n.
func expand(gs *gamestate.GameState, system rotation.System, p *piece.Piece, n node, idx int, moves []core.MoveType, cfg Config, nodes []node, visited map[core.PieceState]int, queue []int) ([]node, []int) {
	for _, m := range moves {
		for _, sm := range successors(gs, system, p, n.state, m, cfg) {
			if _, seen := visited[sm.state]; seen {
				continue
			}
			candidate, err := piece.New(sm.state, system)
			if err != nil {
				continue
			}
			if !gs.CanPlace(candidate) {
				continue
			}
			childIdx := len(nodes)
			nodes = append(nodes, node{state: sm.state, parent: idx, lastMove: sm.move, depth: n.depth + 1})
			visited[sm.state] = childIdx
			queue = append(queue, childIdx)
		}
	}
	return nodes, queue
}

// findLandingPositions is the shared BFS driver: enumerate every
// reachable (type, position, rotation) state from start under cfg,
// recording a LandingPosition wherever the piece rests.
func findLandingPositions(gs *gamestate.GameState, start *piece.Piece, maxDepth int, cfg Config) ([]LandingPosition, error) {
	system := gs.RotationSystem()
	if system == nil {
		return nil, core.ErrMissingRotationSystem
	}
	if !gs.CanPlace(start) {
		return nil, nil
	}

	nodes := []node{{state: start.State(), parent: -1, depth: 0}}
	visited := map[core.PieceState]int{start.State(): 0}
	queue := []int{0}
	moves := moveAlphabet(cfg)

	var landings []LandingPosition

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		n := nodes[idx]

		p, err := piece.New(n.state, system)
		if err != nil {
			return nil, err
		}

		if isLanding(gs, p) {
			landings = append(landings, buildLanding(gs, p, nodes, idx))
		}

		if maxDepth > 0 && n.depth >= maxDepth {
			continue
		}

		nodes, queue = expand(gs, system, p, n, idx, moves, cfg, nodes, visited, queue)
	}

	if cfg.LastRotationOnly {
		filtered := landings[:0]
		for _, l := range landings {
			if len(l.Path) > 0 && l.Path[len(l.Path)-1].Type.IsRotation() {
				filtered = append(filtered, l)
			}
		}
		landings = filtered
	}

	return landings, nil
}

// findPath runs the same BFS but stops as soon as target's PieceState is
// reached, returning the move path. Returns a nil path, nil error when
// target is unreachable.
func findPath(gs *gamestate.GameState, start, target *piece.Piece, cfg Config) ([]core.Move, error) {
	system := gs.RotationSystem()
	if system == nil {
		return nil, core.ErrMissingRotationSystem
	}
	if !gs.CanPlace(start) {
		return nil, nil
	}
	targetState := target.State()
	if targetState.Equal(start.State()) {
		return []core.Move{}, nil
	}

	nodes := []node{{state: start.State(), parent: -1, depth: 0}}
	visited := map[core.PieceState]int{start.State(): 0}
	queue := []int{0}
	moves := moveAlphabet(cfg)

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		n := nodes[idx]

		p, err := piece.New(n.state, system)
		if err != nil {
			return nil, err
		}

		for _, m := range moves {
			for _, sm := range successors(gs, system, p, n.state, m, cfg) {
				if _, seen := visited[sm.state]; seen {
					continue
				}
				candidate, err := piece.New(sm.state, system)
				if err != nil {
					continue
				}
				if !gs.CanPlace(candidate) {
					continue
				}
				childIdx := len(nodes)
				nodes = append(nodes, node{state: sm.state, parent: idx, lastMove: sm.move, depth: n.depth + 1})
				visited[sm.state] = childIdx
				if sm.state.Equal(targetState) {
					return reconstructPath(nodes, childIdx), nil
				}
				queue = append(queue, childIdx)
			}
		}
	}

	return nil, nil
}
