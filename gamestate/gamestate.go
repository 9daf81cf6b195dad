// Package gamestate implements GameState: the board, the falling piece,
// the hold slot, and the next-piece queue, plus move application with
// wall-kick arbitration, spawning, locking, and hold. This is the
// synchronous state machine spec.md §4.5 describes:
//
//	(empty) --spawn--> Active --move/rotate--> Active
//	                      |
//	                      +-- lock --> (empty)   [lines cleared counted]
//	                      +-- hold --> Active (new piece)
//	                      +-- blocked spawn --> GameOver (terminal)
package gamestate

import (
	"fmt"

	"github.com/lixenwraith/tetris-engine/board"
	"github.com/lixenwraith/tetris-engine/core"
	"github.com/lixenwraith/tetris-engine/piece"
	"github.com/lixenwraith/tetris-engine/rotation"
)

// GameState owns a Board and the current Piece, plus the hold slot and
// upcoming-piece queue. It is not safe for concurrent mutation; callers
// must serialise access.
type GameState struct {
	board  *board.Board
	system rotation.System

	current  *piece.Piece
	held     *core.PieceType
	holdUsed bool

	nextQueue []core.PieceType

	linesCleared int
	gameOver     bool
}

// New constructs a GameState over a fresh W x H board bound to system.
// Returns core.ErrInvalidDimensions if the board dimensions are rejected.
func New(width, height int, system rotation.System) (*GameState, error) {
	b, err := board.New(width, height)
	if err != nil {
		return nil, err
	}
	return &GameState{board: b, system: system}, nil
}

// Board returns the owned board.
func (g *GameState) Board() *board.Board { return g.board }

// CurrentPiece returns the active piece, or nil if none is active (empty
// or game-over state).
func (g *GameState) CurrentPiece() *piece.Piece { return g.current }

// HeldType returns the stashed piece type and whether one is held.
func (g *GameState) HeldType() (core.PieceType, bool) {
	if g.held == nil {
		return 0, false
	}
	return *g.held, true
}

// SetHeldType overwrites the hold slot directly. Exposed for setup in
// tests and replay tools; normal play should go through HoldCurrentPiece.
func (g *GameState) SetHeldType(t core.PieceType, held bool) {
	if !held {
		g.held = nil
		return
	}
	v := t
	g.held = &v
}

func (g *GameState) HoldUsed() bool                  { return g.holdUsed }
func (g *GameState) SetHoldUsed(used bool)           { g.holdUsed = used }
func (g *GameState) LinesCleared() int               { return g.linesCleared }
func (g *GameState) SetLinesCleared(n int)           { g.linesCleared = n }
func (g *GameState) GameOver() bool                  { return g.gameOver }
func (g *GameState) SetGameOver(over bool)           { g.gameOver = over }
func (g *GameState) RotationSystem() rotation.System { return g.system }

func (g *GameState) SetRotationSystem(system rotation.System) {
	g.system = system
}

// NextQueue returns a read-only snapshot of the upcoming piece types.
func (g *GameState) NextQueue() []core.PieceType {
	out := make([]core.PieceType, len(g.nextQueue))
	copy(out, g.nextQueue)
	return out
}

// PushNext appends a piece type to the tail of the next-queue.
func (g *GameState) PushNext(t core.PieceType) {
	g.nextQueue = append(g.nextQueue, t)
}

// canPlace reports whether every absolute cell of p lies within the board
// and over an empty cell.
func (g *GameState) canPlace(p *piece.Piece) bool {
	for _, c := range p.GetAbsoluteFilledCells() {
		if c.X < 0 || c.X >= g.board.Width() || c.Y < 0 || c.Y >= g.board.Height() {
			return false
		}
		if g.board.IsFilled(c.X, c.Y) {
			return false
		}
	}
	return true
}

// CanPlace exposes canPlace for search and other external collision
// checks that already hold a Piece snapshot.
func (g *GameState) CanPlace(p *piece.Piece) bool { return g.canPlace(p) }

// SpawnPiece installs a new piece of type t at the rotation system's
// initial state, shifted down just far enough that its topmost cell lies
// on the board's top row when the initial state would leave part of the
// shape above the board. If that placement collides, sets GameOver and
// returns false; the game-over state is terminal. Returns
// core.ErrMissingRotationSystem if no rotation system is bound.
func (g *GameState) SpawnPiece(t core.PieceType) (bool, error) {
	if g.system == nil {
		return false, core.ErrMissingRotationSystem
	}
	state, err := g.system.InitialState(t, g.board.Width(), g.board.Height())
	if err != nil {
		return false, err
	}
	candidate, err := piece.New(state, g.system)
	if err != nil {
		return false, err
	}
	if top := state.Position.Y + candidate.Height() - 1; top >= g.board.Height() {
		state.Position = state.Position.Add(0, g.board.Height()-1-top)
		if err := candidate.SetState(state); err != nil {
			return false, err
		}
	}
	if !g.canPlace(candidate) {
		g.gameOver = true
		return false, nil
	}
	g.current = candidate
	return true, nil
}

// SpawnNextPiece pops the head of the next-queue and spawns it. Returns
// false if the queue is empty.
func (g *GameState) SpawnNextPiece() (bool, error) {
	if len(g.nextQueue) == 0 {
		return false, nil
	}
	t := g.nextQueue[0]
	g.nextQueue = g.nextQueue[1:]
	return g.SpawnPiece(t)
}

// LockCurrentPiece stamps the current piece into the board, clears full
// rows, and returns the number of lines cleared. Clears the hold-used
// flag and leaves the current-piece slot empty.
func (g *GameState) LockCurrentPiece() int {
	if g.current == nil {
		return 0
	}
	for _, c := range g.current.GetAbsoluteFilledCells() {
		g.board.FillCell(c.X, c.Y)
	}
	cleared := g.board.ClearFilledRows()
	g.linesCleared += cleared
	g.holdUsed = false
	g.current = nil
	return cleared
}

// HoldCurrentPiece swaps the current piece with the held one, or stashes
// the current piece and spawns the next queued piece if nothing is held
// yet. Fails (returns false, state unchanged) if hold was already used
// this turn or there is no current piece. If the resulting spawn cannot be
// completed it also returns false with the hold slot restored; a spawn
// blocked by the board still sets GameOver as SpawnPiece does, and when
// nothing was held the next-queue head it popped stays consumed.
func (g *GameState) HoldCurrentPiece() (bool, error) {
	if g.holdUsed {
		return false, nil
	}
	if g.current == nil {
		return false, nil
	}
	currentType := g.current.Type()

	if g.held == nil {
		g.held = &currentType
		ok, err := g.SpawnNextPiece()
		if err != nil {
			g.held = nil
			return false, err
		}
		if !ok {
			g.held = nil
			return false, nil
		}
		g.holdUsed = true
		return true, nil
	}

	prevHeld := *g.held
	*g.held = currentType
	ok, err := g.SpawnPiece(prevHeld)
	if err != nil {
		*g.held = prevHeld
		return false, err
	}
	if !ok {
		*g.held = prevHeld
		return false, nil
	}
	g.holdUsed = true
	return true, nil
}

// ApplyMove attempts to transition the current piece according to move.
// Returns false and leaves the current piece untouched if move does not
// produce a valid placement, or if the game is over. Hold moves delegate
// to HoldCurrentPiece and report its outcome.
func (g *GameState) ApplyMove(move core.Move) bool {
	if g.gameOver {
		return false
	}
	if move.Type == core.Hold {
		ok, _ := g.HoldCurrentPiece()
		return ok
	}
	if g.current == nil {
		return false
	}

	candidate := g.current.Clone()
	state := candidate.State()

	switch move.Type {
	case core.Left:
		state.Position = state.Position.Add(-1, 0)
	case core.Right:
		state.Position = state.Position.Add(1, 0)
	case core.Down, core.SoftDrop:
		state.Position = state.Position.Add(0, -1)
	case core.Up:
		state.Position = state.Position.Add(0, 1)
	case core.HardDrop:
		if err := candidate.SetState(state); err != nil {
			return false
		}
		d := g.dropDistance(candidate)
		state.Position = state.Position.Add(0, -d)
	case core.RotateClockwise:
		from := state.Rotation
		state.Rotation = from.Clockwise()
		if !g.applyKick(&state, move.WallKickIndex, func() (rotation.WallKickData, error) {
			return g.system.ClockwiseWallKicks(state.Type, from)
		}) {
			return false
		}
	case core.RotateCounterClockwise:
		from := state.Rotation
		state.Rotation = from.CounterClockwise()
		if !g.applyKick(&state, move.WallKickIndex, func() (rotation.WallKickData, error) {
			return g.system.CounterClockwiseWallKicks(state.Type, from)
		}) {
			return false
		}
	case core.Rotate180:
		from := state.Rotation
		state.Rotation = from.Opposite()
		if !g.applyKick(&state, move.WallKickIndex, func() (rotation.WallKickData, error) {
			return g.system.Rotate180WallKicks(state.Type, from)
		}) {
			return false
		}
	default:
		return false
	}

	if err := candidate.SetState(state); err != nil {
		return false
	}
	if !g.canPlace(candidate) {
		return false
	}
	g.current = candidate
	return true
}

// applyKick resolves a wall-kick offset and folds it into state.Position
// when the move requested one. Returns false if the requested index is
// out of range, treating that as an invalid move rather than a panic.
func (g *GameState) applyKick(state *core.PieceState, wallKickIndex int, kicks func() (rotation.WallKickData, error)) bool {
	if wallKickIndex == core.NoWallKick {
		return true
	}
	table, err := kicks()
	if err != nil {
		return false
	}
	offset, err := table.At(wallKickIndex)
	if err != nil {
		return false
	}
	state.Position = state.Position.Offset(offset)
	return true
}

// dropDistance returns the largest d such that p translated by (0, -d)
// still fits, found by linear descent from p's current position. This
// matches "stop one above the first collision" exactly even on boards
// with holes below an overhang, where distance is not monotonic in
// fitness and a naive binary search would overshoot.
func (g *GameState) dropDistance(p *piece.Piece) int {
	probe := p.Clone()
	state := probe.State()
	d := 0
	for {
		next := state
		next.Position = next.Position.Add(0, -1)
		if err := probe.SetState(next); err != nil {
			break
		}
		if !g.canPlace(probe) {
			break
		}
		state = next
		d++
	}
	return d
}

// String renders a human-readable status dump: board size, current/held
// piece letters, next-queue letters, lines cleared, game-over. The format
// is informational only.
func (g *GameState) String() string {
	current := "-"
	if g.current != nil {
		current = g.current.Type().String()
	}
	held := "-"
	if g.held != nil {
		held = g.held.String()
	}
	next := ""
	for _, t := range g.nextQueue {
		next += t.String()
	}
	return fmt.Sprintf("GameState{%dx%d current=%s held=%s next=%q lines=%d gameOver=%v}",
		g.board.Width(), g.board.Height(), current, held, next, g.linesCleared, g.gameOver)
}

// Clone returns a deep copy. The board and current piece are copied;
// the rotation system is shared (it is immutable by contract).
func (g *GameState) Clone() *GameState {
	clone := &GameState{
		board:        g.board.Clone(),
		system:       g.system,
		holdUsed:     g.holdUsed,
		linesCleared: g.linesCleared,
		gameOver:     g.gameOver,
		nextQueue:    append([]core.PieceType(nil), g.nextQueue...),
	}
	if g.current != nil {
		clone.current = g.current.Clone()
	}
	if g.held != nil {
		v := *g.held
		clone.held = &v
	}
	return clone
}
