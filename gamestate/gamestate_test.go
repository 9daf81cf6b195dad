package gamestate

import (
	"testing"

	"github.com/lixenwraith/tetris-engine/core"
	"github.com/lixenwraith/tetris-engine/rotation"
)

func newGame(t *testing.T, w, h int) *GameState {
	t.Helper()
	g, err := New(w, h, rotation.NewSRS())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func TestSpawnPieceOnEmptyBoardSucceeds(t *testing.T) {
	g := newGame(t, 10, 20)
	ok, err := g.SpawnPiece(core.T)
	if err != nil {
		t.Fatalf("SpawnPiece: %v", err)
	}
	if !ok {
		t.Fatal("SpawnPiece should succeed on an empty board")
	}
	if g.GameOver() {
		t.Error("GameOver should be false after a successful spawn")
	}
	if g.CurrentPiece() == nil {
		t.Fatal("CurrentPiece should be set after a successful spawn")
	}
}

func TestSpawnPieceMissingRotationSystem(t *testing.T) {
	g, err := New(10, 20, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := g.SpawnPiece(core.T); err != core.ErrMissingRotationSystem {
		t.Fatalf("error = %v, want ErrMissingRotationSystem", err)
	}
}

func TestSpawnPieceBlockedSetsGameOver(t *testing.T) {
	g := newGame(t, 10, 20)
	// T starts at (3,19) R0, which reaches y=20, so it spawns shifted down
	// to (3,18) with cells (4,18),(3,19),(4,19),(5,19); occupy one of them.
	g.Board().FillCell(4, 19)
	ok, err := g.SpawnPiece(core.T)
	if err != nil {
		t.Fatalf("SpawnPiece: %v", err)
	}
	if ok {
		t.Fatal("SpawnPiece should fail when the spawn cells are occupied")
	}
	if !g.GameOver() {
		t.Error("GameOver should be true after a blocked spawn")
	}
	if g.CurrentPiece() != nil {
		t.Error("CurrentPiece must stay nil after a blocked spawn")
	}
}

func TestApplyMoveNoOpWhenGameOver(t *testing.T) {
	g := newGame(t, 10, 20)
	g.SetGameOver(true)
	m, _ := core.NewMove(core.Left)
	if g.ApplyMove(m) {
		t.Error("ApplyMove should always fail once game is over")
	}
}

func TestHardDropRestsOnFloor(t *testing.T) {
	g := newGame(t, 10, 20)
	if _, err := g.SpawnPiece(core.O); err != nil {
		t.Fatalf("SpawnPiece: %v", err)
	}
	m, _ := core.NewMove(core.HardDrop)
	if !g.ApplyMove(m) {
		t.Fatal("HardDrop should succeed on an empty board")
	}
	if g.CurrentPiece().Position() != (core.Position{X: 3, Y: 0}) {
		t.Errorf("O piece after hard drop = %v, want (3,0)", g.CurrentPiece().Position())
	}
	cleared := g.LockCurrentPiece()
	if cleared != 0 {
		t.Errorf("LockCurrentPiece() = %d, want 0", cleared)
	}
	if g.Board().GetFilledCellCount() != 4 {
		t.Errorf("filledCount = %d, want 4", g.Board().GetFilledCellCount())
	}
}

func TestWallKickIRotationScenario(t *testing.T) {
	g := newGame(t, 10, 20)
	state := core.PieceState{Type: core.I, Position: core.Position{X: 0, Y: 10}, Rotation: core.R0}
	if _, err := g.SpawnPiece(core.I); err != nil {
		t.Fatalf("SpawnPiece: %v", err)
	}
	if err := g.current.SetState(state); err != nil {
		t.Fatalf("SetState: %v", err)
	}

	// Index 1 (-2,0) should land on negative x and fail.
	m1, err := core.NewRotationMove(core.RotateClockwise, 1)
	if err != nil {
		t.Fatalf("NewRotationMove: %v", err)
	}
	if g.ApplyMove(m1) {
		t.Fatal("wall kick index 1 should be invalid (negative x)")
	}
	if g.CurrentPiece().Position() != state.Position || g.CurrentPiece().Rotation() != state.Rotation {
		t.Error("failed ApplyMove must leave the piece unchanged")
	}

	// Index 2 (+1,0) should succeed.
	m2, err := core.NewRotationMove(core.RotateClockwise, 2)
	if err != nil {
		t.Fatalf("NewRotationMove: %v", err)
	}
	if !g.ApplyMove(m2) {
		t.Fatal("wall kick index 2 should succeed")
	}
	want := core.Position{X: 1, Y: 10}
	if g.CurrentPiece().Position() != want {
		t.Errorf("position after kick = %v, want %v", g.CurrentPiece().Position(), want)
	}
	if g.CurrentPiece().Rotation() != core.R90 {
		t.Errorf("rotation after kick = %v, want R90", g.CurrentPiece().Rotation())
	}
}

func TestLineClearScenario(t *testing.T) {
	g := newGame(t, 10, 20)
	g.Board().FillRow(0)
	if !g.Board().IsRowFilled(0) {
		t.Fatal("row 0 should be filled")
	}
	cleared := g.Board().ClearFilledRows()
	if cleared != 1 {
		t.Errorf("ClearFilledRows() = %d, want 1", cleared)
	}
	if g.Board().GetFilledCellCount() != 0 {
		t.Error("filledCount should be 0 after clearing the only filled row")
	}
}

func TestHoldFirstUseStashesAndSpawnsNext(t *testing.T) {
	g := newGame(t, 10, 20)
	g.PushNext(core.O)
	if _, err := g.SpawnPiece(core.T); err != nil {
		t.Fatalf("SpawnPiece: %v", err)
	}
	m, _ := core.NewMove(core.Hold)
	if !g.ApplyMove(m) {
		t.Fatal("first hold of the turn should succeed")
	}
	if !g.HoldUsed() {
		t.Error("HoldUsed should be true after a successful hold")
	}
	heldType, ok := g.HeldType()
	if !ok || heldType != core.T {
		t.Errorf("held type = %v, ok=%v, want T, true", heldType, ok)
	}
	if g.CurrentPiece().Type() != core.O {
		t.Errorf("current piece type = %v, want O", g.CurrentPiece().Type())
	}
}

func TestHoldTwiceInOneTurnFails(t *testing.T) {
	g := newGame(t, 10, 20)
	g.PushNext(core.O)
	g.PushNext(core.S)
	if _, err := g.SpawnPiece(core.T); err != nil {
		t.Fatalf("SpawnPiece: %v", err)
	}
	m, _ := core.NewMove(core.Hold)
	if !g.ApplyMove(m) {
		t.Fatal("first hold should succeed")
	}
	if g.ApplyMove(m) {
		t.Fatal("second hold in the same turn should fail")
	}
}

func TestHoldSwapWithAlreadyHeldPiece(t *testing.T) {
	g := newGame(t, 10, 20)
	g.PushNext(core.O)
	if _, err := g.SpawnPiece(core.T); err != nil {
		t.Fatalf("SpawnPiece: %v", err)
	}
	m, _ := core.NewMove(core.Hold)
	if !g.ApplyMove(m) {
		t.Fatal("first hold should succeed")
	}
	g.SetHoldUsed(false) // simulate a new turn
	if !g.ApplyMove(m) {
		t.Fatal("second-turn hold should swap with the held piece")
	}
	heldType, _ := g.HeldType()
	if heldType != core.O {
		t.Errorf("held type after swap = %v, want O", heldType)
	}
	if g.CurrentPiece().Type() != core.T {
		t.Errorf("current piece after swap = %v, want T", g.CurrentPiece().Type())
	}
}

func TestHoldFailsWhenQueueEmptyRestoresSlot(t *testing.T) {
	g := newGame(t, 10, 20)
	if _, err := g.SpawnPiece(core.T); err != nil {
		t.Fatalf("SpawnPiece: %v", err)
	}
	m, _ := core.NewMove(core.Hold)
	if g.ApplyMove(m) {
		t.Fatal("hold should fail when the next-queue is empty and nothing is held")
	}
	if _, ok := g.HeldType(); ok {
		t.Error("hold slot should be restored to empty after a failed hold")
	}
	if g.CurrentPiece().Type() != core.T {
		t.Error("current piece should be untouched after a failed hold")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	g := newGame(t, 10, 20)
	if _, err := g.SpawnPiece(core.T); err != nil {
		t.Fatalf("SpawnPiece: %v", err)
	}
	clone := g.Clone()
	m, _ := core.NewMove(core.Left)
	clone.ApplyMove(m)
	if g.CurrentPiece().Position() == clone.CurrentPiece().Position() {
		t.Error("mutating a clone should not affect the original")
	}
}

func TestStringDoesNotPanic(t *testing.T) {
	g := newGame(t, 10, 20)
	g.PushNext(core.O)
	if _, err := g.SpawnPiece(core.T); err != nil {
		t.Fatalf("SpawnPiece: %v", err)
	}
	if g.String() == "" {
		t.Error("String() should not be empty")
	}
}
