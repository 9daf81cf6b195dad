package rotation

import (
	"math/bits"
	"testing"

	"github.com/lixenwraith/tetris-engine/core"
)

func TestShapeFilledBitCount(t *testing.T) {
	srs := NewSRS()
	for _, pt := range core.AllPieceTypes {
		for _, r := range []core.Rotation{core.R0, core.R90, core.R180, core.R270} {
			shape, err := srs.Shape(pt, r)
			if err != nil {
				t.Fatalf("Shape(%v, %v): %v", pt, r, err)
			}
			if got := bits.OnesCount16(uint16(shape)); got != 4 {
				t.Errorf("Shape(%v, %v) has %d filled cells, want 4", pt, r, got)
			}
		}
	}
}

func TestClockwiseKicksStartWithIdentity(t *testing.T) {
	srs := NewSRS()
	for _, pt := range core.AllPieceTypes {
		for _, r := range []core.Rotation{core.R0, core.R90, core.R180, core.R270} {
			kicks, err := srs.ClockwiseWallKicks(pt, r)
			if err != nil {
				t.Fatalf("ClockwiseWallKicks(%v, %v): %v", pt, r, err)
			}
			first, err := kicks.At(0)
			if err != nil {
				t.Fatalf("kicks.At(0): %v", err)
			}
			if first != (core.Offset{}) {
				t.Errorf("%v %v clockwise kicks[0] = %v, want (0,0)", pt, r, first)
			}
		}
	}
}

func TestWallKickIndexOutOfRange(t *testing.T) {
	srs := NewSRS()
	kicks, _ := srs.ClockwiseWallKicks(core.T, core.R0)
	if _, err := kicks.At(kicks.Len()); err != core.ErrWallKickIndexOutOfRange {
		t.Fatalf("At(out of range) error = %v, want ErrWallKickIndexOutOfRange", err)
	}
}

func TestInvalidPieceType(t *testing.T) {
	srs := NewSRS()
	if _, err := srs.Shape(core.PieceType(99), core.R0); err != core.ErrInvalidPieceType {
		t.Fatalf("Shape with bad type error = %v, want ErrInvalidPieceType", err)
	}
}

func TestSRSTSpawnGeometry(t *testing.T) {
	srs := NewSRS()
	state, err := srs.InitialState(core.T, 10, 20)
	if err != nil {
		t.Fatalf("InitialState: %v", err)
	}
	want := core.PieceState{Type: core.T, Position: core.Position{X: 3, Y: 19}, Rotation: core.R0}
	if !state.Equal(want) {
		t.Fatalf("InitialState(T, 10, 20) = %+v, want %+v", state, want)
	}

	shape, err := srs.Shape(core.T, core.R0)
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}
	// Spec worked example: absolute cells (4,19),(3,20),(4,20),(5,20).
	want4 := map[[2]int]bool{{4, 19}: true, {3, 20}: true, {4, 20}: true, {5, 20}: true}
	got := map[[2]int]bool{}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if shape.Filled(x, y) {
				got[[2]int{state.Position.X + x, state.Position.Y + y}] = true
			}
		}
	}
	if len(got) != len(want4) {
		t.Fatalf("absolute cells = %v, want %v", got, want4)
	}
	for cell := range want4 {
		if !got[cell] {
			t.Errorf("missing absolute cell %v", cell)
		}
	}
}

func TestICWKickScenario(t *testing.T) {
	srs := NewSRS()
	kicks, err := srs.ClockwiseWallKicks(core.I, core.R0)
	if err != nil {
		t.Fatalf("ClockwiseWallKicks: %v", err)
	}
	want := []core.Offset{{DX: 0, DY: 0}, {DX: -2, DY: 0}, {DX: 1, DY: 0}, {DX: -2, DY: -1}, {DX: 1, DY: 2}}
	if kicks.Len() != len(want) {
		t.Fatalf("kicks.Len() = %d, want %d", kicks.Len(), len(want))
	}
	for i, w := range want {
		got, err := kicks.At(i)
		if err != nil {
			t.Fatalf("kicks.At(%d): %v", i, err)
		}
		if got != w {
			t.Errorf("kicks[%d] = %v, want %v", i, got, w)
		}
	}
}

func TestRotate180KicksAreIdentity(t *testing.T) {
	srs := NewSRS()
	if srs.Supports180() {
		t.Error("SRS should not report 180-degree support")
	}
	kicks, err := srs.Rotate180WallKicks(core.T, core.R0)
	if err != nil {
		t.Fatalf("Rotate180WallKicks: %v", err)
	}
	if kicks.Len() != 1 {
		t.Fatalf("Rotate180WallKicks len = %d, want 1", kicks.Len())
	}
	got, _ := kicks.At(0)
	if got != (core.Offset{}) {
		t.Errorf("Rotate180WallKicks[0] = %v, want (0,0)", got)
	}
}

func TestRegistryLookupSRS(t *testing.T) {
	sys, ok := Lookup("SRS")
	if !ok {
		t.Fatal("expected SRS to be registered")
	}
	if sys.Name() != "SRS" {
		t.Errorf("Name() = %q, want SRS", sys.Name())
	}
}

func TestRegistryLookupUnknownName(t *testing.T) {
	if _, ok := Lookup("does-not-exist"); ok {
		t.Error("expected lookup of unknown name to fail")
	}
}
