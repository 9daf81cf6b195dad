// Package piece implements Piece: a PieceState bound to a RotationSystem,
// with its shape, bounding dimensions, and column profile derived and
// cached whenever either input changes. A Piece never reads the board;
// collision checking belongs to the caller.
package piece

import (
	"github.com/lixenwraith/tetris-engine/constant"
	"github.com/lixenwraith/tetris-engine/core"
	"github.com/lixenwraith/tetris-engine/rotation"
)

// Piece is a tetromino in a specific state, bound to the rotation system
// that interprets its shape.
type Piece struct {
	state  core.PieceState
	system rotation.System

	shape         rotation.Shape
	minX, minY    int
	width, height int

	columnHeights [constant.ShapeGridSize]int // top filled row (tight-local) per column, -1 if empty
	columnBottoms [constant.ShapeGridSize]int // bottom filled row (tight-local) per column, -1 if empty
}

// New constructs a Piece in the given state, bound to system. Returns
// core.ErrMissingRotationSystem when system is nil.
func New(state core.PieceState, system rotation.System) (*Piece, error) {
	if system == nil {
		return nil, core.ErrMissingRotationSystem
	}
	p := &Piece{state: state, system: system}
	if err := p.refresh(); err != nil {
		return nil, err
	}
	return p, nil
}

// State returns the piece's current (type, position, rotation).
func (p *Piece) State() core.PieceState { return p.state }

// Type returns the piece's tetromino type.
func (p *Piece) Type() core.PieceType { return p.state.Type }

// Position returns the piece's current position.
func (p *Piece) Position() core.Position { return p.state.Position }

// Rotation returns the piece's current rotation.
func (p *Piece) Rotation() core.Rotation { return p.state.Rotation }

// Width returns the tight bounding width of the filled cells.
func (p *Piece) Width() int { return p.width }

// Height returns the tight bounding height of the filled cells.
func (p *Piece) Height() int { return p.height }

// ColumnHeights returns, per tight-local column, the topmost filled row
// (0-based), or -1 if that column has no filled cell.
func (p *Piece) ColumnHeights() [constant.ShapeGridSize]int { return p.columnHeights }

// ColumnBottoms returns, per tight-local column, the bottommost filled
// row (0-based), or -1 if that column has no filled cell.
func (p *Piece) ColumnBottoms() [constant.ShapeGridSize]int { return p.columnBottoms }

// SetState installs a new state and re-derives shape metadata.
func (p *Piece) SetState(state core.PieceState) error {
	p.state = state
	return p.refresh()
}

// SetRotationSystem rebinds the piece to a different rotation system and
// re-derives shape metadata. Returns core.ErrMissingRotationSystem when
// system is nil.
func (p *Piece) SetRotationSystem(system rotation.System) error {
	if system == nil {
		return core.ErrMissingRotationSystem
	}
	p.system = system
	return p.refresh()
}

// refresh recomputes shape, tight bounding dimensions, and column profile
// from the current state and rotation system.
func (p *Piece) refresh() error {
	shape, err := p.system.Shape(p.state.Type, p.state.Rotation)
	if err != nil {
		return err
	}
	p.shape = shape

	minX, minY := constant.ShapeGridSize, constant.ShapeGridSize
	maxX, maxY := -1, -1
	for y := 0; y < constant.ShapeGridSize; y++ {
		for x := 0; x < constant.ShapeGridSize; x++ {
			if !shape.Filled(x, y) {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	p.minX, p.minY = minX, minY
	p.width = maxX - minX + 1
	p.height = maxY - minY + 1

	for x := 0; x < constant.ShapeGridSize; x++ {
		p.columnHeights[x] = -1
		p.columnBottoms[x] = -1
	}
	for tx := 0; tx < p.width; tx++ {
		top, bottom := -1, -1
		for ty := 0; ty < p.height; ty++ {
			if shape.Filled(minX+tx, minY+ty) {
				if bottom == -1 {
					bottom = ty
				}
				top = ty
			}
		}
		p.columnHeights[tx] = top
		p.columnBottoms[tx] = bottom
	}
	return nil
}

// GetFilledCells returns every filled cell in tight-local coordinates,
// x in [0, Width), y in [0, Height), relative to the piece's bottom-left.
func (p *Piece) GetFilledCells() []core.Position {
	cells := make([]core.Position, 0, 4)
	for ty := 0; ty < p.height; ty++ {
		for tx := 0; tx < p.width; tx++ {
			if p.shape.Filled(p.minX+tx, p.minY+ty) {
				cells = append(cells, core.Position{X: tx, Y: ty})
			}
		}
	}
	return cells
}

// GetAbsoluteFilledCells returns every filled cell translated by the
// piece's current position.
func (p *Piece) GetAbsoluteFilledCells() []core.Position {
	cells := p.GetFilledCells()
	for i, c := range cells {
		cells[i] = c.Add(p.state.Position.X, p.state.Position.Y)
	}
	return cells
}

// Clone returns an independent copy of p bound to the same rotation
// system (rotation systems are immutable and shared by design).
func (p *Piece) Clone() *Piece {
	clone := *p
	return &clone
}
