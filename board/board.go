// Package board implements the fixed-capacity occupancy grid pieces lock
// into: per-row bitmasks, cached column heights, and line clearing.
package board

import (
	"math/bits"

	"github.com/lixenwraith/tetris-engine/constant"
	"github.com/lixenwraith/tetris-engine/core"
)

// Board is a W x H occupancy grid. Rows are stored one per machine word
// (uint32 is enough since constant.MaxBoardWidth fits comfortably), which
// is the natural layout the spec calls out for W <= machine word width:
// testing or setting a cell is a single shift-and-mask, and a full row is
// a single population-count-free equality check against a row mask.
type Board struct {
	width, height int

	rows   []uint32 // rows[y], bit x set means (x, y) is filled
	rowAll uint32   // mask with the low `width` bits set, i.e. a "full row"

	colHeights []int // per-column height cache
	roof       int
	filled     int
}

// New constructs a Board of the given dimensions. Returns
// core.ErrInvalidDimensions when width or height falls outside
// [constant.MinBoardDim, constant.MaxBoard{Width,Height}].
func New(width, height int) (*Board, error) {
	if width < constant.MinBoardDim || width > constant.MaxBoardWidth ||
		height < constant.MinBoardDim || height > constant.MaxBoardHeight {
		return nil, core.ErrInvalidDimensions
	}
	b := &Board{
		width:      width,
		height:     height,
		rows:       make([]uint32, height),
		rowAll:     uint32(1)<<uint(width) - 1,
		colHeights: make([]int, width),
	}
	return b, nil
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

func (b *Board) inRange(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// IsFilled reports whether (x, y) is occupied. Out-of-range coordinates
// report false.
func (b *Board) IsFilled(x, y int) bool {
	if !b.inRange(x, y) {
		return false
	}
	return b.rows[y]&(1<<uint(x)) != 0
}

// FillCell marks (x, y) occupied. Out-of-range coordinates are a silent
// no-op; filling an already-filled cell is a no-op.
func (b *Board) FillCell(x, y int) {
	if !b.inRange(x, y) {
		return
	}
	bit := uint32(1) << uint(x)
	if b.rows[y]&bit != 0 {
		return
	}
	b.rows[y] |= bit
	b.filled++
	if y+1 > b.colHeights[x] {
		b.colHeights[x] = y + 1
		if y+1 > b.roof {
			b.roof = y + 1
		}
	}
}

// ClearCell unmarks (x, y). Out-of-range coordinates are a silent no-op;
// clearing an already-empty cell is a no-op.
func (b *Board) ClearCell(x, y int) {
	if !b.inRange(x, y) {
		return
	}
	bit := uint32(1) << uint(x)
	if b.rows[y]&bit == 0 {
		return
	}
	b.rows[y] &^= bit
	b.filled--

	if y+1 == b.colHeights[x] {
		b.rescanColumn(x)
	}
}

// rescanColumn recomputes colHeights[x] from scratch and, if that column
// supplied the current roof, recomputes roof too.
func (b *Board) rescanColumn(x int) {
	bit := uint32(1) << uint(x)
	newHeight := 0
	for y := b.height - 1; y >= 0; y-- {
		if b.rows[y]&bit != 0 {
			newHeight = y + 1
			break
		}
	}
	oldHeight := b.colHeights[x]
	b.colHeights[x] = newHeight

	if oldHeight == b.roof && newHeight < oldHeight {
		b.recomputeRoof()
	}
}

func (b *Board) recomputeRoof() {
	r := 0
	for _, h := range b.colHeights {
		if h > r {
			r = h
		}
	}
	b.roof = r
}

// FillRow fills every cell in row y. Out of range is a silent no-op.
func (b *Board) FillRow(y int) {
	if y < 0 || y >= b.height {
		return
	}
	for x := 0; x < b.width; x++ {
		b.FillCell(x, y)
	}
}

// IsRowFilled reports whether every cell in row y is occupied.
func (b *Board) IsRowFilled(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	return b.rows[y]&b.rowAll == b.rowAll
}

// ClearFilledRows removes every full row bottom-up, shifting rows above
// each removal down by one, and returns the number of rows removed.
// Height/roof caches are recomputed once at the end rather than per row.
func (b *Board) ClearFilledRows() int {
	write := 0
	cleared := 0
	for read := 0; read < b.height; read++ {
		if b.IsRowFilled(read) {
			cleared++
			continue
		}
		b.rows[write] = b.rows[read]
		write++
	}
	for ; write < b.height; write++ {
		b.rows[write] = 0
	}
	if cleared > 0 {
		b.recomputeAllCaches()
	}
	return cleared
}

func (b *Board) recomputeAllCaches() {
	b.filled = 0
	b.roof = 0
	for x := 0; x < b.width; x++ {
		b.colHeights[x] = 0
	}
	for y := 0; y < b.height; y++ {
		row := b.rows[y]
		b.filled += bits.OnesCount32(row)
		for x := 0; x < b.width; x++ {
			if row&(1<<uint(x)) != 0 {
				b.colHeights[x] = y + 1
			}
		}
	}
	b.recomputeRoof()
}

// GetColumnHeight returns 1 + the y-index of the topmost filled cell in
// column c, or 0 if the column is empty. Out-of-range columns return 0.
func (b *Board) GetColumnHeight(c int) int {
	if c < 0 || c >= b.width {
		return 0
	}
	return b.colHeights[c]
}

// GetColumnHeights returns a read-only snapshot of all column heights.
func (b *Board) GetColumnHeights() []int {
	out := make([]int, b.width)
	copy(out, b.colHeights)
	return out
}

// GetRoof returns the height of the tallest column, 0 if the board is empty.
func (b *Board) GetRoof() int { return b.roof }

// GetFilledCellCount returns the total number of occupied cells.
func (b *Board) GetFilledCellCount() int { return b.filled }

// Clone returns a deep copy of b.
func (b *Board) Clone() *Board {
	clone := &Board{
		width:      b.width,
		height:     b.height,
		rowAll:     b.rowAll,
		roof:       b.roof,
		filled:     b.filled,
		rows:       make([]uint32, len(b.rows)),
		colHeights: make([]int, len(b.colHeights)),
	}
	copy(clone.rows, b.rows)
	copy(clone.colHeights, b.colHeights)
	return clone
}

// Equal reports whether other has the same dimensions and the same
// occupancy on the active W x H region.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for y := 0; y < b.height; y++ {
		if b.rows[y]&b.rowAll != other.rows[y]&other.rowAll {
			return false
		}
	}
	return true
}
