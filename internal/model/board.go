package model

// GridSize is the edge length of the cubic board.
const GridSize = 8

// Position identifies a cell on the board
type Position struct {
	X int
	Y int
	Z int
}

// Board is the playfield: a GridSize^3 grid of occupancy flags.
// Cells is flat, indexed (z*Size+y)*Size+x.
type Board struct {
	Size  int
	Cells []bool
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{
		Size:  GridSize,
		Cells: make([]bool, GridSize*GridSize*GridSize),
	}
}

// InBounds returns true if the position is within the grid
func (b *Board) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < b.Size &&
		pos.Y >= 0 && pos.Y < b.Size &&
		pos.Z >= 0 && pos.Z < b.Size
}

// At returns true if the cell at the given position is occupied.
// Out-of-bounds positions read as unoccupied.
func (b *Board) At(pos Position) bool {
	if !b.InBounds(pos) {
		return false
	}
	return b.Cells[b.index(pos)]
}

// Set writes the occupancy of the cell at the given position
func (b *Board) Set(pos Position, occupied bool) {
	if b.InBounds(pos) {
		b.Cells[b.index(pos)] = occupied
	}
}

// OccupiedCount returns the number of occupied cells
func (b *Board) OccupiedCount() int {
	count := 0
	for _, c := range b.Cells {
		if c {
			count++
		}
	}
	return count
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	cells := make([]bool, len(b.Cells))
	copy(cells, b.Cells)
	return &Board{
		Size:  b.Size,
		Cells: cells,
	}
}

func (b *Board) index(pos Position) int {
	return (pos.Z*b.Size+pos.Y)*b.Size + pos.X
}
