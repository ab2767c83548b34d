package model

// Piece is a rigid sparse 3D shape. Cells is flat with the same
// [z][y][x] convention as the board: index (z*YSize+y)*XSize+x.
// Pieces are immutable once built; rotation produces a new Piece.
type Piece struct {
	XSize int
	YSize int
	ZSize int
	Cells []bool
}

// NewPiece builds a piece from nested [z][y][x] cells. Extents are taken
// from the outer array, its first sub-array, and that sub-array's first
// sub-array; degenerate or ragged input yields zero-size axes rather than
// an error, and cells outside the extents are ignored.
func NewPiece(cells [][][]bool) Piece {
	zSize := len(cells)
	ySize := 0
	xSize := 0
	if zSize > 0 {
		ySize = len(cells[0])
	}
	if ySize > 0 {
		xSize = len(cells[0][0])
	}

	p := EmptyPiece(xSize, ySize, zSize)
	for z := 0; z < zSize; z++ {
		for y := 0; y < ySize && y < len(cells[z]); y++ {
			for x := 0; x < xSize && x < len(cells[z][y]); x++ {
				if cells[z][y][x] {
					p.Cells[p.Index(x, y, z)] = true
				}
			}
		}
	}
	return p
}

// EmptyPiece returns an all-empty piece of the given extents
func EmptyPiece(xSize, ySize, zSize int) Piece {
	return Piece{
		XSize: xSize,
		YSize: ySize,
		ZSize: zSize,
		Cells: make([]bool, xSize*ySize*zSize),
	}
}

// Index returns the flat index for a piece-local coordinate
func (p Piece) Index(x, y, z int) int {
	return (z*p.YSize+y)*p.XSize + x
}

// Filled returns true if the piece-local cell is occupied
func (p Piece) Filled(x, y, z int) bool {
	if x < 0 || x >= p.XSize || y < 0 || y >= p.YSize || z < 0 || z >= p.ZSize {
		return false
	}
	return p.Cells[p.Index(x, y, z)]
}

// Dimensions returns the piece's extents along each axis
func (p Piece) Dimensions() (xSize, ySize, zSize int) {
	return p.XSize, p.YSize, p.ZSize
}

// CellCount returns the number of occupied cells
func (p Piece) CellCount() int {
	count := 0
	for _, c := range p.Cells {
		if c {
			count++
		}
	}
	return count
}

// Offsets returns the piece-local coordinates of all occupied cells
func (p Piece) Offsets() []Position {
	offsets := make([]Position, 0, len(p.Cells))
	for z := 0; z < p.ZSize; z++ {
		for y := 0; y < p.YSize; y++ {
			for x := 0; x < p.XSize; x++ {
				if p.Cells[p.Index(x, y, z)] {
					offsets = append(offsets, Position{X: x, Y: y, Z: z})
				}
			}
		}
	}
	return offsets
}
