package piece

import (
	"github.com/willolsker/cube-blast/internal/model"
)

// Catalog is the fixed library of canonical piece shapes, expressed as
// nested [z][y][x] cells. Generation picks one uniformly and applies a
// random rotation, so only one orientation of each shape is stored.
var Catalog = []model.Piece{
	// 2x3x2 rectangular prism
	model.NewPiece([][][]bool{
		{
			{true, true},
			{true, true},
			{true, true},
		},
		{
			{true, true},
			{true, true},
			{true, true},
		},
	}),
	// 1x8x1 bar
	model.NewPiece([][][]bool{
		{
			{true},
			{true},
			{true},
			{true},
			{true},
			{true},
			{true},
			{true},
		},
	}),
	// L shape, one layer deep
	model.NewPiece([][][]bool{
		{
			{true, false, false},
			{true, false, false},
			{true, true, true},
		},
	}),
	// T shape, one layer deep
	model.NewPiece([][][]bool{
		{
			{true, true, true},
			{false, true, false},
			{false, true, false},
		},
	}),
}

// RotateX rotates a piece one quarter-turn about the X axis: the Y and Z
// extents swap, with the Y index reversed.
func RotateX(p model.Piece) model.Piece {
	out := model.EmptyPiece(p.XSize, p.ZSize, p.YSize)
	for z := 0; z < p.ZSize; z++ {
		for y := 0; y < p.YSize; y++ {
			for x := 0; x < p.XSize; x++ {
				if p.Filled(x, y, z) {
					out.Cells[out.Index(x, z, p.YSize-1-y)] = true
				}
			}
		}
	}
	return out
}

// RotateY rotates a piece one quarter-turn about the Y axis: the X and Z
// extents swap, with the X index reversed.
func RotateY(p model.Piece) model.Piece {
	out := model.EmptyPiece(p.ZSize, p.YSize, p.XSize)
	for z := 0; z < p.ZSize; z++ {
		for y := 0; y < p.YSize; y++ {
			for x := 0; x < p.XSize; x++ {
				if p.Filled(x, y, z) {
					out.Cells[out.Index(z, y, p.XSize-1-x)] = true
				}
			}
		}
	}
	return out
}

// RotateZ rotates a piece one quarter-turn about the Z axis: the X and Y
// extents swap, with the X index reversed.
func RotateZ(p model.Piece) model.Piece {
	out := model.EmptyPiece(p.YSize, p.XSize, p.ZSize)
	for z := 0; z < p.ZSize; z++ {
		for y := 0; y < p.YSize; y++ {
			for x := 0; x < p.XSize; x++ {
				if p.Filled(x, y, z) {
					out.Cells[out.Index(y, p.XSize-1-x, z)] = true
				}
			}
		}
	}
	return out
}

// Rotate applies quarter-turns about X, then Y, then Z, in that fixed
// order. The order matters: axis rotations do not commute.
func Rotate(p model.Piece, rx, ry, rz int) model.Piece {
	for i := 0; i < rx%4; i++ {
		p = RotateX(p)
	}
	for i := 0; i < ry%4; i++ {
		p = RotateY(p)
	}
	for i := 0; i < rz%4; i++ {
		p = RotateZ(p)
	}
	return p
}
