package rules

import (
	"github.com/willolsker/cube-blast/internal/model"
)

// PointsPerClearedCell is the score awarded per cleared cell
const PointsPerClearedCell = 100

// CanPlace reports whether every occupied cell of the piece, offset by
// origin, lands on an in-bounds, unoccupied board cell. Empty piece cells
// impose no constraint.
func CanPlace(board *model.Board, piece *model.Piece, origin model.Position) bool {
	for z := 0; z < piece.ZSize; z++ {
		for y := 0; y < piece.YSize; y++ {
			for x := 0; x < piece.XSize; x++ {
				if !piece.Filled(x, y, z) {
					continue
				}
				pos := model.Position{X: origin.X + x, Y: origin.Y + y, Z: origin.Z + z}
				if !board.InBounds(pos) || board.At(pos) {
					return false
				}
			}
		}
	}
	return true
}

// commit writes the piece's occupied cells onto the board. Callers must
// have validated the placement with CanPlace first.
func commit(board *model.Board, piece *model.Piece, origin model.Position) {
	for _, off := range piece.Offsets() {
		board.Set(model.Position{X: origin.X + off.X, Y: origin.Y + off.Y, Z: origin.Z + off.Z}, true)
	}
}

// CompletedCells scans all three axis-aligned line families and returns
// the deduplicated set of cells belonging to at least one full line. A
// cell at the intersection of two completed lines appears once.
func CompletedCells(board *model.Board) map[model.Position]struct{} {
	n := board.Size
	cleared := make(map[model.Position]struct{})

	// X-lines: one per (y, z)
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			full := true
			for x := 0; x < n; x++ {
				if !board.At(model.Position{X: x, Y: y, Z: z}) {
					full = false
					break
				}
			}
			if full {
				for x := 0; x < n; x++ {
					cleared[model.Position{X: x, Y: y, Z: z}] = struct{}{}
				}
			}
		}
	}

	// Y-lines: one per (x, z)
	for z := 0; z < n; z++ {
		for x := 0; x < n; x++ {
			full := true
			for y := 0; y < n; y++ {
				if !board.At(model.Position{X: x, Y: y, Z: z}) {
					full = false
					break
				}
			}
			if full {
				for y := 0; y < n; y++ {
					cleared[model.Position{X: x, Y: y, Z: z}] = struct{}{}
				}
			}
		}
	}

	// Z-lines: one per (x, y)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			full := true
			for z := 0; z < n; z++ {
				if !board.At(model.Position{X: x, Y: y, Z: z}) {
					full = false
					break
				}
			}
			if full {
				for z := 0; z < n; z++ {
					cleared[model.Position{X: x, Y: y, Z: z}] = struct{}{}
				}
			}
		}
	}

	return cleared
}

// IsGameOver reports whether no piece in any slot can be placed anywhere
// on the board. An all-empty slot set is not a loss: a refill is imminent.
// Exhaustive by intent; fine at this grid size, run once per placement.
func IsGameOver(board *model.Board, slots [model.SlotCount]*model.Piece) bool {
	anyPiece := false
	for _, p := range slots {
		if p == nil {
			continue
		}
		anyPiece = true
		for z := 0; z < board.Size; z++ {
			for y := 0; y < board.Size; y++ {
				for x := 0; x < board.Size; x++ {
					if CanPlace(board, p, model.Position{X: x, Y: y, Z: z}) {
						return false
					}
				}
			}
		}
	}
	return anyPiece
}
