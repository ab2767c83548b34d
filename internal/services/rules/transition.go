package rules

import (
	"github.com/willolsker/cube-blast/internal/model"
)

// Generator produces new pieces for slot refills
type Generator interface {
	Generate() model.Piece
}

// NewGameState returns a fresh state: empty board, all slots filled from
// the generator, slot 0 active, score 0, not over.
func NewGameState(gen Generator) *model.GameState {
	state := &model.GameState{
		Board:      model.NewBoard(),
		ActiveSlot: 0,
	}
	for i := range state.Slots {
		p := gen.Generate()
		state.Slots[i] = &p
	}
	return state
}

// Apply attempts to place the active piece at origin and returns the
// resulting state. Rejected requests (game over, no active piece, invalid
// placement) return the input state unchanged; callers can compare
// pointers to tell the two outcomes apart.
func Apply(state *model.GameState, origin model.Position, gen Generator) *model.GameState {
	if state.GameOver {
		return state
	}
	active := state.ActivePiece()
	if active == nil {
		return state
	}
	if !CanPlace(state.Board, active, origin) {
		return state
	}

	next := state.Clone()
	commit(next.Board, active, origin)

	cleared := CompletedCells(next.Board)
	for pos := range cleared {
		next.Board.Set(pos, false)
	}
	next.Score += len(cleared) * PointsPerClearedCell

	next.Slots[next.ActiveSlot] = nil
	if next.SlotsEmpty() {
		for i := range next.Slots {
			p := gen.Generate()
			next.Slots[i] = &p
		}
	}
	next.ActiveSlot = firstNonEmptySlot(next.Slots)

	next.GameOver = IsGameOver(next.Board, next.Slots)
	return next
}

// SelectSlot switches the active slot. Selecting an empty or out-of-range
// slot, or selecting after game over, is a rejected no-op.
func SelectSlot(state *model.GameState, slot int) *model.GameState {
	if state.GameOver {
		return state
	}
	if slot < 0 || slot >= model.SlotCount || state.Slots[slot] == nil {
		return state
	}
	if slot == state.ActiveSlot {
		return state
	}
	next := state.Clone()
	next.ActiveSlot = slot
	return next
}

func firstNonEmptySlot(slots [model.SlotCount]*model.Piece) int {
	for i, p := range slots {
		if p != nil {
			return i
		}
	}
	return model.NoActiveSlot
}
