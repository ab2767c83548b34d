package model

import "time"

// GameID uniquely identifies a game session
type GameID string

// SlotCount is the number of "next piece" slots
const SlotCount = 3

// NoActiveSlot marks a state with no slot selected for placement
const NoActiveSlot = -1

// GameState is an immutable snapshot of a game in progress. State
// transitions never mutate a GameState in place; they return a new value
// (or the same value, for rejected requests).
type GameState struct {
	Board      *Board
	Slots      [SlotCount]*Piece // nil = consumed slot
	ActiveSlot int               // index into Slots, or NoActiveSlot
	Score      int
	GameOver   bool
}

// ActivePiece returns the piece in the active slot, or nil if no slot is
// active or the active slot is empty
func (s *GameState) ActivePiece() *Piece {
	if s.ActiveSlot == NoActiveSlot {
		return nil
	}
	return s.Slots[s.ActiveSlot]
}

// SlotsEmpty returns true if every slot has been consumed
func (s *GameState) SlotsEmpty() bool {
	for _, p := range s.Slots {
		if p != nil {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the state. Pieces are immutable, so slot
// pointers are shared.
func (s *GameState) Clone() *GameState {
	next := &GameState{
		Board:      s.Board.Clone(),
		Slots:      s.Slots,
		ActiveSlot: s.ActiveSlot,
		Score:      s.Score,
		GameOver:   s.GameOver,
	}
	return next
}

// Game is a stored game session
type Game struct {
	ID        GameID
	State     *GameState
	CreatedAt time.Time
	UpdatedAt time.Time
}
