package rules

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/willolsker/cube-blast/internal/model"
)

// stubGenerator returns queued pieces, then the fallback piece forever
type stubGenerator struct {
	queue    []model.Piece
	fallback model.Piece
}

func (g *stubGenerator) Generate() model.Piece {
	if len(g.queue) > 0 {
		p := g.queue[0]
		g.queue = g.queue[1:]
		return p
	}
	return g.fallback
}

type TransitionSuite struct {
	suite.Suite
	gen *stubGenerator
}

func TestTransitionSuite(t *testing.T) {
	suite.Run(t, new(TransitionSuite))
}

func (s *TransitionSuite) SetupTest() {
	s.gen = &stubGenerator{fallback: singleCell()}
}

// stateWith returns a playing state with the given pieces in its slots
func (s *TransitionSuite) stateWith(pieces ...model.Piece) *model.GameState {
	state := &model.GameState{
		Board:      model.NewBoard(),
		ActiveSlot: 0,
	}
	for i := range pieces {
		state.Slots[i] = &pieces[i]
	}
	return state
}

// NewGameState tests

func (s *TransitionSuite) TestNewGameState() {
	state := NewGameState(s.gen)

	s.Equal(0, state.Board.OccupiedCount())
	s.Equal(0, state.ActiveSlot)
	s.Equal(0, state.Score)
	s.False(state.GameOver)
	for _, p := range state.Slots {
		s.NotNil(p)
	}
}

// Apply rejection tests

func (s *TransitionSuite) TestApplyRejectedOutOfBounds() {
	state := s.stateWith(barX())

	next := Apply(state, model.Position{X: 1, Y: 0, Z: 0}, s.gen)
	s.Same(state, next)
}

func (s *TransitionSuite) TestApplyRejectedOccupied() {
	state := s.stateWith(singleCell())
	state.Board.Set(model.Position{X: 0, Y: 0, Z: 0}, true)

	next := Apply(state, model.Position{X: 0, Y: 0, Z: 0}, s.gen)
	s.Same(state, next)
}

func (s *TransitionSuite) TestApplyRejectedGameOver() {
	state := s.stateWith(singleCell())
	state.GameOver = true

	next := Apply(state, model.Position{X: 0, Y: 0, Z: 0}, s.gen)
	s.Same(state, next)
}

func (s *TransitionSuite) TestApplyRejectedNoActivePiece() {
	state := &model.GameState{
		Board:      model.NewBoard(),
		ActiveSlot: model.NoActiveSlot,
	}

	next := Apply(state, model.Position{X: 0, Y: 0, Z: 0}, s.gen)
	s.Same(state, next)
}

// Apply acceptance tests

func (s *TransitionSuite) TestApplyCommitsCellsWithoutMutatingInput() {
	state := s.stateWith(singleCell(), singleCell())

	next := Apply(state, model.Position{X: 2, Y: 3, Z: 4}, s.gen)
	s.NotSame(state, next)
	s.True(next.Board.At(model.Position{X: 2, Y: 3, Z: 4}))
	s.Nil(next.Slots[0])
	s.Equal(1, next.ActiveSlot)

	// Input state is untouched
	s.False(state.Board.At(model.Position{X: 2, Y: 3, Z: 4}))
	s.NotNil(state.Slots[0])
	s.Equal(0, state.ActiveSlot)
}

func (s *TransitionSuite) TestApplyBarClearsXLine() {
	// Placing an 8-cell bar along an X-line clears it: score 800, board
	// back to empty.
	state := s.stateWith(barX(), singleCell())

	next := Apply(state, model.Position{X: 0, Y: 0, Z: 0}, s.gen)
	s.NotSame(state, next)
	s.Equal(800, next.Score)
	s.Equal(0, next.Board.OccupiedCount())
	s.False(next.GameOver)
}

func (s *TransitionSuite) TestApplyGapFillClearsIntersectingLines() {
	// Board has an X-line and a Y-line both missing only (0,0,0). One
	// placed cell completes both; the shared cell counts once.
	state := s.stateWith(singleCell(), singleCell())
	for x := 1; x < 8; x++ {
		state.Board.Set(model.Position{X: x, Y: 0, Z: 0}, true)
	}
	for y := 1; y < 8; y++ {
		state.Board.Set(model.Position{X: 0, Y: y, Z: 0}, true)
	}

	next := Apply(state, model.Position{X: 0, Y: 0, Z: 0}, s.gen)
	s.NotSame(state, next)
	s.Equal(15*PointsPerClearedCell, next.Score)
	s.Equal(0, next.Board.OccupiedCount())
}

func (s *TransitionSuite) TestApplyScoreAccumulates() {
	state := s.stateWith(barX(), barX())

	next := Apply(state, model.Position{X: 0, Y: 0, Z: 0}, s.gen)
	next = Apply(next, model.Position{X: 0, Y: 1, Z: 0}, s.gen)
	s.Equal(1600, next.Score)
}

// Slot economy tests

func (s *TransitionSuite) TestApplyAdvancesToFirstNonEmptySlot() {
	state := s.stateWith(singleCell(), singleCell(), singleCell())
	state.ActiveSlot = 1

	next := Apply(state, model.Position{X: 0, Y: 0, Z: 0}, s.gen)
	s.Nil(next.Slots[1])
	s.Equal(0, next.ActiveSlot)
}

func (s *TransitionSuite) TestApplyRefillsWhenAllSlotsConsumed() {
	// Last remaining piece placed: all slots refill in the same
	// transition and slot 0 becomes active.
	bar := barX()
	s.gen.queue = []model.Piece{barX(), singleCell(), singleCell()}

	state := &model.GameState{
		Board:      model.NewBoard(),
		ActiveSlot: 2,
	}
	state.Slots[2] = &bar

	next := Apply(state, model.Position{X: 0, Y: 0, Z: 0}, s.gen)
	s.NotSame(state, next)
	for _, p := range next.Slots {
		s.NotNil(p)
	}
	s.Equal(0, next.ActiveSlot)
	s.Equal(8, next.Slots[0].CellCount())
	s.Equal(1, next.Slots[1].CellCount())
}

func (s *TransitionSuite) TestApplyNoRefillWhileSlotsRemain() {
	state := s.stateWith(singleCell(), singleCell())
	other := state.Slots[1]

	next := Apply(state, model.Position{X: 0, Y: 0, Z: 0}, s.gen)
	s.Nil(next.Slots[0])
	s.Same(other, next.Slots[1])
	s.Nil(next.Slots[2])
}

// Game over tests

func (s *TransitionSuite) TestApplyDetectsGameOver() {
	// Checkerboard occupancy never completes a line and leaves no two
	// adjacent empty cells, except the pair opened at (0,0,0)-(1,0,0).
	// Placing a duo there leaves no room for the duo in the other slot.
	duo := model.NewPiece([][][]bool{{{true, true}}})
	state := s.stateWith(duo, duo)
	for z := 0; z < 8; z++ {
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				if (x+y+z)%2 == 0 {
					state.Board.Set(model.Position{X: x, Y: y, Z: z}, true)
				}
			}
		}
	}
	state.Board.Set(model.Position{X: 0, Y: 0, Z: 0}, false)

	next := Apply(state, model.Position{X: 0, Y: 0, Z: 0}, s.gen)
	s.NotSame(state, next)
	s.True(next.GameOver)

	// Terminal state: further placements are no-ops
	again := Apply(next, model.Position{X: 0, Y: 0, Z: 0}, s.gen)
	s.Same(next, again)
}

// SelectSlot tests

func (s *TransitionSuite) TestSelectSlot() {
	state := s.stateWith(singleCell(), barX())

	next := SelectSlot(state, 1)
	s.NotSame(state, next)
	s.Equal(1, next.ActiveSlot)
	s.Equal(0, state.ActiveSlot)
}

func (s *TransitionSuite) TestSelectSlotRejected() {
	state := s.stateWith(singleCell(), barX())

	s.Same(state, SelectSlot(state, 2))  // empty slot
	s.Same(state, SelectSlot(state, -1)) // out of range
	s.Same(state, SelectSlot(state, 3))  // out of range
	s.Same(state, SelectSlot(state, 0))  // already active

	state.GameOver = true
	s.Same(state, SelectSlot(state, 1))
}
