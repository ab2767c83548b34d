package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type PieceSuite struct {
	suite.Suite
}

func TestPieceSuite(t *testing.T) {
	suite.Run(t, new(PieceSuite))
}

func (s *PieceSuite) TestNewPieceDimensions() {
	p := NewPiece([][][]bool{
		{
			{true, false},
			{true, true},
			{false, true},
		},
	})

	x, y, z := p.Dimensions()
	s.Equal(2, x)
	s.Equal(3, y)
	s.Equal(1, z)
	s.Equal(4, p.CellCount())
}

func (s *PieceSuite) TestNewPieceNil() {
	p := NewPiece(nil)

	x, y, z := p.Dimensions()
	s.Equal(0, x)
	s.Equal(0, y)
	s.Equal(0, z)
	s.Equal(0, p.CellCount())
}

func (s *PieceSuite) TestNewPieceEmptyLayers() {
	p := NewPiece([][][]bool{{}})

	x, y, z := p.Dimensions()
	s.Equal(0, x)
	s.Equal(0, y)
	s.Equal(1, z)
	s.Equal(0, p.CellCount())
}

func (s *PieceSuite) TestNewPieceRaggedRows() {
	// Second row is short, third is long; extents come from the first
	// row, short rows read as empty, extra cells are ignored.
	p := NewPiece([][][]bool{
		{
			{true, true, true},
			{true},
			{true, true, true, true},
		},
	})

	x, y, z := p.Dimensions()
	s.Equal(3, x)
	s.Equal(3, y)
	s.Equal(1, z)
	s.Equal(7, p.CellCount())
	s.True(p.Filled(0, 1, 0))
	s.False(p.Filled(1, 1, 0))
	s.False(p.Filled(3, 2, 0))
}

func (s *PieceSuite) TestFilledOutOfRange() {
	p := NewPiece([][][]bool{{{true}}})

	s.True(p.Filled(0, 0, 0))
	s.False(p.Filled(-1, 0, 0))
	s.False(p.Filled(1, 0, 0))
	s.False(p.Filled(0, 0, 1))
}

func (s *PieceSuite) TestOffsets() {
	p := NewPiece([][][]bool{
		{
			{true, false},
			{false, true},
		},
		{
			{false, false},
			{false, true},
		},
	})

	s.ElementsMatch([]Position{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 1},
	}, p.Offsets())
}
