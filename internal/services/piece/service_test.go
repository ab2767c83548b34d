package piece

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/willolsker/cube-blast/internal/dependencies/mocks"
	"github.com/willolsker/cube-blast/internal/model"
	"github.com/willolsker/cube-blast/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	random  *mocks.MockRandom
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.random = mocks.NewMockRandom()
	s.service = New(s.random, testutil.NopLogger())
}

// Catalog tests

func (s *ServiceSuite) TestCatalogShapes() {
	s.Len(Catalog, 4)

	// 2x3x2 prism
	s.Equal(2, Catalog[0].XSize)
	s.Equal(3, Catalog[0].YSize)
	s.Equal(2, Catalog[0].ZSize)
	s.Equal(12, Catalog[0].CellCount())

	// 1x8x1 bar
	s.Equal(1, Catalog[1].XSize)
	s.Equal(8, Catalog[1].YSize)
	s.Equal(1, Catalog[1].ZSize)
	s.Equal(8, Catalog[1].CellCount())

	// L and T, one layer deep
	s.Equal(5, Catalog[2].CellCount())
	s.Equal(5, Catalog[3].CellCount())
	s.Equal(1, Catalog[2].ZSize)
	s.Equal(1, Catalog[3].ZSize)
}

func (s *ServiceSuite) TestCatalogFitsBoard() {
	for _, p := range Catalog {
		s.LessOrEqual(p.XSize, model.GridSize)
		s.LessOrEqual(p.YSize, model.GridSize)
		s.LessOrEqual(p.ZSize, model.GridSize)
	}
}

// Generate tests

func (s *ServiceSuite) TestGenerateConsumesShapeThenRotations() {
	// Shape 1 (the bar), no rotation
	s.random.QueueIntn(1, 0, 0, 0)

	p := s.service.Generate()
	s.Equal(1, p.XSize)
	s.Equal(8, p.YSize)
	s.Equal(1, p.ZSize)
}

func (s *ServiceSuite) TestGenerateRotatesBar() {
	// Bar with one quarter-turn about X: Y and Z extents swap
	s.random.QueueIntn(1, 1, 0, 0)

	p := s.service.Generate()
	s.Equal(1, p.XSize)
	s.Equal(1, p.YSize)
	s.Equal(8, p.ZSize)
	s.Equal(8, p.CellCount())
}

func (s *ServiceSuite) TestGenerateExhaustedQueueDefaultsToFirstShape() {
	p := s.service.Generate()
	s.Equal(Catalog[0], p)
}

// Rotation tests

func (s *ServiceSuite) TestRotationPreservesCellCount() {
	for _, shape := range Catalog {
		want := shape.CellCount()
		for rx := 0; rx < 4; rx++ {
			for ry := 0; ry < 4; ry++ {
				for rz := 0; rz < 4; rz++ {
					s.Equal(want, Rotate(shape, rx, ry, rz).CellCount())
				}
			}
		}
	}
}

func (s *ServiceSuite) TestFourQuarterTurnsAreIdentity() {
	for _, shape := range Catalog {
		s.Equal(shape, RotateX(RotateX(RotateX(RotateX(shape)))))
		s.Equal(shape, RotateY(RotateY(RotateY(RotateY(shape)))))
		s.Equal(shape, RotateZ(RotateZ(RotateZ(RotateZ(shape)))))
	}
}

func (s *ServiceSuite) TestRotateZMapping() {
	// L shape: left column plus bottom row. A quarter-turn about Z sends
	// (x, y) to (y, xSize-1-x): bottom row plus right column.
	l := Catalog[2]
	rotated := RotateZ(l)

	s.Equal(3, rotated.XSize)
	s.Equal(3, rotated.YSize)
	s.Equal(1, rotated.ZSize)

	s.False(rotated.Filled(0, 0, 0))
	s.False(rotated.Filled(1, 0, 0))
	s.True(rotated.Filled(2, 0, 0))
	s.False(rotated.Filled(0, 1, 0))
	s.True(rotated.Filled(2, 1, 0))
	s.True(rotated.Filled(0, 2, 0))
	s.True(rotated.Filled(1, 2, 0))
	s.True(rotated.Filled(2, 2, 0))
}

func (s *ServiceSuite) TestRotateXMapping() {
	// Bar along Y becomes a bar along Z
	bar := Catalog[1]
	rotated := RotateX(bar)

	s.Equal(1, rotated.XSize)
	s.Equal(1, rotated.YSize)
	s.Equal(8, rotated.ZSize)
	for z := 0; z < 8; z++ {
		s.True(rotated.Filled(0, 0, z))
	}
}

func (s *ServiceSuite) TestRotationOrderMatters() {
	// X-then-Z differs from Z-then-X for an asymmetric shape
	l := Catalog[2]

	xz := RotateZ(RotateX(l))
	zx := RotateX(RotateZ(l))
	s.NotEqual(xz, zx)

	// Rotate applies X, then Y, then Z
	s.Equal(xz, Rotate(l, 1, 0, 1))
}
