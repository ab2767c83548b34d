package piece

import (
	"log/slog"

	"github.com/willolsker/cube-blast/internal/dependencies/random"
	"github.com/willolsker/cube-blast/internal/model"
)

// Service produces randomly rotated pieces from the catalog
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new piece Service
func New(random random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: random,
		logger: logger,
	}
}

// Generate returns a uniformly chosen catalog shape with a uniformly
// chosen rotation triple applied. The random source is consumed in a
// fixed order (shape, rx, ry, rz) so generation is replayable.
func (s *Service) Generate() model.Piece {
	shape := Catalog[s.random.Intn(len(Catalog))]
	rx := s.random.Intn(4)
	ry := s.random.Intn(4)
	rz := s.random.Intn(4)
	return Rotate(shape, rx, ry, rz)
}

// Interface for dependency injection
type ServiceInterface interface {
	Generate() model.Piece
}

var _ ServiceInterface = (*Service)(nil)
