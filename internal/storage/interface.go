package storage

import (
	"context"

	"github.com/willolsker/cube-blast/internal/model"
)

// Storage defines the interface for game session persistence
type Storage interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
	GameExists(ctx context.Context, id model.GameID) (bool, error)
}
