package game

import (
	"context"
	"log/slog"

	"github.com/willolsker/cube-blast/internal/dependencies/clock"
	"github.com/willolsker/cube-blast/internal/dependencies/random"
	"github.com/willolsker/cube-blast/internal/model"
	"github.com/willolsker/cube-blast/internal/services/piece"
	"github.com/willolsker/cube-blast/internal/services/rules"
	"github.com/willolsker/cube-blast/internal/storage"
)

const gameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Controller manages game sessions: it holds the "current state" for each
// game in storage and funnels every change through the rules transitions.
type Controller struct {
	storage      storage.Storage
	pieceService *piece.Service
	clock        clock.Clock
	random       random.Random
	logger       *slog.Logger
}

// NewController creates a new game Controller
func NewController(
	storage storage.Storage,
	pieceService *piece.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:      storage,
		pieceService: pieceService,
		clock:        clock,
		random:       random,
		logger:       logger,
	}
}

// CreateGame starts a new game session with a fresh initial state
func (c *Controller) CreateGame(ctx context.Context) (*model.Game, error) {
	now := c.clock.Now()
	game := &model.Game{
		ID:        model.GameID(c.random.String(12, gameIDAlphabet)),
		State:     rules.NewGameState(c.pieceService),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created", slog.String("game_id", string(game.ID)))
	return game, nil
}

// GetGame retrieves a game session by ID
func (c *Controller) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, id)
}

// PlacePiece attempts to place the active piece at origin. The returned
// bool reports whether the placement was accepted; a rejected placement
// leaves the stored state untouched and is not an error.
func (c *Controller) PlacePiece(ctx context.Context, id model.GameID, origin model.Position) (*model.Game, bool, error) {
	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, false, err
	}

	next := rules.Apply(game.State, origin, c.pieceService)
	if next == game.State {
		return game, false, nil
	}

	game.State = next
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, false, err
	}

	c.logger.Info("piece placed",
		slog.String("game_id", string(id)),
		slog.Int("x", origin.X),
		slog.Int("y", origin.Y),
		slog.Int("z", origin.Z),
		slog.Int("score", next.Score),
		slog.Bool("game_over", next.GameOver),
	)

	return game, true, nil
}

// SelectSlot switches the active slot for a game. The returned bool
// reports whether the selection was accepted.
func (c *Controller) SelectSlot(ctx context.Context, id model.GameID, slot int) (*model.Game, bool, error) {
	if slot < 0 || slot >= model.SlotCount {
		return nil, false, model.ErrInvalidSlot
	}

	game, err := c.storage.GetGame(ctx, id)
	if err != nil {
		return nil, false, err
	}

	next := rules.SelectSlot(game.State, slot)
	if next == game.State {
		return game, false, nil
	}

	game.State = next
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, false, err
	}

	return game, true, nil
}

// PreviewPiece generates a piece without touching any game, so a UI can
// show what generation produces
func (c *Controller) PreviewPiece() model.Piece {
	return c.pieceService.Generate()
}

// DeleteGame removes a game session. Restart is delete plus create.
func (c *Controller) DeleteGame(ctx context.Context, id model.GameID) error {
	if err := c.storage.DeleteGame(ctx, id); err != nil {
		return err
	}
	c.logger.Info("game deleted", slog.String("game_id", string(id)))
	return nil
}
