package response

import (
	"time"

	"github.com/willolsker/cube-blast/internal/model"
)

// Piece represents a piece shape in API responses
type Piece struct {
	XSize int    `json:"x_size"`
	YSize int    `json:"y_size"`
	ZSize int    `json:"z_size"`
	Cells []bool `json:"cells"`
}

// PieceFromModel converts a model.Piece to a response Piece
func PieceFromModel(p model.Piece) Piece {
	return Piece{
		XSize: p.XSize,
		YSize: p.YSize,
		ZSize: p.ZSize,
		Cells: p.Cells,
	}
}

// Board represents the playfield in API responses
type Board struct {
	Size  int    `json:"size"`
	Cells []bool `json:"cells"`
}

// Game represents a game session in API responses
type Game struct {
	ID         string    `json:"id"`
	Board      Board     `json:"board"`
	Slots      []*Piece  `json:"slots"` // null entries are consumed slots
	ActiveSlot int       `json:"active_slot"`
	Score      int       `json:"score"`
	GameOver   bool      `json:"game_over"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	slots := make([]*Piece, model.SlotCount)
	for i, p := range g.State.Slots {
		if p != nil {
			resp := PieceFromModel(*p)
			slots[i] = &resp
		}
	}

	return Game{
		ID: string(g.ID),
		Board: Board{
			Size:  g.State.Board.Size,
			Cells: g.State.Board.Cells,
		},
		Slots:      slots,
		ActiveSlot: g.State.ActiveSlot,
		Score:      g.State.Score,
		GameOver:   g.State.GameOver,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.UpdatedAt,
	}
}

// PlacementResult reports the outcome of a placement or slot selection.
// Accepted is false for rejected requests, which leave the game unchanged.
type PlacementResult struct {
	Accepted bool `json:"accepted"`
	Game     Game `json:"game"`
}
