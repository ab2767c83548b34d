package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/willolsker/cube-blast/internal/api/apierr"
	"github.com/willolsker/cube-blast/internal/api/request"
	"github.com/willolsker/cube-blast/internal/api/response"
	"github.com/willolsker/cube-blast/internal/model"
	"github.com/willolsker/cube-blast/internal/services/game"
)

// GameHandler handles game-related endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	g, err := h.gameController.CreateGame(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Place handles POST /api/v1/games/{id}/placements
func (h *GameHandler) Place(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.PlaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	origin := model.Position{X: req.X, Y: req.Y, Z: req.Z}
	g, accepted, err := h.gameController.PlacePiece(r.Context(), id, origin)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlacementResult{
		Accepted: accepted,
		Game:     response.GameFromModel(g),
	})
}

// SelectSlot handles POST /api/v1/games/{id}/active-slot
func (h *GameHandler) SelectSlot(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.SelectSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Invalid JSON body"))
		return
	}

	g, accepted, err := h.gameController.SelectSlot(r.Context(), id, req.Slot)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlacementResult{
		Accepted: accepted,
		Game:     response.GameFromModel(g),
	})
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.gameController.DeleteGame(r.Context(), id); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// PreviewPiece handles GET /api/v1/pieces/preview
func (h *GameHandler) PreviewPiece(w http.ResponseWriter, r *http.Request) {
	p := h.gameController.PreviewPiece()
	response.JSON(w, http.StatusOK, response.PieceFromModel(p))
}
