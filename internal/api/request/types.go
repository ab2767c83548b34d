package request

// PlaceRequest is the request body for placing the active piece.
// Coordinates are the grid origin the piece's local (0,0,0) maps to.
type PlaceRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// SelectSlotRequest is the request body for switching the active slot
type SelectSlotRequest struct {
	Slot int `json:"slot"`
}
