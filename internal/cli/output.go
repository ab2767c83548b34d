package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Game:
		o.printGame(v)
	case Piece:
		o.printPiece(v)
	case PlacementResult:
		o.printPlacementResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Piece response type (matches API)
type Piece struct {
	XSize int    `json:"x_size"`
	YSize int    `json:"y_size"`
	ZSize int    `json:"z_size"`
	Cells []bool `json:"cells"`
}

// Board response type
type Board struct {
	Size  int    `json:"size"`
	Cells []bool `json:"cells"`
}

// Game response type
type Game struct {
	ID         string   `json:"id"`
	Board      Board    `json:"board"`
	Slots      []*Piece `json:"slots"`
	ActiveSlot int      `json:"active_slot"`
	Score      int      `json:"score"`
	GameOver   bool     `json:"game_over"`
}

// PlacementResult response type
type PlacementResult struct {
	Accepted bool `json:"accepted"`
	Game     Game `json:"game"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game:   %s\n", g.ID)
	fmt.Printf("Score:  %d\n", g.Score)
	if g.GameOver {
		fmt.Println("Status: game over")
	} else {
		fmt.Println("Status: playing")
	}
	for i, p := range g.Slots {
		marker := " "
		if i == g.ActiveSlot {
			marker = "*"
		}
		if p == nil {
			fmt.Printf("Slot %d%s: (empty)\n", i, marker)
		} else {
			fmt.Printf("Slot %d%s: %dx%dx%d, %d cells\n", i, marker, p.XSize, p.YSize, p.ZSize, countCells(p.Cells))
		}
	}
	fmt.Println("Board (one grid per z layer, rows are y, columns are x):")
	fmt.Print(renderLayers(g.Board.Size, g.Board.Size, g.Board.Size, g.Board.Cells))
}

func (o *Output) printPiece(p Piece) {
	fmt.Printf("Piece: %dx%dx%d, %d cells\n", p.XSize, p.YSize, p.ZSize, countCells(p.Cells))
	fmt.Print(renderLayers(p.XSize, p.YSize, p.ZSize, p.Cells))
}

func (o *Output) printPlacementResult(r PlacementResult) {
	if r.Accepted {
		fmt.Println("Accepted")
	} else {
		fmt.Println("Rejected (state unchanged)")
	}
	o.printGame(r.Game)
}

func (o *Output) printHealthResult(r HealthResult) {
	fmt.Printf("Status: %s\n", r.Status)
}

func countCells(cells []bool) int {
	n := 0
	for _, c := range cells {
		if c {
			n++
		}
	}
	return n
}

// renderLayers draws a flat [z][y][x] cell slice as one text grid per z
// layer, '#' for occupied and '.' for empty.
func renderLayers(xSize, ySize, zSize int, cells []bool) string {
	var sb strings.Builder
	for z := 0; z < zSize; z++ {
		fmt.Fprintf(&sb, "z=%d\n", z)
		for y := 0; y < ySize; y++ {
			for x := 0; x < xSize; x++ {
				if cells[(z*ySize+y)*xSize+x] {
					sb.WriteByte('#')
				} else {
					sb.WriteByte('.')
				}
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
