package cli

import (
	"github.com/spf13/cobra"
)

func newPieceCmd() *cobra.Command {
	pieceCmd := &cobra.Command{
		Use:   "piece",
		Short: "Piece operations",
	}

	pieceCmd.AddCommand(&cobra.Command{
		Use:   "preview",
		Short: "Generate a piece to preview the generator's output",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Piece
			if err := client.Get("/api/v1/pieces/preview", &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	})

	return pieceCmd
}
