package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	gameCmd := &cobra.Command{
		Use:   "game",
		Short: "Game operations",
	}

	gameCmd.AddCommand(newGameNewCmd())
	gameCmd.AddCommand(newGameShowCmd())
	gameCmd.AddCommand(newGamePlaceCmd())
	gameCmd.AddCommand(newGameSlotCmd())
	gameCmd.AddCommand(newGameDeleteCmd())

	return gameCmd
}

func newGameNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new game",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game
			if err := client.Post("/api/v1/games", nil, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <game-id>",
		Short: "Show a game's state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Game
			if err := client.Get("/api/v1/games/"+args[0], &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGamePlaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "place <game-id> <x> <y> <z>",
		Short: "Place the active piece at a grid origin",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			coords := make([]int, 3)
			for i, arg := range args[1:] {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("invalid coordinate %q", arg)
				}
				coords[i] = n
			}

			body := map[string]int{"x": coords[0], "y": coords[1], "z": coords[2]}
			var result PlacementResult
			if err := client.Post("/api/v1/games/"+args[0]+"/placements", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameSlotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slot <game-id> <slot>",
		Short: "Select the active piece slot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid slot %q", args[1])
			}

			body := map[string]int{"slot": slot}
			var result PlacementResult
			if err := client.Post("/api/v1/games/"+args[0]+"/active-slot", body, &result); err != nil {
				return err
			}

			NewOutput(cfg.Output).Print(result)
			return nil
		},
	}
}

func newGameDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <game-id>",
		Short: "Delete a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/games/" + args[0]); err != nil {
				return err
			}

			fmt.Println("Deleted")
			return nil
		},
	}
}
