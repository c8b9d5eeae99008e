package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newVisitCmd() *cobra.Command {
	var rating int
	var note string

	cmd := &cobra.Command{
		Use:   "visit <museum-id>",
		Short: "Record a museum visit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"museum_id": args[0],
			}
			if rating != 0 {
				req["rating"] = rating
			}
			if note != "" {
				req["note"] = note
			}

			var result VisitResult
			if err := client.Post("/api/v1/visits", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&rating, "rating", "r", 0, "Rating from 1 to 5")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Visit note")

	return cmd
}

func newWishlistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wishlist <museum-id>",
		Short: "Toggle a museum on the wishlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ToggleResult

			path := fmt.Sprintf("/api/v1/wishlist/%s/toggle", url.PathEscape(args[0]))
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newFavoriteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "favorite <museum-id>",
		Short: "Toggle a museum in favorites",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result ToggleResult

			path := fmt.Sprintf("/api/v1/favorites/%s/toggle", url.PathEscape(args[0]))
			if err := client.Post(path, nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Show the current journey dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Progress

			if err := client.Get("/api/v1/me/progress", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newBadgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "badges",
		Short: "Show the badge board",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result BadgeBoard

			if err := client.Get("/api/v1/badges", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Reset the current journey (badges are kept)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Post("/api/v1/me/reset", nil, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Journey reset.")
			return nil
		},
	}
}
