package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newMuseumsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "museums",
		Short: "Museum catalog commands",
	}

	cmd.AddCommand(newMuseumsListCmd())
	cmd.AddCommand(newMuseumsShowCmd())

	return cmd
}

func newMuseumsListCmd() *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List museums in the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/museums"
			if query != "" {
				path += "?q=" + url.QueryEscape(query)
			}

			var result MuseumList
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Filter by name, city or description")

	return cmd
}

func newMuseumsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <museum-id>",
		Short: "Show details for one museum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Museum

			path := fmt.Sprintf("/api/v1/museums/%s", url.PathEscape(args[0]))
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
