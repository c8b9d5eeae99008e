package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "museumctl",
		Short: "CLI tool for the museum journey API",
		Long: `museumctl is a CLI tool for interacting with the museum journey JSON API.

It supports all API operations including browsing the museum catalog,
account management, recording visits, and tracking badges and points.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: MUSEUMYATRA_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newMuseumsCmd())
	rootCmd.AddCommand(newVisitCmd())
	rootCmd.AddCommand(newWishlistCmd())
	rootCmd.AddCommand(newFavoriteCmd())
	rootCmd.AddCommand(newProgressCmd())
	rootCmd.AddCommand(newBadgesCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newHealthCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
