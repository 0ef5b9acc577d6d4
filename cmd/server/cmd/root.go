package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd runs serve when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "hackhub",
	Short: "HackHub server - hackathon and event management backend",
	Long: `HackHub serves the event management API: organizers publish hackathons with
tracks, prizes, sponsors and people; participants apply, form teams and submit projects.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

// Execute runs the root command. It is called once by main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
}
