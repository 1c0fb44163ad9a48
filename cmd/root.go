package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ferro",
	Short: "CLI strength coach: session-over-session progression, live session tracking, rehab and pain handling",
}

func Execute() error {
	return rootCmd.Execute()
}
