package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/analyzejd/analyzejd/internal/server"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the analyzejd version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "analyzejd %s\n", server.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
