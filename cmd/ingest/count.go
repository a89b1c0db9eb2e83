package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Print the number of indexed chunks",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(true)
		if err != nil {
			return err
		}
		n, err := e.repo.Count(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(countCmd)
}
