package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the configuration and load the dataset and regions without serving",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initApp(cmd.Context(), cfg, "load")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok: %d records, %d categories, %d regions (dataset %s)\n",
			env.Store.Len(), len(env.Store.Categories()), env.Regions.Len(), env.Store.Version())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
