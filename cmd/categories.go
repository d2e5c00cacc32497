package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sells-group/stemmap/internal/view"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the STEM fields offered by the category filter",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initApp(cmd.Context(), cfg, "load")
		if err != nil {
			return err
		}
		return printCategories(cmd.OutOrStdout(), env.Pipeline)
	},
}

func printCategories(w io.Writer, p *view.Pipeline) error {
	for _, c := range p.CategoryOptions() {
		if _, err := fmt.Fprintln(w, c); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
