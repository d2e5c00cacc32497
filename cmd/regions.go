package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/stemmap/internal/region"
)

var regionsCmd = &cobra.Command{
	Use:   "regions",
	Short: "List the configured map regions",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := region.LoadFile(cfg.Regions.Path)
		if err != nil {
			return err
		}
		return printRegions(cmd.OutOrStdout(), reg)
	},
}

func printRegions(w io.Writer, reg *region.Registry) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLABEL\tLAT\tLON\tZOOM\tDEFAULT")
	def := reg.Default().Name
	for _, r := range reg.Options() {
		mark := ""
		if r.Name == def {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\t%g\t%s\n",
			r.Name, r.DisplayLabel(), r.Center.Lat, r.Center.Lon, r.Zoom, mark)
	}
	return eris.Wrap(tw.Flush(), "write regions")
}

func init() {
	rootCmd.AddCommand(regionsCmd)
}
