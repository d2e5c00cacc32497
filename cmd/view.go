package main

import (
	"context"
	"io"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/stemmap/internal/view"
)

var (
	viewCategory string
	viewRegion   string
	viewFormat   string
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Compute one map view and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initApp(cmd.Context(), cfg, "view")
		if err != nil {
			return err
		}
		return runView(cmd.Context(), cmd.OutOrStdout(), env.Pipeline, viewCategory, viewRegion, viewFormat)
	},
}

// runView computes the view for category and region and writes it in format.
// An empty region selects the registry default.
func runView(ctx context.Context, w io.Writer, p *view.Pipeline, category, region, format string) error {
	presenter, err := presenterFor(format, w)
	if err != nil {
		return err
	}
	if region == "" {
		region = p.DefaultRegion()
	}
	return presenter.Present(ctx, p.Compute(category, region))
}

func presenterFor(format string, w io.Writer) (view.Presenter, error) {
	switch format {
	case "table", "":
		return view.TablePresenter{W: w}, nil
	case "json":
		return view.JSONPresenter{W: w, Indent: true}, nil
	case "geojson":
		return view.GeoJSONPresenter{W: w}, nil
	default:
		return nil, eris.Errorf("unknown format %q (want table, json, or geojson)", format)
	}
}

func init() {
	viewCmd.Flags().StringVar(&viewCategory, "category", view.AllCategories, "STEM field to show")
	viewCmd.Flags().StringVar(&viewRegion, "region", "", "region to center on (default: all regions)")
	viewCmd.Flags().StringVar(&viewFormat, "format", "table", "output format: table, json, geojson")
	rootCmd.AddCommand(viewCmd)
}
