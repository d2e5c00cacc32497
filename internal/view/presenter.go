package view

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rotisserie/eris"

	"github.com/sells-group/stemmap/internal/model"
)

// Presenter draws a view model. Implementations own all layout and markup;
// opening a point's link on click is also theirs.
type Presenter interface {
	Present(ctx context.Context, vm model.ViewModel) error
}

// JSONPresenter writes the view model as a JSON document.
type JSONPresenter struct {
	W      io.Writer
	Indent bool
}

// Present implements Presenter.
func (p JSONPresenter) Present(_ context.Context, vm model.ViewModel) error {
	enc := json.NewEncoder(p.W)
	if p.Indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(vm); err != nil {
		return eris.Wrap(err, "view: encode json")
	}
	return nil
}

// TablePresenter writes a plain-text summary: the map view, the markers, and
// the companion list.
type TablePresenter struct {
	W io.Writer
}

// Present implements Presenter.
func (p TablePresenter) Present(_ context.Context, vm model.ViewModel) error {
	tw := tabwriter.NewWriter(p.W, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Region:\t%s\n", vm.Region)
	fmt.Fprintf(tw, "Category:\t%s\n", vm.Category)
	fmt.Fprintf(tw, "Center:\t%.4f, %.4f\n", vm.Center.Lat, vm.Center.Lon)
	fmt.Fprintf(tw, "Zoom:\t%g\n", vm.Zoom)
	fmt.Fprintf(tw, "Points:\t%d\n\n", vm.Len())

	fmt.Fprintln(tw, "NAME\tLAT\tLON\tCOLOR\tLINK")
	for _, pt := range vm.Points {
		fmt.Fprintf(tw, "%s\t%.5f\t%.5f\t%s\t%s\n", pt.Label, pt.Lat, pt.Lon, pt.Color, pt.Link)
	}

	fmt.Fprintln(tw, "\nNAME\tACHIEVEMENT")
	for _, c := range vm.CompanionList {
		fmt.Fprintf(tw, "%s\t%s\n", c.Name, c.Achievement)
	}

	if err := tw.Flush(); err != nil {
		return eris.Wrap(err, "view: write table")
	}
	return nil
}

// GeoJSONPresenter writes the points as a GeoJSON FeatureCollection.
type GeoJSONPresenter struct {
	W io.Writer
}

// Present implements Presenter.
func (p GeoJSONPresenter) Present(_ context.Context, vm model.ViewModel) error {
	data, err := EncodeGeoJSON(vm)
	if err != nil {
		return err
	}
	if _, err := p.W.Write(append(data, '\n')); err != nil {
		return eris.Wrap(err, "view: write geojson")
	}
	return nil
}
