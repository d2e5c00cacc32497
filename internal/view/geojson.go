package view

import (
	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/stemmap/internal/model"
)

// EncodeGeoJSON converts the view's points to a GeoJSON FeatureCollection.
// Each feature carries color, label, tooltip, and link properties; the
// collection's bbox covers all points.
func EncodeGeoJSON(vm model.ViewModel) ([]byte, error) {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(vm.Points))}

	bounds := geom.NewBounds(geom.XY)
	for _, p := range vm.Points {
		pt := geom.NewPointFlat(geom.XY, []float64{p.Lon, p.Lat})
		bounds.Extend(pt)
		fc.Features = append(fc.Features, &geojson.Feature{
			Geometry: pt,
			Properties: map[string]any{
				"color":   p.Color,
				"label":   p.Label,
				"tooltip": p.Tooltip,
				"link":    p.Link,
			},
		})
	}
	if len(vm.Points) > 0 {
		fc.BBox = bounds
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "view: encode geojson")
	}
	return data, nil
}
