package region

import "github.com/sells-group/stemmap/internal/model"

// Bolivia returns the built-in regions: the three largest cities plus the
// whole-country view.
func Bolivia() []model.Region {
	return []model.Region{
		{Name: "La Paz", Center: model.Coordinate{Lat: -16.5000, Lon: -68.1500}, Zoom: 12},
		{Name: "Santa Cruz", Center: model.Coordinate{Lat: -17.7833, Lon: -63.1823}, Zoom: 12},
		{Name: "Tarija", Center: model.Coordinate{Lat: -21.5333, Lon: -64.7333}, Zoom: 12},
		{Name: All, Label: "Ver toda Bolivia", Center: model.Coordinate{Lat: -17.0, Lon: -65.0}, Zoom: 5},
	}
}

// Builtin returns a Registry over Bolivia() with All as default.
func Builtin() *Registry {
	r, err := New(All, Bolivia())
	if err != nil {
		panic(err) // static data
	}
	return r
}
