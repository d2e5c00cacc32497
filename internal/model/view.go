package model

// Point is a single map marker handed to the rendering widget.
type Point struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Color   string  `json:"color"`
	Label   string  `json:"label"`
	Tooltip string  `json:"tooltip"`
	Link    string  `json:"link"`
}

// CompanionEntry is one row of the list shown next to the map.
type CompanionEntry struct {
	Name        string `json:"name"`
	Achievement string `json:"achievement"`
}

// ViewModel is the render-ready output of one filter recomputation.
// Points and CompanionList are index-aligned.
type ViewModel struct {
	Center         Coordinate       `json:"center"`
	Zoom           float64          `json:"zoom"`
	Region         string           `json:"region"`
	Category       string           `json:"category"`
	DatasetVersion string           `json:"datasetVersion,omitempty"`
	Points         []Point          `json:"points"`
	CompanionList  []CompanionEntry `json:"companionList"`
}

// Len returns the number of markers in the view.
func (v ViewModel) Len() int {
	return len(v.Points)
}
