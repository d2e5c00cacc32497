package model

// Region is a named map view: a center coordinate and a zoom level.
type Region struct {
	Name   string     `json:"name"`
	Label  string     `json:"label,omitempty"`
	Center Coordinate `json:"center"`
	Zoom   float64    `json:"zoom"`
}

// DisplayLabel returns Label, or Name when no label is set.
func (r Region) DisplayLabel() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Name
}
