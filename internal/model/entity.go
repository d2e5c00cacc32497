package model

// Entity is one person in the dataset.
type Entity struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Institution string  `json:"institution,omitempty"`
	Achievement string  `json:"achievement,omitempty"`
	Contact     string  `json:"contact,omitempty"` // URL or empty
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Color       string  `json:"color"` // assigned once at load time
}

// Coordinate returns the entity's position.
func (e Entity) Coordinate() Coordinate {
	return Coordinate{Lat: e.Latitude, Lon: e.Longitude}
}

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
