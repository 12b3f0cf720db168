package obj

// Coordinates is a GeoJSON point, longitude first.
type Coordinates struct {
	Coordinates [2]float64 `json:"coordinates"`
	Kind        string     `json:"type"`
}

func (c Coordinates) Longitude() float64 {
	return c.Coordinates[0]
}

func (c Coordinates) Latitude() float64 {
	return c.Coordinates[1]
}

// Place is a named region associated with a status.
type Place struct {
	ID          string      `json:"id"`
	URL         string      `json:"url"`
	PlaceType   string      `json:"place_type"`
	Name        string      `json:"name"`
	FullName    string      `json:"full_name"`
	CountryCode string      `json:"country_code"`
	Country     string      `json:"country"`
	BoundingBox BoundingBox `json:"bounding_box"`
}

type BoundingBox struct {
	Coordinates [][][2]float64 `json:"coordinates"`
	Kind        *string        `json:"type,omitzero"`
}
