package domain

// PlaceQuery is a nearby search around a point.
type PlaceQuery struct {
	Latitude     float64 `validate:"latitude"`
	Longitude    float64 `validate:"longitude"`
	RadiusMeters int     `validate:"gte=100,lte=50000"`
	PlaceType    string  `validate:"required,max=50"`
}

// Defaults applied by the HTTP layer when a field is omitted.
const (
	DefaultPlaceRadius = 1000
	DefaultPlaceType   = "restaurant"
)

// Place is a single nearby search result.
type Place struct {
	ID      string  `json:"place_id,omitempty"`
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Rating  float64 `json:"rating"`
	Address string  `json:"address"`
}
