package model

const EntityName = "venue"

type Target string

const (
	TargetVenues Target = "venues"
	TargetCourts Target = "courts"
)

type Venue struct {
	ID          string   `json:"id"                    validate:"required"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	SportTypes  []string `json:"sportTypes,omitempty"`
	Rating      float64  `json:"rating"`
	MinPrice    int64    `json:"minPrice,omitempty"`
	MaxPrice    int64    `json:"maxPrice,omitempty"`
	OpenTime    string   `json:"openTime,omitempty"`
	CloseTime   string   `json:"closeTime,omitempty"`
	Images      []string `json:"images,omitempty"`
	Courts      []Court  `json:"courts,omitempty"      validate:"omitempty,dive"`
}

type Court struct {
	ID           string `json:"id"           validate:"required"`
	VenueID      string `json:"venueId"`
	Name         string `json:"name"`
	SportType    string `json:"sportType"`
	PricePerHour int64  `json:"pricePerHour"`
	Status       string `json:"status,omitempty"`
}
