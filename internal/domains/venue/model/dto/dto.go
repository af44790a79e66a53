package dto

import (
	"bytes"
	"courtbook/internal/domains/venue/model"
	"courtbook/shared"
	"courtbook/shared/constant"
	"courtbook/shared/failure"
	"encoding/json"
	"fmt"
)

// SearchRequest holds the venue and court filters. Zero numeric filters are omitted.
type SearchRequest struct {
	Target    model.Target `json:"target,omitempty"    validate:"omitempty,oneof=venues courts"`
	SportType string       `json:"sportType,omitempty" validate:"omitempty,max=50"`
	Location  string       `json:"location,omitempty"  validate:"omitempty,max=200"`
	MinRating *float64     `json:"minRating,omitempty" validate:"omitempty,gte=0,lte=5"`
	MinPrice  *int64       `json:"minPrice,omitempty"  validate:"omitempty,gte=0"`
	MaxPrice  *int64       `json:"maxPrice,omitempty"  validate:"omitempty,gte=0"`
	Page      int          `json:"page"                validate:"omitempty,gte=0"`
	Limit     int          `json:"limit"               validate:"omitempty,gte=0,lte=100"`
}

// Normalize applies paging defaults and checks the price range.
func (r *SearchRequest) Normalize() error {
	if r.MinPrice != nil && r.MaxPrice != nil && *r.MinPrice > *r.MaxPrice {
		return failure.Validation("maxPrice", "must be greater than or equal to minPrice") //nolint:wrapcheck
	}

	if r.Page <= 0 {
		r.Page = constant.DefaultValuePage
	}

	if r.Limit <= 0 {
		r.Limit = constant.DefaultValueLimit
	}

	if r.Target == "" {
		r.Target = model.TargetVenues
	}

	return nil
}

// SearchResult is the paginated answer to any venue or court listing.
type SearchResult struct {
	Venues     []model.Venue `json:"venues,omitempty"`
	Courts     []model.Court `json:"courts,omitempty"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	HasNext    bool          `json:"hasNext"`
	HasPrev    bool          `json:"hasPrev"`
	// Target decides which list is always present in the response. Empty means venues.
	Target model.Target `json:"-"`
}

func (r SearchResult) WithTarget(target model.Target) SearchResult {
	r.Target = target

	return r
}

// MarshalJSON always writes the list of the requested target, as [] when nothing matched.
func (r SearchResult) MarshalJSON() ([]byte, error) {
	type plain SearchResult

	out := struct {
		plain
		Venues *[]model.Venue `json:"venues,omitempty"`
		Courts *[]model.Court `json:"courts,omitempty"`
	}{plain: plain(r)}

	if len(r.Venues) > 0 || r.Target != model.TargetCourts {
		venues := r.Venues
		if venues == nil {
			venues = []model.Venue{}
		}

		out.Venues = &venues
	}

	if len(r.Courts) > 0 || r.Target == model.TargetCourts {
		courts := r.Courts
		if courts == nil {
			courts = []model.Court{}
		}

		out.Courts = &courts
	}

	return json.Marshal(out) //nolint:wrapcheck
}

// SearchData is the backend data member of a listing. The backend returns either a bare array of
// venues or an object carrying the items and paging counters.
type SearchData struct {
	Venues     []model.Venue `json:"venues"     validate:"omitempty,dive"`
	Courts     []model.Court `json:"courts"     validate:"omitempty,dive"`
	Total      int           `json:"total"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

func (d *SearchData) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	if len(trimmed) > 0 && trimmed[0] == '[' {
		var venues []model.Venue
		if err := json.Unmarshal(trimmed, &venues); err != nil {
			return fmt.Errorf("failed to decode venue list: %w", err)
		}

		*d = SearchData{Venues: venues}

		return nil
	}

	type plain SearchData

	var decoded plain
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return fmt.Errorf("failed to decode search data: %w", err)
	}

	*d = SearchData(decoded)

	return nil
}

// ToResult fills the paging counters the backend left out.
func (d SearchData) ToResult(page, limit int) SearchResult {
	total := d.Total
	if total == 0 {
		total = len(d.Venues) + len(d.Courts)
	}

	if d.Page > 0 {
		page = d.Page
	}

	if page <= 0 {
		page = constant.DefaultValuePage
	}

	totalPages := d.TotalPages
	if totalPages <= 0 {
		totalPages = shared.CalculateTotalPage(total, limit)
	}

	return SearchResult{
		Venues:     d.Venues,
		Courts:     d.Courts,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// EmptyResult is returned when the backend answers without data.
func EmptyResult(page int) SearchResult {
	return SearchData{}.ToResult(page, constant.DefaultValueLimit)
}

type GeocodeResponse struct {
	VenueID          string  `json:"venueId"`
	Address          string  `json:"address"`
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formattedAddress"`
	PlaceID          string  `json:"placeId,omitempty"`
}
