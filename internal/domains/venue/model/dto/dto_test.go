package dto_test

import (
	"courtbook/internal/domains/venue/model"
	"courtbook/internal/domains/venue/model/dto"
	"courtbook/shared/failure"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchData_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name           string
		payload        string
		expectedVenues int
		expectedCourts int
		expectedTotal  int
	}{
		{
			name:           "bare array",
			payload:        `[{"id":"v1","name":"Sân A"},{"id":"v2","name":"Sân B"}]`,
			expectedVenues: 2,
		},
		{
			name:           "object with venues",
			payload:        `{"venues":[{"id":"v1"}],"total":31,"page":2,"totalPages":4}`,
			expectedVenues: 1,
			expectedTotal:  31,
		},
		{
			name:           "object with courts",
			payload:        `{"courts":[{"id":"c1","venueId":"v1","pricePerHour":120000}],"total":1}`,
			expectedCourts: 1,
			expectedTotal:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data dto.SearchData

			require.NoError(t, json.Unmarshal([]byte(tt.payload), &data))
			assert.Len(t, data.Venues, tt.expectedVenues)
			assert.Len(t, data.Courts, tt.expectedCourts)
			assert.Equal(t, tt.expectedTotal, data.Total)
		})
	}
}

func TestSearchData_ToResult(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		page     int
		limit    int
		expected dto.SearchResult
	}{
		{
			name:    "counters from backend",
			payload: `{"venues":[{"id":"v1"}],"total":31,"page":2,"totalPages":4}`,
			page:    1,
			limit:   10,
			expected: dto.SearchResult{
				Total: 31, Page: 2, TotalPages: 4, HasNext: true, HasPrev: true,
			},
		},
		{
			name:    "total pages computed when missing",
			payload: `{"venues":[{"id":"v1"}],"total":25}`,
			page:    3,
			limit:   10,
			expected: dto.SearchResult{
				Total: 25, Page: 3, TotalPages: 3, HasNext: false, HasPrev: true,
			},
		},
		{
			name:    "bare array is a single page",
			payload: `[{"id":"v1"},{"id":"v2"}]`,
			page:    1,
			limit:   10,
			expected: dto.SearchResult{
				Total: 2, Page: 1, TotalPages: 1, HasNext: false, HasPrev: false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data dto.SearchData
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &data))

			result := data.ToResult(tt.page, tt.limit)

			assert.Equal(t, tt.expected.Total, result.Total)
			assert.Equal(t, tt.expected.Page, result.Page)
			assert.Equal(t, tt.expected.TotalPages, result.TotalPages)
			assert.Equal(t, tt.expected.HasNext, result.HasNext)
			assert.Equal(t, tt.expected.HasPrev, result.HasPrev)
		})
	}
}

func TestSearchRequest_Normalize(t *testing.T) {
	minPrice, maxPrice := int64(200000), int64(100000)

	req := dto.SearchRequest{MinPrice: &minPrice, MaxPrice: &maxPrice}
	err := req.Normalize()

	require.Error(t, err)
	assert.Equal(t, "maxPrice", failure.GetField(err))

	req = dto.SearchRequest{SportType: "badminton"}
	require.NoError(t, req.Normalize())
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 10, req.Limit)
	assert.Equal(t, "venues", string(req.Target))
}

func TestEmptyResult(t *testing.T) {
	result := dto.EmptyResult(1)

	assert.Equal(t, 0, result.Total)
	assert.Equal(t, 1, result.TotalPages)
	assert.False(t, result.HasNext)
	assert.False(t, result.HasPrev)
}

func TestSearchResult_MarshalJSON(t *testing.T) {
	tests := []struct {
		name           string
		result         dto.SearchResult
		expectedKey    string
		absentKey      string
		expectedLength int
	}{
		{
			name:        "empty venue search keeps the venues key",
			result:      dto.EmptyResult(1),
			expectedKey: "venues",
			absentKey:   "courts",
		},
		{
			name:        "empty court search keeps the courts key",
			result:      dto.EmptyResult(1).WithTarget(model.TargetCourts),
			expectedKey: "courts",
			absentKey:   "venues",
		},
		{
			name:           "venues found",
			result:         dto.SearchResult{Venues: []model.Venue{{ID: "v1"}}, Total: 1, Page: 1, TotalPages: 1}.WithTarget(model.TargetVenues),
			expectedKey:    "venues",
			absentKey:      "courts",
			expectedLength: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.result)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, json.Unmarshal(raw, &got))

			list, ok := got[tt.expectedKey].([]any)
			require.True(t, ok, string(raw))
			assert.Len(t, list, tt.expectedLength)
			assert.NotContains(t, got, tt.absentKey)
			assert.Contains(t, got, "totalPages")
			assert.NotContains(t, got, "Target")
		})
	}
}
