package venue_test

import (
	"courtbook/infras/otel/mocks"
	venueMocks "courtbook/internal/domains/venue/mocks"
	"courtbook/internal/domains/venue/model"
	"courtbook/internal/domains/venue/model/dto"
	"courtbook/internal/handlers/venue"
	gDto "courtbook/shared/dto"
	"courtbook/shared/failure"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*venueMocks.MockVenueService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := venueMocks.NewMockVenueService(ctrl)
	handler := venue.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func TestHandler_SearchVenues(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		setupMock     func(svc *venueMocks.MockVenueService)
		expectedCode  int
		expectedField string
	}{
		{
			name: "search forwarded",
			body: `{"sportType":"badminton","location":"Quận 7"}`,
			setupMock: func(svc *venueMocks.MockVenueService) {
				svc.EXPECT().
					Search(gomock.Any(), dto.SearchRequest{SportType: "badminton", Location: "Quận 7"}).
					Return(dto.SearchResult{Venues: []model.Venue{{ID: "v1"}}, Total: 1, Page: 1, TotalPages: 1}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "malformed body",
			body:         `{"sportType":`,
			setupMock:    func(_ *venueMocks.MockVenueService) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "price range rejected",
			body: `{"minPrice":300000,"maxPrice":100000}`,
			setupMock: func(svc *venueMocks.MockVenueService) {
				svc.EXPECT().Search(gomock.Any(), gomock.Any()).Return(dto.SearchResult{}, failure.Validation("maxPrice", "must be greater than or equal to minPrice"))
			},
			expectedCode:  http.StatusBadRequest,
			expectedField: "maxPrice",
		},
		{
			name: "backend down",
			body: `{}`,
			setupMock: func(svc *venueMocks.MockVenueService) {
				svc.EXPECT().Search(gomock.Any(), gomock.Any()).Return(dto.SearchResult{}, failure.Network(nil))
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/v1/venues/search", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedField != "" {
				var body struct {
					Field string `json:"field"`
				}

				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedField, body.Field)
			}
		})
	}
}

func TestHandler_GetVenues(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		List(gomock.Any(), gDto.QueryParams{Page: 2, Limit: 5}).
		Return(dto.SearchResult{Total: 12, Page: 2, TotalPages: 3, HasNext: true, HasPrev: true}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/venues?page=2&limit=5", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.SearchResult `json:"data"`
	}

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 12, body.Data.Total)
	assert.True(t, body.Data.HasNext)
}

func TestHandler_GetVenuesByLocation(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		ByLocation(gomock.Any(), "Thủ Đức", gomock.Any()).
		Return(dto.SearchResult{Page: 1, TotalPages: 1}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/venues/location?location=Th%E1%BB%A7+%C4%90%E1%BB%A9c", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_GetVenueByID(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(svc *venueMocks.MockVenueService)
		expectedCode int
	}{
		{
			name: "found",
			setupMock: func(svc *venueMocks.MockVenueService) {
				svc.EXPECT().Get(gomock.Any(), "v1").Return(model.Venue{ID: "v1", Name: "Sân Phú Nhuận"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "not found",
			setupMock: func(svc *venueMocks.MockVenueService) {
				svc.EXPECT().Get(gomock.Any(), "v1").Return(model.Venue{}, failure.NotFound("venue not found"))
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodGet, "/v1/venues/v1", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestHandler_GeocodeVenue(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Geocode(gomock.Any(), "v1").Return(dto.GeocodeResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/venues/v1/geocode", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
