package service_test

import (
	"context"
	"courtbook/config"
	"courtbook/infras/geocoding"
	geoMocks "courtbook/infras/geocoding/mocks"
	"courtbook/infras/otel/mocks"
	venueMocks "courtbook/internal/domains/venue/mocks"
	"courtbook/internal/domains/venue/model"
	"courtbook/internal/domains/venue/model/dto"
	"courtbook/internal/domains/venue/service"
	cacheMocks "courtbook/shared/cache/mocks"
	gDto "courtbook/shared/dto"
	"courtbook/shared/failure"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc      service.Venue
	repo     *venueMocks.MockVenue
	geocoder *geoMocks.MockGeocoder
	cache    *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:     venueMocks.NewMockVenue(ctrl),
		geocoder: geoMocks.NewMockGeocoder(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.geocoder, f.cache, cfg, mocks.NewOtel())

	return f
}

func ptr[T any](value T) *T {
	return &value
}

func TestVenueService_Search(t *testing.T) {
	tests := []struct {
		name          string
		req           dto.SearchRequest
		setupMock     func(f fixture)
		expectedTotal int
		expectedPages  int
		expectedTarget model.Target
		expectedField  string
		wantErr        bool
	}{
		{
			name: "filters forwarded with paging defaults",
			req:  dto.SearchRequest{SportType: "badminton", Location: "Quận 7", MinRating: ptr(4.0)},
			setupMock: func(f fixture) {
				f.repo.EXPECT().
					Search(gomock.Any(), dto.SearchRequest{Target: model.TargetVenues, SportType: "badminton", Location: "Quận 7", MinRating: ptr(4.0), Page: 1, Limit: 10}).
					Return(dto.SearchData{Venues: []model.Venue{{ID: "v1"}}, Total: 12}, true, nil)
			},
			expectedTotal: 12,
			expectedPages: 2,
		},
		{
			name: "empty answer",
			req:  dto.SearchRequest{Location: "Đà Lạt"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Search(gomock.Any(), gomock.Any()).Return(dto.SearchData{}, false, nil)
			},
			expectedTotal:  0,
			expectedPages:  1,
			expectedTarget: model.TargetVenues,
		},
		{
			name: "empty court answer keeps the court target",
			req:  dto.SearchRequest{Target: model.TargetCourts, SportType: "pickleball"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Search(gomock.Any(), gomock.Any()).Return(dto.SearchData{}, false, nil)
			},
			expectedTotal:  0,
			expectedPages:  1,
			expectedTarget: model.TargetCourts,
		},
		{
			name:          "min price above max price",
			req:           dto.SearchRequest{MinPrice: ptr(int64(300000)), MaxPrice: ptr(int64(100000))},
			setupMock:     func(_ fixture) {},
			expectedField: "maxPrice",
			wantErr:       true,
		},
		{
			name:          "rating out of range",
			req:           dto.SearchRequest{MinRating: ptr(7.5)},
			setupMock:     func(_ fixture) {},
			expectedField: "minRating",
			wantErr:       true,
		},
		{
			name: "backend error",
			req:  dto.SearchRequest{SportType: "tennis"},
			setupMock: func(f fixture) {
				f.repo.EXPECT().Search(gomock.Any(), gomock.Any()).Return(dto.SearchData{}, false, failure.Provider(http.StatusInternalServerError, "Internal Server Error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Search(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)

				if tt.expectedField != "" {
					assert.Equal(t, tt.expectedField, failure.GetField(err))
				}

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, res.Total)
			assert.Equal(t, tt.expectedPages, res.TotalPages)

			if tt.expectedTarget != "" {
				assert.Equal(t, tt.expectedTarget, res.Target)
			}
		})
	}
}

func TestVenueService_List(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		List(gomock.Any(), gDto.QueryParams{Page: 1, Limit: 10}).
		Return(dto.SearchData{Venues: []model.Venue{{ID: "v1"}, {ID: "v2"}}}, true, nil)

	res, err := f.svc.List(context.Background(), gDto.QueryParams{})

	require.NoError(t, err)
	assert.Len(t, res.Venues, 2)
	assert.Equal(t, 2, res.Total)
}

func TestVenueService_ByLocation(t *testing.T) {
	t.Run("location required", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ByLocation(context.Background(), "  ", gDto.QueryParams{})

		assert.Equal(t, "location", failure.GetField(err))
	})

	t.Run("forwards location", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().
			ByLocation(gomock.Any(), "Hà Nội", gDto.QueryParams{Page: 2, Limit: 5}).
			Return(dto.SearchData{Venues: []model.Venue{{ID: "v1"}}, Total: 6}, true, nil)

		res, err := f.svc.ByLocation(context.Background(), "Hà Nội", gDto.QueryParams{Page: 2, Limit: 5})

		require.NoError(t, err)
		assert.Equal(t, 2, res.TotalPages)
		assert.True(t, res.HasPrev)
		assert.False(t, res.HasNext)
	})
}

func TestVenueService_Geocode(t *testing.T) {
	venue := model.Venue{ID: "v1", Address: "123 Nguyễn Huệ, Quận 1"}
	cacheKey := "geocode:123 nguyễn huệ, quận 1"

	t.Run("cache hit", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), "v1").Return(venue, nil)
		f.cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).DoAndReturn(func(_ context.Context, _ string, value any) error {
			loc, ok := value.(*geocoding.Location)
			require.True(t, ok)

			loc.Lat, loc.Lng = 10.77, 106.70

			return nil
		})

		res, err := f.svc.Geocode(context.Background(), "v1")

		require.NoError(t, err)
		assert.InDelta(t, 10.77, res.Lat, 0.0001)
	})

	t.Run("cache miss resolves and saves", func(t *testing.T) {
		f := newFixture(t)

		location := geocoding.Location{Lat: 10.77, Lng: 106.70, FormattedAddress: "123 Nguyễn Huệ, Bến Nghé, Quận 1"}

		f.repo.EXPECT().Get(gomock.Any(), "v1").Return(venue, nil)
		f.cache.EXPECT().Get(gomock.Any(), cacheKey, gomock.Any()).Return(errors.New("redis: nil"))
		f.geocoder.EXPECT().Geocode(gomock.Any(), venue.Address).Return(location, nil)
		f.cache.EXPECT().Save(gomock.Any(), cacheKey, location, 3600).Return(nil)

		res, err := f.svc.Geocode(context.Background(), "v1")

		require.NoError(t, err)
		assert.Equal(t, "v1", res.VenueID)
		assert.Equal(t, location.FormattedAddress, res.FormattedAddress)
	})

	t.Run("missing api key is a configuration failure", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), "v1").Return(venue, nil)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil"))
		f.geocoder.EXPECT().Geocode(gomock.Any(), gomock.Any()).Return(geocoding.Location{}, failure.Configuration("google maps api key is not configured"))

		_, err := f.svc.Geocode(context.Background(), "v1")

		assert.Equal(t, failure.KindConfiguration, failure.GetKind(err))
	})

	t.Run("unknown venue", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), "v9").Return(model.Venue{}, failure.NotFound("venue not found"))

		_, err := f.svc.Geocode(context.Background(), "v9")

		assert.Equal(t, failure.KindNotFound, failure.GetKind(err))
	})
}
