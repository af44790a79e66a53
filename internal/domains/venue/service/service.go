package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Venue=MockVenueService

import (
	"context"
	"courtbook/config"
	"courtbook/infras/geocoding"
	"courtbook/infras/otel"
	"courtbook/internal/domains/venue/model"
	"courtbook/internal/domains/venue/model/dto"
	"courtbook/internal/domains/venue/repository"
	"courtbook/shared"
	"courtbook/shared/cache"
	"courtbook/shared/constant"
	gDto "courtbook/shared/dto"
	"courtbook/shared/failure"
	"courtbook/shared/validator"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheGeocode = "geocode"

type Venue interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResult, error)
	List(ctx context.Context, params gDto.QueryParams) (dto.SearchResult, error)
	ByLocation(ctx context.Context, location string, params gDto.QueryParams) (dto.SearchResult, error)
	Get(ctx context.Context, id string) (model.Venue, error)
	Geocode(ctx context.Context, id string) (dto.GeocodeResponse, error)
}

type serviceImpl struct {
	repo     repository.Venue
	geocoder geocoding.Geocoder
	cache    cache.RedisCache
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Venue, geocoder geocoding.Geocoder, cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Venue {
	return &serviceImpl{
		repo:     repo,
		geocoder: geocoder,
		cache:    cache,
		cfg:      cfg,
		otel:     otel,
	}
}

func withPaging(params gDto.QueryParams) gDto.QueryParams {
	if params.Page <= 0 {
		params.Page = constant.DefaultValuePage
	}

	if params.Limit <= 0 {
		params.Limit = constant.DefaultValueLimit
	}

	return params
}

func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest) (res dto.SearchResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = req.Normalize(); err != nil {
		return res, err //nolint:wrapcheck
	}

	data, found, err := s.repo.Search(ctx, req)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if !found {
		return dto.EmptyResult(req.Page).WithTarget(req.Target), nil
	}

	return data.ToResult(req.Page, req.Limit).WithTarget(req.Target), nil
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.SearchResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params = withPaging(params)

	data, found, err := s.repo.List(ctx, params)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if !found {
		return dto.EmptyResult(params.Page), nil
	}

	return data.ToResult(params.Page, params.Limit), nil
}

func (s *serviceImpl) ByLocation(ctx context.Context, location string, params gDto.QueryParams) (res dto.SearchResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.ByLocation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	location = strings.TrimSpace(location)
	if location == "" {
		return res, failure.Validation(constant.RequestParamLocation, "is required") //nolint:wrapcheck
	}

	params = withPaging(params)

	data, found, err := s.repo.ByLocation(ctx, location, params)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if !found {
		return dto.EmptyResult(params.Page), nil
	}

	return data.ToResult(params.Page, params.Limit), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res model.Venue, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.Get(ctx, id) //nolint:wrapcheck
}

// Geocode resolves the venue address. Results are cached per address.
func (s *serviceImpl) Geocode(ctx context.Context, id string) (res dto.GeocodeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".venue.Geocode")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	venue, err := s.repo.Get(ctx, id)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.VenueID = venue.ID
	res.Address = venue.Address

	var location geocoding.Location

	cacheKey := shared.BuildCacheKey(cacheGeocode, strings.ToLower(strings.TrimSpace(venue.Address)))

	if err := s.cache.Get(ctx, cacheKey, &location); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for geocode")
	} else {
		location, err = s.geocoder.Geocode(ctx, venue.Address)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		if err := s.cache.Save(context.WithoutCancel(ctx), cacheKey, location, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save geocode to cache")
		}
	}

	res.Lat = location.Lat
	res.Lng = location.Lng
	res.FormattedAddress = location.FormattedAddress
	res.PlaceID = location.PlaceID

	return res, nil
}
