package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"courtbook/infras/backend"
	"courtbook/infras/otel"
	"courtbook/internal/domains/venue/model"
	"courtbook/internal/domains/venue/model/dto"
	"courtbook/shared/constant"
	gDto "courtbook/shared/dto"
	"courtbook/shared/failure"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	pathVenues         = "/api/v1/venues"
	pathVenue          = "/api/v1/venues/%s"
	pathVenueSearch    = "/api/v1/venues/search"
	pathVenuesLocation = "/api/v1/venues/location"
)

// Venue reaches the backend venue endpoints. Listing calls report found=false for an empty answer.
type Venue interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchData, bool, error)
	List(ctx context.Context, params gDto.QueryParams) (dto.SearchData, bool, error)
	ByLocation(ctx context.Context, location string, params gDto.QueryParams) (dto.SearchData, bool, error)
	Get(ctx context.Context, id string) (model.Venue, error)
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Venue {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func pageQuery(params gDto.QueryParams) url.Values {
	query := url.Values{}

	if params.Page > 0 {
		query.Set(constant.RequestParamPage, strconv.Itoa(params.Page))
	}

	if params.Limit > 0 {
		query.Set(constant.RequestParamLimit, strconv.Itoa(params.Limit))
	}

	return query
}

func (r *repositoryImpl) list(ctx context.Context, req backend.Request) (res dto.SearchData, found bool, err error) {
	found, err = r.client.Do(ctx, req, &res)
	if err != nil {
		log.Error().Err(err).Str("path", req.Path).Msg("failed to list venues")

		return res, false, err //nolint:wrapcheck
	}

	return res, found, nil
}

func (r *repositoryImpl) Search(ctx context.Context, req dto.SearchRequest) (res dto.SearchData, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".venue.Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.list(ctx, backend.Request{Method: http.MethodPost, Path: pathVenueSearch, Body: req})
}

func (r *repositoryImpl) List(ctx context.Context, params gDto.QueryParams) (res dto.SearchData, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".venue.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return r.list(ctx, backend.Request{Method: http.MethodGet, Path: pathVenues, Query: pageQuery(params)})
}

func (r *repositoryImpl) ByLocation(ctx context.Context, location string, params gDto.QueryParams) (res dto.SearchData, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".venue.ByLocation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := pageQuery(params)
	query.Set(constant.RequestParamLocation, location)

	return r.list(ctx, backend.Request{Method: http.MethodGet, Path: pathVenuesLocation, Query: query})
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res model.Venue, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".venue.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	found, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf(pathVenue, url.PathEscape(id)),
	}, &res)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get venue")

		return res, err //nolint:wrapcheck
	}

	if !found {
		return res, failure.NotFound("venue not found") //nolint:wrapcheck
	}

	return res, nil
}
