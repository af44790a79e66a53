package venue

import (
	"courtbook/infras/otel"
	"courtbook/internal/domains/venue/model/dto"
	"courtbook/internal/domains/venue/service"
	"courtbook/shared/constant"
	gDto "courtbook/shared/dto"
	"courtbook/shared/validator"
	"courtbook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Venue
	otel    otel.Otel
}

func New(service service.Venue, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/venues", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetVenues)
		routerGroup.Post("/search", handler.SearchVenues)
		routerGroup.Get("/location", handler.GetVenuesByLocation)
		routerGroup.Get("/{id}", handler.GetVenueByID)
		routerGroup.Get("/{id}/geocode", handler.GeocodeVenue)
	})
}

// GetVenues lists venues page by page.
// @Summary List venues
// @Tags Venue
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.SearchResult]
// @Failure 502 {object} response.Error
// @Router /v1/venues [get]
func (handler *Handler) GetVenues(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenues")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.List(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list venues")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// SearchVenues searches venues or courts by filters.
// @Summary Search venues and courts
// @Description Filters by sport type, location, rating and price range.
// @Tags Venue
// @Accept json
// @Produce json
// @Param request body dto.SearchRequest true "Search filters"
// @Success 200 {object} response.Data[dto.SearchResult]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/venues/search [post]
func (handler *Handler) SearchVenues(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SearchVenues")
	defer scope.End()

	req := dto.SearchRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Search(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search venues")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetVenuesByLocation lists venues in a location.
// @Summary List venues by location
// @Tags Venue
// @Produce json
// @Param location query string true "City or district"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.SearchResult]
// @Failure 400 {object} response.Error
// @Router /v1/venues/location [get]
func (handler *Handler) GetVenuesByLocation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenuesByLocation")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	res, err := handler.service.ByLocation(ctx, request.URL.Query().Get(constant.RequestParamLocation), queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list venues by location")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetVenueByID returns one venue with its courts.
// @Summary Get venue
// @Tags Venue
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} response.Data[model.Venue]
// @Failure 404 {object} response.Error
// @Router /v1/venues/{id} [get]
func (handler *Handler) GetVenueByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetVenueByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get venue")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GeocodeVenue resolves the venue address to coordinates.
// @Summary Geocode venue
// @Tags Venue
// @Produce json
// @Param id path string true "Venue ID"
// @Success 200 {object} response.Data[dto.GeocodeResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/venues/{id}/geocode [get]
func (handler *Handler) GeocodeVenue(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GeocodeVenue")
	defer scope.End()

	res, err := handler.service.Geocode(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to geocode venue")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
