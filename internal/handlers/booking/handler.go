package booking

import (
	"courtbook/infras/otel"
	"courtbook/internal/domains/booking/model/dto"
	"courtbook/internal/domains/booking/service"
	"courtbook/shared/constant"
	"courtbook/shared/validator"
	"courtbook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/preview", handler.PreviewBooking)
		routerGroup.Post("/checkout", handler.CheckoutBooking)
		routerGroup.Get("/{id}", handler.GetBookingByID)
	})
}

// PreviewBooking builds the booking request without calling the backend.
// @Summary Preview a booking
// @Description Validates the selection and returns the normalized slots with the total price.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SelectionRequest true "Court selection"
// @Success 200 {object} response.Data[dto.BookingPreviewResponse]
// @Failure 400 {object} response.Error
// @Router /v1/bookings/preview [post]
// @Security BearerAuth
func (handler *Handler) PreviewBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PreviewBooking")
	defer scope.End()

	req := dto.SelectionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Preview(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to preview booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CheckoutBooking creates the booking and its payment link.
// @Summary Checkout a booking
// @Description Creates the booking on the backend, then a payment link for its total price.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.SelectionRequest true "Court selection"
// @Success 201 {object} response.Data[dto.CheckoutResponse]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/bookings/checkout [post]
// @Security BearerAuth
func (handler *Handler) CheckoutBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckoutBooking")
	defer scope.End()

	req := dto.SelectionRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Checkout(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", res.Booking.ID).Msg("failed to checkout booking")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking " + res.Booking.ID + " checked out by user " + user)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetBookingByID returns a booking from the backend.
// @Summary Get booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(request, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
