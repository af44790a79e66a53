package payment

import (
	"bytes"
	"courtbook/infras/otel"
	"courtbook/internal/domains/payment/model"
	"courtbook/internal/domains/payment/model/dto"
	"courtbook/internal/domains/payment/service"
	"courtbook/shared/constant"
	"courtbook/shared/failure"
	"courtbook/shared/validator"
	"courtbook/transport/http/response"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments/payos", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePayOSPayment)
		routerGroup.Get("/return", handler.PayOSReturn)
		routerGroup.Get("/{orderCode}", handler.GetPayOSPayment)
		routerGroup.Post("/{orderCode}/cancel", handler.CancelPayOSPayment)
	})
}

// CreatePayOSPayment creates a PayOS payment link for a booking.
// @Summary Create PayOS payment
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.PaymentCreateRequest true "Payment request"
// @Success 201 {object} response.Data[dto.PaymentCreateResult]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payments/payos [post]
// @Security BearerAuth
func (handler *Handler) CreatePayOSPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePayOSPayment")
	defer scope.End()

	req := dto.PaymentCreateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	req.PaymentMethod = model.MethodPayOS

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusCreated, res)
}

// PayOSReturn classifies the query PayOS appends to the return redirect.
// @Summary Reconcile PayOS return
// @Description Rejected outcomes are still a 200 response; the outcome field tells them apart.
// @Tags Payment
// @Produce json
// @Param code query string false "Provider result code"
// @Param id query string false "Payment link id"
// @Param cancel query string false "Cancel flag"
// @Param status query string false "Payment status"
// @Param orderCode query string false "Order code"
// @Success 200 {object} response.Data[dto.ReconcileResult]
// @Router /v1/payments/payos/return [get]
func (handler *Handler) PayOSReturn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PayOSReturn")
	defer scope.End()

	res, err := handler.service.Reconcile(ctx, model.MethodPayOS, request.URL.Query())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reconcile payment return")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("payment return " + string(res.Outcome))

	response.WithJSON(writer, http.StatusOK, res)
}

// GetPayOSPayment reads the PayOS payment state.
// @Summary Get PayOS payment
// @Tags Payment
// @Produce json
// @Param orderCode path string true "Order code"
// @Success 200 {object} response.Data[dto.PaymentInfo]
// @Failure 404 {object} response.Error
// @Router /v1/payments/payos/{orderCode} [get]
// @Security BearerAuth
func (handler *Handler) GetPayOSPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayOSPayment")
	defer scope.End()

	res, err := handler.service.Info(ctx, model.MethodPayOS, chi.URLParam(request, constant.RequestParamOrderCode))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// CancelPayOSPayment cancels a pending PayOS payment. The body is optional.
// @Summary Cancel PayOS payment
// @Tags Payment
// @Accept json
// @Produce json
// @Param orderCode path string true "Order code"
// @Param request body dto.CancelRequest false "Cancellation reason"
// @Success 200 {object} response.Data[dto.CancelResult]
// @Failure 400 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payments/payos/{orderCode}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelPayOSPayment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelPayOSPayment")
	defer scope.End()

	req := dto.CancelRequest{}

	if err := decodeOptional(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Cancel(ctx, model.MethodPayOS, chi.URLParam(request, constant.RequestParamOrderCode), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel payment")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

func decodeOptional(body io.Reader, req *dto.CancelRequest) error {
	raw, err := io.ReadAll(body)
	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to read request body: %w", err)) //nolint:wrapcheck
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	return validator.Validate(bytes.NewReader(raw), req)
}
