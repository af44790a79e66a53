package repository

//go:generate go run go.uber.org/mock/mockgen -source=./payos.go -destination=../mocks/payos_mock.go -package=mocks

import (
	"context"
	"courtbook/infras/backend"
	"courtbook/infras/otel"
	"courtbook/internal/domains/payment/model/dto"
	"courtbook/shared/constant"
	"courtbook/shared/failure"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

const (
	pathPayOSCreate = "/api/v1/payments/payos/create"
	pathPayOSInfo   = "/api/v1/payments/payos/info/%s"
	pathPayOSCancel = "/api/v1/payments/payos/cancel/%s"
)

// PayOS reaches the backend's PayOS endpoints. The backend holds the provider secrets.
type PayOS interface {
	Create(ctx context.Context, req dto.PayOSCreateRequest) (dto.PayOSCreateData, error)
	Info(ctx context.Context, orderCode string) (dto.PaymentInfo, error)
	Cancel(ctx context.Context, orderCode string, req dto.CancelRequest) (dto.PaymentInfo, error)
}

type payOSImpl struct {
	client backend.Client
	otel   otel.Otel
}

func NewPayOS(client backend.Client, otel otel.Otel) PayOS {
	return &payOSImpl{
		client: client,
		otel:   otel,
	}
}

func (r *payOSImpl) Create(ctx context.Context, req dto.PayOSCreateRequest) (res dto.PayOSCreateData, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payos.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	found, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   pathPayOSCreate,
		Body:   req,
	}, &res)
	if err != nil {
		log.Error().Err(err).Msg("failed to create payos payment")

		return res, err //nolint:wrapcheck
	}

	if !found {
		return res, failure.Provider(http.StatusBadGateway, "payment link was not returned") //nolint:wrapcheck
	}

	return res, nil
}

func (r *payOSImpl) Info(ctx context.Context, orderCode string) (res dto.PaymentInfo, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payos.Info")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	found, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf(pathPayOSInfo, url.PathEscape(orderCode)),
	}, &res)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payos payment info")

		return res, err //nolint:wrapcheck
	}

	if !found {
		return res, failure.NotFound("payment not found") //nolint:wrapcheck
	}

	return res, nil
}

// Cancel returns the cancelled payment when the backend echoes it, or a zero value otherwise.
func (r *payOSImpl) Cancel(ctx context.Context, orderCode string, req dto.CancelRequest) (res dto.PaymentInfo, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payos.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   fmt.Sprintf(pathPayOSCancel, url.PathEscape(orderCode)),
		Body:   req,
	}, &res)
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel payos payment")

		return res, err //nolint:wrapcheck
	}

	return res, nil
}
