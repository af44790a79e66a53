package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"courtbook/infras/backend"
	"courtbook/infras/otel"
	"courtbook/internal/domains/booking/model/dto"
	"courtbook/shared/constant"
	"courtbook/shared/failure"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"
)

const (
	pathBookings = "/api/v1/bookings"
	pathBooking  = "/api/v1/bookings/%s"
)

// Booking reaches the backend booking endpoints. The backend is the only writer of bookings.
type Booking interface {
	Create(ctx context.Context, req dto.BookingCreateRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
}

type repositoryImpl struct {
	client backend.Client
	otel   otel.Otel
}

func New(client backend.Client, otel otel.Otel) Booking {
	return &repositoryImpl{
		client: client,
		otel:   otel,
	}
}

func (r *repositoryImpl) Create(ctx context.Context, req dto.BookingCreateRequest) (res dto.BookingResponse, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	found, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodPost,
		Path:   pathBookings,
		Body:   req,
	}, &res)
	if err != nil {
		log.Error().Err(err).Str("venueId", req.VenueID).Msg("failed to create booking")

		return res, err //nolint:wrapcheck
	}

	if !found {
		return res, failure.Provider(http.StatusBadGateway, "booking was not returned") //nolint:wrapcheck
	}

	return res, nil
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	found, err := r.client.Do(ctx, backend.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf(pathBooking, url.PathEscape(id)),
	}, &res)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get booking")

		return res, err //nolint:wrapcheck
	}

	if !found {
		return res, failure.NotFound("booking not found") //nolint:wrapcheck
	}

	return res, nil
}
