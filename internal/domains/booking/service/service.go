package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"courtbook/infras/otel"
	"courtbook/internal/domains/booking/model/dto"
	"courtbook/internal/domains/booking/repository"
	paymentService "courtbook/internal/domains/payment/service"
	"courtbook/shared/constant"
	"courtbook/shared/failure"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Booking interface {
	Preview(ctx context.Context, req dto.SelectionRequest) (dto.BookingPreviewResponse, error)
	Create(ctx context.Context, req dto.SelectionRequest) (dto.BookingResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Checkout(ctx context.Context, req dto.SelectionRequest) (dto.CheckoutResponse, error)
}

type serviceImpl struct {
	repo    repository.Booking
	payment paymentService.Payment
	otel    otel.Otel
}

func New(repo repository.Booking, payment paymentService.Payment, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:    repo,
		payment: payment,
		otel:    otel,
	}
}

func (s *serviceImpl) Preview(ctx context.Context, req dto.SelectionRequest) (res dto.BookingPreviewResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Preview")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := Build(req)
	if err != nil {
		return res, err
	}

	return dto.NewPreview(booking), nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.SelectionRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := Build(req)
	if err != nil {
		return res, err
	}

	return s.repo.Create(ctx, dto.ToWire(booking)) //nolint:wrapcheck
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.repo.Get(ctx, id) //nolint:wrapcheck
}

// Checkout creates the booking and then a payment for its total.
func (s *serviceImpl) Checkout(ctx context.Context, req dto.SelectionRequest) (res dto.CheckoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Checkout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := Build(req)
	if err != nil {
		return res, err
	}

	// Free bookings cannot be paid for and never reach the backend.
	if booking.TotalPrice <= 0 {
		return res, failure.InvalidAmount
	}

	created, err := s.repo.Create(ctx, dto.ToWire(booking))
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.Booking = created

	payment, err := s.payment.Create(ctx, dto.PaymentRequest(booking, created))
	if err != nil {
		log.Error().Err(err).Str("bookingId", created.ID).Msg("failed to create payment for booking")

		return res, fmt.Errorf("booking %s created but payment failed: %w", created.ID, err)
	}

	res.Payment = payment

	return res, nil
}
