package service_test

import (
	"context"
	"courtbook/infras/otel/mocks"
	bookingMocks "courtbook/internal/domains/booking/mocks"
	"courtbook/internal/domains/booking/model"
	"courtbook/internal/domains/booking/model/dto"
	"courtbook/internal/domains/booking/service"
	paymentMocks "courtbook/internal/domains/payment/mocks"
	paymentModel "courtbook/internal/domains/payment/model"
	paymentDto "courtbook/internal/domains/payment/model/dto"
	"courtbook/shared/failure"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Booking, *bookingMocks.MockBooking, *paymentMocks.MockPayment) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockPayment := paymentMocks.NewMockPayment(ctrl)

	return service.New(mockRepo, mockPayment, mocks.NewOtel()), mockRepo, mockPayment
}

func TestBookingService_Preview(t *testing.T) {
	svc, _, _ := newService(t)

	res, err := svc.Preview(context.Background(), validSelection())

	require.NoError(t, err)
	assert.Equal(t, int64(500000), res.Booking.TotalPrice)
	assert.False(t, res.BuiltAt.IsZero())
}

func TestBookingService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.SelectionRequest
		setupMock func(repo *bookingMocks.MockBooking)
		wantErr   bool
	}{
		{
			name: "invalid selection never reaches the backend",
			req: func() dto.SelectionRequest {
				req := validSelection()
				req.CourtIDs = nil

				return req
			}(),
			setupMock: func(_ *bookingMocks.MockBooking) {},
			wantErr:   true,
		},
		{
			name: "posts the wire payload",
			req:  validSelection(),
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req dto.BookingCreateRequest) (dto.BookingResponse, error) {
						assert.Equal(t, "08:00", req.TimeSlots[0].StartTime)
						assert.Equal(t, int64(500000), req.TotalPrice)
						assert.Equal(t, 2, req.CourtQuantity)

						return dto.BookingResponse{ID: "b-1", Status: model.BookingStatusPending}, nil
					})
			},
		},
		{
			name: "backend error",
			req:  validSelection(),
			setupMock: func(repo *bookingMocks.MockBooking) {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, failure.Provider(http.StatusConflict, "Khung giờ đã được đặt"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _ := newService(t)
			tt.setupMock(repo)

			res, err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "b-1", res.ID)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().Get(gomock.Any(), "b-1").Return(dto.BookingResponse{ID: "b-1", PaymentStatus: model.PaymentStatusPaid}, nil)

	res, err := svc.Get(context.Background(), "b-1")

	require.NoError(t, err)
	assert.Equal(t, model.PaymentStatusPaid, res.PaymentStatus)
}

func TestBookingService_Checkout(t *testing.T) {
	t.Run("payment amount equals booking total", func(t *testing.T) {
		svc, repo, payment := newService(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{ID: "b-1", BookingCode: "BK001"}, nil)
		payment.EXPECT().
			Create(gomock.Any(), paymentDto.PaymentCreateRequest{
				BookingID:     "b-1",
				Amount:        500000,
				PaymentMethod: paymentModel.MethodPayOS,
				Description:   "BK001",
				BuyerName:     "Nguyễn Văn An",
				BuyerEmail:    "an.nguyen@example.com",
				BuyerPhone:    "0901234567",
			}).
			Return(paymentDto.PaymentCreateResult{PaymentURL: "https://pay.payos.vn/web/x", PaymentRef: "42"}, nil)

		res, err := svc.Checkout(context.Background(), validSelection())

		require.NoError(t, err)
		assert.Equal(t, "b-1", res.Booking.ID)
		assert.Equal(t, "https://pay.payos.vn/web/x", res.Payment.PaymentURL)
	})

	t.Run("payment failure keeps the created booking", func(t *testing.T) {
		svc, repo, payment := newService(t)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{ID: "b-1"}, nil)
		payment.EXPECT().Create(gomock.Any(), gomock.Any()).Return(paymentDto.PaymentCreateResult{}, failure.Provider(http.StatusBadGateway, "PayOS unavailable"))

		res, err := svc.Checkout(context.Background(), validSelection())

		require.Error(t, err)
		assert.Equal(t, failure.KindProvider, failure.GetKind(err))
		assert.Equal(t, "b-1", res.Booking.ID)
	})

	t.Run("free selection is rejected before the booking is created", func(t *testing.T) {
		svc, _, _ := newService(t)

		selection := validSelection()
		selection.TimeSlots[0].Price = 0
		selection.TimeSlots[1].Price = 0

		res, err := svc.Checkout(context.Background(), selection)

		assert.ErrorIs(t, err, failure.InvalidAmount)
		assert.Empty(t, res.Booking.ID)
	})

	t.Run("invalid selection", func(t *testing.T) {
		svc, _, _ := newService(t)

		selection := validSelection()
		selection.TimeSlots[0].End = "07:00"

		_, err := svc.Checkout(context.Background(), selection)

		assert.Equal(t, failure.KindValidation, failure.GetKind(err))
	})
}
