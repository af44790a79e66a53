package booking_test

import (
	"courtbook/infras/otel/mocks"
	bookingMocks "courtbook/internal/domains/booking/mocks"
	"courtbook/internal/domains/booking/model"
	"courtbook/internal/domains/booking/model/dto"
	paymentDto "courtbook/internal/domains/payment/model/dto"
	"courtbook/internal/handlers/booking"
	"courtbook/shared/failure"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const selectionBody = `{
	"venueId": "venue-1",
	"courtIds": ["court-1"],
	"date": "2026-10-20",
	"timeSlots": [{"start": "18:00", "end": "19:00", "price": 120000}],
	"paymentMethod": "payos",
	"customerInfo": {"fullName": "Trần Thị Bình", "email": "binh@example.com", "phoneNumber": "0912345678"}
}`

func newRouter(t *testing.T) (*bookingMocks.MockBookingService, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := bookingMocks.NewMockBookingService(ctrl)
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func TestHandler_CheckoutBooking(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		setupMock     func(svc *bookingMocks.MockBookingService)
		expectedCode  int
		expectedField string
	}{
		{
			name: "booking and payment created",
			body: selectionBody,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(dto.CheckoutResponse{
					Booking: dto.BookingResponse{ID: "b1", Status: model.BookingStatusPending},
					Payment: paymentDto.PaymentCreateResult{PaymentURL: "https://pay.payos.vn/web/abc", PaymentRef: "123"},
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "missing court rejected before the service",
			body:          strings.Replace(selectionBody, `["court-1"]`, `[]`, 1),
			setupMock:     func(_ *bookingMocks.MockBookingService) {},
			expectedCode:  http.StatusBadRequest,
			expectedField: "courtIds",
		},
		{
			name:          "unknown payment method",
			body:          strings.Replace(selectionBody, `"payos"`, `"cash"`, 1),
			setupMock:     func(_ *bookingMocks.MockBookingService) {},
			expectedCode:  http.StatusBadRequest,
			expectedField: "paymentMethod",
		},
		{
			name: "payment failed after booking",
			body: selectionBody,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				err := fmt.Errorf("booking b1 created but payment failed: %w", failure.Provider(http.StatusBadRequest, "Số tiền không hợp lệ"))
				svc.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(dto.CheckoutResponse{Booking: dto.BookingResponse{ID: "b1"}}, err)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unexpected error",
			body: selectionBody,
			setupMock: func(svc *bookingMocks.MockBookingService) {
				svc.EXPECT().Checkout(gomock.Any(), gomock.Any()).Return(dto.CheckoutResponse{}, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.setupMock(svc)

			req := httptest.NewRequest(http.MethodPost, "/v1/bookings/checkout", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedField != "" {
				var body struct {
					Field string `json:"field"`
				}

				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedField, body.Field)
			}
		})
	}
}

func TestHandler_PreviewBooking(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		Preview(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req dto.SelectionRequest) (dto.BookingPreviewResponse, error) {
			assert.Equal(t, "venue-1", req.VenueID)
			assert.Equal(t, "18:00", req.TimeSlots[0].Start)

			return dto.BookingPreviewResponse{Booking: dto.BookingCreateRequest{VenueID: req.VenueID, TotalPrice: 120000}}, nil
		})

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/preview", strings.NewReader(selectionBody))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalPrice":120000`)
}

func TestHandler_GetBookingByID(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), "b1").Return(dto.BookingResponse{}, failure.NotFound("booking not found"))

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings/b1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "booking not found")
}
