package http

import (
	"courtbook/config"
	jwtMocks "courtbook/infras/jwt/mocks"
	"courtbook/infras/otel/mocks"
	bookingMocks "courtbook/internal/domains/booking/mocks"
	paymentMocks "courtbook/internal/domains/payment/mocks"
	paymentModel "courtbook/internal/domains/payment/model"
	paymentDto "courtbook/internal/domains/payment/model/dto"
	venueMocks "courtbook/internal/domains/venue/mocks"
	venueModel "courtbook/internal/domains/venue/model"
	"courtbook/internal/handlers/booking"
	"courtbook/internal/handlers/payment"
	"courtbook/internal/handlers/venue"
	"courtbook/permissions"
	cacheMocks "courtbook/shared/cache/mocks"
	"courtbook/transport/http/middleware"
	"courtbook/transport/http/router"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	server  *HTTP
	venue   *venueMocks.MockVenueService
	payment *paymentMocks.MockPayment
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	ot := mocks.NewOtel()

	venueService := venueMocks.NewMockVenueService(ctrl)
	paymentService := paymentMocks.NewMockPayment(ctrl)

	cfg := &config.Config{}

	r := router.New(router.DomainHandlers{
		Venue:   venue.New(venueService, ot),
		Booking: booking.New(bookingMocks.NewMockBookingService(ctrl), ot),
		Payment: payment.New(paymentService, ot),
	})

	app := middleware.NewAppMiddleware(ot, cfg, cacheMocks.NewMockRedisCache(ctrl))
	auth := middleware.NewAuthMiddleware(jwtMocks.NewMockJWT(ctrl), ot, permissions.Get())

	return fixture{
		server:  New(cfg, r, app, auth),
		venue:   venueService,
		payment: paymentService,
	}
}

func (f fixture) do(method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.server.Handler().ServeHTTP(rec, httptest.NewRequest(method, target, nil))

	return rec
}

func TestHTTP_Health(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ServerStateReady, f.server.State())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestHTTP_PublicVenueRoute(t *testing.T) {
	f := newFixture(t)

	f.venue.EXPECT().Get(gomock.Any(), "v1").Return(venueModel.Venue{ID: "v1"}, nil)

	rec := f.do(http.MethodGet, "/v1/venues/v1")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTP_ProtectedRouteWithoutToken(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/v1/bookings/b1")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHTTP_ProviderReturnIsPublic(t *testing.T) {
	f := newFixture(t)

	f.payment.EXPECT().
		Reconcile(gomock.Any(), paymentModel.MethodPayOS, gomock.Any()).
		Return(paymentDto.ReconcileResult{Outcome: paymentModel.OutcomeRejected}, nil)

	rec := f.do(http.MethodGet, "/v1/payments/payos/return?code=01&orderCode=123")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTP_CleanupPeriod(t *testing.T) {
	f := newFixture(t)
	f.server.Handler()
	f.server.state.Store(int32(ServerStateInCleanupPeriod))

	assert.Equal(t, http.StatusServiceUnavailable, f.do(http.MethodGet, "/v1/venues/v1").Code)
	assert.Equal(t, http.StatusServiceUnavailable, f.do(http.MethodGet, "/health").Code)
}
