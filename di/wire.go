//go:build wireinject
// +build wireinject

package di

import (
	"courtbook/config"
	"courtbook/infras/backend"
	"courtbook/infras/geocoding"
	"courtbook/infras/jwt"
	"courtbook/infras/kafka"
	"courtbook/infras/otel"
	"courtbook/infras/postgres"
	"courtbook/infras/redis"
	"courtbook/permissions"
	"courtbook/shared/cache"
	"courtbook/transport/http"
	"courtbook/transport/http/middleware"
	"courtbook/transport/http/router"

	bookingRepository "courtbook/internal/domains/booking/repository"
	bookingService "courtbook/internal/domains/booking/service"
	bookingHandler "courtbook/internal/handlers/booking"

	paymentGateway "courtbook/internal/domains/payment/gateway"
	paymentRepository "courtbook/internal/domains/payment/repository"
	paymentService "courtbook/internal/domains/payment/service"
	paymentHandler "courtbook/internal/handlers/payment"

	venueRepository "courtbook/internal/domains/venue/repository"
	venueService "courtbook/internal/domains/venue/service"
	venueHandler "courtbook/internal/handlers/venue"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	backend.New,
	geocoding.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var venueDomain = wire.NewSet(
	venueRepository.New,
	venueService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.NewPayOS,
	paymentRepository.NewLedger,
	paymentGateway.NewPayOS,
	paymentGateway.NewDefaultRegistry,
	paymentService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	venueDomain,
	paymentDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	venueHandler.New,
	bookingHandler.New,
	paymentHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
