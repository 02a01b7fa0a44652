//go:build wireinject
// +build wireinject

package di

import (
	"farhatna/config"
	"farhatna/infras/jwt"
	"farhatna/infras/kafka"
	"farhatna/infras/otel"
	"farhatna/infras/postgres"
	"farhatna/infras/redis"
	"farhatna/permissions"
	"farhatna/shared/cache"
	"farhatna/transport/http"
	"farhatna/transport/http/middleware"
	"farhatna/transport/http/router"

	authService "farhatna/internal/domains/auth/service"
	bookingRepository "farhatna/internal/domains/booking/repository"
	bookingService "farhatna/internal/domains/booking/service"
	supplierRepository "farhatna/internal/domains/supplier/repository"
	supplierService "farhatna/internal/domains/supplier/service"
	userRepository "farhatna/internal/domains/user/repository"
	authHandler "farhatna/internal/handlers/auth"
	bookingHandler "farhatna/internal/handlers/booking"
	healthHandler "farhatna/internal/handlers/health"
	supplierHandler "farhatna/internal/handlers/supplier"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var supplierDomain = wire.NewSet(
	supplierRepository.New,
	supplierService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	authDomain,
	supplierDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	supplierHandler.New,
	bookingHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
