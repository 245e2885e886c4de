//go:build wireinject
// +build wireinject

package di

import (
	"tie/config"
	"tie/infras/jwt"
	"tie/infras/kafka"
	"tie/infras/otel"
	"tie/infras/postgres"
	"tie/infras/redis"
	"tie/infras/s3"
	"tie/permissions"
	"tie/shared/cache"
	"tie/transport/http"
	"tie/transport/http/middleware"
	"tie/transport/http/router"

	auditRepository "tie/internal/domains/audit/repository"
	auditService "tie/internal/domains/audit/service"
	catalogService "tie/internal/domains/catalog/service"
	catalogSource "tie/internal/domains/catalog/source"
	reservationRepository "tie/internal/domains/reservation/repository"
	reservationService "tie/internal/domains/reservation/service"
	catalogHandler "tie/internal/handlers/catalog"
	reservationHandler "tie/internal/handlers/reservation"

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
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogSource.New,
	catalogService.New,
)

var auditDomain = wire.NewSet(
	auditService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.SystemClock,
	reservationService.NewIDGenerator,
	reservationService.NewDuplicateGuard,
	reservationService.New,
	wire.Bind(new(reservationService.PermissionProvider), new(*permissions.PermissionData)),
)

var domains = wire.NewSet(
	catalogDomain,
	auditDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	reservationHandler.New,
	catalogHandler.New,
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

func InitializeAuditConsumer() auditService.Consumer {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		kafka.New,
		auditRepository.New,
		auditService.NewConsumer,
	)

	return nil
}

func InitializeCatalogPublisher() *catalogSource.S3Source {
	wire.Build(
		config.Get,
		otel.New,
		redis.New,
		s3.New,
		sharedHelpers,
		catalogSource.NewS3,
	)

	return nil
}
