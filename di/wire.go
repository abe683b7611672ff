//go:build wireinject
// +build wireinject

package di

import (
	"journal/config"
	"journal/infras/htpasswd"
	"journal/infras/imaging"
	"journal/infras/jwt"
	"journal/infras/kafka"
	"journal/infras/otel"
	"journal/infras/postgres"
	"journal/infras/redis"
	"journal/infras/storage"
	"journal/infras/webpush"
	"journal/permissions"
	"journal/shared/cache"
	"journal/transport/http"
	"journal/transport/http/middleware"
	"journal/transport/http/router"

	"github.com/google/wire"

	authService "journal/internal/domains/auth/service"
	photoRepository "journal/internal/domains/photo/repository"
	photoService "journal/internal/domains/photo/service"
	subscriptionRepository "journal/internal/domains/subscription/repository"
	subscriptionService "journal/internal/domains/subscription/service"
	authHandler "journal/internal/handlers/auth"
	photoHandler "journal/internal/handlers/photo"
	subscriptionHandler "journal/internal/handlers/subscription"
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
	htpasswd.New,
	storage.New,
	imaging.New,
	webpush.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var subscriptionDomain = wire.NewSet(
	subscriptionRepository.New,
	subscriptionService.New,
	subscriptionService.NewNotifier,
)

var photoDomain = wire.NewSet(
	photoRepository.New,
	photoService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	subscriptionDomain,
	photoDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	photoHandler.New,
	subscriptionHandler.New,
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
		wire.Struct(new(http.Dependencies), "*"),
		http.New,
	)

	return &http.HTTP{}
}
