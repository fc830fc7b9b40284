//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"meetslot/config"
	"meetslot/infras/jwt"
	"meetslot/infras/kafka"
	"meetslot/infras/mailer"
	"meetslot/infras/otel"
	"meetslot/infras/redis"
	"meetslot/infras/s3"
	"meetslot/permissions"
	"meetslot/shared/background"
	"meetslot/shared/cache"
	"meetslot/shared/timezone"
	"meetslot/transport/http"
	"meetslot/transport/http/middleware"
	"meetslot/transport/http/router"

	bookingService "meetslot/internal/domains/booking/service"
	notificationService "meetslot/internal/domains/notification/service"
	scheduleService "meetslot/internal/domains/schedule/service"
	bookingHandler "meetslot/internal/handlers/booking"
	scheduleHandler "meetslot/internal/handlers/schedule"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	jwt.New,
	mailer.New,
	kafka.New,
	s3.New,
	ProvideMeetingProvider,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	background.New,
	timezone.SystemClock,
)

var scheduleDomain = wire.NewSet(
	ProvideSlotStore,
	scheduleService.New,
)

var notificationDomain = wire.NewSet(
	notificationService.New,
)

var bookingDomain = wire.NewSet(
	bookingService.New,
)

var domains = wire.NewSet(
	scheduleDomain,
	notificationDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	scheduleHandler.New,
	bookingHandler.New,
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
