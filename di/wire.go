//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"agenda/config"
	"agenda/infras/jwt"
	"agenda/infras/kafka"
	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/infras/redis"
	"agenda/internal/notifier"
	"agenda/shared/cache"
	"agenda/shared/clock"
	"agenda/transport/http"
	"agenda/transport/http/middleware"
	"agenda/transport/http/router"

	availabilityService "agenda/internal/domains/availability/service"
	blackoutRepository "agenda/internal/domains/blackout/repository"
	blackoutService "agenda/internal/domains/blackout/service"
	outboxRepository "agenda/internal/domains/outbox/repository"
	outboxWorker "agenda/internal/domains/outbox/worker"
	policyRepository "agenda/internal/domains/policy/repository"
	policyService "agenda/internal/domains/policy/service"
	reservationRepository "agenda/internal/domains/reservation/repository"
	reservationService "agenda/internal/domains/reservation/service"
	trustRepository "agenda/internal/domains/trust/repository"
	trustService "agenda/internal/domains/trust/service"
	waitlistRepository "agenda/internal/domains/waitlist/repository"
	waitlistService "agenda/internal/domains/waitlist/service"
	workinghoursRepository "agenda/internal/domains/workinghours/repository"
	workinghoursService "agenda/internal/domains/workinghours/service"

	availabilityHandler "agenda/internal/handlers/availability"
	blackoutHandler "agenda/internal/handlers/blackout"
	policyHandler "agenda/internal/handlers/policy"
	reservationHandler "agenda/internal/handlers/reservation"
	trustHandler "agenda/internal/handlers/trust"
	waitlistHandler "agenda/internal/handlers/waitlist"
	workinghoursHandler "agenda/internal/handlers/workinghours"
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
	notifier.MustNew,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuth,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	clock.New,
)

var workingHoursDomain = wire.NewSet(
	workinghoursRepository.New,
	workinghoursService.New,
)

var blackoutDomain = wire.NewSet(
	blackoutRepository.New,
	blackoutService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var trustDomain = wire.NewSet(
	trustRepository.New,
	trustService.New,
)

var waitlistDomain = wire.NewSet(
	waitlistRepository.New,
	waitlistService.New,
)

var policyDomain = wire.NewSet(
	policyRepository.New,
	policyService.New,
)

var outboxDomain = wire.NewSet(
	outboxRepository.New,
)

var domains = wire.NewSet(
	workingHoursDomain,
	blackoutDomain,
	availabilityDomain,
	reservationDomain,
	trustDomain,
	waitlistDomain,
	policyDomain,
	outboxDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	availabilityHandler.New,
	reservationHandler.New,
	waitlistHandler.New,
	trustHandler.New,
	workinghoursHandler.New,
	blackoutHandler.New,
	policyHandler.New,
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

func InitializeWorker() *outboxWorker.Worker {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		outboxWorker.New,
	)

	return &outboxWorker.Worker{}
}

func InitializeSweeper() *Sweeper {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		domains,
		wire.Struct(new(Sweeper), "*"),
	)

	return &Sweeper{}
}
