// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"agenda/config"
	"agenda/infras/jwt"
	"agenda/infras/kafka"
	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/infras/redis"
	service3 "agenda/internal/domains/availability/service"
	repository2 "agenda/internal/domains/blackout/repository"
	service2 "agenda/internal/domains/blackout/service"
	repository3 "agenda/internal/domains/outbox/repository"
	"agenda/internal/domains/outbox/worker"
	repository6 "agenda/internal/domains/policy/repository"
	service5 "agenda/internal/domains/policy/service"
	repository4 "agenda/internal/domains/reservation/repository"
	service6 "agenda/internal/domains/reservation/service"
	repository5 "agenda/internal/domains/trust/repository"
	service4 "agenda/internal/domains/trust/service"
	repository7 "agenda/internal/domains/waitlist/repository"
	service7 "agenda/internal/domains/waitlist/service"
	"agenda/internal/domains/workinghours/repository"
	"agenda/internal/domains/workinghours/service"
	"agenda/internal/handlers/availability"
	"agenda/internal/handlers/blackout"
	"agenda/internal/handlers/policy"
	"agenda/internal/handlers/reservation"
	"agenda/internal/handlers/trust"
	"agenda/internal/handlers/waitlist"
	"agenda/internal/handlers/workinghours"
	"agenda/internal/notifier"
	"agenda/shared/cache"
	"agenda/shared/clock"
	"agenda/transport/http"
	"agenda/transport/http/middleware"
	"agenda/transport/http/router"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	workingHours := repository.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	clockClock := clock.New()
	serviceWorkingHours := service.New(workingHours, configConfig, redisCache, clockClock, otelOtel)
	repositoryBlackout := repository2.New(connection, otelOtel)
	serviceBlackout := service2.New(repositoryBlackout, configConfig, redisCache, clockClock, otelOtel)
	outbox := repository3.New(connection, otelOtel)
	repositoryReservation := repository4.New(connection, outbox, otelOtel)
	serviceAvailability := service3.New(serviceWorkingHours, serviceBlackout, repositoryReservation, clockClock, otelOtel)
	handler := availability.New(serviceAvailability, otelOtel)
	repositoryTrust := repository5.New(connection, otelOtel)
	serviceTrust := service4.New(repositoryTrust, clockClock, otelOtel)
	repositoryPolicy := repository6.New(connection, otelOtel)
	servicePolicy := service5.New(repositoryPolicy, configConfig, redisCache, clockClock, otelOtel)
	serviceReservation := service6.New(repositoryReservation, serviceAvailability, serviceTrust, servicePolicy, clockClock, otelOtel)
	reservationHandler := reservation.New(serviceReservation, otelOtel)
	repositoryWaitlist := repository7.New(connection, otelOtel)
	serviceWaitlist := service7.New(repositoryWaitlist, serviceReservation, outbox, configConfig, clockClock, otelOtel)
	waitlistHandler := waitlist.New(serviceWaitlist, otelOtel)
	trustHandler := trust.New(serviceTrust, otelOtel)
	workinghoursHandler := workinghours.New(serviceWorkingHours, otelOtel)
	blackoutHandler := blackout.New(serviceBlackout, otelOtel)
	policyHandler := policy.New(servicePolicy, otelOtel)
	domainHandlers := router.DomainHandlers{
		Availability: handler,
		Reservation:  reservationHandler,
		Waitlist:     waitlistHandler,
		Trust:        trustHandler,
		WorkingHours: workinghoursHandler,
		Blackout:     blackoutHandler,
		Policy:       policyHandler,
	}
	verifier := jwt.New(configConfig)
	auth := middleware.NewAuth(verifier, otelOtel)
	routerRouter := router.New(domainHandlers, auth)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

func InitializeWorker() *worker.Worker {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	outbox := repository3.New(connection, otelOtel)
	repositoryTrust := repository5.New(connection, otelOtel)
	clockClock := clock.New()
	serviceTrust := service4.New(repositoryTrust, clockClock, otelOtel)
	repositoryPolicy := repository6.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	servicePolicy := service5.New(repositoryPolicy, configConfig, redisCache, clockClock, otelOtel)
	repositoryWaitlist := repository7.New(connection, otelOtel)
	repositoryReservation := repository4.New(connection, outbox, otelOtel)
	workingHours := repository.New(connection, otelOtel)
	serviceWorkingHours := service.New(workingHours, configConfig, redisCache, clockClock, otelOtel)
	repositoryBlackout := repository2.New(connection, otelOtel)
	serviceBlackout := service2.New(repositoryBlackout, configConfig, redisCache, clockClock, otelOtel)
	serviceAvailability := service3.New(serviceWorkingHours, serviceBlackout, repositoryReservation, clockClock, otelOtel)
	serviceReservation := service6.New(repositoryReservation, serviceAvailability, serviceTrust, servicePolicy, clockClock, otelOtel)
	serviceWaitlist := service7.New(repositoryWaitlist, serviceReservation, outbox, configConfig, clockClock, otelOtel)
	sender := notifier.MustNew(configConfig)
	kafkaClient := kafka.New(configConfig)
	workerWorker := worker.New(outbox, serviceTrust, servicePolicy, serviceWaitlist, sender, kafkaClient, configConfig, clockClock, otelOtel)
	return workerWorker
}

func InitializeSweeper() *Sweeper {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryTrust := repository5.New(connection, otelOtel)
	clockClock := clock.New()
	serviceTrust := service4.New(repositoryTrust, clockClock, otelOtel)
	repositoryWaitlist := repository7.New(connection, otelOtel)
	outbox := repository3.New(connection, otelOtel)
	repositoryReservation := repository4.New(connection, outbox, otelOtel)
	workingHours := repository.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceWorkingHours := service.New(workingHours, configConfig, redisCache, clockClock, otelOtel)
	repositoryBlackout := repository2.New(connection, otelOtel)
	serviceBlackout := service2.New(repositoryBlackout, configConfig, redisCache, clockClock, otelOtel)
	serviceAvailability := service3.New(serviceWorkingHours, serviceBlackout, repositoryReservation, clockClock, otelOtel)
	repositoryPolicy := repository6.New(connection, otelOtel)
	servicePolicy := service5.New(repositoryPolicy, configConfig, redisCache, clockClock, otelOtel)
	serviceReservation := service6.New(repositoryReservation, serviceAvailability, serviceTrust, servicePolicy, clockClock, otelOtel)
	serviceWaitlist := service7.New(repositoryWaitlist, serviceReservation, outbox, configConfig, clockClock, otelOtel)
	sweeper := &Sweeper{
		Trust:    serviceTrust,
		Waitlist: serviceWaitlist,
	}
	return sweeper
}

// wire.go:

var configurations = wire.NewSet(config.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New, notifier.MustNew)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuth)

var sharedHelpers = wire.NewSet(cache.NewRedisCache, clock.New)

var workingHoursDomain = wire.NewSet(repository.New, service.New)

var blackoutDomain = wire.NewSet(repository2.New, service2.New)

var availabilityDomain = wire.NewSet(service3.New)

var reservationDomain = wire.NewSet(repository4.New, service6.New)

var trustDomain = wire.NewSet(repository5.New, service4.New)

var waitlistDomain = wire.NewSet(repository7.New, service7.New)

var policyDomain = wire.NewSet(repository6.New, service5.New)

var outboxDomain = wire.NewSet(repository3.New)

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

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), availability.New, reservation.New, waitlist.New, trust.New, workinghours.New, blackout.New, policy.New, router.New)
