package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=WorkingHours=MockWorkingHoursService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"agenda/config"
	"agenda/infras/otel"
	"agenda/internal/domains/workinghours/model"
	"agenda/internal/domains/workinghours/model/dto"
	"agenda/internal/domains/workinghours/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/clock"
	"agenda/shared/constant"
	"agenda/shared/failure"
)

const (
	cacheStaffHours = "workinghours:staff"
)

type WorkingHours interface {
	Upsert(ctx context.Context, tenantID string, req dto.UpsertWorkingHoursRequest) error
	List(ctx context.Context, tenantID, staffID string) (dto.ListWorkingHoursResponse, error)
	SetActive(ctx context.Context, tenantID, staffID string, weekday int, active bool) error
	GetForWeekday(ctx context.Context, tenantID, staffID string, weekday int) (model.WorkingHours, error)
}

type serviceImpl struct {
	repo  repository.WorkingHours
	cfg   *config.Config
	cache cache.RedisCache
	clock clock.Clock
	otel  otel.Otel
}

func New(repo repository.WorkingHours, cfg *config.Config, cache cache.RedisCache, clock clock.Clock, otel otel.Otel) WorkingHours {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		clock: clock,
		otel:  otel,
	}
}

func (s *serviceImpl) Upsert(ctx context.Context, tenantID string, req dto.UpsertWorkingHoursRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".workinghours.Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyActorEmail).(string)

	row, err := req.ToModel(tenantID, actor, s.clock.Now())
	if err != nil {
		return failure.BadRequestFromString(err.Error()) //nolint:wrapcheck
	}

	if row.EndTime <= row.StartTime {
		return failure.ValidationError("end_time must be after start_time") //nolint:wrapcheck
	}

	if err = s.repo.Upsert(ctx, row); err != nil {
		log.Error().Err(err).Msg("failed to upsert working hours")

		return fmt.Errorf("failed to upsert working hours: %w", err)
	}

	s.invalidate(ctx, tenantID, req.StaffID)

	return nil
}

func (s *serviceImpl) List(ctx context.Context, tenantID, staffID string) (res dto.ListWorkingHoursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".workinghours.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheStaffHours, tenantID, staffID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	rows, err := s.repo.ListForStaff(ctx, tenantID, staffID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list working hours")

		return res, fmt.Errorf("failed to list working hours: %w", err)
	}

	res.Items = make([]dto.WorkingHoursResponse, 0, len(rows))

	for _, row := range rows {
		item := dto.WorkingHoursResponse{}
		item.FromModel(row)
		res.Items = append(res.Items, item)
	}

	if err = s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache working hours")
	}

	return res, nil
}

func (s *serviceImpl) SetActive(ctx context.Context, tenantID, staffID string, weekday int, active bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".workinghours.SetActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	if weekday < 0 || weekday > 6 {
		return failure.ValidationError("weekday must be between 0 and 6") //nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyActorEmail).(string)

	if err = s.repo.SetActive(ctx, tenantID, staffID, weekday, active, actor); err != nil {
		log.Error().Err(err).Msg("failed to toggle working hours")

		return fmt.Errorf("failed to toggle working hours: %w", err)
	}

	s.invalidate(ctx, tenantID, staffID)

	return nil
}

// GetForWeekday is the read used by availability; it bypasses the cache so a
// freshly edited schedule is honored by the very next booking attempt.
func (s *serviceImpl) GetForWeekday(ctx context.Context, tenantID, staffID string, weekday int) (model.WorkingHours, error) {
	return s.repo.GetForWeekday(ctx, tenantID, staffID, weekday)
}

func (s *serviceImpl) invalidate(ctx context.Context, tenantID, staffID string) {
	c := context.WithoutCancel(ctx)

	if err := s.cache.Delete(c, shared.BuildCacheKey(cacheStaffHours, tenantID, staffID)); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate working hours cache")
	}
}
