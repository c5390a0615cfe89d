package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Blackout=MockBlackoutService

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"agenda/config"
	"agenda/infras/otel"
	"agenda/internal/domains/blackout/model"
	"agenda/internal/domains/blackout/model/dto"
	"agenda/internal/domains/blackout/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/clock"
	"agenda/shared/constant"
	gDto "agenda/shared/dto"
	"agenda/shared/failure"
	gModel "agenda/shared/model"
)

const (
	cacheTenantBlackouts = "blackouts:tenant"
)

// Decision is the outcome of a blackout check. When Blocked is true, Period
// carries the matched period so callers can surface its kind and reason.
type Decision struct {
	Blocked bool
	Period  *model.BlackoutPeriod
}

type Blackout interface {
	IsBlocked(ctx context.Context, tenantID string, date time.Time, timeOfDay *gModel.TimeOfDay, staffID *string) (Decision, error)
	PeriodsForDate(ctx context.Context, tenantID string, date time.Time) ([]model.BlackoutPeriod, error)
	Create(ctx context.Context, tenantID string, req dto.CreateBlackoutRequest) (dto.BlackoutResponse, error)
	List(ctx context.Context, tenantID string, params gDto.QueryParams) (dto.ListBlackoutsResponse, error)
	Delete(ctx context.Context, tenantID, id string) error
}

type serviceImpl struct {
	repo  repository.Blackout
	cfg   *config.Config
	cache cache.RedisCache
	clock clock.Clock
	otel  otel.Otel
}

func New(repo repository.Blackout, cfg *config.Config, cache cache.RedisCache, clock clock.Clock, otel otel.Otel) Blackout {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		clock: clock,
		otel:  otel,
	}
}

// IsBlocked is a pure query: it never mutates and leaves the decision whether
// to reject a booking to the caller.
func (s *serviceImpl) IsBlocked(ctx context.Context, tenantID string, date time.Time, timeOfDay *gModel.TimeOfDay, staffID *string) (res Decision, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blackout.IsBlocked")
	defer scope.End()
	defer scope.TraceIfError(err)

	periods, err := s.repo.ListForDate(ctx, tenantID, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to list blackout periods")

		return res, fmt.Errorf("failed to list blackout periods: %w", err)
	}

	for idx := range periods {
		if periods[idx].Covers(date, timeOfDay, staffID) {
			return Decision{Blocked: true, Period: &periods[idx]}, nil
		}
	}

	return Decision{}, nil
}

// PeriodsForDate exposes the raw period list so callers that evaluate many
// candidate times against one date fetch the periods once.
func (s *serviceImpl) PeriodsForDate(ctx context.Context, tenantID string, date time.Time) (periods []model.BlackoutPeriod, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blackout.PeriodsForDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	periods, err = s.repo.ListForDate(ctx, tenantID, date)
	if err != nil {
		log.Error().Err(err).Msg("failed to list blackout periods")

		return nil, fmt.Errorf("failed to list blackout periods: %w", err)
	}

	return periods, nil
}

func (s *serviceImpl) Create(ctx context.Context, tenantID string, req dto.CreateBlackoutRequest) (res dto.BlackoutResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blackout.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyActorEmail).(string)

	period, err := req.ToModel(tenantID, actor, s.clock.Now())
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) //nolint:wrapcheck
	}

	if period.EndDate.Before(period.StartDate) {
		return res, failure.ValidationError("end_date must not be before start_date") //nolint:wrapcheck
	}

	if period.StartTime != nil && period.EndTime != nil && *period.EndTime <= *period.StartTime {
		return res, failure.ValidationError("end_time must be after start_time") //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, period); err != nil {
		log.Error().Err(err).Msg("failed to create blackout period")

		return res, fmt.Errorf("failed to create blackout period: %w", err)
	}

	s.invalidate(ctx, tenantID)

	res.FromModel(period)

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, tenantID string, params gDto.QueryParams) (res dto.ListBlackoutsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blackout.List")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(
		shared.BuildCacheKey(cacheTenantBlackouts, tenantID),
		params,
		shared.FilterByID(tenantID, model.FieldTenantID, model.TableName),
	)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	periods, err := s.repo.ListForTenant(ctx, tenantID, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to list blackout periods")

		return res, fmt.Errorf("failed to list blackout periods: %w", err)
	}

	res.Items = make([]dto.BlackoutResponse, 0, len(periods))

	for _, period := range periods {
		item := dto.BlackoutResponse{}
		item.FromModel(period)
		res.Items = append(res.Items, item)
	}

	if err = s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache blackout periods")
	}

	return res, nil
}

// Delete refuses to remove periods that have already started; past blackouts
// are part of the historical record.
func (s *serviceImpl) Delete(ctx context.Context, tenantID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".blackout.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	period, err := s.repo.Get(ctx, tenantID, id)
	if err != nil {
		return fmt.Errorf("failed to get blackout period: %w", err)
	}

	if period.ID == "" {
		return failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	if !gModel.Midnight(period.StartDate).After(gModel.Midnight(s.clock.Now())) {
		return failure.Conflict("blackout periods that have started cannot be deleted") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, tenantID, id); err != nil {
		log.Error().Err(err).Msg("failed to delete blackout period")

		return fmt.Errorf("failed to delete blackout period: %w", err)
	}

	s.invalidate(ctx, tenantID)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, tenantID string) {
	shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, shared.BuildCacheKey(cacheTenantBlackouts, tenantID))
}
