package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Policy=MockPolicyService

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"agenda/config"
	"agenda/infras/otel"
	"agenda/internal/domains/policy/model"
	"agenda/internal/domains/policy/model/dto"
	"agenda/internal/domains/policy/repository"
	"agenda/shared"
	"agenda/shared/cache"
	"agenda/shared/clock"
	"agenda/shared/constant"
	gModel "agenda/shared/model"
)

const (
	cachePolicy = "policy:tenant"
)

type Policy interface {
	Get(ctx context.Context, tenantID string) (model.CancellationPolicy, error)
	Update(ctx context.Context, tenantID string, req dto.UpdatePolicyRequest) error
}

type serviceImpl struct {
	repo  repository.Policy
	cfg   *config.Config
	cache cache.RedisCache
	clock clock.Clock
	otel  otel.Otel
}

func New(repo repository.Policy, cfg *config.Config, cache cache.RedisCache, clock clock.Clock, otel otel.Otel) Policy {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		clock: clock,
		otel:  otel,
	}
}

// Get returns the tenant's cancellation policy, falling back to the
// platform defaults when the tenant never configured one.
func (s *serviceImpl) Get(ctx context.Context, tenantID string) (res model.CancellationPolicy, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".policy.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cachePolicy, tenantID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Get(ctx, tenantID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tenant policy")

		return res, fmt.Errorf("failed to get tenant policy: %w", err)
	}

	if res.TenantID == "" {
		res = s.defaults(tenantID)
	}

	if err = s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("cacheKey", cacheKey).Msg("failed to cache tenant policy")
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, tenantID string, req dto.UpdatePolicyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".policy.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyActorEmail).(string)

	policy := model.CancellationPolicy{
		TenantID:       tenantID,
		Enabled:        req.Enabled,
		MinNoticeHours: req.MinNoticeHours,
		MaxPerMonth:    req.MaxPerMonth,
		BlockOnExceed:  req.BlockOnExceed,
		BlockDays:      req.BlockDays,
		BlockMessage:   req.BlockMessage,
		Metadata:       gModel.NewMetadata(s.clock.Now(), actor),
	}

	if err = s.repo.Upsert(ctx, policy); err != nil {
		log.Error().Err(err).Msg("failed to update tenant policy")

		return fmt.Errorf("failed to update tenant policy: %w", err)
	}

	c := context.WithoutCancel(ctx)
	if err := s.cache.Delete(c, shared.BuildCacheKey(cachePolicy, tenantID)); err != nil {
		log.Warn().Err(err).Msg("failed to invalidate tenant policy cache")
	}

	return nil
}

func (s *serviceImpl) defaults(tenantID string) model.CancellationPolicy {
	defaults := s.cfg.Booking.Policy

	return model.CancellationPolicy{
		TenantID:       tenantID,
		Enabled:        defaults.Enabled,
		MinNoticeHours: defaults.MinNoticeHours,
		MaxPerMonth:    defaults.MaxPerMonth,
		BlockOnExceed:  defaults.BlockOnExceed,
		BlockDays:      defaults.BlockDays,
		BlockMessage:   defaults.BlockMessage,
	}
}
