package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Trust=MockTrustService

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"agenda/infras/otel"
	policyModel "agenda/internal/domains/policy/model"
	"agenda/internal/domains/trust/model"
	"agenda/internal/domains/trust/repository"
	"agenda/shared/clock"
	"agenda/shared/constant"
	"agenda/shared/failure"
	gModel "agenda/shared/model"
	"agenda/shared/timezone"
)

type Trust interface {
	CheckAndMaybeUnblock(ctx context.Context, tenantID, clientEmail string) (model.ClientTrustRecord, error)
	CanBook(ctx context.Context, tenantID, clientEmail string) error
	RecordCancellation(ctx context.Context, tenantID, clientEmail string, policy policyModel.CancellationPolicy) (justBlocked bool, remaining int, err error)
	ResetMonthly(ctx context.Context) (int64, error)
}

type serviceImpl struct {
	repo  repository.Trust
	clock clock.Clock
	otel  otel.Otel
}

func New(repo repository.Trust, clock clock.Clock, otel otel.Otel) Trust {
	return &serviceImpl{
		repo:  repo,
		clock: clock,
		otel:  otel,
	}
}

// CheckAndMaybeUnblock loads (creating if absent) the client's record and
// clears an elapsed block before returning it. Blocks expire lazily here, so
// no scheduled job has to fire exactly when a block ends.
func (s *serviceImpl) CheckAndMaybeUnblock(ctx context.Context, tenantID, clientEmail string) (rec model.ClientTrustRecord, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trust.CheckAndMaybeUnblock")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := s.clock.Now()

	rec, err = s.repo.GetOrCreate(ctx, model.ClientTrustRecord{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		ClientEmail: clientEmail,
		Period:      now.Format(model.PeriodFormat),
		Metadata:    gModel.NewMetadata(now, constant.RoleSystem),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to load trust record")

		return rec, fmt.Errorf("failed to load trust record: %w", err)
	}

	rec, unblocked := model.MaybeUnblock(rec, now)
	rec, rolled := model.RollPeriod(rec, now)

	if unblocked || rolled {
		rec.Touch(now, constant.RoleSystem)

		if err = s.repo.Save(ctx, rec); err != nil {
			log.Error().Err(err).Msg("failed to persist trust record")

			return rec, fmt.Errorf("failed to persist trust record: %w", err)
		}
	}

	return rec, nil
}

// CanBook returns a ClientBlocked failure when the trust policy currently
// forbids the client from booking, nil otherwise.
func (s *serviceImpl) CanBook(ctx context.Context, tenantID, clientEmail string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trust.CanBook")
	defer scope.End()
	defer scope.TraceIfError(err)

	rec, err := s.CheckAndMaybeUnblock(ctx, tenantID, clientEmail)
	if err != nil {
		return err
	}

	if rec.Blocked {
		until := ""
		if rec.BlockedUntil != nil {
			until = timezone.Format(*rec.BlockedUntil, time.RFC3339)
		}

		reason := ""
		if rec.BlockReason != nil {
			reason = *rec.BlockReason
		}

		return failure.ClientBlocked(until, reason)
	}

	return nil
}

func (s *serviceImpl) RecordCancellation(ctx context.Context, tenantID, clientEmail string, policy policyModel.CancellationPolicy) (justBlocked bool, remaining int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trust.RecordCancellation")
	defer scope.End()
	defer scope.TraceIfError(err)

	rec, err := s.CheckAndMaybeUnblock(ctx, tenantID, clientEmail)
	if err != nil {
		return false, 0, err
	}

	now := s.clock.Now()

	rec, justBlocked, remaining = model.ApplyCancellation(rec, policy, now)
	rec.Touch(now, constant.RoleSystem)

	if err = s.repo.Save(ctx, rec); err != nil {
		log.Error().Err(err).Msg("failed to record cancellation")

		return false, 0, fmt.Errorf("failed to record cancellation: %w", err)
	}

	if justBlocked {
		log.Info().
			Str("tenantID", tenantID).
			Str("clientEmail", clientEmail).
			Time("blockedUntil", *rec.BlockedUntil).
			Msg("client blocked after exceeding cancellation threshold")
	}

	return justBlocked, remaining, nil
}

// ResetMonthly zeroes every stale period counter. Safe to run repeatedly
// within the same month.
func (s *serviceImpl) ResetMonthly(ctx context.Context) (affected int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trust.ResetMonthly")
	defer scope.End()
	defer scope.TraceIfError(err)

	period := s.clock.Now().Format(model.PeriodFormat)

	affected, err = s.repo.ResetPeriods(ctx, period)
	if err != nil {
		log.Error().Err(err).Msg("failed to reset trust periods")

		return 0, fmt.Errorf("failed to reset trust periods: %w", err)
	}

	log.Info().Str("period", period).Int64("affected", affected).Msg("monthly trust reset complete")

	return affected, nil
}
