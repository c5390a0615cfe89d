package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"agenda/config"
	"agenda/di"
	"agenda/shared/logger"
	"agenda/shared/timezone"
)

// The sweeper runs the scheduled hygiene passes: the idempotent monthly
// trust counter reset and the waitlist NOTIFIED-entry expiry. Both are safe
// to run as often as the surrounding scheduler likes.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	timezone.Init(cfg.App.Timezone)

	ctx := context.Background()

	sweeper := di.InitializeSweeper()

	failed := false

	affected, err := sweeper.Trust.ResetMonthly(ctx)
	if err != nil {
		log.Error().Err(err).Msg("monthly trust reset failed")

		failed = true
	} else {
		log.Info().Int64("affected", affected).Msg("monthly trust reset done")
	}

	expired, err := sweeper.Waitlist.SweepExpired(ctx)
	if err != nil {
		log.Error().Err(err).Msg("waitlist expiry sweep failed")

		failed = true
	} else {
		log.Info().Int("expired", expired).Msg("waitlist expiry sweep done")
	}

	if failed {
		os.Exit(1)
	}
}
