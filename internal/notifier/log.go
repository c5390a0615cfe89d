package notifier

import (
	"context"

	"github.com/rs/zerolog/log"

	obModel "agenda/internal/domains/outbox/model"
)

// LogSender writes messages to the application log instead of delivering
// them. Used in development and tests.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(_ context.Context, payload obModel.NotifyPayload) error {
	log.Info().
		Str("channel", payload.Channel).
		Str("recipient", payload.Recipient).
		Str("template", payload.Template).
		Interface("data", payload.Data).
		Str("body", renderBody(payload)).
		Msg("notification (log driver)")

	return nil
}
