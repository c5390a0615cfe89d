package notifier

//go:generate go run go.uber.org/mock/mockgen -source=./notifier.go -destination=./mocks/notifier_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"agenda/config"
	obModel "agenda/internal/domains/outbox/model"
)

// Sender delivers one rendered message to one recipient. Rendering and
// transport live here; the domain layer only ever produces NotifyPayload
// effect records.
type Sender interface {
	Send(ctx context.Context, payload obModel.NotifyPayload) error
}

const (
	DriverLog = "log"
	DriverSES = "ses"
)

// New selects the delivery driver from config. The log driver is the
// default so local environments never need AWS credentials.
func New(ctx context.Context, cfg *config.Config) (Sender, error) {
	switch cfg.Notifier.Driver {
	case DriverSES:
		return NewSESSender(ctx, cfg)
	case DriverLog, "":
		return NewLogSender(), nil
	default:
		return nil, fmt.Errorf("unknown notifier driver: %s", cfg.Notifier.Driver)
	}
}

// MustNew is the dependency-injection provider; sender construction only
// fails on misconfiguration, which is fatal at startup anyway.
func MustNew(cfg *config.Config) Sender {
	sender, err := New(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize notifier")
	}

	return sender
}

// subjects per template; the body falls back to a generic rendering of the
// payload data when a template has no dedicated copy.
var subjects = map[string]string{
	"booking_confirmed":   "Your appointment is confirmed",
	"booking_cancelled":   "Your appointment was cancelled",
	"booking_rescheduled": "Your appointment was rescheduled",
	"waitlist_notified":   "A slot opened up for you",
	"waitlist_converted":  "Your waitlist spot is now a booking",
	"waitlist_cancelled":  "Your waitlist request was withdrawn",
}

func subjectFor(template string) string {
	if subject, ok := subjects[template]; ok {
		return subject
	}

	return "Notification from your scheduling provider"
}

func renderBody(payload obModel.NotifyPayload) string {
	body := subjectFor(payload.Template) + "."

	if date, ok := payload.Data["date"].(string); ok {
		body += fmt.Sprintf("\nDate: %s", date)
	}

	if start, ok := payload.Data["start_time"].(string); ok {
		body += fmt.Sprintf("\nTime: %s", start)
	}

	if token, ok := payload.Data["confirmation_token"].(string); ok {
		body += fmt.Sprintf("\nConfirm here: /waitlist/confirm/%s", token)
	}

	if expires, ok := payload.Data["expires_at"].(string); ok {
		body += fmt.Sprintf("\nThis offer expires at %s.", expires)
	}

	if token, ok := payload.Data["cancel_token"].(string); ok {
		body += fmt.Sprintf("\nNeed to cancel? Use this link: /reservations/cancel/%s", token)
	}

	return body
}
