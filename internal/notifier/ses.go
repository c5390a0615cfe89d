package notifier

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/rs/zerolog/log"

	"agenda/config"
	obModel "agenda/internal/domains/outbox/model"
)

// SESSender delivers email through AWS SES v2.
type SESSender struct {
	client *sesv2.Client
	sender string
}

func NewSESSender(ctx context.Context, cfg *config.Config) (*SESSender, error) {
	options := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Notifier.SES.Region),
	}

	if cfg.Notifier.SES.AccessKeyID != "" {
		staticProvider := credentials.NewStaticCredentialsProvider(
			cfg.Notifier.SES.AccessKeyID,
			cfg.Notifier.SES.SecretAccessKey,
			"",
		)
		options = append(options, awsconfig.WithCredentialsProvider(staticProvider))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	return &SESSender{
		client: sesv2.NewFromConfig(awsCfg),
		sender: cfg.Notifier.Sender,
	}, nil
}

func (s *SESSender) Send(ctx context.Context, payload obModel.NotifyPayload) error {
	if payload.Channel != "email" {
		return fmt.Errorf("ses sender cannot deliver channel %q", payload.Channel)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.sender),
		Destination: &types.Destination{
			ToAddresses: []string{payload.Recipient},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subjectFor(payload.Template)),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Text: &types.Content{
						Data:    aws.String(renderBody(payload)),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email via ses: %w", err)
	}

	log.Info().
		Str("recipient", payload.Recipient).
		Str("template", payload.Template).
		Msg("email sent")

	return nil
}
