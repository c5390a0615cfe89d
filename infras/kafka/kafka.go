package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"

	"agenda/config"
)

// Message carries a key and a JSON-encodable value onto a topic.
type Message struct {
	Key   string
	Value any
}

func (m Message) encode() (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value: %w", err)
	}

	return kafkaGo.Message{Key: []byte(m.Key), Value: value}, nil
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) (err error)
}

type clientImpl struct {
	writer *kafkaGo.Writer
}

func New(config *config.Config) Client {
	var transport *kafkaGo.Transport

	if config.Kafka.SASL.Username != "" {
		transport = &kafkaGo.Transport{
			SASL: plain.Mechanism{
				Username: config.Kafka.SASL.Username,
				Password: config.Kafka.SASL.Password,
			},
		}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(config.Kafka.Brokers...),
		Transport:              transport,
		Balancer:               &kafkaGo.Hash{},
		AllowAutoTopicCreation: true,
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("kafka writer initialized")

	return &clientImpl{writer: writer}
}

func (c *clientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	encoded := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.encode()
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Str("key", message.Key).Msg("failed to encode kafka message")

			return err
		}

		msg.Topic = topic
		encoded = append(encoded, msg)
	}

	if err := c.writer.WriteMessages(ctx, encoded...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("failed to publish kafka messages")

		return fmt.Errorf("failed to publish kafka messages: %w", err)
	}

	return nil
}
