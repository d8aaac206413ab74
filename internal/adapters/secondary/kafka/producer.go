package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"log/slog"

	"github.com/IBM/sarama"
	"github.com/admin/lucky-shop/divination-api/internal/domain"
)

// Producer реализация Kafka producer для событий движка гаданий
type Producer struct {
	producer sarama.SyncProducer
	cfg      *Config
	log      *slog.Logger
}

// NewProducer создаёт новый Kafka producer
func NewProducer(cfg *Config, log *slog.Logger) (*Producer, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5

	// Настройка безопасности (если указано)
	if cfg.SecurityProtocol == "SASL_SSL" || cfg.SecurityProtocol == "SASL_PLAINTEXT" {
		config.Net.SASL.Enable = true
		config.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		if cfg.SASLMechanism == "SCRAM-SHA-256" {
			config.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		}
		config.Net.SASL.User = cfg.SASLUsername
		config.Net.SASL.Password = cfg.SASLPassword
		if cfg.SecurityProtocol == "SASL_SSL" {
			config.Net.TLS.Enable = true
		}
	}

	producer, err := sarama.NewSyncProducer(cfg.GetBrokers(), config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	log.Info("kafka producer created",
		"brokers", cfg.Brokers,
		"topic", cfg.Topic,
	)

	return &Producer{
		producer: producer,
		cfg:      cfg,
		log:      log,
	}, nil
}

// SendReadingCreated отправляет событие о завершённом раскладе.
// Ключ сообщения - reading_id, device_id и method_id уходят в headers.
func (p *Producer) SendReadingCreated(ctx context.Context, event domain.ReadingCreatedEvent) error {
	valueBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal reading event: %w", err)
	}

	headers := []sarama.RecordHeader{
		{
			Key:   []byte("device_id"),
			Value: []byte(event.DeviceID),
		},
		{
			Key:   []byte("method_id"),
			Value: []byte(event.MethodID),
		},
	}

	msg := &sarama.ProducerMessage{
		Topic:   p.cfg.Topic,
		Key:     sarama.StringEncoder(event.ReadingID.String()),
		Value:   sarama.ByteEncoder(valueBytes),
		Headers: headers,
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		p.log.Debug("kafka send failed",
			"error", err,
			"topic", p.cfg.Topic,
			"key", event.ReadingID.String(),
		)
		return fmt.Errorf("kafka send failed [topic=%s, key=%s]: %w",
			p.cfg.Topic, event.ReadingID.String(), err)
	}

	p.log.Debug("reading event sent to kafka",
		"topic", p.cfg.Topic,
		"partition", partition,
		"offset", offset,
		"key", event.ReadingID.String(),
		"device_id", event.DeviceID,
	)

	return nil
}

// Close закрывает producer
func (p *Producer) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	p.log.Info("kafka producer closed")
	return nil
}
