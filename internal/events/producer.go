// Package events publishes fleet events to Kafka
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fleet-dashboard/internal/config"
	"fleet-dashboard/internal/logger"
	"fleet-dashboard/internal/models"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
)

// Producer publishes truck location changes
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	log      *logger.Logger
	now      func() time.Time
}

// NewProducer connects a synchronous producer to the configured brokers
func NewProducer(cfg *config.KafkaConfig, log *logger.Logger) (*Producer, error) {
	saramaCfg := sarama.NewConfig()
	saramaCfg.Producer.RequiredAcks = sarama.WaitForAll
	saramaCfg.Producer.Retry.Max = 3
	saramaCfg.Producer.Return.Successes = true
	saramaCfg.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	log.WithField("brokers", cfg.Brokers).Info("✅ Kafka producer created")
	return NewProducerWith(producer, cfg.LocationsTopic, log), nil
}

// NewProducerWith wraps an existing sarama producer
func NewProducerWith(producer sarama.SyncProducer, topic string, log *logger.Logger) *Producer {
	return &Producer{producer: producer, topic: topic, log: log, now: time.Now}
}

func (p *Producer) Close() error {
	return p.producer.Close()
}

// PublishLocationUpdated sends one location.updated event keyed by truck
// id, so every update of a truck lands on the same partition
func (p *Producer) PublishLocationUpdated(location models.TruckLocation) error {
	event := models.Event{
		ID:        uuid.New(),
		Type:      models.EventTypeLocationUpdated,
		Timestamp: p.now(),
		Data: models.LocationUpdatedEvent{
			TruckID:    location.ID,
			Status:     location.Status,
			Lon:        location.Coordinates.Lon(),
			Lat:        location.Coordinates.Lat(),
			LastUpdate: location.LastUpdate,
		},
	}
	return p.publishEvent(location.ID, event)
}

// LocationUpdated lets the producer subscribe to the location feed.
// Failures are logged; the feed keeps ticking.
func (p *Producer) LocationUpdated(_ context.Context, location models.TruckLocation) {
	if err := p.PublishLocationUpdated(location); err != nil {
		p.log.WithError(err).WithField("truck_id", location.ID).Error("❌ Failed to publish location update")
	}
}

func (p *Producer) publishEvent(key string, event models.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(event.Type)},
			{Key: []byte("event_id"), Value: []byte(event.ID.String())},
			{Key: []byte("timestamp"), Value: []byte(event.Timestamp.Format(time.RFC3339))},
		},
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send message to topic %s: %w", p.topic, err)
	}

	p.log.WithField("topic", p.topic).
		WithField("partition", partition).
		WithField("offset", offset).
		WithField("event_id", event.ID).
		Debug("Event published")
	return nil
}
