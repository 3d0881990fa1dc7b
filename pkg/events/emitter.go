package events

import (
	"context"
	"fmt"
	"time"

	"github.com/Gobusters/ectologger"
	"github.com/segmentio/kafka-go"

	"github.com/Ramsey-B/fern/pkg/affiliate"
	"github.com/Ramsey-B/fern/pkg/appcontext"
	"github.com/Ramsey-B/fern/pkg/metrics"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

// EmitterConfig configures the click event producer.
type EmitterConfig struct {
	Brokers      []string
	Topic        string
	BatchSize    int
	BatchTimeout time.Duration
	RequiredAcks int
}

// DefaultEmitterConfig returns an EmitterConfig with sensible defaults
func DefaultEmitterConfig() EmitterConfig {
	return EmitterConfig{
		Brokers:      []string{"localhost:9092"},
		Topic:        "affiliate-clicks",
		BatchSize:    100,
		BatchTimeout: 100 * time.Millisecond,
		RequiredAcks: 1,
	}
}

// Emitter publishes click events to Kafka.
type Emitter struct {
	writer *kafka.Writer
	logger ectologger.Logger
	config EmitterConfig
}

// NewEmitter creates a click event emitter.
func NewEmitter(config EmitterConfig, logger ectologger.Logger) (*Emitter, error) {
	if len(config.Brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(config.Brokers...),
		Topic:                  config.Topic,
		Balancer:               &kafka.Hash{}, // Hash by key for partition affinity
		BatchSize:              config.BatchSize,
		BatchTimeout:           config.BatchTimeout,
		RequiredAcks:           kafka.RequiredAcks(config.RequiredAcks),
		AllowAutoTopicCreation: true,
	}

	return &Emitter{
		writer: writer,
		logger: logger,
		config: config,
	}, nil
}

// EmitClick publishes a click event for a followed tracking link.
func (e *Emitter) EmitClick(ctx context.Context, trackingID, deviceID, destinationURL string) error {
	ctx, span := tracing.StartSpan(ctx, "events.Emitter.EmitClick")
	defer span.End()

	event := &ClickEvent{
		EventType:      "affiliate.click",
		SchemaVersion:  SchemaVersion,
		TrackingID:     trackingID,
		DeviceID:       deviceID,
		UserID:         appcontext.GetUserID(ctx),
		Provider:       affiliate.ProviderWildfire,
		DestinationURL: destinationURL,
		RequestID:      appcontext.GetRequestID(ctx),
		ClickedAt:      time.Now().UTC(),
	}

	data, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to serialize click event: %w", err)
	}

	headers := []kafka.Header{
		{Key: "event_type", Value: []byte(event.EventType)},
		{Key: "schema_version", Value: []byte(SchemaVersion)},
	}
	if traceParent := tracing.GetTraceParent(ctx); traceParent != "" {
		headers = append(headers, kafka.Header{Key: "traceparent", Value: []byte(traceParent)})
	}

	msg := kafka.Message{
		Key:     []byte(event.Key()),
		Value:   data,
		Headers: headers,
		Time:    event.ClickedAt,
	}

	if err := e.writer.WriteMessages(ctx, msg); err != nil {
		metrics.ClicksEmitted.WithLabelValues("error").Inc()
		e.logger.WithContext(ctx).WithError(err).Error("Failed to emit affiliate.click event")
		return fmt.Errorf("failed to publish click event: %w", err)
	}

	metrics.ClicksEmitted.WithLabelValues("ok").Inc()
	return nil
}

// Close closes the underlying writer.
func (e *Emitter) Close() error {
	if err := e.writer.Close(); err != nil {
		return fmt.Errorf("failed to close click emitter: %w", err)
	}
	return nil
}
