package kafka

import (
	"context"
	"fmt"
	"time"

	"productivity-service/internal/config"
	"productivity-service/internal/domain/entity"
	"productivity-service/internal/domain/service"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// EventTypeReminderDue is the event_type of reminder events
const EventTypeReminderDue = "reminder.due"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Producer publishes reminder events to Kafka
type Producer struct {
	writer messageWriter
	now    func() time.Time
}

var _ service.ReminderNotifier = (*Producer)(nil)

// NewProducer creates a new Kafka producer. Writes are synchronous so a
// failed publish leaves the reminder unfired.
func NewProducer(cfg *config.KafkaConfig) *Producer {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    10,
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}

	return newProducer(writer)
}

func newProducer(writer messageWriter) *Producer {
	return &Producer{
		writer: writer,
		now:    time.Now,
	}
}

// NotifyReminderDue publishes a reminder.due event keyed by user ID
func (p *Producer) NotifyReminderDue(ctx context.Context, reminder *entity.Reminder) error {
	data, err := encodeReminderDue(uuid.NewString(), reminder, p.now().UTC())
	if err != nil {
		return err
	}

	message := kafka.Message{
		Key:   []byte(reminder.UserID.String()),
		Value: data,
		Time:  p.now(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeReminderDue)},
		},
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to publish reminder due event: %w", err)
	}

	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	return p.writer.Close()
}

// encodeReminderDue marshals the event as a protobuf Struct
func encodeReminderDue(eventID string, reminder *entity.Reminder, at time.Time) ([]byte, error) {
	payload := map[string]any{
		"event_id":     eventID,
		"event_type":   EventTypeReminderDue,
		"timestamp":    at.Format(time.RFC3339Nano),
		"reminder_id":  reminder.ID.String(),
		"task_id":      reminder.TaskID.String(),
		"user_id":      reminder.UserID.String(),
		"trigger_time": reminder.TriggerTime.UTC().Format(time.RFC3339Nano),
	}
	if reminder.Message != nil {
		payload["message"] = *reminder.Message
	}

	event, err := structpb.NewStruct(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to build event: %w", err)
	}

	data, err := proto.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	return data, nil
}
