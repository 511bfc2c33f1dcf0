package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/pushpakoirala/portfolio-api/internal/config"
)

const TopicContactEvents = "contact.events"

// ContactEvent is published for every contact form submission. The worker
// turns it into an email notification.
type ContactEvent struct {
	MessageID string    `json:"message_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type KafkaProducerClient struct {
	ContactEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contactWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContactEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{ContactEventsWriter: contactWriter}, nil
}

func (c *KafkaProducerClient) PublishContactEvent(ctx context.Context, ev ContactEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("cannot marshal contact event: %w", err)
	}

	return c.ContactEventsWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.MessageID),
		Value: payload,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.ContactEventsWriter != nil {
		c.ContactEventsWriter.Close()
	}
}
