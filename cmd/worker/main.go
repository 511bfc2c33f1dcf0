package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strings"

	"github.com/segmentio/kafka-go"

	"github.com/pushpakoirala/portfolio-api/adapters/event"
	"github.com/pushpakoirala/portfolio-api/internal/config"
)

// The worker consumes contact events and emails a notification to the
// site owner, so a new message never sits unnoticed.

func main() {
	fmt.Println("Starting Portfolio Notification Worker...")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	consumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicContactEvents,
		GroupID:  "contact-notifier-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer consumer.Close()

	log.Printf("Worker listening on topic '%s'...", event.TopicContactEvents)

	ctx := context.Background()
	for {
		msg, err := consumer.ReadMessage(ctx)
		if err != nil {
			log.Printf("ERROR: Failed to read message from Kafka: %v", err)
			continue
		}

		var payload event.ContactEvent
		if err := json.Unmarshal(msg.Value, &payload); err != nil {
			log.Printf("ERROR: Failed to unmarshal event: %v. Skipping.", err)
			commitMessage(consumer, msg)
			continue
		}

		log.Printf("Processing contact event for message %s", payload.MessageID)

		if err := sendNotification(cfg, payload); err != nil {
			log.Printf("ERROR: Failed to send notification for message %s: %v", payload.MessageID, err)
			continue
		}

		commitMessage(consumer, msg)
	}
}

func sendNotification(cfg config.Config, ev event.ContactEvent) error {
	if cfg.SMTP.Host == "" || cfg.SMTP.NotifyTo == "" {
		log.Printf("SMTP not configured, skipping notification for message %s", ev.MessageID)
		return nil
	}

	body := strings.Join([]string{
		"From: " + cfg.SMTP.From,
		"To: " + cfg.SMTP.NotifyTo,
		"Subject: New contact message from " + ev.Name,
		"",
		fmt.Sprintf("Name: %s", ev.Name),
		fmt.Sprintf("Email: %s", ev.Email),
		fmt.Sprintf("Received: %s", ev.CreatedAt.Format("2006-01-02 15:04:05 MST")),
		"",
		ev.Body,
	}, "\r\n")

	addr := net.JoinHostPort(cfg.SMTP.Host, cfg.SMTP.Port)
	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return smtp.SendMail(addr, auth, cfg.SMTP.From, []string{cfg.SMTP.NotifyTo}, []byte(body))
}

func commitMessage(consumer *kafka.Reader, msg kafka.Message) {
	if err := consumer.CommitMessages(context.Background(), msg); err != nil {
		log.Printf("ERROR: Failed to commit message: %v", err)
	}
}
