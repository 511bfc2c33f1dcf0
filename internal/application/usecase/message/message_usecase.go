package message

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pushpakoirala/portfolio-api/adapters/event"
	"github.com/pushpakoirala/portfolio-api/internal/domain/message"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
	"github.com/pushpakoirala/portfolio-api/pkg/logger"
)

// ContactPublisher pushes contact events toward the notification worker.
type ContactPublisher interface {
	PublishContactEvent(ctx context.Context, ev event.ContactEvent) error
}

// RateLimiter guards the public contact endpoint.
type RateLimiter interface {
	AllowContactFrom(ctx context.Context, ip string) bool
}

type MessageUseCase struct {
	messageRepo message.Repository
	publisher   ContactPublisher
	limiter     RateLimiter
	logger      logger.Logger
}

func NewMessageUseCase(repo message.Repository, pub ContactPublisher, limiter RateLimiter, log logger.Logger) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: repo,
		publisher:   pub,
		limiter:     limiter,
		logger:      log,
	}
}

func (uc *MessageUseCase) List(ctx context.Context, status message.Status) ([]*message.Message, error) {
	if status != "" && !status.Valid() {
		return nil, apperror.NewInvalidInput("status filter must be unread or read", nil)
	}
	messages, err := uc.messageRepo.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list messages failed: %w", err)
	}
	return messages, nil
}

type CreateMessageInput struct {
	Name     string
	Email    string
	Body     string
	ClientIP string
}

// Create accepts an anonymous contact form submission. The notification
// event is best-effort, a Kafka outage must not lose the message itself.
func (uc *MessageUseCase) Create(ctx context.Context, input CreateMessageInput) (*message.Message, error) {
	if !uc.limiter.AllowContactFrom(ctx, input.ClientIP) {
		return nil, apperror.New(apperror.ErrPermission, "Too many messages, try again later", input.ClientIP, nil)
	}

	m := &message.Message{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Body:      input.Body,
		Status:    message.StatusUnread,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.messageRepo.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("save message failed: %w", err)
	}

	ev := event.ContactEvent{
		MessageID: m.ID.String(),
		Name:      m.Name,
		Email:     m.Email,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
	if err := uc.publisher.PublishContactEvent(ctx, ev); err != nil {
		uc.logger.Warn("failed to publish contact event", zap.String("message_id", ev.MessageID), zap.Error(err))
	}

	return m, nil
}

func (uc *MessageUseCase) MarkRead(ctx context.Context, id uuid.UUID) error {
	now := time.Now().UTC()
	return uc.messageRepo.UpdateStatus(ctx, id, message.StatusRead, &now)
}

func (uc *MessageUseCase) MarkUnread(ctx context.Context, id uuid.UUID) error {
	return uc.messageRepo.UpdateStatus(ctx, id, message.StatusUnread, nil)
}

func (uc *MessageUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.messageRepo.Delete(ctx, id)
}
