package message

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusUnread Status = "unread"
	StatusRead   Status = "read"
)

// Message is created by anonymous visitors through the contact form and
// only triaged (read/unread/delete) afterwards, never edited.
type Message struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Body      string     `json:"message"`
	Status    Status     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at"`
}

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrInvalidStatus   = errors.New("status must be unread or read")
)

func (s Status) Valid() bool {
	return s == StatusUnread || s == StatusRead
}

type Repository interface {
	// List filters by status when one is given, newest first.
	List(ctx context.Context, status Status) ([]*Message, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Message, error)
	Save(ctx context.Context, m *Message) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status, readAt *time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}
