package profile

import (
	"context"
	"time"
)

// Profile is a singleton, the row is seeded once and only ever replaced.
type Profile struct {
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Headline     string    `json:"headline"`
	About        string    `json:"about"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	LinkedIn     string    `json:"linkedin"`
	GitHub       string    `json:"github"`
	ProfilePhoto *string   `json:"profile_photo"`
	ResumeURL    *string   `json:"resume_url"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Repository interface {
	Get(ctx context.Context) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}
