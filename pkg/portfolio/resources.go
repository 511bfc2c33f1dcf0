package portfolio

import (
	"context"
	"fmt"
	"strconv"
)

type ProfileClient struct {
	c *Client
}

func (p *ProfileClient) Get(ctx context.Context) (*Profile, error) {
	var out Profile
	if err := p.c.do(ctx, "GET", "/api/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProfileClient) Update(ctx context.Context, payload ProfilePayload) (*Profile, error) {
	var out Profile
	if err := p.c.do(ctx, "PUT", "/api/profile", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type SkillClient struct {
	c *Client
}

func (s *SkillClient) List(ctx context.Context) ([]Skill, error) {
	var out []Skill
	if err := s.c.do(ctx, "GET", "/api/skills", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *SkillClient) Create(ctx context.Context, payload SkillPayload) (*Skill, error) {
	var out Skill
	if err := s.c.do(ctx, "POST", "/api/skills", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SkillClient) Update(ctx context.Context, id string, payload SkillPayload) (*Skill, error) {
	var out Skill
	if err := s.c.do(ctx, "PUT", "/api/skills/"+id, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SkillClient) Delete(ctx context.Context, id string) error {
	return s.c.do(ctx, "DELETE", "/api/skills/"+id, nil, nil)
}

type ProjectClient struct {
	c *Client
}

// List returns all projects when visible is nil, otherwise filters by the
// visibility flag server-side.
func (p *ProjectClient) List(ctx context.Context, visible *bool) ([]Project, error) {
	path := "/api/projects"
	if visible != nil {
		path += "?visible=" + strconv.FormatBool(*visible)
	}
	var out []Project
	if err := p.c.do(ctx, "GET", path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ProjectClient) Get(ctx context.Context, id string) (*Project, error) {
	var out Project
	if err := p.c.do(ctx, "GET", "/api/projects/"+id, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProjectClient) Create(ctx context.Context, payload ProjectPayload) (*Project, error) {
	var out Project
	if err := p.c.do(ctx, "POST", "/api/projects", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (p *ProjectClient) Update(ctx context.Context, id string, payload ProjectPayload) (*Project, error) {
	var out Project
	if err := p.c.do(ctx, "PUT", "/api/projects/"+id, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetVisibility is idempotent, repeating a value is not an error.
func (p *ProjectClient) SetVisibility(ctx context.Context, id string, visible bool) error {
	body := map[string]bool{"visible": visible}
	return p.c.do(ctx, "PATCH", fmt.Sprintf("/api/projects/%s/visibility", id), body, nil)
}

func (p *ProjectClient) Delete(ctx context.Context, id string) error {
	return p.c.do(ctx, "DELETE", "/api/projects/"+id, nil, nil)
}

type ExperienceClient struct {
	c *Client
}

func (e *ExperienceClient) List(ctx context.Context) ([]Experience, error) {
	var out []Experience
	if err := e.c.do(ctx, "GET", "/api/experience", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *ExperienceClient) Create(ctx context.Context, payload ExperiencePayload) (*Experience, error) {
	var out Experience
	if err := e.c.do(ctx, "POST", "/api/experience", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *ExperienceClient) Update(ctx context.Context, id string, payload ExperiencePayload) (*Experience, error) {
	var out Experience
	if err := e.c.do(ctx, "PUT", "/api/experience/"+id, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *ExperienceClient) Delete(ctx context.Context, id string) error {
	return e.c.do(ctx, "DELETE", "/api/experience/"+id, nil, nil)
}

type EducationClient struct {
	c *Client
}

func (e *EducationClient) List(ctx context.Context) ([]Education, error) {
	var out []Education
	if err := e.c.do(ctx, "GET", "/api/education", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (e *EducationClient) Create(ctx context.Context, payload EducationPayload) (*Education, error) {
	var out Education
	if err := e.c.do(ctx, "POST", "/api/education", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *EducationClient) Update(ctx context.Context, id string, payload EducationPayload) (*Education, error) {
	var out Education
	if err := e.c.do(ctx, "PUT", "/api/education/"+id, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (e *EducationClient) Delete(ctx context.Context, id string) error {
	return e.c.do(ctx, "DELETE", "/api/education/"+id, nil, nil)
}

type CertificationClient struct {
	c *Client
}

func (cc *CertificationClient) List(ctx context.Context) ([]Certification, error) {
	var out []Certification
	if err := cc.c.do(ctx, "GET", "/api/certifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (cc *CertificationClient) Create(ctx context.Context, payload CertificationPayload) (*Certification, error) {
	var out Certification
	if err := cc.c.do(ctx, "POST", "/api/certifications", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *CertificationClient) Update(ctx context.Context, id string, payload CertificationPayload) (*Certification, error) {
	var out Certification
	if err := cc.c.do(ctx, "PUT", "/api/certifications/"+id, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (cc *CertificationClient) Delete(ctx context.Context, id string) error {
	return cc.c.do(ctx, "DELETE", "/api/certifications/"+id, nil, nil)
}

// MessageClient has no Update, contact messages are immutable apart from
// their read status.
type MessageClient struct {
	c *Client
}

// List accepts "" for all messages, or "read"/"unread" to filter.
func (m *MessageClient) List(ctx context.Context, status string) ([]Message, error) {
	path := "/api/messages"
	if status != "" {
		path += "?status=" + status
	}
	var out []Message
	if err := m.c.do(ctx, "GET", path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Send is the public contact form submission, it needs no token.
func (m *MessageClient) Send(ctx context.Context, name, email, body string) (string, error) {
	payload := map[string]string{"name": name, "email": email, "message": body}
	var out struct {
		ID string `json:"id"`
	}
	if err := m.c.do(ctx, "POST", "/api/messages", payload, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (m *MessageClient) MarkRead(ctx context.Context, id string) error {
	return m.c.do(ctx, "PATCH", fmt.Sprintf("/api/messages/%s/read", id), nil, nil)
}

func (m *MessageClient) MarkUnread(ctx context.Context, id string) error {
	return m.c.do(ctx, "PATCH", fmt.Sprintf("/api/messages/%s/unread", id), nil, nil)
}

func (m *MessageClient) Delete(ctx context.Context, id string) error {
	return m.c.do(ctx, "DELETE", "/api/messages/"+id, nil, nil)
}
