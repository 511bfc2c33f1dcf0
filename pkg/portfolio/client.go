// Package portfolio is the typed client for the portfolio REST API. It is
// shared by the admin tooling and by anything rendering the public page.
package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the current bearer token, or "" when anonymous.
// It is consulted on every request, never cached, so a token swap after a
// username change is picked up immediately.
type TokenSource interface {
	Token() string
}

// Anonymous is a TokenSource for unauthenticated public consumers.
type Anonymous struct{}

func (Anonymous) Token() string { return "" }

// APIError carries the server's user-displayable message when one could
// be decoded from the response body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

// IsAuthError reports whether err is a 401 from the server.
func IsAuthError(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.Status == http.StatusUnauthorized
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	if tokens == nil {
		tokens = Anonymous{}
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Auth() *AuthClient                    { return &AuthClient{c} }
func (c *Client) Profile() *ProfileClient              { return &ProfileClient{c} }
func (c *Client) Skills() *SkillClient                 { return &SkillClient{c} }
func (c *Client) Projects() *ProjectClient             { return &ProjectClient{c} }
func (c *Client) Experience() *ExperienceClient        { return &ExperienceClient{c} }
func (c *Client) Education() *EducationClient          { return &EducationClient{c} }
func (c *Client) Certifications() *CertificationClient { return &CertificationClient{c} }
func (c *Client) Messages() *MessageClient             { return &MessageClient{c} }

// do issues one request and decodes the JSON response into out (when out
// is non-nil). Requests are never retried.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// The token is read at request-construction time by design.
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeAPIError(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
	}
	return nil
}

// decodeAPIError extracts the server's message, falling back to a generic
// one when the body is not decodable.
func decodeAPIError(status int, raw []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
		Detail  string `json:"detail"`
	}
	msg := ""
	if err := json.Unmarshal(raw, &payload); err == nil {
		switch {
		case payload.Message != "":
			msg = payload.Message
		case payload.Detail != "":
			msg = payload.Detail
		case payload.Error != "":
			msg = payload.Error
		}
	}
	if msg == "" {
		msg = fmt.Sprintf("request failed with status %d", status)
	}
	return &APIError{Status: status, Message: msg}
}
