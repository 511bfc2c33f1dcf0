package portfolio

import "context"

// AuthClient covers the admin credential endpoints.
type AuthClient struct {
	c *Client
}

// LoginResult is the token plus the authenticated admin's identity.
type LoginResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

func (a *AuthClient) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	body := map[string]string{"username": username, "password": password}
	var out LoginResult
	if err := a.c.do(ctx, "POST", "/api/auth/login", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthClient) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := map[string]string{
		"current_password": currentPassword,
		"new_password":     newPassword,
	}
	return a.c.do(ctx, "POST", "/api/auth/change-password", body, nil)
}

// ChangeUsername returns a fresh token because the old one names the old
// username and stops being accepted.
func (a *AuthClient) ChangeUsername(ctx context.Context, newUsername, currentPassword string) (*LoginResult, error) {
	body := map[string]string{
		"new_username":     newUsername,
		"current_password": currentPassword,
	}
	var out LoginResult
	if err := a.c.do(ctx, "PUT", "/api/auth/username", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthClient) ChangeEmail(ctx context.Context, newEmail string) error {
	body := map[string]string{"email": newEmail}
	return a.c.do(ctx, "PUT", "/api/auth/email", body, nil)
}

func (a *AuthClient) Logout(ctx context.Context) error {
	return a.c.do(ctx, "POST", "/api/auth/logout", nil, nil)
}
