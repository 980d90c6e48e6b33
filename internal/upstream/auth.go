package upstream

import (
	"context"
	"net/http"

	"github.com/learnflow/gateway/internal/model"
)

// LoginResult is the backend's answer to a successful credential check. The
// three embedded fields are exactly what gets piped into the session token.
type LoginResult struct {
	Role   model.Role `json:"role"`
	UserID int        `json:"user_id"`
	Email  string     `json:"email"`
	Name   string     `json:"name,omitempty"`
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks credentials against the role-specific endpoint. Auth calls
// surface their errors — the caller maps any failure to a boolean false.
func (c *Client) Login(ctx context.Context, email, password string, role model.Role) (*LoginResult, error) {
	path := "/auth/login"
	if role == model.RoleTeacher {
		path = "/auth/login/teacher"
	}

	var out LoginResult
	if err := c.post(ctx, path, "", credentials{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register creates a new account on the role-specific endpoint. The caller
// auto-logs-in afterwards with the same credentials.
func (c *Client) Register(ctx context.Context, req model.RegisterRequest) error {
	path := "/auth/register"
	if req.Role == model.RoleTeacher {
		path = "/auth/register/teacher"
	}
	return c.post(ctx, path, "", req, nil)
}

// Me fetches the full profile behind a token. This is the revalidation
// path: an error here means the token is stale or the backend is down, and
// the caller decides whether to fall back to the token-derived user.
func (c *Client) Me(ctx context.Context, token string) (*model.User, error) {
	var out model.User
	if err := c.get(ctx, "/auth/me", token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMe updates the profile behind a token.
func (c *Client) UpdateMe(ctx context.Context, token string, req model.UpdateProfileRequest) (*model.User, error) {
	var out model.User
	if err := c.do(ctx, http.MethodPut, "/auth/me", token, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword rotates the password behind a token.
func (c *Client) ChangePassword(ctx context.Context, token string, req model.ChangePasswordRequest) error {
	return c.post(ctx, "/auth/change-password", token, req, nil)
}
