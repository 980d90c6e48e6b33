package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/learnflow/gateway/internal/model"
)

// ErrMalformedToken is returned when a raw token does not have exactly the
// role|user_id|email shape. Callers treat the bearer as unauthenticated and
// never surface this to the user.
var ErrMalformedToken = errors.New("malformed session token")

// Identity is the decoded content of a session token. The token is the sole
// source of identity on the gateway side; no session database is consulted
// beyond the backend's own /auth/me revalidation on data calls.
type Identity struct {
	Role   model.Role
	UserID int
	Email  string
}

// Mint assembles the opaque token string the backend hands out on login.
func Mint(role model.Role, userID int, email string) string {
	return fmt.Sprintf("%s|%d|%s", role, userID, email)
}

// Parse splits a raw token into its three positional fields. Any other field
// count, a non-numeric user id, or an unknown role is a malformed token.
func Parse(raw string) (Identity, error) {
	parts := strings.Split(raw, "|")
	if len(parts) != 3 {
		return Identity{}, ErrMalformedToken
	}

	userID, err := strconv.Atoi(parts[1])
	if err != nil {
		return Identity{}, ErrMalformedToken
	}

	role := model.Role(parts[0])
	if !role.Valid() {
		return Identity{}, ErrMalformedToken
	}

	return Identity{Role: role, UserID: userID, Email: parts[2]}, nil
}

// Token re-encodes the identity into its wire form.
func (id Identity) Token() string {
	return Mint(id.Role, id.UserID, id.Email)
}

// User reconstructs a user record purely from the token's embedded fields.
// The display name is derived from the email local part. This is a deliberate
// shortcut: a revoked token is only discovered when an authenticated backend
// call fails, not here.
func (id Identity) User() *model.User {
	return &model.User{
		ID:        id.UserID,
		Email:     id.Email,
		Name:      DisplayName(id.Email),
		Role:      id.Role,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
}

// DisplayName derives a fallback display name from an email address.
func DisplayName(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
