package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/learnflow/gateway/internal/model"
	"github.com/learnflow/gateway/internal/session"
	"github.com/learnflow/gateway/internal/upstream"
)

// AuthService owns login, registration and logout against the LearnFlow
// backend, and the durable side of the session token. Auth operations report
// failure as a boolean rather than an error: the UI always has a defined
// unhappy path ("invalid credentials") and nothing here is fatal.
type AuthService struct {
	client *upstream.Client
	store  session.Store
	log    zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(client *upstream.Client, store session.Store, log zerolog.Logger) *AuthService {
	return &AuthService{
		client: client,
		store:  store,
		log:    log.With().Str("component", "auth_service").Logger(),
	}
}

// Login checks credentials against the backend. On success it mints the
// session token from the response fields, persists it in the durable store
// and returns the reconstructed user. Every failure mode — network error,
// bad credentials, store write — collapses to ok=false.
func (s *AuthService) Login(ctx context.Context, email, password string, role model.Role) (*model.User, string, bool) {
	result, err := s.client.Login(ctx, email, password, role)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("Login rejected")
		return nil, "", false
	}

	token := session.Mint(result.Role, result.UserID, result.Email)

	if err := s.store.Put(ctx, result.UserID, token); err != nil {
		s.log.Error().Err(err).Int("user_id", result.UserID).Msg("Persist session failed")
		return nil, "", false
	}

	name := result.Name
	if name == "" {
		name = session.DisplayName(email)
	}

	user := &model.User{
		ID:        result.UserID,
		Email:     result.Email,
		Name:      name,
		Role:      result.Role,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}

	s.log.Info().Int("user_id", user.ID).Str("role", string(user.Role)).Msg("Login succeeded")
	return user, token, true
}

// Register creates the account and then auto-logs-in with the same
// credentials, returning that login's result.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.User, string, bool) {
	if err := s.client.Register(ctx, req); err != nil {
		s.log.Warn().Err(err).Str("email", req.Email).Msg("Registration rejected")
		return nil, "", false
	}
	return s.Login(ctx, req.Email, req.Password, req.Role)
}

// Logout removes the durable session. Idempotent: logging out an absent
// session succeeds.
func (s *AuthService) Logout(ctx context.Context, userID int) {
	if err := s.store.Delete(ctx, userID); err != nil {
		s.log.Warn().Err(err).Int("user_id", userID).Msg("Delete session failed")
	}
}

// SetSession mirrors a client-supplied token into the durable store. Used by
// the redundant cookie-set path; a malformed token is rejected.
func (s *AuthService) SetSession(ctx context.Context, token string) (session.Identity, bool) {
	id, err := session.Parse(token)
	if err != nil {
		return session.Identity{}, false
	}
	if err := s.store.Put(ctx, id.UserID, token); err != nil {
		s.log.Warn().Err(err).Int("user_id", id.UserID).Msg("Persist session failed")
		return session.Identity{}, false
	}
	return id, true
}

// FromToken rebuilds the user purely from a token's embedded fields, with no
// backend round trip. A malformed token yields no user, silently — the
// bearer is simply unauthenticated.
func (s *AuthService) FromToken(raw string) (*model.User, bool) {
	id, err := session.Parse(raw)
	if err != nil {
		return nil, false
	}
	return id.User(), true
}
