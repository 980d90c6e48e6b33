package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnflow/gateway/internal/middleware"
	"github.com/learnflow/gateway/internal/model"
	"github.com/learnflow/gateway/internal/response"
	"github.com/learnflow/gateway/internal/service"
	"github.com/learnflow/gateway/internal/session"
	"github.com/learnflow/gateway/internal/upstream"
	"github.com/learnflow/gateway/internal/validator"
)

// AuthHandler handles authentication and profile endpoints.
type AuthHandler struct {
	authService *service.AuthService
	client      *upstream.Client
	cookie      session.CookiePolicy
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, client *upstream.Client, cookie session.CookiePolicy) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		client:      client,
		cookie:      cookie,
	}
}

// Login godoc
// POST /api/auth/login
// Checks credentials against the backend; on success the token lands in the
// durable store and the session cookie with identical values.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, token, ok := h.authService.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	h.cookie.Write(c.Writer, token)
	response.Success(c, http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// Register godoc
// POST /api/auth/register
// Creates the account and auto-logs-in with the same credentials.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, token, ok := h.authService.Register(c.Request.Context(), req)
	if !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrRegistrationFailed)
		return
	}

	h.cookie.Write(c.Writer, token)
	response.Success(c, http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

// Logout godoc
// POST /api/auth/logout
// Clears both token stores. Idempotent: logging out while logged out is OK.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, ok := middleware.GetIdentity(c); ok {
		h.authService.Logout(c.Request.Context(), id.UserID)
	}
	h.cookie.Expire(c.Writer)
	response.Success(c, http.StatusOK, gin.H{})
}

// SetSession godoc
// POST /api/auth/set-session
// Mirrors a client-held token into the durable store and the cookie. This is
// the redundant safety path used right after login and on app start.
func (h *AuthHandler) SetSession(c *gin.Context) {
	var req model.SetSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if _, ok := h.authService.SetSession(c.Request.Context(), req.Token); !ok {
		response.Fail(c, http.StatusBadRequest, response.ErrTokenInvalid)
		return
	}

	h.cookie.Write(c.Writer, req.Token)
	response.Success(c, http.StatusOK, gin.H{"token": req.Token})
}

// Me godoc
// GET /api/auth/me
// Returns the full profile when the backend answers, else the user
// reconstructed from the token. A stale token is only discovered when a
// later authenticated call fails.
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := middleware.GetIdentity(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	user, err := h.client.Me(c.Request.Context(), middleware.GetToken(c))
	if err != nil {
		user = id.User()
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// UpdateMe godoc
// PUT /api/auth/me
// Profile updates surface backend failure instead of masking it — the user
// needs to know the save did not happen.
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	var req model.UpdateProfileRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.client.UpdateMe(c.Request.Context(), middleware.GetToken(c), req)
	if err != nil {
		response.Fail(c, http.StatusBadGateway, response.ErrBackendUnavailable)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"user": user})
}

// ChangePassword godoc
// POST /api/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	if err := h.client.ChangePassword(c.Request.Context(), middleware.GetToken(c), req); err != nil {
		response.Fail(c, http.StatusBadGateway, response.ErrBackendUnavailable)
		return
	}
	response.Success(c, http.StatusOK, gin.H{})
}
