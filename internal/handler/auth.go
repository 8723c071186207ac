package handler

import (
	"context"
	"encoding/gob"
	"errors"
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"

	"github.com/najah-dev/campus-events/internal/model"
	"github.com/najah-dev/campus-events/internal/repository"
	"github.com/najah-dev/campus-events/internal/service"
)

// scs encodes session data with gob, which needs the concrete type of every
// stored value registered up front. login_at is a time.Time.
func init() {
	gob.Register(time.Time{})
}

// AuthHandler holds the HTTP handlers for registration and sessions.
type AuthHandler struct {
	auth     *service.AuthService
	sessions *scs.SessionManager
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(auth *service.AuthService, sessions *scs.SessionManager) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

// Register handles POST /auth/register
// Creates a new account. The response carries an advisory password
// strength score alongside the created user.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	user, err := h.auth.Register(r.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		switch {
		case errors.As(err, &verr):
			writeFieldErrors(w, http.StatusUnprocessableEntity, verr.Error(), verr.Fields)
		case errors.Is(err, repository.ErrDuplicateEmail):
			writeError(w, http.StatusConflict, "this email is already registered, try login")
		default:
			writeError(w, http.StatusInternalServerError, "could not create account")
		}
		return
	}

	score, label := service.PasswordStrength(req.Password)
	writeJSON(w, http.StatusCreated, map[string]any{
		"user":                    user,
		"password_strength":       score,
		"password_strength_label": label,
	})
}

// Login handles POST /auth/login
// Starts a session for the user. remember=true keeps the session across
// browser restarts (durable cookie); otherwise it ends with the browser
// session. Starting a session always replaces whatever session the visitor
// had before, so at most one logical session exists at a time.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	user, err := h.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "incorrect email or password")
			return
		}
		writeError(w, http.StatusInternalServerError, "could not log in")
		return
	}

	if err := h.startSession(r.Context(), user, req.Remember); err != nil {
		writeError(w, http.StatusInternalServerError, "could not start session")
		return
	}
	writeJSON(w, http.StatusOK, h.sessionInfo(r.Context()))
}

// DemoLogin handles POST /auth/demo
// Ensures the demo account exists and logs it in remembered.
func (h *AuthHandler) DemoLogin(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.EnsureDemoUser(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not prepare demo account")
		return
	}

	if err := h.startSession(r.Context(), user, true); err != nil {
		writeError(w, http.StatusInternalServerError, "could not start session")
		return
	}
	writeJSON(w, http.StatusOK, h.sessionInfo(r.Context()))
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Destroy(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "could not log out")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

// Session handles GET /auth/session
// Returns the logged-in user, or 401 when there is no session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	if h.sessions.GetString(r.Context(), sessionKeyEmail) == "" {
		writeError(w, http.StatusUnauthorized, "not logged in")
		return
	}
	writeJSON(w, http.StatusOK, h.sessionInfo(r.Context()))
}

// Forgot handles POST /auth/forgot
// The reset mail is simulated: the acknowledgment is the whole feature.
func (h *AuthHandler) Forgot(w http.ResponseWriter, r *http.Request) {
	var req model.ForgotRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if !service.ValidEmail(req.Email) {
		writeError(w, http.StatusUnprocessableEntity, "please enter a valid email")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{
		"message": "Reset link sent (demo). Check your inbox.",
	})
}

// startSession replaces any existing session with a fresh one for the user.
// RenewToken rotates the session ID so the login does not ride a
// pre-authentication token.
func (h *AuthHandler) startSession(ctx context.Context, user *model.User, remember bool) error {
	if err := h.sessions.RenewToken(ctx); err != nil {
		return err
	}
	h.sessions.RememberMe(ctx, remember)
	h.sessions.Put(ctx, sessionKeyEmail, user.Email)
	h.sessions.Put(ctx, sessionKeyName, user.Name)
	h.sessions.Put(ctx, sessionKeyRole, string(user.Role))
	h.sessions.Put(ctx, sessionKeyLoginAt, time.Now().UTC())
	return nil
}

// sessionInfo builds the session record from session data.
func (h *AuthHandler) sessionInfo(ctx context.Context) model.SessionInfo {
	return model.SessionInfo{
		Email:     h.sessions.GetString(ctx, sessionKeyEmail),
		Name:      h.sessions.GetString(ctx, sessionKeyName),
		Role:      model.Role(h.sessions.GetString(ctx, sessionKeyRole)),
		CreatedAt: h.sessions.GetTime(ctx, sessionKeyLoginAt),
	}
}
