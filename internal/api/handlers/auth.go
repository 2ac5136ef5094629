package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/baharkarakas/timebank-backend/internal/api/httpx"
	"github.com/baharkarakas/timebank-backend/internal/api/validate"
	"github.com/baharkarakas/timebank-backend/internal/logger"
	"github.com/baharkarakas/timebank-backend/internal/models"
	"github.com/baharkarakas/timebank-backend/internal/services"
)

const (
	msgCredentialsRequired = "Both username and password are required."
	msgInvalidCredentials  = "Invalid username or password."
	msgRefreshRequired     = "Refresh token is required."
	msgRefreshInvalid      = "Invalid or expired token."
	msgAlreadyLoggedOut    = "Token has already been revoked."
	msgRefreshNotValid     = "Token is invalid or expired"
)

//go:generate mockgen -destination ./mocks/auth_mock.go . UserService,AuthService
type UserService interface {
	Register(ctx context.Context, username, email, password string) (models.User, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (services.LoginResult, error)
	Refresh(ctx context.Context, refresh string) (string, error)
	Logout(ctx context.Context, refresh string) error
}

type AuthHandler struct {
	users UserService
	auth  AuthService
}

func NewAuthHandler(users UserService, auth AuthService) *AuthHandler {
	return &AuthHandler{users: users, auth: auth}
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Success       bool   `json:"success"`
	Username      string `json:"username"`
	RemainingTime string `json:"remaining_time"`
	Access        string `json:"access"`
	Refresh       string `json:"refresh"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	fields, err := validate.Decode(w, r)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	u, err := h.users.Register(r.Context(),
		fields.String("username"),
		fields.String("email"),
		fields.String("password"),
	)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			httpx.WriteValidation(w, verr)
			return
		}
		logger.FromContext(r.Context()).Error("register", slog.Any("error", err))
		httpx.WriteInternal(w)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, registerResponse{ID: u.ID, Username: u.Username, Email: u.Email})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	fields, err := validate.Decode(w, r)
	username, password := fields.String("username"), fields.String("password")
	if err != nil || username == "" || password == "" {
		httpx.WriteError(w, http.StatusBadRequest, msgCredentialsRequired)
		return
	}

	res, err := h.auth.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			logger.FromContext(r.Context()).Warn("login failed", slog.String("username", username))
			httpx.WriteError(w, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		logger.FromContext(r.Context()).Error("login", slog.Any("error", err))
		httpx.WriteInternal(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, loginResponse{
		Success:       true,
		Username:      res.User.Username,
		RemainingTime: models.FormatRemaining(res.Balance.Seconds),
		Access:        res.Tokens.Access,
		Refresh:       res.Tokens.Refresh,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	fields, err := validate.Decode(w, r)
	refresh := fields.String("refresh")
	if err != nil || refresh == "" {
		httpx.WriteError(w, http.StatusBadRequest, msgRefreshRequired)
		return
	}

	switch err := h.auth.Logout(r.Context(), refresh); {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Successfully logged out."})
	case errors.Is(err, models.ErrTokenInvalid):
		httpx.WriteError(w, http.StatusBadRequest, msgRefreshInvalid)
	case errors.Is(err, models.ErrTokenRevoked):
		httpx.WriteError(w, http.StatusBadRequest, msgAlreadyLoggedOut)
	default:
		logger.FromContext(r.Context()).Error("logout", slog.Any("error", err))
		httpx.WriteInternal(w)
	}
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	fields, err := validate.Decode(w, r)
	refresh := fields.String("refresh")
	if err != nil || refresh == "" {
		verr := models.NewValidationError()
		verr.Add("refresh", "This field is required.")
		httpx.WriteValidation(w, verr)
		return
	}

	access, err := h.auth.Refresh(r.Context(), refresh)
	switch {
	case err == nil:
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"access": access})
	case errors.Is(err, models.ErrTokenInvalid), errors.Is(err, models.ErrTokenRevoked):
		httpx.WriteDetail(w, http.StatusUnauthorized, msgRefreshNotValid, httpx.CodeTokenNotValid)
	default:
		logger.FromContext(r.Context()).Error("refresh", slog.Any("error", err))
		httpx.WriteInternal(w)
	}
}
