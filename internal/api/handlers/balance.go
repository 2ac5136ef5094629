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
	"github.com/go-chi/chi/v5"
)

const msgNotFound = "User or time not found"

//go:generate mockgen -destination ./mocks/balance_mock.go . BalanceService
type BalanceService interface {
	Get(ctx context.Context, owner string) (models.Balance, error)
	AddMinutes(ctx context.Context, owner string, minutes int64) (models.Balance, error)
	SetSeconds(ctx context.Context, owner string, seconds int64) (models.Balance, error)
}

type balanceResponse struct {
	User          string `json:"user"`
	RemainingTime string `json:"remaining_time"`
}

func newBalanceResponse(b models.Balance) balanceResponse {
	return balanceResponse{User: b.Owner, RemainingTime: models.FormatRemaining(b.Seconds)}
}

type BalanceHandler struct {
	svc BalanceService
}

func NewBalanceHandler(svc BalanceService) *BalanceHandler {
	return &BalanceHandler{svc: svc}
}

func (h *BalanceHandler) Get(w http.ResponseWriter, r *http.Request) {
	b, err := h.svc.Get(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newBalanceResponse(b))
}

// Increment adds whole minutes: {"add_minutes": 15}.
func (h *BalanceHandler) Increment(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "add_minutes", h.svc.AddMinutes)
}

// Overwrite sets exact seconds: {"remaining_time": 2700}.
func (h *BalanceHandler) Overwrite(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, "remaining_time", h.svc.SetSeconds)
}

func (h *BalanceHandler) mutate(
	w http.ResponseWriter,
	r *http.Request,
	field string,
	apply func(context.Context, string, int64) (models.Balance, error),
) {
	ctx := r.Context()
	owner := chi.URLParam(r, "username")

	fields, err := validate.Decode(w, r)
	if err != nil {
		logger.FromContext(ctx).Warn("invalid JSON", slog.Any("error", err))
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	v, err := fields.Int(field)
	if err != nil {
		// A missing target wins over a bad body.
		if _, gerr := h.svc.Get(ctx, owner); gerr != nil {
			h.writeErr(w, r, gerr)
			return
		}
		httpx.WriteError(w, http.StatusBadRequest, validate.IntMessage(field, err))
		return
	}

	b, err := apply(ctx, owner, v)
	if err != nil {
		h.writeErr(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, newBalanceResponse(b))
}

func (h *BalanceHandler) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, models.ErrOutOfRange):
		httpx.WriteError(w, http.StatusBadRequest, "value out of range")
	default:
		logger.FromContext(r.Context()).Error("balance request", slog.Any("error", err))
		httpx.WriteInternal(w)
	}
}
