package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/baharkarakas/timebank-backend/internal/models"
)

const (
	MsgNotAuthenticated = "Authentication credentials were not provided."
	MsgTokenNotValid    = "Given token not valid for any token type"
	MsgPermissionDenied = "You do not have permission to perform this action."
	CodeTokenNotValid   = "token_not_valid"
)

type APIError struct {
	Error string `json:"error"`
}

// Detail is the body shape used for authentication and permission failures.
type Detail struct {
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, APIError{Error: msg})
}

func WriteDetail(w http.ResponseWriter, status int, detail, code string) {
	WriteJSON(w, status, Detail{Detail: detail, Code: code})
}

func WriteValidation(w http.ResponseWriter, verr *models.ValidationError) {
	WriteJSON(w, http.StatusBadRequest, verr.Fields)
}

func WriteInternal(w http.ResponseWriter) {
	WriteError(w, http.StatusInternalServerError, "internal error")
}
