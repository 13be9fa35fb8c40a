package authhandler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"payslipgen/internal/domain/auth"
	"payslipgen/internal/transport/http/api"
	"payslipgen/internal/transport/http/middleware"
)

type Handler struct {
	Secret       string
	TokenTTL     time.Duration
	Email        string
	PasswordHash string
}

func NewHandler(secret string, ttl time.Duration, email, passwordHash string) *Handler {
	return &Handler{Secret: secret, TokenTTL: ttl, Email: email, PasswordHash: passwordHash}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	if h.Email == "" || h.PasswordHash == "" {
		api.Fail(w, http.StatusUnauthorized, "login_disabled", "no operator account configured", middleware.GetRequestID(r.Context()))
		return
	}
	if !strings.EqualFold(payload.Email, h.Email) {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", middleware.GetRequestID(r.Context()))
		return
	}
	if err := auth.CheckPassword(h.PasswordHash, payload.Password); err != nil {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "invalid credentials", middleware.GetRequestID(r.Context()))
		return
	}

	token, err := auth.GenerateToken(h.Secret, auth.Claims{Email: h.Email}, h.TokenTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue token", middleware.GetRequestID(r.Context()))
		return
	}

	api.Success(w, loginResponse{Token: token, Email: h.Email}, middleware.GetRequestID(r.Context()))
}
