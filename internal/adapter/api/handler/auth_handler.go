package handler

import (
	"log/slog"
	"net/http"

	"github.com/user/invoicing-dashboard/internal/usecase"
)

// AuthHandler serves the credential check endpoint.
type AuthHandler struct {
	auth   *usecase.AuthService
	logger *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *usecase.AuthService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Login serves POST /login with email and password form fields. It only
// confirms the credentials; no session or token is issued.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	form, err := formValues(r)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.auth.VerifyCredentials(r.Context(), form["email"], form["password"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"id":    user.ID.String(),
		"name":  user.Name,
		"email": user.Email,
	})
}
