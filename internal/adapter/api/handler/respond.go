package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/user/invoicing-dashboard/internal/domain"
	"github.com/user/invoicing-dashboard/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors to HTTP status codes. Store failures are
// already sanitized to DataAccessError, so nothing internal can leak here.
func writeError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	var nf *domain.NotFoundError

	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "validation failed",
			"fields": ve.Fields,
		})
	case errors.As(err, &nf):
		writeJSON(w, http.StatusNotFound, map[string]any{"error": nf.Error()})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error": "invalid credentials"})
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
	}
}

// formValues flattens a parsed form into the flat field-to-string mapping
// the schema validator consumes, keeping the first value per field.
func formValues(r *http.Request) (map[string]string, error) {
	if err := r.ParseForm(); err != nil {
		return nil, &domain.ValidationError{Fields: domain.FieldErrors{"form": "malformed form body"}}
	}
	form := make(map[string]string, len(r.PostForm))
	for name, values := range r.PostForm {
		if len(values) > 0 {
			form[name] = values[0]
		}
	}
	return form, nil
}
