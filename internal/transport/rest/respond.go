package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/tupa/internal/domain"
	"github.com/heartmarshall/tupa/internal/tupa"
)

// errorResponse is the JSON body of every non-2xx response.
type errorResponse struct {
	Error  string       `json:"error"`
	Kind   string       `json:"kind,omitempty"`
	Hints  []string     `json:"hints,omitempty"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps service errors onto HTTP statuses.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var (
		te *tupa.Error
		ve *domain.ValidationError
	)
	switch {
	case errors.As(err, &te):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: te.Error(),
			Kind:  te.Kind.String(),
			Hints: te.Hints,
		})
	case errors.As(err, &ve):
		fields := make([]fieldError, len(ve.Errors))
		for i, fe := range ve.Errors {
			fields[i] = fieldError{Field: fe.Field, Message: fe.Message}
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  ve.Error(),
			Fields: fields,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
