package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"productivity-service/internal/domain/service"
	"productivity-service/internal/logging"
	"productivity-service/pkg/validation"

	"github.com/google/uuid"
)

// ErrorResponder maps service errors onto HTTP responses
type ErrorResponder struct {
	logger        logging.Logger
	exposeDetails bool
}

// NewErrorResponder creates a responder; exposeDetails adds the cause of a 500 to the body
func NewErrorResponder(logger logging.Logger, exposeDetails bool) *ErrorResponder {
	return &ErrorResponder{
		logger:        logger,
		exposeDetails: exposeDetails,
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error": message,
	})
}

func writeValidationError(w http.ResponseWriter, err *validation.Error) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":   "Validation failed",
		"details": err.Issues,
	})
}

func (e *ErrorResponder) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		writeValidationError(w, validationErr)
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConstraintViolation):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		e.logger.Error(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)

		body := map[string]interface{}{
			"error": "Internal server error",
		}
		if e.exposeDetails {
			body["message"] = err.Error()
		}
		writeJSON(w, http.StatusInternalServerError, body)
	}
}

func decodeJSON(r *http.Request, dst interface{}) bool {
	return json.NewDecoder(r.Body).Decode(dst) == nil
}

// pathID parses a UUID path value; ok is false when it is malformed
func pathID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
