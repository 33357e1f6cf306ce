package server

import (
	"encoding/json"
	"net/http"

	"github.com/vango-dev/vsel/internal/errors"
)

// ErrorBody is the JSON form of a failed request.
type ErrorBody = errors.Body

type errorResponse struct {
	Error *ErrorBody `json:"error"`
}

func errorBody(err error) *ErrorBody {
	body := errors.FromError(err, "").Body()
	if body.Message == "" || body.Message == "Unknown error" {
		body.Message = err.Error()
	}
	return body
}

// statusCode maps an error to an HTTP status.
func statusCode(err error) int {
	ve := errors.FromError(err, "")
	switch ve.Code {
	case "E105", "E161":
		return http.StatusRequestEntityTooLarge
	}
	switch ve.Category {
	case errors.CategoryRequest:
		return http.StatusBadRequest
	case errors.CategoryPlan, errors.CategoryDocument:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// statusLabel is the metrics status for a request outcome.
func statusLabel(err error) string {
	if err == nil {
		return "success"
	}
	if c := errors.CategoryOf(err); c != "" {
		return string(c)
	}
	return "internal"
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusCode(err), errorResponse{Error: errorBody(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
