package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
)

const (
	msgEmptyText      = "Empty text field"
	msgPostNotFound   = "This post doesn't exist."
	msgInvalidBody    = "Invalid request body"
	msgInternalError  = "Internal server error"
	msgRouteNotFound  = "Not found"
	msgMethodNotFound = "Method not allowed"
)

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// textRequest is the body accepted by the create and edit endpoints. Pointer
// fields tell an omitted key apart from an empty one.
type textRequest struct {
	Text     *string `json:"text"`
	Username *string `json:"username"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func writeSuccess(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successResponse{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}

func writeInternalError(w http.ResponseWriter, op string, err error) {
	slog.Error(op+" error", "error", err)
	writeError(w, http.StatusInternalServerError, msgInternalError)
}

// decodeTextRequest reads the JSON body. An empty body decodes as {}.
func decodeTextRequest(r *http.Request) (textRequest, error) {
	var req textRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return textRequest{}, err
	}
	return req, nil
}

func (req textRequest) hasText() bool {
	return req.Text != nil && *req.Text != ""
}

// NotFound answers unmatched routes with the JSON envelope.
func NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, msgRouteNotFound)
	}
}

func MethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, msgMethodNotFound)
	}
}
