package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
)

// StatusOK is the only status the service reports. No dependencies are checked.
const StatusOK = "OK"

// Handler handles health check operations.
type Handler struct {
	now func() time.Time
}

// NewHandler creates a new health handler. A nil clock defaults to time.Now.
func NewHandler(now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}

	return &Handler{now: now}
}

// Response is the response for health check endpoint.
type Response struct {
	Body struct {
		Status    string    `example:"OK"                  json:"status"`
		Timestamp time.Time `doc:"Current server time"    json:"timestamp"`
	}
}

// Check reports that the process is serving requests.
func (h *Handler) Check(_ context.Context, _ *struct{}) (*Response, error) {
	resp := &Response{}
	resp.Body.Status = StatusOK
	resp.Body.Timestamp = h.now().UTC()

	return resp, nil
}

// RegisterRoutes registers health check routes.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Get(api, "/health", h.Check)
}
