package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
)

// Handler handles liveness checks.
type Handler struct{}

// NewHandler creates a new health handler.
func NewHandler() *Handler {
	return &Handler{}
}

// Response is the response for the liveness endpoint.
type Response struct {
	Body struct {
		Message string `json:"message"`
	}
}

// Check reports that the process is up. It touches no dependencies, so
// the endpoint has no side effects; store connectivity is verified once
// at startup instead.
func (h *Handler) Check(_ context.Context, _ *struct{}) (*Response, error) {
	resp := &Response{}
	resp.Body.Message = "Healthcheck"

	return resp, nil
}

// RegisterRoutes registers the liveness route.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Get(api, "/healthcheck", h.Check)
}
