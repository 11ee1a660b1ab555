package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/serroba/templink/internal/shortener"
	"go.uber.org/zap"
)

// URLHandler handles URL shortening operations.
type URLHandler struct {
	service *shortener.Service
	baseURL string
	logger  *zap.Logger
}

// NewURLHandler creates a new URL handler.
func NewURLHandler(service *shortener.Service, baseURL string, logger *zap.Logger) *URLHandler {
	return &URLHandler{
		service: service,
		baseURL: baseURL,
		logger:  logger,
	}
}

func (h *URLHandler) Shorten(ctx context.Context, req *ShortenRequest) (*ShortenResponse, error) {
	code, err := h.service.Shorten(ctx, req.Body.LongURL)
	if err != nil {
		return nil, h.mapError(err)
	}

	shortURL := fmt.Sprintf("%s/%s", h.baseURL, code)

	resp := &ShortenResponse{}
	resp.Headers.Location = shortURL
	resp.Body.Code = code
	resp.Body.ShortURL = shortURL

	return resp, nil
}

func (h *URLHandler) Reverse(ctx context.Context, req *ReverseRequest) (*ReverseResponse, error) {
	longURL, err := h.service.Resolve(ctx, codeFromShortURL(req.Body.ShortURL))
	if err != nil {
		return nil, h.mapError(err)
	}

	resp := &ReverseResponse{}
	resp.Body.LongURL = longURL

	return resp, nil
}

func (h *URLHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	longURL, err := h.service.Resolve(ctx, req.Code)
	if err != nil {
		return nil, h.mapError(err)
	}

	resp := &RedirectResponse{
		Status: http.StatusMovedPermanently,
	}
	resp.Headers.Location = longURL

	return resp, nil
}

// mapError translates service errors into HTTP errors. Server-side
// failures are logged here; client errors are not.
func (h *URLHandler) mapError(err error) error {
	switch {
	case errors.Is(err, shortener.ErrInvalidInput):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, shortener.ErrNotFound):
		return huma.Error404NotFound("short url not found")
	case errors.Is(err, shortener.ErrStoreUnavailable):
		h.logger.Error("mapping store unavailable", zap.Error(err))
		return huma.Error503ServiceUnavailable("mapping store unavailable")
	case errors.Is(err, shortener.ErrCodeGenerationExhausted):
		h.logger.Error("code generation exhausted", zap.Error(err))
		return huma.Error500InternalServerError("failed to generate short code")
	default:
		h.logger.Error("request failed", zap.Error(err))
		return huma.Error500InternalServerError("internal error")
	}
}

// codeFromShortURL extracts the bare code from a full short URL.
// A bare code parses as a relative path and comes back unchanged.
func codeFromShortURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	return strings.TrimPrefix(u.Path, "/")
}
