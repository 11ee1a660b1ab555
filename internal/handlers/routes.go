package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// RegisterRoutes registers all URL shortener routes.
func RegisterRoutes(api huma.API, urlHandler *URLHandler) {
	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/short",
		Summary:     "Create short URL",
		Description: "Creates a short code for the given URL. Shortening the same URL again returns the existing code.",
		Tags:        []string{"URLs"},
	}, urlHandler.Shorten)

	huma.Register(api, huma.Operation{
		Method:      http.MethodPost,
		Path:        "/reverse",
		Summary:     "Resolve short URL",
		Description: "Returns the original URL behind a short URL or bare code.",
		Tags:        []string{"URLs"},
	}, urlHandler.Reverse)

	huma.Register(api, huma.Operation{
		Method:      http.MethodGet,
		Path:        "/{code}",
		Summary:     "Redirect to original URL",
		Description: "Redirects to the original URL associated with the short code.",
		Tags:        []string{"URLs"},
	}, urlHandler.Redirect)
}
