package handlers

// ShortenRequest is the request body for shortening a URL.
type ShortenRequest struct {
	Body struct {
		LongURL string `doc:"The URL to shorten" example:"https://example.com/very/long/path" json:"long_url"`
	}
}

// ShortenResponse is the response for a successfully shortened URL.
type ShortenResponse struct {
	Headers struct {
		Location string `doc:"The short URL location" header:"Location"`
	}
	Body struct {
		Code     string `doc:"The short code"     example:"XyZ12_ab"                       json:"code"`
		ShortURL string `doc:"The full short URL" example:"http://localhost:8888/XyZ12_ab" json:"short_url"`
	}
}

// ReverseRequest is the request body for resolving a short URL back to
// the original. ShortURL may be a full short URL or a bare code.
type ReverseRequest struct {
	Body struct {
		ShortURL string `doc:"The short URL or bare code" example:"http://localhost:8888/XyZ12_ab" json:"short_url"`
	}
}

// ReverseResponse carries the original URL behind a short code.
type ReverseResponse struct {
	Body struct {
		LongURL string `doc:"The original URL" example:"https://example.com/very/long/path" json:"long_url"`
	}
}

// RedirectRequest is the request for redirecting a short URL.
type RedirectRequest struct {
	Code string `doc:"The short code" example:"XyZ12_ab" path:"code"`
}

// RedirectResponse is a permanent redirect to the original URL.
type RedirectResponse struct {
	Status  int
	Headers struct {
		Location string `doc:"The original URL" header:"Location"`
	}
}
