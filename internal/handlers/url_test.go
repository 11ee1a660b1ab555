package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jaevor/go-nanoid"
	"github.com/serroba/templink/internal/handlers"
	"github.com/serroba/templink/internal/shortener"
	"github.com/serroba/templink/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(s shortener.MappingStore) *handlers.URLHandler {
	gen, _ := nanoid.Standard(11)

	service := shortener.NewService(s, gen, shortener.Config{})

	return handlers.NewURLHandler(service, "http://localhost:8888", zap.NewNop())
}

// assertStatus checks that err carries the given HTTP status.
func assertStatus(t *testing.T, err error, status int) {
	t.Helper()

	var statusErr huma.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, status, statusErr.GetStatus())
}

func TestShorten(t *testing.T) {
	t.Run("creates a short url", func(t *testing.T) {
		handler := newTestHandler(store.NewMemoryStore())

		req := &handlers.ShortenRequest{}
		req.Body.LongURL = testURL

		resp, err := handler.Shorten(context.Background(), req)

		require.NoError(t, err)
		assert.NotEmpty(t, resp.Body.Code)
		assert.Equal(t, "http://localhost:8888/"+resp.Body.Code, resp.Body.ShortURL)
		assert.Equal(t, resp.Body.ShortURL, resp.Headers.Location)
	})

	t.Run("returns the same code for a repeated url", func(t *testing.T) {
		handler := newTestHandler(store.NewMemoryStore())

		req := &handlers.ShortenRequest{}
		req.Body.LongURL = testURL

		resp1, err1 := handler.Shorten(context.Background(), req)
		resp2, err2 := handler.Shorten(context.Background(), req)

		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, resp1.Body.Code, resp2.Body.Code)
	})

	t.Run("returns 400 for an empty url", func(t *testing.T) {
		handler := newTestHandler(store.NewMemoryStore())

		req := &handlers.ShortenRequest{}

		resp, err := handler.Shorten(context.Background(), req)

		assert.Nil(t, resp)
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("returns 503 when the store is unavailable", func(t *testing.T) {
		handler := newTestHandler(&mockStore{getReverseErr: shortener.ErrStoreUnavailable})

		req := &handlers.ShortenRequest{}
		req.Body.LongURL = testURL

		resp, err := handler.Shorten(context.Background(), req)

		assert.Nil(t, resp)
		assertStatus(t, err, http.StatusServiceUnavailable)
	})

	t.Run("returns 500 when every candidate code collides", func(t *testing.T) {
		handler := newTestHandler(&mockStore{existsResult: true})

		req := &handlers.ShortenRequest{}
		req.Body.LongURL = testURL

		resp, err := handler.Shorten(context.Background(), req)

		assert.Nil(t, resp)
		assertStatus(t, err, http.StatusInternalServerError)
	})
}

func TestReverse(t *testing.T) {
	t.Run("resolves a full short url", func(t *testing.T) {
		handler := newTestHandler(store.NewMemoryStore())

		shortenReq := &handlers.ShortenRequest{}
		shortenReq.Body.LongURL = testURL
		shortened, err := handler.Shorten(context.Background(), shortenReq)
		require.NoError(t, err)

		req := &handlers.ReverseRequest{}
		req.Body.ShortURL = shortened.Body.ShortURL

		resp, err := handler.Reverse(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, testURL, resp.Body.LongURL)
	})

	t.Run("resolves a bare code", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		_ = memStore.PutForward(context.Background(), "XyZ12_ab", testURL, shortener.DefaultTTL)
		handler := newTestHandler(memStore)

		req := &handlers.ReverseRequest{}
		req.Body.ShortURL = "XyZ12_ab"

		resp, err := handler.Reverse(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, testURL, resp.Body.LongURL)
	})

	t.Run("returns 404 for an unknown short url", func(t *testing.T) {
		handler := newTestHandler(store.NewMemoryStore())

		req := &handlers.ReverseRequest{}
		req.Body.ShortURL = "http://localhost:8888/neverissued"

		resp, err := handler.Reverse(context.Background(), req)

		assert.Nil(t, resp)
		assertStatus(t, err, http.StatusNotFound)
	})

	t.Run("returns 404 once the mapping expires", func(t *testing.T) {
		gen, _ := nanoid.Standard(11)
		service := shortener.NewService(store.NewMemoryStore(), gen, shortener.Config{TTL: 50 * time.Millisecond})
		handler := handlers.NewURLHandler(service, "http://localhost:8888", zap.NewNop())

		shortenReq := &handlers.ShortenRequest{}
		shortenReq.Body.LongURL = testURL
		shortened, err := handler.Shorten(context.Background(), shortenReq)
		require.NoError(t, err)

		time.Sleep(60 * time.Millisecond)

		req := &handlers.ReverseRequest{}
		req.Body.ShortURL = shortened.Body.ShortURL

		resp, err := handler.Reverse(context.Background(), req)

		assert.Nil(t, resp)
		assertStatus(t, err, http.StatusNotFound)
	})

	t.Run("returns 500 on an unexpected store error", func(t *testing.T) {
		handler := newTestHandler(&mockStore{getForwardErr: errMock})

		req := &handlers.ReverseRequest{}
		req.Body.ShortURL = "http://localhost:8888/XyZ12_ab"

		resp, err := handler.Reverse(context.Background(), req)

		assert.Nil(t, resp)
		assertStatus(t, err, http.StatusInternalServerError)
	})
}

func TestRedirect(t *testing.T) {
	t.Run("redirects to the original url", func(t *testing.T) {
		memStore := store.NewMemoryStore()
		_ = memStore.PutForward(context.Background(), "XyZ12_ab", testURL, shortener.DefaultTTL)
		handler := newTestHandler(memStore)

		req := &handlers.RedirectRequest{Code: "XyZ12_ab"}

		resp, err := handler.Redirect(context.Background(), req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusMovedPermanently, resp.Status)
		assert.Equal(t, testURL, resp.Headers.Location)
	})

	t.Run("returns 404 when the code is unknown", func(t *testing.T) {
		handler := newTestHandler(store.NewMemoryStore())

		req := &handlers.RedirectRequest{Code: "neverissued"}

		resp, err := handler.Redirect(context.Background(), req)

		assert.Nil(t, resp)
		assertStatus(t, err, http.StatusNotFound)
	})

	t.Run("returns 503 when the store is unavailable", func(t *testing.T) {
		handler := newTestHandler(&mockStore{getForwardErr: shortener.ErrStoreUnavailable})

		req := &handlers.RedirectRequest{Code: "XyZ12_ab"}

		resp, err := handler.Redirect(context.Background(), req)

		assert.Nil(t, resp)
		assertStatus(t, err, http.StatusServiceUnavailable)
	})
}
