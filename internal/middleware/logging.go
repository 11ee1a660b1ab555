package middleware

import (
	"net"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader carries the request id on both requests and responses.
const RequestIDHeader = "X-Request-Id"

// RequestLogger is a Huma middleware that tags every request with an id
// and logs one line per request. A caller-supplied request id is kept;
// otherwise a fresh one is generated.
func RequestLogger(logger *zap.Logger) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		requestID := ctx.Header(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.SetHeader(RequestIDHeader, requestID)

		start := time.Now()
		next(ctx)

		logger.Info("request",
			zap.String("request_id", requestID),
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.URL().Path),
			zap.Int("status", ctx.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", clientIP(ctx)),
		)
	}
}

// clientIP extracts the client IP from the request, considering proxies.
func clientIP(ctx huma.Context) string {
	// Check X-Forwarded-For header (may contain multiple IPs)
	if xff := ctx.Header("X-Forwarded-For"); xff != "" {
		// Take the first IP (original client)
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}

		return strings.TrimSpace(xff)
	}

	// Check X-Real-IP header
	if xri := ctx.Header("X-Real-IP"); xri != "" {
		return xri
	}

	// Fall back to Host (which contains remote addr in Huma context)
	host := ctx.Host()

	ip, _, err := net.SplitHostPort(host)
	if err != nil {
		return host
	}

	return ip
}
