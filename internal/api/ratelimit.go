package api

import (
	"math"
	"net"
	"net/http"
	"strconv"

	"github.com/danielgtaylor/huma/v2"
)

// rateLimitLogin is an operation middleware that bounds login attempts per
// client IP. Rejected requests get 429 with a Retry-After header.
func (s *Server) rateLimitLogin(ctx huma.Context, next func(huma.Context)) {
	key := clientIP(ctx.RemoteAddr())

	allowed, wait := s.authRateLimiter.Reserve(key)
	if !allowed {
		s.logger.Warn("rate limit exceeded",
			"ip", key,
			"path", ctx.URL().Path,
		)
		if s.metrics != nil {
			s.metrics.RecordRateLimited(ctx.Operation().Path)
		}
		if wait > 0 {
			ctx.SetHeader("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
		}
		_ = huma.WriteErr(s.api, ctx, http.StatusTooManyRequests, "too many login attempts, please try again later") //nolint:errcheck // response already committed
		return
	}

	next(ctx)
}

// clientIP strips the port from a remote address. chi's RealIP middleware
// has already replaced it with X-Forwarded-For or X-Real-IP when present.
func clientIP(remoteAddr string) string {
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		return host
	}
	return remoteAddr
}
