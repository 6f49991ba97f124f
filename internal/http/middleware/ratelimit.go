package middleware

import (
	"context"
	"net"
	"net/http"

	rl "github.com/Akshadkurundwade07/shopflow/internal/http/rate_limiter"
	"go.uber.org/zap"
)

// Banner tracks abusive clients. A nil Banner disables strikes and bans.
type Banner interface {
	IsBanned(ctx context.Context, target string) (bool, error)
	RecordStrike(ctx context.Context, target, route string) (bool, error)
}

// RateLimit throttles each client IP. Requests over the limit count as strikes,
// and banned clients are refused until the ban expires. Ban lookups fail open.
func RateLimit(limiter *rl.Limiter, banner Banner) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)

			if banner != nil {
				banned, err := banner.IsBanned(r.Context(), ip)
				if err != nil {
					zap.L().Warn("ban lookup failed", zap.String("ip", ip), zap.Error(err))
				}
				if banned {
					RateLimitedTotal.Inc()
					http.Error(w, "too many requests: temporarily banned", http.StatusForbidden)
					return
				}
			}

			if !limiter.Allow(ip) {
				RateLimitedTotal.Inc()
				if banner != nil {
					if _, err := banner.RecordStrike(r.Context(), ip, r.URL.Path); err != nil {
						zap.L().Warn("strike not recorded", zap.String("ip", ip), zap.Error(err))
					}
				}
				w.Header().Set("Retry-After", "1")
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
