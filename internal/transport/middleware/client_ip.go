package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/heartmarshall/tupa/pkg/ctxutil"
)

// ClientIP resolves the caller address and stores it in the context.
// With trustProxy set the first X-Forwarded-For entry wins.
func ClientIP(trustProxy bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := resolveClientIP(r, trustProxy)
			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientIP(r.Context(), ip)))
		})
	}
}

func resolveClientIP(r *http.Request, trustProxy bool) string {
	if trustProxy {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := strings.TrimSpace(first); net.ParseIP(ip) != nil {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// clientKey is the rate limiter key for a request.
func clientKey(r *http.Request) string {
	if ip, ok := ctxutil.ClientIPFromCtx(r.Context()); ok {
		return ip
	}
	return resolveClientIP(r, false)
}
