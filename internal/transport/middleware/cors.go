package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/tupa/internal/config"
)

// originPolicy is the parsed allowed_origins list.
type originPolicy struct {
	any     bool
	origins map[string]struct{}
}

func newOriginPolicy(raw string) originPolicy {
	p := originPolicy{origins: make(map[string]struct{})}
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			p.any = true
		default:
			p.origins[o] = struct{}{}
		}
	}
	return p
}

func (p originPolicy) allows(origin string) bool {
	if origin == "" {
		return false
	}
	if p.any {
		return true
	}
	_, ok := p.origins[origin]
	return ok
}

// CORS answers preflight requests and sets the allow headers for permitted
// origins. The matching origin is echoed back, never "*", so credentials
// work with a wildcard list.
func CORS(cfg config.CORSConfig) Middleware {
	policy := newOriginPolicy(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Add("Vary", "Origin")

			allowed := policy.allows(r.Header.Get("Origin"))
			if allowed {
				h.Set("Access-Control-Allow-Origin", r.Header.Get("Origin"))
				h.Set("Access-Control-Expose-Headers", RequestIDHeader)
				if cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			// A plain OPTIONS without Access-Control-Request-Method is not a
			// preflight and reaches the router.
			if r.Method != http.MethodOptions || r.Header.Get("Access-Control-Request-Method") == "" {
				next.ServeHTTP(w, r)
				return
			}

			if allowed {
				h.Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				h.Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				h.Set("Access-Control-Max-Age", maxAge)
			}
			w.WriteHeader(http.StatusNoContent)
		})
	}
}
