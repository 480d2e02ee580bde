package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/bahr-checker/pkg/ctxutil"
)

const (
	headerRequestID    = "X-Request-Id"
	headerForwardedFor = "X-Forwarded-For"
	maxRequestIDLength = 64
)

// RequestID reuses a well-formed incoming X-Request-Id or generates a UUID,
// stores it in the context and echoes it on the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(headerRequestID)
		if !acceptableRequestID(id) {
			id = uuid.NewString()
		}
		w.Header().Set(headerRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}

func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if c := id[i]; c < 0x21 || c > 0x7e {
			return false
		}
	}
	return true
}

// ClientIP resolves the caller address for rate limiting and logs. The first
// X-Forwarded-For hop wins when trustProxy is set; otherwise RemoteAddr.
func ClientIP(trustProxy bool) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := remoteHost(r.RemoteAddr)
			if trustProxy {
				if fwd := r.Header.Get(headerForwardedFor); fwd != "" {
					first, _, _ := strings.Cut(fwd, ",")
					if first = strings.TrimSpace(first); first != "" {
						ip = first
					}
				}
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithClientIP(r.Context(), ip)))
		})
	}
}

func remoteHost(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
