package http

import (
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/alandalus/library-site/internal/http/ban"
	"github.com/alandalus/library-site/internal/http/handlers"
	rl "github.com/alandalus/library-site/internal/http/rate_limiter"
	"github.com/alandalus/library-site/internal/i18n"
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// RequestLogger tags each request with an id and logs method, path,
// status and latency.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(sw, r)
		log.Printf("[%s] %s %s -> %d (%s)", id[:8], r.Method, r.URL.Path, sw.status, time.Since(start))
	})
}

// RateLimit applies the per-visitor limiter and the Redis ban ledger.
// Banned addresses are rejected outright; limiter rejections count as
// strikes toward a ban.
func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)
		if ban.IsBanned(ip) {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		if !rl.GetVisitor(ip).Allow() {
			ban.RecordStrike(ip, r.URL.Path)
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// LocaleMiddleware rejects unsupported locale path segments with a
// localized not-found page.
func LocaleMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !i18n.Supported(chi.URLParam(r, "locale")) {
			handlers.NotFoundLocaleHandler(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
