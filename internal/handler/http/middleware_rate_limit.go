package http

import (
	"net/http"

	"github.com/MKhiriev/notes-keeper/internal/app"
	"github.com/MKhiriev/notes-keeper/internal/logger"
)

func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow() {
			logger.FromRequest(r).Warn().
				Str("func", "*Handler.withRateLimit").
				Str("uri", r.RequestURI).
				Msg("request rejected by rate limiter")
			w.Header().Set("Retry-After", "1")
			http.Error(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
