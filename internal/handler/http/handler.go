package http

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/MKhiriev/notes-keeper/internal/config"
	"github.com/MKhiriev/notes-keeper/internal/logger"
	"github.com/MKhiriev/notes-keeper/internal/service"
	"github.com/MKhiriev/notes-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher verifies the HashSHA256 header. nil when no hash key is set.
	hasher *utils.Hasher
	// limiter throttles all requests. nil when rate limiting is off.
	limiter *rate.Limiter
	// requestTimeout bounds the context of every request. Zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}

	if cfg.App.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.App.HashKey)
	}

	if cfg.Server.RateLimit > 0 {
		burst := cfg.Server.RateBurst
		if burst <= 0 {
			burst = int(cfg.Server.RateLimit) + 1
		}
		h.limiter = rate.NewLimiter(rate.Limit(cfg.Server.RateLimit), burst)
	}

	logger.Info().
		Bool("hash_check", h.hasher != nil).
		Bool("rate_limit", h.limiter != nil).
		Msg("http handler created")

	return h
}
