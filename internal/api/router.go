// Package api exposes the questionnaire catalogs, both strategy engines and
// the generation history over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sells-group/strategy-cli/internal/config"
	"github.com/sells-group/strategy-cli/internal/pipeline"
	"github.com/sells-group/strategy-cli/internal/render"
	"github.com/sells-group/strategy-cli/internal/store"
)

const maxBodyBytes = 1 << 20

// Deps are the collaborators the HTTP handlers need. Store may be nil when
// history is disabled.
type Deps struct {
	Pipeline *pipeline.Pipeline
	Renderer *render.Renderer
	Store    store.Store
	Server   config.ServerConfig
}

type server struct {
	Deps
}

// NewRouter builds the HTTP handler.
func NewRouter(d Deps) http.Handler {
	s := &server{Deps: d}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: d.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{runIDHeader},
		MaxAge:         300,
	}))
	r.Use(newRateLimiter(d.Server.RateLimitRPS, d.Server.RateLimitBurst).middleware)

	r.Get("/health", s.health)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/questions", s.basicQuestions)
		r.Get("/questions/advanced", s.advancedQuestions)
		r.Post("/strategy", s.basicStrategy)
		r.Post("/strategy/advanced", s.advancedStrategy)
		r.Get("/runs", s.listRuns)
		r.Get("/runs/{id}", s.getRun)
	})
	return r
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		zap.L().Info("api: request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
