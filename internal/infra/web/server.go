package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"oracle-veil/internal/usecase"
)

// Server wires the HTTP surface to the use case layer. Handlers never touch
// storage or providers directly.
type Server struct {
	tokenUC      usecase.TokenUseCase
	readingUC    usecase.ReadingUseCase
	auth         *AuthManager
	adminKeyword string
	log          *zerolog.Logger
}

func NewServer(
	tokenUC usecase.TokenUseCase,
	readingUC usecase.ReadingUseCase,
	auth *AuthManager,
	adminKeyword string,
	log *zerolog.Logger,
) *Server {
	return &Server{
		tokenUC:      tokenUC,
		readingUC:    readingUC,
		auth:         auth,
		adminKeyword: adminKeyword,
		log:          log,
	}
}

// Routes builds the full router, middleware included.
func (s *Server) Routes(requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(func(next http.Handler) http.Handler {
		return Chain(next,
			Recover(s.log),
			TraceID(),
			RequestLog(s.log),
			Timeout(requestTimeout),
		)
	})

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", s.handleUserLogin)
		r.Post("/tarot-reading", s.handleTarotReading)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", s.handleAdminLogin)
			r.Post("/logout", s.handleAdminLogout)
			r.Get("/check", s.handleAdminCheck)

			r.Group(func(r chi.Router) {
				r.Use(s.requireAdmin)
				r.Post("/generate-token", s.handleGenerateToken)
				r.Post("/generate-tokens", s.handleGenerateTokens)
				r.Get("/tokens", s.handleListTokens)
			})
		})
	})

	return r
}

// requireAdmin rejects requests that lack a live admin session. The check
// hits the session store, so a logged-out cookie fails even before expiry.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.auth.Verify(r.Context(), r) {
			writeError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
