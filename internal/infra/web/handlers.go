package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"oracle-veil/internal/domain"
	"oracle-veil/internal/domain/model"
	"oracle-veil/internal/infra/logging"
	"oracle-veil/internal/infra/metrics"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// POST /api/login
// Redeems an access token. A known token grants entry; the token stays live
// for repeat visits.
func (s *Server) handleUserLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		writeError(w, http.StatusBadRequest, "Token is required")
		return
	}

	_, err := s.tokenUC.Redeem(r.Context(), req.Token)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusUnauthorized, "Invalid token")
	default:
		logging.With(r.Context(), s.log).Error().Err(err).Msg("token redemption failed")
		writeError(w, http.StatusInternalServerError, "Login failed")
	}
}

// POST /api/admin/login
func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Keyword string `json:"keyword"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Keyword is required")
		return
	}
	if req.Keyword != s.adminKeyword {
		metrics.IncAdminLogin("denied")
		writeError(w, http.StatusUnauthorized, "Invalid keyword")
		return
	}

	sid, err := s.auth.Mint(r.Context(), w)
	if err != nil {
		metrics.IncAdminLogin("error")
		logging.With(r.Context(), s.log).Error().Err(err).Msg("admin session mint failed")
		writeError(w, http.StatusInternalServerError, "Login failed")
		return
	}
	metrics.IncAdminLogin("ok")
	logging.With(logging.WithSessID(r.Context(), sid), s.log).Info().Msg("admin logged in")
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// POST /api/admin/logout
func (s *Server) handleAdminLogout(w http.ResponseWriter, r *http.Request) {
	s.auth.Destroy(r.Context(), w, r)
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GET /api/admin/check
func (s *Server) handleAdminCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{
		"isAdmin": s.auth.Verify(r.Context(), r),
	})
}

// POST /api/admin/generate-token
func (s *Server) handleGenerateToken(w http.ResponseWriter, r *http.Request) {
	created, err := s.tokenUC.CreateTokens(r.Context(), 1)
	if err != nil || len(created) == 0 {
		logging.With(r.Context(), s.log).Error().Err(err).Msg("token generation failed")
		writeError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": created[0]})
}

// POST /api/admin/generate-tokens
func (s *Server) handleGenerateTokens(w http.ResponseWriter, r *http.Request) {
	req := struct {
		Count int `json:"count"`
	}{Count: 1}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	created, err := s.tokenUC.CreateTokens(r.Context(), req.Count)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{"tokens": created})
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, "Count must be between 1 and 50")
	default:
		logging.With(r.Context(), s.log).Error().Err(err).Msg("batch token generation failed")
		writeError(w, http.StatusInternalServerError, "Failed to generate tokens")
	}
}

// GET /api/admin/tokens
func (s *Server) handleListTokens(w http.ResponseWriter, r *http.Request) {
	tokens, err := s.tokenUC.ListUnused(r.Context())
	if err != nil {
		logging.With(r.Context(), s.log).Error().Err(err).Msg("token listing failed")
		writeError(w, http.StatusInternalServerError, "Failed to fetch tokens")
		return
	}
	if tokens == nil {
		tokens = []*model.AccessToken{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tokens": tokens})
}

// POST /api/tarot-reading
func (s *Server) handleTarotReading(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Cards []string `json:"cards"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid cards array")
		return
	}

	reading, err := s.readingUC.Generate(r.Context(), req.Cards)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{"reading": reading})
	case errors.Is(err, domain.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, "Invalid cards array")
	case errors.Is(err, domain.ErrAINotConfigured):
		logging.With(r.Context(), s.log).Error().Msg("reading requested without a configured provider")
		writeError(w, http.StatusInternalServerError, "Reading service is not configured")
	default:
		logging.With(r.Context(), s.log).Error().Err(err).Msg("reading generation failed")
		writeError(w, http.StatusInternalServerError, "Failed to generate reading")
	}
}

// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
