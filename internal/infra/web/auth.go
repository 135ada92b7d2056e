package web

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"oracle-veil/internal/domain/ports/repository"
)

// ===== Admin session primitives =====
//
// The cookie carries a signed JWT whose sid claim points at a server-side
// session record. The JWT alone is not enough: logout deletes the record, so
// a stolen or stale cookie dies with it. Every login mints a fresh sid, so
// the pre-login anonymous cookie can never be promoted.

type AuthConfig struct {
	HMACSecret   []byte
	CookieName   string
	CookieDomain string
	SecureCookie bool
	TTL          time.Duration
}

type AuthManager struct {
	cfg      AuthConfig
	sessions repository.AdminSessionRepository
}

func NewAuthManager(secret string, secure bool, domain string, ttl time.Duration, sessions repository.AdminSessionRepository) *AuthManager {
	return &AuthManager{
		cfg: AuthConfig{
			HMACSecret:   []byte(secret),
			CookieName:   "admin_session",
			CookieDomain: domain, // "" is fine for a host-only cookie
			SecureCookie: secure, // true in prod (TLS)
			TTL:          ttl,
		},
		sessions: sessions,
	}
}

type AdminClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Mint creates a fresh session record, signs a cookie for it and returns the
// session id.
func (a *AuthManager) Mint(ctx context.Context, w http.ResponseWriter) (string, error) {
	sid := uuid.NewString()
	if err := a.sessions.Create(ctx, sid); err != nil {
		return "", err
	}

	now := time.Now()
	claims := AdminClaims{
		SessionID: sid,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.cfg.TTL)),
			Subject:   "admin",
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.cfg.HMACSecret)
	if err != nil {
		_ = a.sessions.Delete(ctx, sid)
		return "", err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     a.cfg.CookieName,
		Value:    signed,
		Path:     "/",
		Domain:   a.cfg.CookieDomain,
		MaxAge:   int(a.cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   a.cfg.SecureCookie,
		SameSite: http.SameSiteStrictMode,
	})
	return sid, nil
}

// Verify reports whether the request carries a live admin session.
func (a *AuthManager) Verify(ctx context.Context, r *http.Request) bool {
	claims, err := a.parseFromRequest(r)
	if err != nil {
		return false
	}
	ok, err := a.sessions.Exists(ctx, claims.SessionID)
	return err == nil && ok
}

// Destroy deletes the server-side record and clears the cookie. Idempotent:
// destroying a missing or invalid session is not an error.
func (a *AuthManager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	if claims, err := a.parseFromRequest(r); err == nil {
		_ = a.sessions.Delete(ctx, claims.SessionID)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     a.cfg.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   a.cfg.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.cfg.SecureCookie,
		SameSite: http.SameSiteStrictMode,
	})
}

func (a *AuthManager) parseFromRequest(r *http.Request) (*AdminClaims, error) {
	// Authorization: Bearer <jwt>
	if hdr := r.Header.Get("Authorization"); hdr != "" {
		if strings.HasPrefix(strings.ToLower(hdr), "bearer ") {
			return a.parse(strings.TrimSpace(hdr[7:]))
		}
	}
	// Cookie
	if c, err := r.Cookie(a.cfg.CookieName); err == nil {
		return a.parse(c.Value)
	}
	return nil, errors.New("missing token")
}

func (a *AuthManager) parse(tok string) (*AdminClaims, error) {
	claims := &AdminClaims{}
	tkn, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.cfg.HMACSecret, nil
	})
	if err != nil || !tkn.Valid || claims.SessionID == "" {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
