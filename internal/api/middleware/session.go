package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/wellpath/wellness/internal/core/service"
)

const (
	// SessionCookie carries the signed session id.
	SessionCookie = "wellness_session"
	// ClientKey is the echo.Context key holding the *service.ClientSession.
	ClientKey = "client"

	sessionIssuer = "wellness"
)

// SessionResolver returns the client state behind a session id.
type SessionResolver interface {
	Get(ctx context.Context, id string) (*service.ClientSession, error)
}

// SessionConfig configures the Session middleware.
type SessionConfig struct {
	Secret   []byte
	TTL      time.Duration
	Secure   bool
	Resolver SessionResolver
}

// Session reads the signed session cookie, minting a new session id when it
// is missing or invalid, and injects the client session into the context.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, ok := sessionID(c, cfg.Secret)
			if !ok {
				sid = uuid.NewString()
				if err := issueCookie(c, cfg, sid); err != nil {
					return err
				}
			}

			cs, err := cfg.Resolver.Get(c.Request().Context(), sid)
			if err != nil {
				return err
			}
			c.Set(ClientKey, cs)

			return next(c)
		}
	}
}

func sessionID(c echo.Context, secret []byte) (string, bool) {
	cookie, err := c.Cookie(SessionCookie)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(cookie.Value, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(sessionIssuer))
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

func issueCookie(c echo.Context, cfg SessionConfig, sid string) error {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sid,
		Issuer:    sessionIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.Secret)
	if err != nil {
		return fmt.Errorf("sign session cookie: %w", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(cfg.TTL),
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// ClientFrom returns the client session injected by Session, or nil.
func ClientFrom(c echo.Context) *service.ClientSession {
	cs, _ := c.Get(ClientKey).(*service.ClientSession)
	return cs
}
