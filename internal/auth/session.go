package auth

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/me-tool/internal/config"
	"github.com/spec-kit/me-tool/internal/domain"
)

// CookieName is the name of the session cookie.
const CookieName = "ME_session"

var errInvalidSession = errors.New("invalid session")

// SessionCodec signs and verifies session cookie values.
type SessionCodec struct {
	secret     []byte
	maxAge     time.Duration
	production bool
	domain     string
	now        func() time.Time
}

// NewSessionCodec builds a codec from session configuration. Production
// cookies are Secure, SameSite=Strict and scoped to the configured domain.
func NewSessionCodec(cfg config.SessionConfig, production bool) *SessionCodec {
	maxAge := cfg.MaxAge()
	if maxAge <= 0 {
		maxAge = 30 * 24 * time.Hour
	}
	return &SessionCodec{
		secret:     []byte(cfg.Secret),
		maxAge:     maxAge,
		production: production,
		domain:     cfg.Domain,
		now:        time.Now,
	}
}

// sessionClaims is the signed cookie payload.
type sessionClaims struct {
	UserID  string `json:"userId"`
	Created string `json:"created"`
	jwt.RegisteredClaims
}

// Encode signs a new session for the user.
func (s *SessionCodec) Encode(userID string) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.maxAge)
	claims := &sessionClaims{
		UserID:  userID,
		Created: now.UTC().Format(time.RFC3339),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Decode verifies a cookie value. Any failure yields errInvalidSession.
func (s *SessionCodec) Decode(value string) (*domain.Session, error) {
	if value == "" {
		return nil, errInvalidSession
	}
	parsed, err := jwt.ParseWithClaims(value, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, errInvalidSession
	}

	claims, ok := parsed.Claims.(*sessionClaims)
	if !ok || !parsed.Valid || claims.UserID == "" {
		return nil, errInvalidSession
	}

	session := &domain.Session{UserID: claims.UserID}
	if created, err := time.Parse(time.RFC3339, claims.Created); err == nil {
		session.Created = created
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}

// Cookie builds the Set-Cookie value for a signed session.
func (s *SessionCodec) Cookie(value string, expiresAt time.Time) *fiber.Cookie {
	cookie := s.baseCookie()
	cookie.Value = value
	cookie.Expires = expiresAt
	cookie.MaxAge = int(s.maxAge / time.Second)
	return cookie
}

// ExpiredCookie builds a cookie that makes the browser drop the session.
func (s *SessionCodec) ExpiredCookie() *fiber.Cookie {
	cookie := s.baseCookie()
	cookie.Expires = time.Unix(0, 0)
	cookie.MaxAge = -1
	return cookie
}

func (s *SessionCodec) baseCookie() *fiber.Cookie {
	cookie := &fiber.Cookie{
		Name:     CookieName,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if s.production {
		cookie.Secure = true
		cookie.Domain = s.domain
		cookie.SameSite = fiber.CookieSameSiteStrictMode
	}
	return cookie
}
