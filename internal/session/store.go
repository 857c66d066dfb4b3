// Package session keeps the signed-in user in two client-held cookies: the
// upstream credential and the user profile. Both are sealed so the role
// cannot be edited in the browser.
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/logx"
	"storefront/internal/models"
)

const (
	TokenCookie = "token"
	UserCookie  = "user_data"

	// ContextKey is where LoadSession stores the restored session.
	ContextKey = "session"
)

var (
	ErrIncomplete = errors.New("only one of the session cookies is present")
	ErrExpired    = errors.New("session credential has expired")
	ErrRevoked    = errors.New("session credential was revoked")
	ErrMismatch   = errors.New("session cookies belong to different logins")
)

// profile is the sealed user_data value. Credential ties it to the token
// cookie it was issued with.
type profile struct {
	Credential string      `json:"credential"`
	User       models.User `json:"user"`
}

// Revoker is the logout blacklist, keyed by token fingerprint.
type Revoker interface {
	Blacklist(ctx context.Context, key string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, key string) (bool, error)
}

type Options struct {
	Secure  bool
	MaxAge  time.Duration
	Revoker Revoker // nil disables revocation
	Now     func() time.Time
}

type Store struct {
	sealer  *Sealer
	secure  bool
	maxAge  time.Duration
	revoker Revoker
	now     func() time.Time
}

func NewStore(sealer *Sealer, opts Options) *Store {
	if opts.MaxAge <= 0 {
		opts.MaxAge = 7 * 24 * time.Hour
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Store{
		sealer:  sealer,
		secure:  opts.Secure,
		maxAge:  opts.MaxAge,
		revoker: opts.Revoker,
		now:     opts.Now,
	}
}

// Restore rebuilds the session from the request cookies. It returns (nil, nil)
// when the visitor is logged out. A partial, tampered, mismatched, expired or
// revoked pair is cleared and reported as an error alongside a nil session.
func (s *Store) Restore(c *gin.Context) (*models.Session, error) {
	token, tokenErr := c.Cookie(TokenCookie)
	userData, userErr := c.Cookie(UserCookie)
	if tokenErr != nil && userErr != nil {
		return nil, nil
	}
	if tokenErr != nil || userErr != nil || token == "" || userData == "" {
		s.Clear(c)
		return nil, ErrIncomplete
	}

	sess, err := s.open(token, userData)
	if err != nil {
		s.Clear(c)
		return nil, err
	}
	if s.expired(sess) {
		s.Clear(c)
		return nil, ErrExpired
	}
	if s.revoked(c.Request.Context(), sess.Token) {
		s.Clear(c)
		return nil, ErrRevoked
	}
	return sess, nil
}

// Persist writes both cookies for a fresh login or registration.
func (s *Store) Persist(c *gin.Context, token string, user models.User) (*models.Session, error) {
	if token == "" {
		return nil, errors.New("cannot persist an empty credential")
	}

	sess := &models.Session{Token: token, User: user, ExpiresAt: tokenExpiry(token)}
	if s.expired(sess) {
		return nil, ErrExpired
	}

	sealedProfile, err := json.Marshal(profile{Credential: Fingerprint(token), User: user})
	if err != nil {
		return nil, fmt.Errorf("failed to encode session user: %w", err)
	}
	sealedToken, err := s.sealer.Seal([]byte(token))
	if err != nil {
		return nil, fmt.Errorf("failed to seal session token: %w", err)
	}
	sealedUser, err := s.sealer.Seal(sealedProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to seal session user: %w", err)
	}

	maxAge := int(s.lifetime(sess).Seconds())
	s.setCookie(c, TokenCookie, sealedToken, maxAge)
	s.setCookie(c, UserCookie, sealedUser, maxAge)
	return sess, nil
}

// Clear removes both cookies.
func (s *Store) Clear(c *gin.Context) {
	s.setCookie(c, TokenCookie, "", -1)
	s.setCookie(c, UserCookie, "", -1)
}

// Revoke blacklists the session credential for the rest of its lifetime.
func (s *Store) Revoke(ctx context.Context, sess *models.Session) error {
	if s.revoker == nil || sess == nil || sess.Token == "" {
		return nil
	}
	if err := s.revoker.Blacklist(ctx, Fingerprint(sess.Token), s.lifetime(sess)); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// Fingerprint identifies a credential without storing it.
func Fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Current returns the session LoadSession attached to c, or nil.
func Current(c *gin.Context) *models.Session {
	v, ok := c.Get(ContextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*models.Session)
	return sess
}

func Attach(c *gin.Context, sess *models.Session) {
	if sess == nil {
		return
	}
	c.Set(ContextKey, sess)
}

func (s *Store) open(token, userData string) (*models.Session, error) {
	plainToken, err := s.sealer.Open(token)
	if err != nil {
		return nil, err
	}
	raw, err := s.sealer.Open(userData)
	if err != nil {
		return nil, err
	}

	var p profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("failed to decode session user: %w", err)
	}

	tok := string(plainToken)
	if p.Credential != Fingerprint(tok) {
		return nil, ErrMismatch
	}
	return &models.Session{Token: tok, User: p.User, ExpiresAt: tokenExpiry(tok)}, nil
}

func (s *Store) expired(sess *models.Session) bool {
	return !sess.ExpiresAt.IsZero() && !s.now().Before(sess.ExpiresAt)
}

func (s *Store) revoked(ctx context.Context, token string) bool {
	if s.revoker == nil {
		return false
	}
	blacklisted, err := s.revoker.IsBlacklisted(ctx, Fingerprint(token))
	if err != nil {
		logx.Warn().Err(err).Msg("revocation lookup failed, accepting session")
		return false
	}
	return blacklisted
}

// lifetime is the cookie max age: the configured maximum, shortened to the
// credential's own expiry when it has one.
func (s *Store) lifetime(sess *models.Session) time.Duration {
	if sess.ExpiresAt.IsZero() {
		return s.maxAge
	}
	if left := sess.ExpiresAt.Sub(s.now()); left < s.maxAge {
		return max(left, time.Second)
	}
	return s.maxAge
}

func (s *Store) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", "", s.secure, true)
}

// tokenExpiry reads the exp claim without verifying the signature; the
// upstream API owns the signing key. Opaque tokens have no expiry.
func tokenExpiry(token string) time.Time {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil || claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}
