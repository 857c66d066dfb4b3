package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/errx"
	"storefront/internal/logx"
	"storefront/internal/models"
	"storefront/internal/repositories"
	"storefront/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAdmin           = errors.New("admin privileges required")
	ErrUnderage           = errors.New("applicant is under the minimum signup age")
)

type AuthService struct {
	authRepo *repositories.AuthRepository
	sessions *session.Store
}

func NewAuthService(authRepo *repositories.AuthRepository, sessions *session.Store) *AuthService {
	return &AuthService{
		authRepo: authRepo,
		sessions: sessions,
	}
}

func (s *AuthService) Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	creds.Prepare()
	result, err := s.authRepo.Login(ctx, creds)
	if err != nil {
		return nil, credentialError(err)
	}
	logx.Info().Str("user_id", result.User.ID).Msg("user logged in")
	return result, nil
}

// AdminLogin authenticates against the admin endpoint and refuses any
// profile that does not carry the admin role.
func (s *AuthService) AdminLogin(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	creds.Prepare()
	result, err := s.authRepo.AdminLogin(ctx, creds)
	if err != nil {
		return nil, credentialError(err)
	}
	if !result.User.IsAdmin() {
		logx.Warn().Str("user_id", result.User.ID).Str("role", result.User.Role).Msg("admin login returned a non-admin profile")
		return nil, ErrNotAdmin
	}
	logx.Info().Str("user_id", result.User.ID).Msg("admin logged in")
	return result, nil
}

func (s *AuthService) Register(ctx context.Context, data models.SignupData) (*models.AuthResult, error) {
	data.Prepare()
	if !data.OfAge() {
		return nil, ErrUnderage
	}
	result, err := s.authRepo.Register(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("failed to register: %w", err)
	}
	logx.Info().Str("user_id", result.User.ID).Msg("user registered")
	return result, nil
}

// Logout revokes the credential when a revocation list is configured.
// Cookies are cleared by the caller regardless of the outcome.
func (s *AuthService) Logout(ctx context.Context, sess *models.Session) error {
	if sess == nil {
		return nil
	}
	if err := s.sessions.Revoke(ctx, sess); err != nil {
		return err
	}
	logx.Info().Str("user_id", sess.User.ID).Msg("user logged out")
	return nil
}

// credentialError turns upstream 400/401/403 into ErrInvalidCredentials and
// leaves transport and server failures as they are.
func credentialError(err error) error {
	switch errx.StatusOf(err) {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrInvalidCredentials, errx.MessageOf(err))
	}
	return fmt.Errorf("failed to authenticate: %w", err)
}
