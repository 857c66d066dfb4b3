package repositories

import (
	"context"
	"encoding/json"
	"net/http"

	"storefront/internal/errx"
	"storefront/internal/models"
)

type AuthRepository struct {
	client *UpstreamClient
}

func NewAuthRepository(client *UpstreamClient) *AuthRepository {
	return &AuthRepository{client: client}
}

func (r *AuthRepository) Login(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	return r.authenticate(ctx, "/auth/login", creds)
}

func (r *AuthRepository) AdminLogin(ctx context.Context, creds models.Credentials) (*models.AuthResult, error) {
	return r.authenticate(ctx, "/auth/admin-login", creds)
}

func (r *AuthRepository) Register(ctx context.Context, data models.SignupData) (*models.AuthResult, error) {
	return r.authenticate(ctx, "/auth/register", data)
}

func (r *AuthRepository) authenticate(ctx context.Context, path string, payload any) (*models.AuthResult, error) {
	body, err := r.client.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: payload})
	if err != nil {
		return nil, err
	}

	var result models.AuthResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errx.Malformed(err)
	}
	if result.Token == "" {
		return nil, errx.Malformed(errMissingToken)
	}
	return &result, nil
}
