package repositories

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/errx"
	"storefront/internal/models"
)

func TestAuthRepository_Endpoints(t *testing.T) {
	const ok = `{"token":"t0k","user":{"id":"u1","name":"Sara","email":"s@example.com","role":"admin"}}`
	creds := models.Credentials{Email: "s@example.com", Password: "secret"}

	tests := []struct {
		name string
		path string
		call func(*AuthRepository) (*models.AuthResult, error)
	}{
		{name: "login", path: "/auth/login", call: func(r *AuthRepository) (*models.AuthResult, error) {
			return r.Login(context.Background(), creds)
		}},
		{name: "admin login", path: "/auth/admin-login", call: func(r *AuthRepository) (*models.AuthResult, error) {
			return r.AdminLogin(context.Background(), creds)
		}},
		{name: "register", path: "/auth/register", call: func(r *AuthRepository) (*models.AuthResult, error) {
			return r.Register(context.Background(), models.SignupData{Name: "Sara", Email: "s@example.com", Password: "secret"})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, seen := fakeUpstream(t, http.StatusOK, ok)
			result, err := tt.call(NewAuthRepository(client))
			require.NoError(t, err)
			assert.Equal(t, "t0k", result.Token)
			assert.True(t, result.User.IsAdmin())
			assert.Equal(t, http.MethodPost, seen.method)
			assert.Equal(t, tt.path, seen.path)
			assert.Equal(t, "s@example.com", seen.body["email"])
			assert.Empty(t, seen.auth)
		})
	}
}

func TestAuthRepository_Failures(t *testing.T) {
	creds := models.Credentials{Email: "s@example.com", Password: "bad"}

	client, _ := fakeUpstream(t, http.StatusUnauthorized, `{"message":"Invalid credentials"}`)
	_, err := NewAuthRepository(client).Login(context.Background(), creds)
	assert.Equal(t, errx.KindStatus, errx.KindOf(err))
	assert.Equal(t, "Invalid credentials", errx.MessageOf(err))

	client, _ = fakeUpstream(t, http.StatusOK, `{"user":{"id":"u1"}}`)
	_, err = NewAuthRepository(client).Login(context.Background(), creds)
	assert.Equal(t, errx.KindMalformed, errx.KindOf(err))

	client, _ = fakeUpstream(t, http.StatusOK, `<html></html>`)
	_, err = NewAuthRepository(client).AdminLogin(context.Background(), creds)
	assert.Equal(t, errx.KindMalformed, errx.KindOf(err))
}
