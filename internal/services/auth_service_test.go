// internal/services/auth_service_test.go
package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakestore/storefront-backend/internal/accounts"
	"github.com/fakestore/storefront-backend/internal/config"
	"github.com/fakestore/storefront-backend/internal/storage"
)

func newTestAuth(t *testing.T) *AuthService {
	t.Helper()

	durable := storage.NewMemoryStore()
	repo := accounts.NewBlobRepository(durable)
	sessions := NewSessionService(durable, storage.NewMemoryStore())
	cfg := &config.Config{
		JWT: config.JWTConfig{
			SecretKey:     "test-secret",
			TokenTTL:      24,
			RememberMeTTL: 720,
		},
	}
	return NewAuthService(repo, sessions, cfg)
}

func validRegister() *RegisterRequest {
	return &RegisterRequest{
		Name:            "Ana García",
		Email:           "ana@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		AcceptTerms:     true,
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t)

	user, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)
	assert.Equal(t, "Ana García", user.Name)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.NoError(t, user.CheckPassword("secret1"))
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t)

	cases := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{"short name", func(r *RegisterRequest) { r.Name = "A" }},
		{"bad email", func(r *RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *RegisterRequest) { r.Password = "abc"; r.ConfirmPassword = "abc" }},
		{"password mismatch", func(r *RegisterRequest) { r.ConfirmPassword = "different1" }},
		{"terms not accepted", func(r *RegisterRequest) { r.AcceptTerms = false }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRegister()
			tc.mutate(req)
			_, err := auth.Register(ctx, req)
			assert.Error(t, err)
		})
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t)

	_, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)

	dup := validRegister()
	dup.Email = "ANA@EXAMPLE.COM"
	_, err = auth.Register(ctx, dup)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t)

	_, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)

	resp, err := auth.Login(ctx, &LoginRequest{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Ana García", resp.User.Name)
	assert.NotNil(t, resp.User.LastLoginAt)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 24*3600, resp.ExpiresIn)

	session, ok := auth.CurrentSession(ctx)
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", session.User.Email)
	assert.False(t, session.RememberMe)
}

func TestLoginRememberMe(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t)

	_, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)

	resp, err := auth.Login(ctx, &LoginRequest{
		Email:      "ana@example.com",
		Password:   "secret1",
		RememberMe: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 720*3600, resp.ExpiresIn)
	require.NotNil(t, resp.Session)
	assert.True(t, resp.Session.RememberMe)
}

func TestLoginFailureIsGeneric(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t)

	_, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)

	// Wrong password and unknown email produce the same error
	_, err = auth.Login(ctx, &LoginRequest{Email: "ana@example.com", Password: "wrong-1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, &LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	auth := newTestAuth(t)

	_, err := auth.Register(ctx, validRegister())
	require.NoError(t, err)
	_, err = auth.Login(ctx, &LoginRequest{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, auth.Logout(ctx))
	_, ok := auth.CurrentSession(ctx)
	assert.False(t, ok)

	// Idempotent
	assert.NoError(t, auth.Logout(ctx))
}
