package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"api_vendas/internal/storage"
)

func newTestService(t *testing.T, ttl time.Duration) *Service {
	t.Helper()
	return NewService(NewLocalStorage(storage.NewMemoryDB()), zaptest.NewLogger(t), "test-secret", ttl)
}

func TestRegisterAndVerify(t *testing.T) {
	svc := newTestService(t, time.Hour)
	ctx := context.Background()

	user, token, err := svc.Register(ctx, "maria", "maria@example.com", "secret123", "")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, RoleUser, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash, "password must be hashed")

	verified, err := svc.VerifyToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, verified.ID)
	assert.Equal(t, "maria@example.com", verified.Email)
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService(t, time.Hour)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "", "maria@example.com", "secret123", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, _, err = svc.Register(ctx, "maria", "maria@example.com", "short", "")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, _, err = svc.Register(ctx, "maria", "maria@example.com", "secret123", "")
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, "other", "maria@example.com", "secret123", "")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	svc := newTestService(t, time.Hour)
	ctx := context.Background()

	_, _, err := svc.Register(ctx, "maria", "maria@example.com", "secret123", RoleAdmin)
	require.NoError(t, err)

	user, token, err := svc.Login(ctx, "maria@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, RoleAdmin, user.Role)

	_, _, err = svc.Login(ctx, "maria@example.com", "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyToken_Invalid(t *testing.T) {
	svc := newTestService(t, time.Hour)
	ctx := context.Background()

	_, err := svc.VerifyToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Token signed with another secret.
	other := newTestService(t, time.Hour)
	other.secret = []byte("another-secret")
	_, tok, err := other.Register(ctx, "maria", "maria@example.com", "secret123", "")
	require.NoError(t, err)
	_, err = svc.VerifyToken(ctx, tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyToken_Expired(t *testing.T) {
	svc := newTestService(t, -time.Minute)
	ctx := context.Background()

	_, token, err := svc.Register(ctx, "maria", "maria@example.com", "secret123", "")
	require.NoError(t, err)

	_, err = svc.VerifyToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
