package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rental-service/internal/auth"
	"rental-service/internal/repository"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := setupTestDB(t)
	issuer := auth.NewIssuer("test-secret", time.Hour)
	return NewAuthService(repository.NewUserRepository(db), issuer, testLogger())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Username: "  nadia  ", Password: "secret1", Role: "manager"})
	require.NoError(t, err)
	assert.Equal(t, "nadia", user.Username)
	assert.Equal(t, "agent", user.Role)

	token, logged, err := svc.Login(ctx, "nadia", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestRegisterRejectsDuplicateAndWeakPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "nadia", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Register(ctx, RegisterInput{Username: "nadia", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "nadia", Password: "secret2"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "nadia", Password: "secret1"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "nadia", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, RegisterInput{Username: "nadia", Password: "secret1"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, "wrong", "secret2")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "secret1", "secret2"))

	_, _, err = svc.Login(ctx, "nadia", "secret2")
	assert.NoError(t, err)
}
