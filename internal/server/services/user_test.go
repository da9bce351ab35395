package services

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T, validity time.Duration) *UserService {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		HostUser:              "host",
		HostPasswordHash:      string(hash),
		SecretKey:             "test-secret",
		TokenValidityDuration: validity,
	}
	return NewUserService(cfg)
}

func TestUserService_Login_Success(t *testing.T) {
	t.Parallel()

	svc := newUserService(t, time.Hour)
	ctx := context.Background()

	token, err := svc.Login(ctx, "host", "correct horse")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	username, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "host", username)
}

func TestUserService_Login_Rejections(t *testing.T) {
	t.Parallel()

	svc := newUserService(t, time.Hour)
	ctx := context.Background()

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "host", password: "guess"},
		{name: "wrong username", username: "admin", password: "correct horse"},
		{name: "both wrong", username: "admin", password: "guess"},
		{name: "empty", username: "", password: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(ctx, tc.username, tc.password)
			assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
		})
	}
}

func TestUserService_Authenticate_ExpiredToken(t *testing.T) {
	t.Parallel()

	svc := newUserService(t, -1*time.Second)
	ctx := context.Background()

	token, err := svc.Login(ctx, "host", "correct horse")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, token)
	assert.ErrorIs(t, err, common.ErrorTokenExpired)
}

func TestUserService_Authenticate_MissingOrGarbage(t *testing.T) {
	t.Parallel()

	svc := newUserService(t, time.Hour)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, common.ErrorMissingToken)

	_, err = svc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, common.ErrorInvalidToken)
}
