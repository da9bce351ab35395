package services

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/dmitrijs2005/guestbook/internal/common"
	"github.com/dmitrijs2005/guestbook/internal/server/auth"
	"github.com/dmitrijs2005/guestbook/internal/server/config"
	"golang.org/x/crypto/bcrypt"
)

// UserService authenticates the single host identity and mints bearer
// tokens. There is no user store: the identity and its bcrypt hash come from
// configuration.
type UserService struct {
	hostUser              string
	hostPasswordHash      []byte
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(cfg *config.Config) *UserService {
	return &UserService{
		hostUser:              cfg.HostUser,
		hostPasswordHash:      []byte(cfg.HostPasswordHash),
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Login verifies the credentials against the configured host identity and,
// on match, returns a signed token. Mismatches of either field yield
// ErrorInvalidCredentials; the password check runs even for unknown
// usernames to keep timing uniform.
func (s *UserService) Login(_ context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.hostUser)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.hostPasswordHash, []byte(password))

	if !userOK || passErr != nil {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(s.hostUser, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Authenticate verifies a bearer token and returns the identity it carries.
func (s *UserService) Authenticate(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", common.ErrorMissingToken
	}
	return auth.GetUsernameFromToken(token, s.jwtSecret)
}
