//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"compute-market/internal/pkg/config"
	"compute-market/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken signs a session token for wallet without going through login.
func (h *JWTHelper) GenerateToken(t *testing.T, wallet string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken(wallet, time.Now())
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, wallet string) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, time.Minute).GenerateToken(wallet, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return token
}
