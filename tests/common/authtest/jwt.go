//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"groombook/internal/pkg/config"
	"groombook/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

// GenerateToken signs a staff token for tenantID, valid for an hour.
func (h *JWTHelper) GenerateToken(t *testing.T, tenantID uuid.UUID) string {
	t.Helper()
	token, err := h.service().GenerateToken(uuid.New(), tenantID, "staff", time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, tenantID uuid.UUID) string {
	t.Helper()
	token, err := h.service().GenerateToken(uuid.New(), tenantID, "staff", -time.Minute)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) service() *jwt.Service {
	if h.cfg.Issuer == "" {
		return jwt.NewService(h.cfg.Secret)
	}
	return jwt.NewService(h.cfg.Secret, jwt.WithIssuer(h.cfg.Issuer))
}
