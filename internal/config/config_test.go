package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewConfigRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "deployment-secret")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "deployment-secret", cfg.JWTSecret)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Empty(t, cfg.SMTPHost)
}

func TestNewConfigBcryptCostBounds(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")

	t.Setenv("BCRYPT_COST", "12")
	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.BcryptCost)

	t.Setenv("BCRYPT_COST", "notanumber")
	_, err = NewConfig()
	assert.Error(t, err)

	t.Setenv("BCRYPT_COST", "99")
	_, err = NewConfig()
	assert.Error(t, err)
}
