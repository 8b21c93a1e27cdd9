package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN_EscapaCaracteresEspeciales(t *testing.T) {
	cfg := DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:word/1",
		DBName:   "estoque",
		SSLMode:  "disable",
	}
	dsn := cfg.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "p%40ss%3Aword%2F1", "la password va URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestConnectionString_DatabaseURLTienePrioridad(t *testing.T) {
	cfg := DBConfig{
		DatabaseURL: "postgresql://u:p@db.example.com:5432/estoque?sslmode=require",
		Host:        "localhost",
	}
	assert.Equal(t, cfg.DatabaseURL, cfg.ConnectionString())
}

func TestAuthConfig_RequiresToken(t *testing.T) {
	policy := AuthConfig{ProtectedGroups: []string{"categories", "Products"}}

	assert.True(t, policy.RequiresToken("categories"))
	assert.True(t, policy.RequiresToken("products"), "la comparación no distingue mayúsculas")
	assert.False(t, policy.RequiresToken("suppliers"))

	// Default: sin grupos listados, todo público.
	assert.False(t, AuthConfig{}.RequiresToken("categories"))
}

func TestSplitGroups(t *testing.T) {
	assert.Nil(t, splitGroups(""))
	assert.Equal(t, []string{"categories", "products"}, splitGroups("categories, products"))
	assert.Equal(t, []string{"suppliers"}, splitGroups(" suppliers ,, "))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 1440, cfg.JWT.Expiration, "la expiración default es un día")
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Empty(t, cfg.Auth.ProtectedGroups)
}
