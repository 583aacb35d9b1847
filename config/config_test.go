package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("SESSION_SECRET", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.ServerPort)
	assert.Equal(t, "./pokerclub.db", cfg.DBPath)
	assert.NotEmpty(t, cfg.SessionSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/club.db")
	t.Setenv("SESSION_SECRET", "fixed-secret")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.ServerPort)
	assert.Equal(t, "/tmp/club.db", cfg.DBPath)
	assert.Equal(t, "fixed-secret", cfg.SessionSecret)
}
