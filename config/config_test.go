package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	cfg, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
	assert.Nil(t, cfg)
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("MONGO_DB_NAME", "blog_test")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("EMAIL", "author@example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test-secret", cfg.Auth.Secret)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)
	assert.Equal(t, "blog_test", cfg.Mongo.DBName)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "author@example.com", cfg.AuthorContact.Email)
}

func TestApplyDefaults(t *testing.T) {
	var c AppConfig
	c.applyDefaults()

	assert.Equal(t, "8080", c.Server.Port)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "blog_api", c.Mongo.DBName)
	assert.Equal(t, 10*time.Second, c.Mongo.ConnectTimeout)
	assert.Equal(t, "blog-api", c.Auth.Issuer)
	assert.Equal(t, time.Hour, c.Auth.TokenTTL)
	assert.Equal(t, time.Minute, c.RateLimit.Window)
	assert.Equal(t, []string{"*"}, c.CORS.AllowedOrigins)
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitCSV(" a ,, b "))
	assert.Empty(t, splitCSV(" , "))
}
