package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "mongo", cfg.StoreDriver)
	assert.Equal(t, "redis", cfg.SessionStore)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 5*time.Minute, cfg.OTPTTL)
	assert.True(t, cfg.OTPEcho)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("SESSION_STORE", "memory")
	t.Setenv("OTP_TTL", "2m")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, "memory", cfg.SessionStore)
	assert.Equal(t, 2*time.Minute, cfg.OTPTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

func TestProductionDisablesEcho(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")

	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.False(t, cfg.OTPEcho)

	t.Setenv("OTP_ECHO", "true")
	cfg, err = Load(viper.New())
	require.NoError(t, err)
	assert.True(t, cfg.OTPEcho)
}

func TestValidate(t *testing.T) {
	valid := Config{StoreDriver: "memory", SessionStore: "memory", SessionTTL: time.Hour, OTPTTL: time.Minute}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown store", func(c *Config) { c.StoreDriver = "postgres" }},
		{"unknown session store", func(c *Config) { c.SessionStore = "file" }},
		{"zero session ttl", func(c *Config) { c.SessionTTL = 0 }},
		{"zero otp ttl", func(c *Config) { c.OTPTTL = 0 }},
		{"short production secret", func(c *Config) { c.Env = "production"; c.SessionSecret = "short" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
