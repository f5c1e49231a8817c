package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvInt(t *testing.T) {
	t.Setenv("FOLIO_TEST_INT", "42")
	assert.Equal(t, 42, getEnvInt("FOLIO_TEST_INT", 7))

	t.Setenv("FOLIO_TEST_INT", "nope")
	assert.Equal(t, 7, getEnvInt("FOLIO_TEST_INT", 7))

	t.Setenv("FOLIO_TEST_INT", "-3")
	assert.Equal(t, 7, getEnvInt("FOLIO_TEST_INT", 7))

	assert.Equal(t, 7, getEnvInt("FOLIO_TEST_INT_UNSET", 7))
}

func TestGetEnvList(t *testing.T) {
	t.Setenv("FOLIO_TEST_LIST", " http://a.test , ,http://b.test")
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, getEnvList("FOLIO_TEST_LIST", nil))

	t.Setenv("FOLIO_TEST_LIST", " , ")
	assert.Equal(t, []string{"x"}, getEnvList("FOLIO_TEST_LIST", []string{"x"}))
}

func TestInitConfigDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", "does-not-exist.env")
	t.Setenv("FRONTEND_URL", "http://front.test")
	t.Setenv("CACHE_TTL_SECONDS", "60")

	cfg := initConfig()

	assert.Equal(t, "http://front.test", cfg.FrontendURL)
	assert.Equal(t, []string{"http://front.test"}, cfg.CorsConfig.AllowedOrigins)
	assert.Equal(t, time.Minute, cfg.CacheTTL)
	assert.True(t, cfg.CorsConfig.AllowCredentials)
	assert.False(t, cfg.R2.Enabled())
}

func TestR2Enabled(t *testing.T) {
	r2 := R2Config{AccountID: "acc", AccessKeyID: "key", SecretAccessKey: "secret", BucketName: "pics"}
	assert.True(t, r2.Enabled())

	r2.BucketName = ""
	assert.False(t, r2.Enabled())
}
