package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	err := parseEnv(cfg, map[string]string{
		"DATABASE_URL":      "postgres://u:p@db/recruit",
		"MIGRATION_DOMAIN":  "https://example.com",
		"MIGRATION_ROLE_ID": "1",
		"DRY_RUN":           "false",
		"LOCALE_BACKEND":    "s3",
		"S3_BUCKET":         "locales",
	})
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db/recruit", cfg.DatabaseDSN)
	assert.Equal(t, "https://example.com", cfg.Domain)
	assert.Equal(t, 1, cfg.MigrationRoleID)
	assert.False(t, cfg.DryRun)
	assert.Equal(t, BackendS3, cfg.LocaleBackend)
	assert.Equal(t, "locales", cfg.S3Bucket)

	// untouched
	assert.Equal(t, 16, cfg.TokenLength)
	assert.Equal(t, "en", cfg.SourceLanguage)
}

func TestParseEnv_InvalidInt(t *testing.T) {
	cfg := &Config{}
	err := parseEnv(cfg, map[string]string{"TOKEN_LENGTH": "sixteen"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}
