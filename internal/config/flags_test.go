package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected  *Config
		name      string
		args      []string
		expectErr bool
	}{
		{
			name: "all flags",
			args: []string{
				"-d", "db", "-m", "https://example.com", "-r", "3", "-n", "20", "-send",
				"-l", "/tmp/locales", "-s", "sv", "-b", "s3", "-t", "http://translate", "-v", "debug", "-k", "12",
			},
			expected: &Config{
				DatabaseDSN:       "db",
				Domain:            "https://example.com",
				MigrationRoleID:   3,
				TokenLength:       20,
				DryRun:            false,
				LocalesDir:        "/tmp/locales",
				SourceLanguage:    "sv",
				LocaleBackend:     "s3",
				TranslateEndpoint: "http://translate",
				LogLevel:          "debug",
				BcryptCost:        12,
			},
		},
		{
			name:     "no -send keeps dry run",
			args:     []string{"postgres://positional"},
			expected: &Config{DryRun: true},
		},
		{
			name:     "positional arguments around a boolean flag",
			args:     []string{"-send", "postgres://db", "https://example.com", "-n", "8"},
			expected: &Config{DryRun: false, TokenLength: 8},
		},
		{
			name:      "incorrect token length",
			args:      []string{"-n", "abc"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{DryRun: true}

			err := parseFlags(cfg, tt.args)
			if tt.expectErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
