package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/recruitkit/internal/app"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		_ = os.Unsetenv(k)
	}
}

func TestRun_MissingDatabaseURL(t *testing.T) {
	unsetEnv(t, "DATABASE_URL")

	var stderr bytes.Buffer
	code := run(nil, &stderr)

	assert.Equal(t, app.ExitUsage, code)
	assert.Contains(t, stderr.String(), "database url is required")
	assert.Contains(t, stderr.String(), usage)
}

func TestRun_InvalidTokenLength(t *testing.T) {
	for _, n := range []string{"0", "-3"} {
		var stderr bytes.Buffer
		code := run([]string{"-n=" + n, "postgres://user@127.0.0.1:1/recruit"}, &stderr)

		assert.Equal(t, app.ExitUsage, code, n)
		assert.Contains(t, stderr.String(), "token length must be at least 1")
		assert.Contains(t, stderr.String(), usage)
	}
}
