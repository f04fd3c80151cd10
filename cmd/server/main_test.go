package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monishsatpuri/blogcms/internal/infrastructure/auth"
	"github.com/monishsatpuri/blogcms/internal/pkg/config"
	"github.com/monishsatpuri/blogcms/pkg/logger"
)

func TestCloseLogged_LogsFailure(t *testing.T) {
	logger.Reset()
	t.Cleanup(logger.Reset)

	var buf bytes.Buffer
	logger.Init(logger.Options{Level: "info", Output: &buf})

	closeLogged("redis", func() error { return errors.New("conn reset") })
	closeLogged("sqlite", func() error { return nil })

	out := buf.String()
	assert.Contains(t, out, `"resource":"redis"`)
	assert.Contains(t, out, "conn reset")
	assert.NotContains(t, out, "sqlite")
}

func TestNewVerifier(t *testing.T) {
	plain, err := newVerifier(config.AdminConfig{User: "admin", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, plain.Verify("admin", "pw"))

	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	hashed, err := newVerifier(config.AdminConfig{User: "admin", Password: "ignored", PasswordHash: hash})
	require.NoError(t, err)
	assert.True(t, hashed.Verify("admin", "s3cret"))
	assert.False(t, hashed.Verify("admin", "ignored"))

	_, err = newVerifier(config.AdminConfig{User: "admin", PasswordHash: "not-a-hash"})
	assert.Error(t, err)
}
