package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	assert.Equal(t, "CONFIG_ERROR: HTTP_ADDR is required: invalid input", err.Error())

	bare := NewAppError("CONFIG_ERROR", "something off", nil)
	assert.Equal(t, "CONFIG_ERROR: something off", bare.Error())
}

func TestAppErrorUnwrap(t *testing.T) {
	err := NewAppError("CONFIG_ERROR", "HTTP_ADDR is required", ErrInvalidInput)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestConfigValidate(t *testing.T) {
	cfg := LoadConfig()
	require.NoError(t, cfg.Validate())

	cfg.Server.HTTPAddr = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
