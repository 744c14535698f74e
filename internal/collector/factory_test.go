package collector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mhollis/redditlog/internal/config"
)

func TestNewSelectsImplementation(t *testing.T) {
	creds := config.Credentials{
		ClientID:     "id",
		ClientSecret: "secret",
		UserAgent:    "agent",
		Username:     "user",
		Password:     "pass",
	}

	c, err := New(&config.Config{Mode: "public", Credentials: creds})
	require.NoError(t, err)
	assert.IsType(t, &PublicClient{}, c)

	c, err = New(&config.Config{Mode: "mock"})
	require.NoError(t, err)
	assert.IsType(t, &MockClient{}, c)

	c, err = New(&config.Config{Mode: "api", Credentials: creds})
	require.NoError(t, err)
	assert.IsType(t, &APIClient{}, c)
}

func TestNewRejectsUnknownMode(t *testing.T) {
	_, err := New(&config.Config{Mode: "telepathy"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}
